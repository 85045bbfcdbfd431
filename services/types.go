package services

import (
	"context"
	"mime/multipart"

	"github.com/Asahu22/E-commerce/models"
)

// ProductAPI is the surface controllers depend on.
type ProductAPI interface {
	List(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, name, price, category string, image *multipart.FileHeader) (*models.Product, error)
	Delete(ctx context.Context, id string) error
}

// AuthAPI issues session tokens for the admin account.
type AuthAPI interface {
	Login(username, password string) (string, error)
}
