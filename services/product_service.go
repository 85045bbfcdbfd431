package services

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Asahu22/E-commerce/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const uploadsPrefix = "/uploads/"

// ProductRepo defines the store operations the service needs. Kept as an
// interface so tests can substitute a fake.
type ProductRepo interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) (*models.Product, error)
	FindByIDAndDelete(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
}

type ProductService struct {
	repo       ProductRepo
	images     *ImageService
	uploadsDir string
	created    prometheus.Counter
	deleted    prometheus.Counter
}

func NewProductService(repo ProductRepo, images *ImageService, uploadsDir string, created, deleted prometheus.Counter) *ProductService {
	return &ProductService{
		repo:       repo,
		images:     images,
		uploadsDir: uploadsDir,
		created:    created,
		deleted:    deleted,
	}
}

// List returns the whole catalog, newest first.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.FindAll(ctx)
}

// Create validates the submitted fields, ingests the image and persists the
// product. Nothing is written unless every check passes.
func (s *ProductService) Create(ctx context.Context, name, price, category string, image *multipart.FileHeader) (*models.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" || price == "" || image == nil {
		return nil, models.ErrMissingFields
	}

	parsedPrice, err := strconv.ParseFloat(price, 64)
	if err != nil || parsedPrice < 0 {
		return nil, models.ErrInvalidPrice
	}

	category = strings.TrimSpace(category)
	if category == "" {
		category = models.DefaultCategory
	}

	dataURI, err := s.images.Ingest(image)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:      name,
		Price:     parsedPrice,
		Image:     dataURI,
		ImageType: models.ImageTypeBase64,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.created.Inc()
	return created, nil
}

// Delete removes the product with the given hex ID. For legacy url-mode
// records it also removes the backing file under the uploads directory;
// that cleanup is best effort and never fails the delete.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed ID can never address a stored record.
		return models.ErrProductNotFound
	}

	product, err := s.repo.FindByIDAndDelete(ctx, objectID)
	if err != nil {
		return err
	}

	if product.ImageType == models.ImageTypeURL && strings.HasPrefix(product.Image, uploadsPrefix) {
		s.removeUploadedFile(product.Image)
	}

	s.deleted.Inc()
	return nil
}

func (s *ProductService) removeUploadedFile(imagePath string) {
	name := filepath.Base(strings.TrimPrefix(imagePath, uploadsPrefix))
	path := filepath.Join(s.uploadsDir, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		zap.L().Warn("Failed to remove legacy image file",
			zap.String("path", path),
			zap.Error(err),
		)
	}
}
