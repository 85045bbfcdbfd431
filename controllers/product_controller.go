package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/Asahu22/E-commerce/models"
	"github.com/Asahu22/E-commerce/services"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProductController struct {
	products services.ProductAPI
}

func NewProductController(products services.ProductAPI) *ProductController {
	return &ProductController{products: products}
}

// GetProducts returns the whole catalog, newest first.
func (pc *ProductController) GetProducts(c *gin.Context) {
	products, err := pc.products.List(c.Request.Context())
	if err != nil {
		zap.L().Error("Error fetching products", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching products", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// CreateProduct adds a product from a multipart form (name, price, image,
// optional category). Admin only.
func (pc *ProductController) CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	price := c.PostForm("price")
	category := c.PostForm("category")

	var image *multipart.FileHeader
	if fileHeader, err := c.FormFile("image"); err == nil {
		image = fileHeader
	}

	product, err := pc.products.Create(c.Request.Context(), name, price, category, image)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"message": "All fields are required"})
		case errors.Is(err, models.ErrInvalidPrice):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Price must be a non-negative number"})
		case errors.Is(err, models.ErrUnsupportedImage):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Only image files are allowed"})
		case errors.Is(err, models.ErrImageTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "Image must be 5MB or smaller"})
		default:
			zap.L().Error("Error adding product", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding product", "error": err.Error()})
		}
		return
	}

	zap.L().Info("Product added", zap.String("id", product.ID.Hex()), zap.String("name", product.Name))
	c.JSON(http.StatusCreated, gin.H{"message": "Product added successfully", "product": product})
}

// DeleteProduct removes a product by ID. Admin only.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if err := pc.products.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		zap.L().Error("Error deleting product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting product", "error": err.Error()})
		return
	}

	zap.L().Info("Product deleted", zap.String("id", id))
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

// HealthCheck reports service liveness.
func (pc *ProductController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Server is running"})
}
