package controllers

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/Asahu22/E-commerce/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeProductService struct {
	products  []models.Product
	listErr   error
	created   *models.Product
	createErr error

	createCalled int
	lastName     string
	lastPrice    string
	lastCategory string
	lastImage    *multipart.FileHeader

	deleteErr error
	deletedID string
}

func (f *fakeProductService) List(ctx context.Context) ([]models.Product, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.products, nil
}

func (f *fakeProductService) Create(ctx context.Context, name, price, category string, image *multipart.FileHeader) (*models.Product, error) {
	f.createCalled++
	f.lastName, f.lastPrice, f.lastCategory, f.lastImage = name, price, category, image
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeProductService) Delete(ctx context.Context, id string) error {
	f.deletedID = id
	return f.deleteErr
}

func newProductRouter(svc *fakeProductService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewProductController(svc)
	r := gin.New()
	r.GET("/api/products", controller.GetProducts)
	r.POST("/api/products", controller.CreateProduct)
	r.DELETE("/api/products/:id", controller.DeleteProduct)
	r.GET("/api/health", controller.HealthCheck)
	return r
}

func newMultipartRequest(t *testing.T, fields map[string]string, filename string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if filename != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, filename))
		header.Set("Content-Type", "image/png")
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("png bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/products", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestGetProducts(t *testing.T) {
	svc := &fakeProductService{products: []models.Product{
		{ID: primitive.NewObjectID(), Name: "Sky Rocket", Price: 149.99, ImageType: models.ImageTypeBase64, CreatedAt: time.Now()},
		{ID: primitive.NewObjectID(), Name: "Sparkler", Price: 20, ImageType: models.ImageTypeBase64, CreatedAt: time.Now().Add(-time.Hour)},
	}}
	router := newProductRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Sky Rocket")
	assert.Contains(t, recorder.Body.String(), "Sparkler")
}

func TestGetProductsStoreError(t *testing.T) {
	svc := &fakeProductService{listErr: errors.New("server selection timeout")}
	router := newProductRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Error fetching products")
	assert.Contains(t, recorder.Body.String(), "server selection timeout")
}

func TestCreateProduct(t *testing.T) {
	created := &models.Product{
		ID:        primitive.NewObjectID(),
		Name:      "Sky Rocket",
		Price:     149.99,
		Image:     "data:image/png;base64,cG5n",
		ImageType: models.ImageTypeBase64,
		Category:  models.DefaultCategory,
		CreatedAt: time.Now(),
	}
	svc := &fakeProductService{created: created}
	router := newProductRouter(svc)

	req := newMultipartRequest(t, map[string]string{"name": "Sky Rocket", "price": "149.99"}, "rocket.png")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Product added successfully")
	assert.Equal(t, 1, svc.createCalled)
	assert.Equal(t, "Sky Rocket", svc.lastName)
	assert.Equal(t, "149.99", svc.lastPrice)
	require.NotNil(t, svc.lastImage)
	assert.Equal(t, "rocket.png", svc.lastImage.Filename)
}

func TestCreateProductMissingFields(t *testing.T) {
	svc := &fakeProductService{createErr: models.ErrMissingFields}
	router := newProductRouter(svc)

	// No image part at all.
	req := newMultipartRequest(t, map[string]string{"name": "Sky Rocket", "price": "149.99"}, "")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "All fields are required")
	assert.Nil(t, svc.lastImage)
}

func TestCreateProductInvalidPrice(t *testing.T) {
	svc := &fakeProductService{createErr: models.ErrInvalidPrice}
	router := newProductRouter(svc)

	req := newMultipartRequest(t, map[string]string{"name": "Sky Rocket", "price": "-1"}, "rocket.png")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "non-negative")
}

func TestCreateProductUnsupportedImage(t *testing.T) {
	svc := &fakeProductService{createErr: models.ErrUnsupportedImage}
	router := newProductRouter(svc)

	req := newMultipartRequest(t, map[string]string{"name": "Sky Rocket", "price": "10"}, "notes.txt")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Only image files are allowed")
}

func TestCreateProductImageTooLarge(t *testing.T) {
	svc := &fakeProductService{createErr: models.ErrImageTooLarge}
	router := newProductRouter(svc)

	req := newMultipartRequest(t, map[string]string{"name": "Sky Rocket", "price": "10"}, "huge.png")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
}

func TestCreateProductStoreError(t *testing.T) {
	svc := &fakeProductService{createErr: errors.New("write concern failed")}
	router := newProductRouter(svc)

	req := newMultipartRequest(t, map[string]string{"name": "Sky Rocket", "price": "10"}, "rocket.png")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Error adding product")
}

func TestDeleteProduct(t *testing.T) {
	svc := &fakeProductService{}
	router := newProductRouter(svc)

	id := primitive.NewObjectID().Hex()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/products/"+id, nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Product deleted successfully")
	assert.Equal(t, id, svc.deletedID)
}

func TestDeleteProductNotFound(t *testing.T) {
	svc := &fakeProductService{deleteErr: models.ErrProductNotFound}
	router := newProductRouter(svc)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/api/products/"+primitive.NewObjectID().Hex(), nil))

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Product not found")
}

func TestHealthCheck(t *testing.T) {
	router := newProductRouter(&fakeProductService{})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Server is running")
}
