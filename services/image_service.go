package services

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/Asahu22/E-commerce/models"
)

// MaxImageSize is the upload ceiling. Images are buffered fully in memory
// and stored inline with the record, so the ceiling bounds both.
const MaxImageSize = 5 << 20

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ImageService turns an uploaded file into a self-contained data URI.
type ImageService struct{}

func NewImageService() *ImageService {
	return &ImageService{}
}

// Ingest validates the upload and encodes it as data:<mime>;base64,<payload>.
// The declared content type and the filename extension must both be on the
// allow-list, and the file must not exceed MaxImageSize.
func (s *ImageService) Ingest(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxImageSize {
		return "", models.ErrImageTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		contentType = mediaType
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))

	if !allowedImageMIMEs[contentType] || !allowedImageExts[ext] {
		return "", models.ErrUnsupportedImage
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	// Size was checked above, but the header is client-supplied; the
	// limit guards the actual read as well.
	data, err := io.ReadAll(io.LimitReader(file, MaxImageSize+1))
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if len(data) > MaxImageSize {
		return "", models.ErrImageTooLarge
	}

	encoded := base64.StdEncoding.EncodeToString(data)
	return fmt.Sprintf("data:%s;base64,%s", contentType, encoded), nil
}
