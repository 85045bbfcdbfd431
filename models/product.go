package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Image storage modes. Legacy records reference a file under /uploads
// ("url"); everything created today embeds the image as a data URI
// ("base64"), so there is no filesystem dependency on the write path.
const (
	ImageTypeURL    = "url"
	ImageTypeBase64 = "base64"
)

const DefaultCategory = "Uncategorized"

type Product struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Price     float64            `json:"price" bson:"price"`
	Image     string             `json:"image" bson:"image"`
	ImageType string             `json:"imageType" bson:"imageType"`
	Category  string             `json:"category" bson:"category"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}
