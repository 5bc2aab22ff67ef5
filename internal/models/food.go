package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Food is a menu item document, created by the bulk importer and referenced
// by order cart items.
type Food struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"name" json:"name"`
	Category      *string            `bson:"category" json:"category"`
	Price         float64            `bson:"price" json:"price"`
	OriginalPrice *float64           `bson:"originalPrice" json:"originalPrice"`
	Tags          []string           `bson:"tags" json:"tags"`
	Description   string             `bson:"description" json:"description"`
	Available     bool               `bson:"available" json:"available"`
	Image         string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
