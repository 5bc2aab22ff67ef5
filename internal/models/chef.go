package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Chef is a staff profile document, created by the bulk importer.
type Chef struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Position    *string            `bson:"position" json:"position"`
	Experience  int                `bson:"experience" json:"experience"`
	Specialty   string             `bson:"specialty" json:"specialty"`
	Description string             `bson:"description" json:"description"`
	Available   bool               `bson:"available" json:"available"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
