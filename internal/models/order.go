package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem is the dereferenced cart entry as projected by the order fetch.
// The projection emits productName; the console consumes it as name, so the
// bson and json tags here deliberately differ.
type CartItem struct {
	Name  string `bson:"productName" json:"name"`
	Image string `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is the persisted order document.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	FullName     string             `bson:"fullname" json:"fullname"`
	Phone        string             `bson:"phone" json:"phone"`
	Email        string             `bson:"email" json:"email"`
	Address      string             `bson:"address" json:"address"`
	Region       string             `bson:"region" json:"region"`
	Area         string             `bson:"area" json:"area"`
	StreetNumber string             `bson:"streetnumber" json:"streetnumber"`
	Total        float64            `bson:"total" json:"total"`
	Discount     float64            `bson:"discount" json:"discount"`
	OrderDate    string             `bson:"orderDate" json:"orderDate"`
	Status       Status             `bson:"status" json:"status"`
	CartItems    []CartItem         `bson:"cartItems,omitempty" json:"cartItems,omitempty"`
}
