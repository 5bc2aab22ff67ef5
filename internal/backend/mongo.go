package backend

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"foodadmin/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

const callTimeout = 5 * time.Second

// Mongo implements the dashboard's Backend capability against the hosted
// document store.
type Mongo struct {
	db *mongo.Database
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{db: db}
}

// Ping verifies the connection at startup.
func (m *Mongo) Ping(ctx context.Context) error {
	checkCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.db.Client().Ping(checkCtx, readpref.Primary())
}

// FetchOrders runs the one query the console needs: all order documents with
// their cart items dereferenced into {productName, image}. The projection
// field name must stay aligned with the CartItem bson tag.
func (m *Mongo) FetchOrders(ctx context.Context) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	pipeline := bson.A{
		bson.M{"$lookup": bson.M{
			"from":         "foods",
			"localField":   "cartItems",
			"foreignField": "_id",
			"as":           "cartItems",
			"pipeline": bson.A{
				bson.M{"$project": bson.M{
					"_id":         0,
					"productName": "$name",
					"image":       "$image",
				}},
			},
		}},
		bson.M{"$project": bson.M{
			"fullname":     1,
			"phone":        1,
			"email":        1,
			"address":      1,
			"region":       1,
			"area":         1,
			"streetnumber": 1,
			"total":        1,
			"discount":     1,
			"orderDate":    1,
			"status":       1,
			"cartItems":    1,
		}},
	}

	cursor, err := m.db.Collection("orders").Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// PatchOrderStatus stages the one-field change and applies it as a single
// atomic write.
func (m *Mongo) PatchOrderStatus(ctx context.Context, id primitive.ObjectID, status models.Status) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	res, err := m.db.Collection("orders").UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}

func (m *Mongo) DeleteOrder(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	res, err := m.db.Collection("orders").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrOrderNotFound
	}
	return nil
}
