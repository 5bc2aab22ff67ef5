package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureOrderIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("orders").Indexes()

	statusIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("status_index"),
	}

	log.Println("EnsureOrderIndexes: creating status_index index")
	_, err := indexes.CreateOne(ctx, statusIndex)
	if err != nil {
		log.Println("EnsureOrderIndexes: status index error:", err)
		return err
	}
	log.Println("EnsureOrderIndexes: status_index index created")
	return nil
}

func EnsureFoodIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("foods").Indexes()

	nameIndex := mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetName("name_index"),
	}

	log.Println("EnsureFoodIndexes: creating name_index index")
	_, err := indexes.CreateOne(ctx, nameIndex)
	if err != nil {
		log.Println("EnsureFoodIndexes: name index error:", err)
		return err
	}
	log.Println("EnsureFoodIndexes: name_index index created")
	return nil
}
