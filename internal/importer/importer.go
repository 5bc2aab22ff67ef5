package importer

import (
	"bytes"
	"context"
	"log"
	"net/url"
	"path"
	"time"

	"github.com/go-resty/resty/v2"
	"go.mongodb.org/mongo-driver/mongo"

	"foodadmin/internal/assets"
	"foodadmin/internal/models"
)

// Importer copies the two remote collections into the backend: download the
// record's image if it has one, store it in the asset store, build the
// document, create it. One record at a time; the first error aborts the rest
// of the run.
type Importer struct {
	source *SourceClient
	images *resty.Client
	assets *assets.Store
	db     *mongo.Database
}

func New(source *SourceClient, assetStore *assets.Store, db *mongo.Database) *Importer {
	return &Importer{
		source: source,
		images: resty.New().SetTimeout(60 * time.Second),
		assets: assetStore,
		db:     db,
	}
}

func (imp *Importer) Run(ctx context.Context) error {
	log.Println("Fetching food, chef data from API...")

	foods, chefs, err := imp.source.FetchAll(ctx)
	if err != nil {
		return err
	}

	for _, food := range foods {
		log.Printf("Processing food: %s", food.Name)

		imageRef, err := imp.uploadImage(ctx, food.Image)
		if err != nil {
			return err
		}

		doc := FoodDocument(food, imageRef)
		log.Println("Uploading food:", doc.Name)
		res, err := imp.db.Collection("foods").InsertOne(ctx, doc)
		if err != nil {
			return err
		}
		log.Printf("Food uploaded successfully: %v", res.InsertedID)
	}

	for _, chef := range chefs {
		log.Printf("Processing chef: %s", chef.Name)

		imageRef, err := imp.uploadImage(ctx, chef.Image)
		if err != nil {
			return err
		}

		doc := ChefDocument(chef, imageRef)
		log.Println("Uploading chef:", doc.Name)
		res, err := imp.db.Collection("chefs").InsertOne(ctx, doc)
		if err != nil {
			return err
		}
		log.Printf("Chef uploaded successfully: %v", res.InsertedID)
	}

	log.Println("Data import completed successfully!")
	return nil
}

// uploadImage fetches the source image and stores it in the asset store,
// returning its reference. Records without an image get an empty reference.
func (imp *Importer) uploadImage(ctx context.Context, imageURL string) (string, error) {
	if imageURL == "" {
		return "", nil
	}

	resp, err := imp.images.R().SetContext(ctx).Get(imageURL)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", &APIError{Status: resp.Status()}
	}

	return imp.assets.Upload(ctx, imageFilename(imageURL), bytes.NewReader(resp.Body()))
}

func imageFilename(imageURL string) string {
	if u, err := url.Parse(imageURL); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(imageURL)
}

// FoodDocument applies the source record's defaulting rules: missing
// category and originalPrice stay null, tags default to an empty list,
// availability defaults to true.
func FoodDocument(food SourceFood, imageRef string) models.Food {
	doc := models.Food{
		Name:          food.Name,
		Category:      food.Category,
		Price:         food.Price,
		OriginalPrice: food.OriginalPrice,
		Tags:          food.Tags,
		Description:   food.Description,
		Available:     true,
		Image:         imageRef,
		CreatedAt:     time.Now(),
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}
	if food.Available != nil {
		doc.Available = *food.Available
	}
	return doc
}

// ChefDocument applies the chef defaulting rules: missing position stays
// null, experience defaults to 0, availability defaults to true.
func ChefDocument(chef SourceChef, imageRef string) models.Chef {
	doc := models.Chef{
		Name:        chef.Name,
		Position:    chef.Position,
		Specialty:   chef.Specialty,
		Description: chef.Description,
		Available:   true,
		Image:       imageRef,
		CreatedAt:   time.Now(),
	}
	if chef.Experience != nil {
		doc.Experience = *chef.Experience
	}
	if chef.Available != nil {
		doc.Available = *chef.Available
	}
	return doc
}
