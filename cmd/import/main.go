package main

import (
	"context"
	"log"

	"foodadmin/internal/assets"
	"foodadmin/internal/config"
	"foodadmin/internal/database"
	"foodadmin/internal/importer"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI, config.AppEnv.APIVersion, config.AppEnv.BackendToken)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	assetStore, err := assets.NewStore(db)
	if err != nil {
		log.Fatal(err)
	}

	imp := importer.New(importer.NewSourceClient(config.AppEnv.ImportBaseURL), assetStore, db)

	if err := imp.Run(context.Background()); err != nil {
		log.Fatal("Error importing data:", err)
	}
}
