package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Connect builds the backend client from the configured connection values.
// Only stable API version "1" is supported; the token, when set, is applied
// as the connection credential unless the URI already carries one.
func Connect(uri, apiVersion, token string) (*mongo.Client, error) {
	if apiVersion != "1" {
		return nil, fmt.Errorf("unsupported API_VERSION %q", apiVersion)
	}

	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	if token != "" && !strings.Contains(uri, "@") {
		opts = opts.SetAuth(options.Credential{
			AuthMechanism: "PLAIN",
			Username:      "admin-console",
			Password:      token,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return mongo.Connect(ctx, opts)
}
