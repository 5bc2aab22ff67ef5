package backend

import (
	"context"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The client connects lazily, so Ping is what actually proves the backend is
// reachable at startup. An unreachable address must surface as an error
// instead of hanging.
func TestPingReportsUnreachableBackend(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI("mongodb://127.0.0.1:1").
		SetConnectTimeout(100*time.Millisecond).
		SetServerSelectionTimeout(100*time.Millisecond))
	if err != nil {
		t.Fatalf("Connect returned error before any I/O: %v", err)
	}
	defer client.Disconnect(context.Background())

	m := NewMongo(client.Database("orders_test"))

	start := time.Now()
	if err := m.Ping(ctx); err == nil {
		t.Fatal("expected Ping to fail against an unreachable backend")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("Ping did not respect its timeout, took %v", elapsed)
	}
}
