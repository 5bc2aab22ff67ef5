package importer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func sourceServer(t *testing.T, foodsStatus, chefsStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/foods", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(foodsStatus)
		if foodsStatus == http.StatusOK {
			w.Write([]byte(`[{"name":"Pizza","price":12,"tags":["cheese"]}]`))
		}
	})
	mux.HandleFunc("/api/chefs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(chefsStatus)
		if chefsStatus == http.StatusOK {
			w.Write([]byte(`[{"name":"Gordon","experience":20}]`))
		}
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestFetchAllReturnsBothCollections(t *testing.T) {
	server := sourceServer(t, http.StatusOK, http.StatusOK)
	client := NewSourceClient(server.URL)

	foods, chefs, err := client.FetchAll(context.Background())
	if err != nil {
		t.Fatalf("FetchAll returned error: %v", err)
	}
	if len(foods) != 1 || foods[0].Name != "Pizza" {
		t.Fatalf("unexpected foods: %+v", foods)
	}
	if len(chefs) != 1 || chefs[0].Name != "Gordon" {
		t.Fatalf("unexpected chefs: %+v", chefs)
	}
	if chefs[0].Experience == nil || *chefs[0].Experience != 20 {
		t.Fatalf("experience not decoded: %+v", chefs[0])
	}
}

func TestFetchAllFailsWhenEitherCollectionFails(t *testing.T) {
	server := sourceServer(t, http.StatusOK, http.StatusInternalServerError)
	client := NewSourceClient(server.URL)

	_, _, err := client.FetchAll(context.Background())
	if err == nil {
		t.Fatal("expected error when one fetch fails")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
}
