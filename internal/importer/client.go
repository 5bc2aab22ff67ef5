package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"
)

// APIError is a non-2xx answer from the import source.
type APIError struct {
	Status string
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("import source error: %s", e.Status)
	}
	return fmt.Sprintf("import source error: %s: %s", e.Status, e.Body)
}

// SourceFood is one record of the remote foods collection. Optional fields
// stay pointers so absent and zero can be told apart when defaulting.
type SourceFood struct {
	Name          string   `json:"name"`
	Category      *string  `json:"category"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice"`
	Tags          []string `json:"tags"`
	Description   string   `json:"description"`
	Available     *bool    `json:"available"`
	Image         string   `json:"image"`
}

// SourceChef is one record of the remote chefs collection.
type SourceChef struct {
	Name        string  `json:"name"`
	Position    *string `json:"position"`
	Experience  *int    `json:"experience"`
	Specialty   string  `json:"specialty"`
	Description string  `json:"description"`
	Available   *bool   `json:"available"`
	Image       string  `json:"image"`
}

// SourceClient fetches the two remote collections. No retries: a failed run
// is rerun whole.
type SourceClient struct {
	http *resty.Client
}

func NewSourceClient(baseURL string) *SourceClient {
	return &SourceClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second),
	}
}

func (c *SourceClient) FetchFoods(ctx context.Context) ([]SourceFood, error) {
	var foods []SourceFood
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&foods).
		Get("/api/foods")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.Status(), Body: string(resp.Body())}
	}
	return foods, nil
}

func (c *SourceClient) FetchChefs(ctx context.Context) ([]SourceChef, error) {
	var chefs []SourceChef
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&chefs).
		Get("/api/chefs")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, &APIError{Status: resp.Status(), Body: string(resp.Body())}
	}
	return chefs, nil
}

// FetchAll runs the two collection fetches in parallel and waits for both.
// This is the only concurrency in the import; processing afterwards is
// strictly sequential.
func (c *SourceClient) FetchAll(ctx context.Context) ([]SourceFood, []SourceChef, error) {
	var (
		foods []SourceFood
		chefs []SourceChef
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		foods, err = c.FetchFoods(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		chefs, err = c.FetchChefs(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return foods, chefs, nil
}
