package dashboard

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodadmin/internal/models"
)

func TestNextSelectionToggles(t *testing.T) {
	if got := NextSelection("", "a"); got != "a" {
		t.Fatalf("expected first click to select, got %q", got)
	}
	if got := NextSelection("a", "a"); got != "" {
		t.Fatalf("expected second click to collapse, got %q", got)
	}
	if got := NextSelection("a", "b"); got != "b" {
		t.Fatalf("expected click on another row to move selection, got %q", got)
	}
}

func TestBuildPageExpandsExactlyOneRow(t *testing.T) {
	a := models.Order{ID: primitive.NewObjectID(), Status: models.StatusPending}
	b := models.Order{ID: primitive.NewObjectID(), Status: models.StatusPending}

	page := BuildPage([]models.Order{a, b}, FilterAll, b.ID.Hex())

	expanded := 0
	for _, row := range page.Rows {
		if row.Selected {
			expanded++
			if row.IDHex != b.ID.Hex() {
				t.Fatalf("wrong row expanded: %s", row.IDHex)
			}
		}
	}
	if expanded != 1 {
		t.Fatalf("expected exactly one expanded row, got %d", expanded)
	}
}

func TestBuildPageToggleURLCollapsesExpandedRow(t *testing.T) {
	a := models.Order{ID: primitive.NewObjectID()}
	id := a.ID.Hex()

	page := BuildPage([]models.Order{a}, FilterPending, id)
	if got := page.Rows[0].ToggleURL; got != "/admin/dashboard?status=pending" {
		t.Fatalf("expected collapse URL keeping the filter, got %q", got)
	}

	page = BuildPage([]models.Order{a}, FilterAll, "")
	if got := page.Rows[0].ToggleURL; got != "/admin/dashboard?selected="+id {
		t.Fatalf("expected expand URL, got %q", got)
	}
}

func TestBuildPageDisplaysNullStatusAsPending(t *testing.T) {
	a := models.Order{ID: primitive.NewObjectID(), Status: ""}

	page := BuildPage([]models.Order{a}, FilterAll, "")
	if got := page.Rows[0].DisplayStatus; got != models.StatusPending {
		t.Fatalf("expected null status to display as pending, got %q", got)
	}
}

func TestBuildPageCartItemFallbacks(t *testing.T) {
	a := models.Order{
		ID: primitive.NewObjectID(),
		CartItems: []models.CartItem{
			{Name: "", Image: "deadbeefdeadbeefdeadbeef"},
			{Name: "Pizza"},
		},
	}

	page := BuildPage([]models.Order{a}, FilterAll, "")
	items := page.Rows[0].Items
	if items[0].Name != "Unnamed Product" {
		t.Fatalf("expected unnamed fallback, got %q", items[0].Name)
	}
	if items[0].ImageURL != "/assets/deadbeefdeadbeefdeadbeef" {
		t.Fatalf("unexpected image URL %q", items[0].ImageURL)
	}
	if items[1].ImageURL != "" {
		t.Fatalf("expected no image URL without a reference, got %q", items[1].ImageURL)
	}
}

func TestBuildPageFormatsParseableDatesOnly(t *testing.T) {
	a := models.Order{ID: primitive.NewObjectID(), OrderDate: "2024-03-09T10:30:00Z"}
	b := models.Order{ID: primitive.NewObjectID(), OrderDate: "next tuesday"}

	page := BuildPage([]models.Order{a, b}, FilterAll, "")
	if got := page.Rows[0].DisplayDate; got != "3/9/2024" {
		t.Fatalf("unexpected formatted date %q", got)
	}
	if got := page.Rows[1].DisplayDate; got != "next tuesday" {
		t.Fatalf("expected unparseable date verbatim, got %q", got)
	}
}
