package dashboard

import (
	"net/url"
	"time"

	"foodadmin/internal/assets"
	"foodadmin/internal/models"
)

// Page is everything the orders template needs for one render. Filter and
// selection live in the URL query, so both reset on navigation and are never
// persisted.
type Page struct {
	Filter   Filter
	Filters  []Filter
	Selected string
	Rows     []Row
}

// Row is one table row plus its expanded-detail state.
type Row struct {
	models.Order
	IDHex         string
	DisplayStatus models.Status
	DisplayDate   string
	Selected      bool
	ToggleURL     string
	Items         []ItemView
}

// ItemView is one cart entry ready for rendering.
type ItemView struct {
	Name     string
	ImageURL string
}

// NextSelection implements click-to-toggle: clicking the expanded row
// collapses it, clicking any other row expands that one instead.
func NextSelection(current, clicked string) string {
	if current == clicked {
		return ""
	}
	return clicked
}

// BuildPage derives the render model from the filtered sequence. Pure;
// recomputed on every request.
func BuildPage(orders []models.Order, filter Filter, selected string) Page {
	page := Page{
		Filter:   filter,
		Filters:  Filters(),
		Selected: selected,
		Rows:     make([]Row, 0, len(orders)),
	}

	for _, o := range orders {
		id := o.ID.Hex()
		row := Row{
			Order:         o,
			IDHex:         id,
			DisplayStatus: o.Status.Display(),
			DisplayDate:   displayDate(o.OrderDate),
			Selected:      id == selected,
			ToggleURL:     toggleURL(filter, selected, id),
		}
		for _, item := range o.CartItems {
			view := ItemView{Name: item.Name}
			if view.Name == "" {
				view.Name = "Unnamed Product"
			}
			if item.Image != "" {
				view.ImageURL = assets.URL(item.Image)
			}
			row.Items = append(row.Items, view)
		}
		page.Rows = append(page.Rows, row)
	}
	return page
}

func toggleURL(filter Filter, selected, id string) string {
	q := url.Values{}
	if filter != FilterAll {
		q.Set("status", string(filter))
	}
	if next := NextSelection(selected, id); next != "" {
		q.Set("selected", next)
	}
	if encoded := q.Encode(); encoded != "" {
		return "/admin/dashboard?" + encoded
	}
	return "/admin/dashboard"
}

// displayDate parses the stored order date for display only; anything
// unparseable is shown verbatim.
func displayDate(raw string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return raw
}
