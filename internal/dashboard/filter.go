package dashboard

import "foodadmin/internal/models"

// Filter is the status selector of the orders table. Four fixed values;
// adding a status requires a code change.
type Filter string

const (
	FilterAll      Filter = "All"
	FilterPending  Filter = Filter(models.StatusPending)
	FilterDispatch Filter = Filter(models.StatusDispatch)
	FilterSuccess  Filter = Filter(models.StatusSuccess)
)

// Filters lists the selector values in display order.
func Filters() []Filter {
	return []Filter{FilterAll, FilterPending, FilterDispatch, FilterSuccess}
}

// ParseFilter maps a query value to a filter, falling back to All for
// anything unrecognized.
func ParseFilter(value string) Filter {
	switch Filter(value) {
	case FilterPending, FilterDispatch, FilterSuccess:
		return Filter(value)
	default:
		return FilterAll
	}
}

// Apply derives the filtered subset. All passes the sequence through;
// otherwise only exact raw status matches are kept, so null-status orders
// match nothing but All.
func (f Filter) Apply(orders []models.Order) []models.Order {
	if f == FilterAll {
		return orders
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == models.Status(f) {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
