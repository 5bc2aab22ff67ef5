package dashboard

import (
	"context"
	"errors"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"foodadmin/internal/models"
)

var (
	ErrUnknownStatus = errors.New("unknown status value")
	ErrNotConfirmed  = errors.New("delete not confirmed")
)

// Backend is the document-store capability the console needs: one filtered
// query, one single-field patch, one delete.
type Backend interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
	PatchOrderStatus(ctx context.Context, id primitive.ObjectID, status models.Status) error
	DeleteOrder(ctx context.Context, id primitive.ObjectID) error
}

// Store holds the loaded order sequence. It is a cache of backend state:
// populated once by Load, then mutated locally to mirror each successful
// backend write. External edits are not observed until the next Load.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	orders  []models.Order
}

func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// Load replaces the sequence wholesale with one query result. On error the
// store keeps whatever it had (empty on first call); the caller logs and
// moves on.
func (s *Store) Load(ctx context.Context) error {
	orders, err := s.backend.FetchOrders(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return nil
}

// Orders returns a copy of the current sequence.
func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Filtered returns the subset matching the given filter.
func (s *Store) Filtered(f Filter) []models.Order {
	return f.Apply(s.Orders())
}

// ChangeStatus patches the order's status in the backend and, only after the
// patch succeeds, sets that one field on the matching local record. On any
// backend error the local sequence is untouched. The returned dialog is
// empty for the pending transition.
func (s *Store) ChangeStatus(ctx context.Context, id primitive.ObjectID, status models.Status) (Dialog, error) {
	if !status.Known() {
		return Dialog{}, ErrUnknownStatus
	}

	if err := s.backend.PatchOrderStatus(ctx, id, status); err != nil {
		return Dialog{}, err
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	dialog, _ := StatusDialog(status)
	return dialog, nil
}

// Delete removes the order from the backend and then from the local
// sequence. Without confirmation it performs no backend call and no local
// change at all.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID, confirmed bool) (Dialog, error) {
	if !confirmed {
		return Dialog{}, ErrNotConfirmed
	}

	if err := s.backend.DeleteOrder(ctx, id); err != nil {
		return Dialog{}, err
	}

	s.mu.Lock()
	kept := s.orders[:0]
	for _, o := range s.orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	s.orders = kept
	s.mu.Unlock()

	return DeleteSuccessDialog, nil
}
