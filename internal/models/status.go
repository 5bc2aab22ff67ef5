package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Status is the order lifecycle value as stored in the backend. Documents
// written before the status field existed carry null; those decode to the
// empty value and display as pending.
type Status string

const (
	StatusPending  Status = "pending"
	StatusDispatch Status = "dispatch"
	StatusSuccess  Status = "success"
)

// Known reports whether s is one of the three values the console can write.
func (s Status) Known() bool {
	switch s {
	case StatusPending, StatusDispatch, StatusSuccess:
		return true
	}
	return false
}

// Display maps the null/legacy empty value to pending for rendering and for
// the select control. Filtering compares the raw value, not this one.
func (s Status) Display() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

// UnmarshalBSONValue accepts both string and null BSON values, so legacy
// orders without a status can be decoded without failing the whole fetch.
func (s *Status) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	switch t {
	case bsontype.Null:
		*s = ""
		return nil
	case bsontype.String:
		var value string
		if err := bson.UnmarshalValue(t, data, &value); err != nil {
			return err
		}
		*s = Status(value)
		return nil
	default:
		return fmt.Errorf("cannot decode %s into Status", t)
	}
}

func (s Status) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(string(s))
}
