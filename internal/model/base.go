package model

import (
	"reflect"

	"cloud.google.com/go/civil"
)

// Base contains the audit envelope shared by all entities.
// A nil pointer means the value is unset.
type Base struct {
	ID                       *int64          `json:"id,omitempty"`
	DateCreation             *civil.Date     `json:"date_creation,omitempty"`
	DateDerniereModification *civil.DateTime `json:"date_derniere_modification,omitempty"`
	CreePar                  *string         `json:"cree_par,omitempty"`
	ModifiePar               *string         `json:"modifie_par,omitempty"`
}

// Entity is implemented by every type embedding Base.
type Entity interface {
	Envelope() *Base
}

// Envelope returns the audit envelope itself.
func (b *Base) Envelope() *Base {
	return b
}

// Equals reports whether two entities denote the same stored record.
// Entities without an identifier are only equal to themselves. A nil
// entity pointer is equal to nothing.
func (b *Base) Equals(other Entity) bool {
	if other == nil {
		return false
	}
	if v := reflect.ValueOf(other); v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	o := other.Envelope()
	if b == o {
		return true
	}
	if b == nil || o == nil || b.ID == nil || o.ID == nil {
		return false
	}
	return *b.ID == *o.ID
}

// Hash is consistent with Equals: the identifier, or 0 before persistence.
func (b *Base) Hash() int64 {
	if b == nil || b.ID == nil {
		return 0
	}
	return *b.ID
}

// Ref points at a related entity by identifier only. It is never a
// hydrated value; resolving it is a repository operation.
type Ref[T any] struct {
	ID int64 `json:"id"`
}

// RefTo builds a shallow reference to the entity identified by id.
func RefTo[T any](id int64) *Ref[T] {
	return &Ref[T]{ID: id}
}

// Int64 returns a pointer to v.
func Int64(v int64) *int64 { return &v }

// String returns a pointer to v.
func String(v string) *string { return &v }

// Float64 returns a pointer to v.
func Float64(v float64) *float64 { return &v }
