package table

import (
	"fmt"
	"strings"

	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
)

// Record is any resource row keyed by a server-assigned numeric id.
type Record interface {
	RecordID() int64
}

// Field describes one editable column of a record: how to read it for
// display, and how to write a raw user-entered value back into a draft copy.
type Field[T any] struct {
	// Name is the wire/display name of the field ("fullName", "price").
	Name string
	// Required marks fields that must be non-empty (non-null) on save.
	Required bool
	Get      func(*T) string
	Set      func(*T, string) error
}

// Descriptor parameterizes the generic controller for one resource type.
type Descriptor[T Record] struct {
	// Resource is the collection path segment ("user", "product").
	Resource string
	Fields   []Field[T]
	// OwnerID reports which identity owns a record, when the notion exists
	// for the resource. Resources without per-record ownership return false,
	// leaving editing to admins only.
	OwnerID func(*T) (int64, bool)
}

func (d *Descriptor[T]) field(name string) *Field[T] {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}
	return nil
}

// apply overlays raw draft values onto a copy of base, field by field.
// Unknown field names are ignored; a value the field cannot parse is a
// validation error.
func (d *Descriptor[T]) apply(base T, draft map[string]string) (T, error) {
	rec := base
	for name, value := range draft {
		f := d.field(name)
		if f == nil {
			continue
		}
		if err := f.Set(&rec, value); err != nil {
			return rec, fmt.Errorf("%w: %s: %v", common.ErrValidation, name, err)
		}
	}
	return rec, nil
}

// validate checks that every required field of rec has a value.
func (d *Descriptor[T]) validate(rec T) error {
	for i := range d.Fields {
		f := &d.Fields[i]
		if f.Required && strings.TrimSpace(f.Get(&rec)) == "" {
			return fmt.Errorf("%w: %s is required", common.ErrValidation, f.Name)
		}
	}
	return nil
}
