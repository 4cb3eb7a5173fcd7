package models

import (
	"fmt"
	"strconv"

	"github.com/MoulikGL/basiccrudapp-admin/internal/client/table"
)

// Product is one row of the product management screen. Price is nullable
// on the wire; ImageURL is an optional reference, never fetched.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	ImageURL    string   `json:"imageUrl,omitempty"`
}

func (p Product) RecordID() int64 { return p.ID }

// ProductDescriptor parameterizes the table controller for the product
// collection. Name and price are required; products carry no per-record
// owner, so editing falls to admins only.
func ProductDescriptor() table.Descriptor[Product] {
	return table.Descriptor[Product]{
		Resource: "product",
		Fields: []table.Field[Product]{
			{
				Name:     "name",
				Required: true,
				Get:      func(p *Product) string { return p.Name },
				Set:      func(p *Product, v string) error { p.Name = v; return nil },
			},
			{
				Name: "description",
				Get:  func(p *Product) string { return p.Description },
				Set:  func(p *Product, v string) error { p.Description = v; return nil },
			},
			{
				Name:     "price",
				Required: true,
				Get: func(p *Product) string {
					if p.Price == nil {
						return ""
					}
					return strconv.FormatFloat(*p.Price, 'f', -1, 64)
				},
				Set: func(p *Product, v string) error {
					if v == "" {
						p.Price = nil
						return nil
					}
					f, err := strconv.ParseFloat(v, 64)
					if err != nil {
						return fmt.Errorf("not a number")
					}
					p.Price = &f
					return nil
				},
			},
			{
				Name: "imageUrl",
				Get:  func(p *Product) string { return p.ImageURL },
				Set:  func(p *Product, v string) error { p.ImageURL = v; return nil },
			},
		},
		OwnerID: func(*Product) (int64, bool) { return 0, false },
	}
}
