// Package models defines the two managed resource records and their field
// descriptors for the generic table controller.
package models

import (
	"github.com/MoulikGL/basiccrudapp-admin/internal/client/table"
)

// User is one row of the user management screen.
type User struct {
	ID          int64  `json:"id"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Address     string `json:"address"`
	Company     string `json:"company"`
}

func (u User) RecordID() int64 { return u.ID }

// UserDescriptor parameterizes the table controller for the user
// collection. Full name and email are required; a user record is owned by
// the user it describes.
func UserDescriptor() table.Descriptor[User] {
	return table.Descriptor[User]{
		Resource: "user",
		Fields: []table.Field[User]{
			{
				Name:     "fullName",
				Required: true,
				Get:      func(u *User) string { return u.FullName },
				Set:      func(u *User, v string) error { u.FullName = v; return nil },
			},
			{
				Name:     "email",
				Required: true,
				Get:      func(u *User) string { return u.Email },
				Set:      func(u *User, v string) error { u.Email = v; return nil },
			},
			{
				Name: "phoneNumber",
				Get:  func(u *User) string { return u.PhoneNumber },
				Set:  func(u *User, v string) error { u.PhoneNumber = v; return nil },
			},
			{
				Name: "address",
				Get:  func(u *User) string { return u.Address },
				Set:  func(u *User, v string) error { u.Address = v; return nil },
			},
			{
				Name: "company",
				Get:  func(u *User) string { return u.Company },
				Set:  func(u *User, v string) error { u.Company = v; return nil },
			},
		},
		OwnerID: func(u *User) (int64, bool) { return u.ID, true },
	}
}
