package table

import (
	"strings"

	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
)

// validationMessage turns a wrapped validation error into the short text
// shown to the user ("fullName is required" rather than the full chain).
func validationMessage(err error) string {
	msg := err.Error()
	return strings.TrimPrefix(msg, common.ErrValidation.Error()+": ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
