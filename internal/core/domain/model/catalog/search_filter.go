package catalog

import (
	"errors"
	"strings"
	"unicode/utf8"

	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"
)

const searchTextMaxLength = 100

// SearchFilter selects dishes whose name contains every word of Text. An
// empty Text matches every dish. Results are ordered by popularity.
type SearchFilter struct {
	Text          string
	VendorID      *kernel.UUID
	CategoryID    *kernel.UUID
	AvailableOnly bool
	Limit         int
}

func (f SearchFilter) Validate() error {
	var errList []error
	if n := utf8.RuneCountInString(strings.TrimSpace(f.Text)); n > searchTextMaxLength {
		errList = append(errList, errs.NewValueIsOutOfRangeError("q", n, 0, searchTextMaxLength))
	}
	if f.VendorID != nil {
		errList = append(errList, f.VendorID.Validate())
	}
	if f.CategoryID != nil {
		errList = append(errList, f.CategoryID.Validate())
	}
	if f.Limit < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", f.Limit, 1, "∞"))
	}
	return errors.Join(errList...)
}
