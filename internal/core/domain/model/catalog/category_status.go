package catalog

import (
	"fmt"

	"dishly/internal/pkg/errs"
)

// CategoryStatus controls whether a category is shown to customers.
type CategoryStatus int

const (
	CategoryStatusUnknown CategoryStatus = iota
	CategoryActive
	CategoryInactive
	CategoryArchived
)

func getCategoryStatusStrings() map[CategoryStatus]string {
	//nolint:exhaustive // CategoryStatusUnknown is intentionally excluded as it's invalid
	return map[CategoryStatus]string{
		CategoryActive:   "active",
		CategoryInactive: "inactive",
		CategoryArchived: "archived",
	}
}

// ParseCategoryStatus maps "active", "inactive" or "archived" to a CategoryStatus.
func ParseCategoryStatus(s string) (CategoryStatus, error) {
	for st, str := range getCategoryStatusStrings() {
		if str == s {
			return st, nil
		}
	}
	return CategoryStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status", fmt.Errorf("%q is not a valid category status", s))
}

// Validate rejects CategoryStatusUnknown and out-of-range values.
func (s CategoryStatus) Validate() error {
	if _, ok := getCategoryStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid category status", s))
	}
	return nil
}

func (s CategoryStatus) String() string {
	if str, ok := getCategoryStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
