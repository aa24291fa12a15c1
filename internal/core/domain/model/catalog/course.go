package catalog

import (
	"fmt"

	"dishly/internal/pkg/errs"
)

// Course is the fixed classification of a food item.
type Course int

const (
	// CourseUnknown catches uninitialized values.
	CourseUnknown Course = iota
	CourseAppetizer
	CourseMainCourse
	CourseDessert
	CourseBeverage
	CourseSideDish
	CourseComboMeal
)

func getCourseStrings() map[Course]string {
	//nolint:exhaustive // CourseUnknown is intentionally excluded as it's invalid
	return map[Course]string{
		CourseAppetizer:  "appetizer",
		CourseMainCourse: "main course",
		CourseDessert:    "dessert",
		CourseBeverage:   "beverage",
		CourseSideDish:   "side dish",
		CourseComboMeal:  "combo meal",
	}
}

// ParseCourse maps a wire value such as "main course" to a Course.
func ParseCourse(s string) (Course, error) {
	for c, str := range getCourseStrings() {
		if str == s {
			return c, nil
		}
	}
	return CourseUnknown, errs.NewValueIsInvalidErrorWithCause("course", fmt.Errorf("%q is not a valid course", s))
}

// Validate rejects CourseUnknown and out-of-range values.
func (c Course) Validate() error {
	if _, ok := getCourseStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("course", fmt.Errorf("%d is not a valid course", c))
	}
	return nil
}

func (c Course) String() string {
	if str, ok := getCourseStrings()[c]; ok {
		return str
	}
	return "unknown"
}
