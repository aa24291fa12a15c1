package catalog_test

import (
	"testing"

	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestApplyBusinessGuards(t *testing.T) {
	tests := []struct {
		name      string
		course    catalog.Course
		price     string
		available bool
		want      bool
	}{
		{"expensive beverage is hidden", catalog.CourseBeverage, "120", true, false},
		{"beverage at the limit stays", catalog.CourseBeverage, "100", true, true},
		{"cheap beverage stays", catalog.CourseBeverage, "2.50", true, true},
		{"expensive main course stays", catalog.CourseMainCourse, "500", true, true},
		{"unavailable stays unavailable", catalog.CourseBeverage, "5", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := catalog.FoodItemParams{
				Name:        "Cola",
				Course:      tt.course,
				Price:       kernel.MustMoney(tt.price),
				IsAvailable: tt.available,
			}

			out := catalog.ApplyBusinessGuards(in)

			assert.Equal(t, tt.want, out.IsAvailable)
			assert.Equal(t, in.Name, out.Name)
			assert.True(t, in.IsAvailable == tt.available, "input must not be mutated")
		})
	}
}
