package catalogrepo

import "gorm.io/gorm"

// nameSearchVector must match the expression of the GIN index so the planner
// can use it.
const nameSearchVector = "to_tsvector('simple', name)"

// Migrate creates the catalog tables and the name search index.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&CategoryDTO{}, &FoodItemDTO{}); err != nil {
		return err
	}
	return db.Exec("CREATE INDEX IF NOT EXISTS idx_food_items_name_search ON food_items USING GIN (" +
		nameSearchVector + ")").Error
}
