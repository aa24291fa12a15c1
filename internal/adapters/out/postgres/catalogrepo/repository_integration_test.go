package catalogrepo_test

import (
	"context"
	"testing"
	"time"

	"dishly/internal/adapters/out/postgres/catalogrepo"
	"dishly/internal/core/domain/model/catalog"
	"dishly/internal/core/domain/model/kernel"
	"dishly/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type CatalogRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	categories *catalogrepo.GormCategoryRepository
	foodItems  *catalogrepo.GormFoodItemRepository
	now        time.Time
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(catalogrepo.Migrate(db))
}

func (suite *CatalogRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE food_items, categories").Error)

	suite.categories = catalogrepo.NewGormCategoryRepository(suite.db)
	suite.foodItems = catalogrepo.NewGormFoodItemRepository(suite.db)
	suite.now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogRepositoryIntegrationTestSuite) newCategory(name string) *catalog.Category {
	c, err := catalog.NewCategory(kernel.NewUUID(), catalog.CategoryParams{
		Name:        name,
		Description: "Things to drink",
		ImageURL:    "drinks.png",
		CreatedBy:   kernel.NewUUID(),
		Status:      catalog.CategoryActive,
		Tags:        []catalog.CategoryTag{catalog.TagPopular, catalog.TagLocal},
	}, suite.now)
	suite.Require().NoError(err)
	return c
}

func (suite *CatalogRepositoryIntegrationTestSuite) newFoodItem(categoryID *kernel.UUID, price string) *catalog.FoodItem {
	item, err := catalog.NewFoodItem(kernel.NewUUID(), catalog.FoodItemParams{
		Name:            "Cola",
		Description:     "Chilled",
		Price:           kernel.MustMoney(price),
		Course:          catalog.CourseBeverage,
		CategoryID:      categoryID,
		VendorID:        kernel.NewUUID(),
		PreparationTime: 5,
		IsAvailable:     true,
		ImageURL:        "https://cdn.example.com/cola.png",
		Ingredients:     []string{"water", "sugar"},
		DietaryTags:     []catalog.DietaryTag{catalog.DietVegan},
	}, suite.now)
	suite.Require().NoError(err)
	return item
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCategory_AddAndGet_RoundTrips() {
	ctx := context.Background()
	c := suite.newCategory("  sOFT drinks ")

	suite.Require().NoError(suite.categories.Add(ctx, c))

	stored, err := suite.categories.Get(ctx, c.ID())
	suite.Require().NoError(err)
	suite.Equal("Soft drinks", stored.Name())
	suite.Equal(catalog.CategoryActive, stored.Status())
	suite.Equal([]catalog.CategoryTag{catalog.TagPopular, catalog.TagLocal}, stored.Tags())
	suite.Equal(c.CreatedBy(), stored.CreatedBy())
	suite.True(suite.now.Equal(stored.CreatedAt()))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCategory_DuplicateName_ReturnsValidationError() {
	ctx := context.Background()
	suite.Require().NoError(suite.categories.Add(ctx, suite.newCategory("Drinks")))

	err := suite.categories.Add(ctx, suite.newCategory("DRINKS"))

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
	suite.True(errs.IsValidation(err))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCategory_GetMissing_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.categories.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.categories.GetForUpdate(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	err = suite.categories.Delete(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCategory_DeleteReferenced_ForeignKeyReportsReferentialIntegrity() {
	ctx := context.Background()
	c := suite.newCategory("Drinks")
	suite.Require().NoError(suite.categories.Add(ctx, c))
	categoryID := c.ID()
	suite.Require().NoError(suite.foodItems.Add(ctx, suite.newFoodItem(&categoryID, "2.50")))

	count, err := suite.foodItems.CountByCategory(ctx, categoryID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	err = suite.categories.Delete(ctx, categoryID)

	suite.Require().ErrorIs(err, errs.ErrReferentialIntegrity)
	_, err = suite.categories.Get(ctx, categoryID)
	suite.Require().NoError(err)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCategory_DeleteUnreferenced_Removes() {
	ctx := context.Background()
	c := suite.newCategory("Drinks")
	suite.Require().NoError(suite.categories.Add(ctx, c))

	suite.Require().NoError(suite.categories.Delete(ctx, c.ID()))

	_, err := suite.categories.Get(ctx, c.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestCategory_ShareLockHoldsOffDelete() {
	ctx := context.Background()
	c := suite.newCategory("Drinks")
	suite.Require().NoError(suite.categories.Add(ctx, c))
	categoryID := c.ID()

	tx := suite.db.Begin()
	_, err := catalogrepo.NewGormCategoryRepository(tx).GetForShare(ctx, categoryID)
	suite.Require().NoError(err)

	deleted := make(chan error, 1)
	go func() {
		deleted <- suite.db.Transaction(func(deleteTx *gorm.DB) error {
			if _, lockErr := catalogrepo.NewGormCategoryRepository(deleteTx).GetForUpdate(ctx, categoryID); lockErr != nil {
				return lockErr
			}
			return catalogrepo.NewGormCategoryRepository(deleteTx).Delete(ctx, categoryID)
		})
	}()

	select {
	case err = <-deleted:
		suite.FailNow("delete did not wait for the share lock", "%v", err)
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(catalogrepo.NewGormFoodItemRepository(tx).Add(ctx, suite.newFoodItem(&categoryID, "2.50")))
	suite.Require().NoError(tx.Commit().Error)

	suite.Require().ErrorIs(<-deleted, errs.ErrReferentialIntegrity)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFoodItem_AddGetUpdate_RoundTrips() {
	ctx := context.Background()
	item := suite.newFoodItem(nil, "120")
	suite.False(item.IsAvailable())
	suite.Require().NoError(suite.foodItems.Add(ctx, item))

	stored, err := suite.foodItems.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("120.00", stored.Price().String())
	suite.Equal(catalog.CourseBeverage, stored.Course())
	suite.False(stored.IsAvailable())
	suite.Nil(stored.CategoryID())
	suite.Equal([]string{"water", "sugar"}, stored.Ingredients())
	suite.Equal([]catalog.DietaryTag{catalog.DietVegan}, stored.DietaryTags())

	price := kernel.MustMoney("50")
	suite.Require().NoError(stored.Update(catalog.FoodItemPatch{Price: &price}, suite.now.Add(time.Hour)))
	suite.Require().NoError(stored.RaisePopularity(7))
	suite.Require().NoError(suite.foodItems.Update(ctx, stored))

	updated, err := suite.foodItems.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("50.00", updated.Price().String())
	suite.False(updated.IsAvailable())
	suite.Equal(7, updated.PopularityScore())
	suite.True(suite.now.Add(time.Hour).Equal(updated.UpdatedAt()))
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFoodItem_UpdatePopularity_KeepsConcurrentPriceChange() {
	ctx := context.Background()
	item := suite.newFoodItem(nil, "20")
	suite.Require().NoError(suite.foodItems.Add(ctx, item))

	stale, err := suite.foodItems.Get(ctx, item.ID())
	suite.Require().NoError(err)

	edited, err := suite.foodItems.Get(ctx, item.ID())
	suite.Require().NoError(err)
	price := kernel.MustMoney("15")
	suite.Require().NoError(edited.Update(catalog.FoodItemPatch{Price: &price}, suite.now.Add(time.Hour)))
	suite.Require().NoError(suite.foodItems.Update(ctx, edited))

	suite.Require().NoError(stale.RaisePopularity(9))
	suite.Require().NoError(suite.foodItems.UpdatePopularity(ctx, stale))

	stored, err := suite.foodItems.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal("15.00", stored.Price().String())
	suite.Equal(9, stored.PopularityScore())

	older, err := catalog.RestoreFoodItem(item.ID(), item.Params(), 3, item.CreatedAt(), item.UpdatedAt())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.foodItems.UpdatePopularity(ctx, older))

	stored, err = suite.foodItems.Get(ctx, item.ID())
	suite.Require().NoError(err)
	suite.Equal(9, stored.PopularityScore())

	err = suite.foodItems.UpdatePopularity(ctx, suite.newFoodItem(nil, "2.50"))
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFoodItem_GetForUpdate_SerializesWriters() {
	ctx := context.Background()
	item := suite.newFoodItem(nil, "20")
	suite.Require().NoError(suite.foodItems.Add(ctx, item))

	tx := suite.db.Begin()
	first, err := catalogrepo.NewGormFoodItemRepository(tx).GetForUpdate(ctx, item.ID())
	suite.Require().NoError(err)

	seen := make(chan string, 1)
	go func() {
		_ = suite.db.Transaction(func(otherTx *gorm.DB) error {
			second, lockErr := catalogrepo.NewGormFoodItemRepository(otherTx).GetForUpdate(ctx, item.ID())
			if lockErr != nil {
				seen <- lockErr.Error()
				return lockErr
			}
			seen <- second.Price().String()
			return nil
		})
	}()

	select {
	case got := <-seen:
		suite.FailNow("second writer did not wait for the row lock", got)
	case <-time.After(300 * time.Millisecond):
	}

	price := kernel.MustMoney("15")
	suite.Require().NoError(first.Update(catalog.FoodItemPatch{Price: &price}, suite.now.Add(time.Hour)))
	suite.Require().NoError(catalogrepo.NewGormFoodItemRepository(tx).Update(ctx, first))
	suite.Require().NoError(tx.Commit().Error)

	suite.Equal("15.00", <-seen)

	_, err = suite.foodItems.GetForUpdate(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFoodItem_MissingCategory_ReturnsNotFound() {
	missing := kernel.NewUUID()

	err := suite.foodItems.Add(context.Background(), suite.newFoodItem(&missing, "2.50"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFoodItem_UpdateMissing_ReturnsNotFound() {
	err := suite.foodItems.Update(context.Background(), suite.newFoodItem(nil, "2.50"))

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFoodItem_GetMany_SkipsMissingIDs() {
	ctx := context.Background()
	first := suite.newFoodItem(nil, "2.50")
	second := suite.newFoodItem(nil, "3.50")
	suite.Require().NoError(suite.foodItems.Add(ctx, first))
	suite.Require().NoError(suite.foodItems.Add(ctx, second))

	items, err := suite.foodItems.GetMany(ctx, []kernel.UUID{first.ID(), kernel.NewUUID(), second.ID()})

	suite.Require().NoError(err)
	suite.Len(items, 2)

	none, err := suite.foodItems.GetMany(ctx, nil)
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *CatalogRepositoryIntegrationTestSuite) TestFoodItem_Search_MatchesNameWordsMostPopularFirst() {
	ctx := context.Background()
	vendorID := kernel.NewUUID()
	add := func(name string, available bool, score int) *catalog.FoodItem {
		item, err := catalog.NewFoodItem(kernel.NewUUID(), catalog.FoodItemParams{
			Name:            name,
			Description:     "House special",
			Price:           kernel.MustMoney("12.50"),
			Course:          catalog.CourseMainCourse,
			VendorID:        vendorID,
			PreparationTime: 20,
			IsAvailable:     available,
			Ingredients:     []string{"rice"},
		}, suite.now)
		suite.Require().NoError(err)
		suite.Require().NoError(item.RaisePopularity(score))
		suite.Require().NoError(suite.foodItems.Add(ctx, item))
		return item
	}
	chicken := add("Green Curry Chicken", true, 3)
	tofu := add("Green Curry Tofu", true, 8)
	soldOut := add("Red Curry Duck", false, 5)
	add("Pad Thai", true, 9)

	found, err := suite.foodItems.Search(ctx, catalog.SearchFilter{Text: "curry GREEN", Limit: 10})
	suite.Require().NoError(err)
	suite.Require().Len(found, 2)
	suite.Equal(tofu.ID(), found[0].ID())
	suite.Equal(chicken.ID(), found[1].ID())
	suite.Equal("$12.50", found[0].FormattedPrice())

	found, err = suite.foodItems.Search(ctx, catalog.SearchFilter{Text: "curry", Limit: 10})
	suite.Require().NoError(err)
	suite.Len(found, 3)
	suite.Equal(soldOut.ID(), found[1].ID())

	found, err = suite.foodItems.Search(ctx, catalog.SearchFilter{Text: "curry", AvailableOnly: true, Limit: 1})
	suite.Require().NoError(err)
	suite.Require().Len(found, 1)
	suite.Equal(tofu.ID(), found[0].ID())

	otherVendor := kernel.NewUUID()
	found, err = suite.foodItems.Search(ctx, catalog.SearchFilter{VendorID: &otherVendor, Limit: 10})
	suite.Require().NoError(err)
	suite.Empty(found)

	_, err = suite.foodItems.Search(ctx, catalog.SearchFilter{Text: "curry"})
	suite.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
}

func TestCatalogRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryIntegrationTestSuite))
}
