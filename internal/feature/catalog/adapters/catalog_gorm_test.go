package adapters

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/feature/catalog/domain/entity"
	"shop_backend/internal/feature/catalog/usecase"
	"shop_backend/internal/platform/db/dbtest"
	"shop_backend/internal/platform/pagination"
)

type fixture struct {
	countries  *countryRepository
	categories *categoryRepository
	brands     *brandRepository
	products   *productRepository
	links      *categoryBrandRepository
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gdb := dbtest.New(t)
	return fixture{
		countries:  NewCountryRepository(gdb),
		categories: NewCategoryRepository(gdb),
		brands:     NewBrandRepository(gdb),
		products:   NewProductRepository(gdb),
		links:      NewCategoryBrandRepository(gdb),
	}
}

// seed creates Colombia, Sports, and a brand Acme from Colombia with one product.
func (f fixture) seed(t *testing.T) (*entity.Country, *entity.Category, *entity.Brand, *entity.Product) {
	t.Helper()
	ctx := context.Background()

	country := &entity.Country{Name: "Colombia"}
	require.NoError(t, f.countries.Create(ctx, country))
	category := &entity.Category{Name: "Sports"}
	require.NoError(t, f.categories.Create(ctx, category))
	brand := &entity.Brand{Name: "Acme", CountryID: country.ID}
	require.NoError(t, f.brands.Create(ctx, brand))
	product := &entity.Product{
		Name:       "Ball",
		Price:      decimal.RequireFromString("12.50"),
		CategoryID: category.ID,
		BrandID:    brand.ID,
		Stock:      4,
	}
	require.NoError(t, f.products.Create(ctx, product))
	return country, category, brand, product
}

func TestCountryRepository_CRUD(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	c := &entity.Country{Name: "Peru"}
	require.NoError(t, f.countries.Create(ctx, c))

	got, err := f.countries.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Peru", got.Name)

	require.NoError(t, f.countries.Update(ctx, &entity.Country{ID: c.ID, Name: "Perú"}))
	got, err = f.countries.FindByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Perú", got.Name)

	assert.ErrorIs(t, f.countries.Update(ctx, &entity.Country{ID: 999, Name: "Nowhere"}), usecase.ErrCountryNotFound)

	require.NoError(t, f.countries.Delete(ctx, c.ID))
	_, err = f.countries.FindByID(ctx, c.ID)
	assert.ErrorIs(t, err, usecase.ErrCountryNotFound)
	assert.ErrorIs(t, f.countries.Delete(ctx, c.ID), usecase.ErrCountryNotFound)
}

func TestCountryRepository_DeleteRestrictedByBrand(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	country, _, brand, _ := f.seed(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.countries.Delete(ctx, country.ID), usecase.ErrCountryInUse)

	// Removing the brand releases the country.
	require.NoError(t, f.brands.Delete(ctx, brand.ID))
	assert.NoError(t, f.countries.Delete(ctx, country.ID))
}

func TestBrandRepository_DeleteCascadesToProducts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, category, brand, product := f.seed(t)
	ctx := context.Background()

	require.NoError(t, f.links.Create(ctx, &entity.CategoryBrand{CategoryID: category.ID, BrandID: brand.ID}))

	require.NoError(t, f.brands.Delete(ctx, brand.ID))

	_, err := f.products.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)

	links, err := f.links.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)
}

func TestCategoryRepository_DeleteCascadesToProducts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, category, _, product := f.seed(t)
	ctx := context.Background()

	require.NoError(t, f.categories.Delete(ctx, category.ID))

	_, err := f.products.FindByID(ctx, product.ID)
	assert.ErrorIs(t, err, usecase.ErrProductNotFound)
}

func TestBrandRepository_FindLoadsCountry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, _, brand, _ := f.seed(t)

	got, err := f.brands.FindByID(context.Background(), brand.ID)
	require.NoError(t, err)
	assert.Equal(t, "Colombia", got.CountryName())
}

func TestBrandRepository_NameExists(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, _, brand, _ := f.seed(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		input     string
		excludeID uint
		want      bool
	}{
		{name: "same case", input: "Acme", want: true},
		{name: "different case and padding", input: "  aCME ", want: true},
		{name: "own brand excluded", input: "ACME", excludeID: brand.ID, want: false},
		{name: "unused name", input: "Globex", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.brands.NameExists(ctx, tt.input, tt.excludeID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBrandRepository_NameUniqueIgnoringCase(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	country, _, brand, _ := f.seed(t)
	ctx := context.Background()

	err := f.brands.Create(ctx, &entity.Brand{Name: "acme", CountryID: country.ID})
	assert.ErrorIs(t, err, usecase.ErrBrandNameTaken)

	other := &entity.Brand{Name: "Globex", CountryID: country.ID}
	require.NoError(t, f.brands.Create(ctx, other))
	other.Name = "ACME"
	assert.ErrorIs(t, f.brands.Update(ctx, other), usecase.ErrBrandNameTaken)

	brand.Name = "ACME"
	assert.NoError(t, f.brands.Update(ctx, brand))
}

func TestBrandRepository_CreateWithMissingCountry(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	err := f.brands.Create(context.Background(), &entity.Brand{Name: "Orphan", CountryID: 42})
	assert.ErrorIs(t, err, usecase.ErrCountryNotFound)
}

func TestProductRepository_RoundTrip(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, category, brand, product := f.seed(t)
	ctx := context.Background()

	got, err := f.products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ball", got.Name)
	assert.True(t, decimal.RequireFromString("12.50").Equal(got.Price))
	assert.Equal(t, category.ID, got.CategoryID)
	assert.Equal(t, "Sports", got.Category.Name)
	assert.Equal(t, brand.ID, got.BrandID)
	assert.Equal(t, "Acme", got.Brand.Name)
	assert.Equal(t, 4, got.Stock)

	// Zero values are written on update.
	update := &entity.Product{
		ID:         product.ID,
		Name:       "Ball v2",
		Price:      decimal.RequireFromString("20.00"),
		CategoryID: category.ID,
		BrandID:    brand.ID,
		Stock:      0,
	}
	require.NoError(t, f.products.Update(ctx, update))
	got, err = f.products.FindByID(ctx, product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ball v2", got.Name)
	assert.Equal(t, 0, got.Stock)
	assert.True(t, decimal.RequireFromString("20").Equal(got.Price))
}

func TestProductRepository_ListPage(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	_, category, brand, _ := f.seed(t)
	ctx := context.Background()

	for _, name := range []string{"Racket", "Basketball", "Net"} {
		require.NoError(t, f.products.Create(ctx, &entity.Product{
			Name: name, Price: decimal.NewFromInt(5), CategoryID: category.ID, BrandID: brand.ID,
		}))
	}

	page, err := f.products.ListPage(ctx, pagination.Params{Page: 1, Size: 10, Filter: "BALL"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Ball", page.Items[0].Name)
	assert.Equal(t, "Basketball", page.Items[1].Name)
	assert.Equal(t, "Acme", page.Items[1].Brand.Name)

	page, err = f.products.ListPage(ctx, pagination.Params{Page: 2, Size: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 4, page.Total)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.TotalPages())
}

func TestCategoryBrandRepository(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	country, category, brand, _ := f.seed(t)
	ctx := context.Background()

	other := &entity.Category{Name: "Outdoor"}
	require.NoError(t, f.categories.Create(ctx, other))
	second := &entity.Brand{Name: "Globex", CountryID: country.ID}
	require.NoError(t, f.brands.Create(ctx, second))

	link := &entity.CategoryBrand{CategoryID: category.ID, BrandID: brand.ID}
	require.NoError(t, f.links.Create(ctx, link))
	require.NoError(t, f.links.Create(ctx, &entity.CategoryBrand{CategoryID: other.ID, BrandID: brand.ID}))
	require.NoError(t, f.links.Create(ctx, &entity.CategoryBrand{CategoryID: category.ID, BrandID: second.ID}))

	err := f.links.Create(ctx, &entity.CategoryBrand{CategoryID: category.ID, BrandID: brand.ID})
	assert.ErrorIs(t, err, usecase.ErrCategoryBrandExists)

	got, err := f.links.FindByID(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sports", got.Category.Name)
	assert.Equal(t, "Acme", got.Brand.Name)

	brands, err := f.links.BrandsByCategory(ctx, category.ID)
	require.NoError(t, err)
	require.Len(t, brands, 2)
	assert.Equal(t, "Acme", brands[0].Name)
	assert.Equal(t, "Colombia", brands[0].CountryName())
	assert.Equal(t, "Globex", brands[1].Name)

	categories, err := f.links.CategoriesByBrand(ctx, brand.ID)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Sports", categories[0].Name)
	assert.Equal(t, "Outdoor", categories[1].Name)

	require.NoError(t, f.links.Delete(ctx, link.ID))
	_, err = f.links.FindByID(ctx, link.ID)
	assert.ErrorIs(t, err, usecase.ErrCategoryBrandNotFound)
}
