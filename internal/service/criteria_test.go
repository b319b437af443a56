package service

// Тесты нормализатора критериев (internal/service/criteria.go).
//
// Проверяем:
//  - разбиение ключевых слов по "+", "%20" и пробелам;
//  - пофилдовые правила (категория, координаты, радиус, partner, сортировки, page);
//  - взаимоисключение distanceSort/postedDateSort;
//  - кросс-филдовое правило «хотя бы один критерий» с отдельной ошибкой.

import (
	"testing"

	"github.com/steadypay/hustle-service/internal/models"
	"github.com/stretchr/testify/require"
)

// Ключевые слова режутся по "+", "%20" и пробельным последовательностям.
func TestParseSearchCriteria_KeywordSplitting(t *testing.T) {
	t.Parallel()

	cases := []struct {
		raw  string
		want []string
	}{
		{"dog+walker", []string{"dog", "walker"}},
		{"dog%20walker", []string{"dog", "walker"}},
		{"dog   walker", []string{"dog", "walker"}},
		{"dog+%20 walker", []string{"dog", "walker"}},
		{"driver", []string{"driver"}},
	}

	for _, tc := range cases {
		c, err := ParseSearchCriteria(RawSearchParams{Keyword: tc.raw})
		require.NoError(t, err, "keyword=%q", tc.raw)
		require.Equal(t, tc.want, c.Keywords, "keyword=%q", tc.raw)
	}
}

// Категория декодируется из "+"/"%20" и матчится строго по канону.
func TestParseSearchCriteria_Category(t *testing.T) {
	t.Parallel()

	c, err := ParseSearchCriteria(RawSearchParams{Category: "Pet+Care"})
	require.NoError(t, err)
	require.Equal(t, models.CategoryPetCare, c.Category)

	c, err = ParseSearchCriteria(RawSearchParams{Category: "Customer%20Service"})
	require.NoError(t, err)
	require.Equal(t, models.CategoryCustomerService, c.Category)

	_, err = ParseSearchCriteria(RawSearchParams{Category: "pet care"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	_, err = ParseSearchCriteria(RawSearchParams{Category: "Skydiving"})
	require.ErrorIs(t, err, ErrInvalidCriteria)
}

// Координаты: только парой и только десятичные числа со знаком.
func TestParseSearchCriteria_Coordinates(t *testing.T) {
	t.Parallel()

	c, err := ParseSearchCriteria(RawSearchParams{Lat: "-37.5", Long: "122.0"})
	require.NoError(t, err)
	require.Equal(t, "-37.5", c.Lat)
	require.Equal(t, "122.0", c.Long)
	require.True(t, c.HasLocation())

	_, err = ParseSearchCriteria(RawSearchParams{Lat: "37.5"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	_, err = ParseSearchCriteria(RawSearchParams{Long: "122.0", Keyword: "x"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	_, err = ParseSearchCriteria(RawSearchParams{Lat: "37.5N", Long: "122.0"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	_, err = ParseSearchCriteria(RawSearchParams{Lat: "37.5.1", Long: "122.0"})
	require.ErrorIs(t, err, ErrInvalidCriteria)
}

// Радиус: требует координат, положителен, дробное усекается к нулю.
func TestParseSearchCriteria_Radius(t *testing.T) {
	t.Parallel()

	c, err := ParseSearchCriteria(RawSearchParams{Lat: "1", Long: "2", Radius: "25"})
	require.NoError(t, err)
	require.Equal(t, 25, c.Radius)

	// "3.14159" -> 3: усечение зафиксировано как текущее поведение.
	c, err = ParseSearchCriteria(RawSearchParams{Lat: "1", Long: "2", Radius: "3.14159"})
	require.NoError(t, err)
	require.Equal(t, 3, c.Radius)

	_, err = ParseSearchCriteria(RawSearchParams{Keyword: "x", Radius: "25"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	for _, bad := range []string{"0", "-5", "0.4", "ten"} {
		_, err = ParseSearchCriteria(RawSearchParams{Lat: "1", Long: "2", Radius: bad})
		require.ErrorIs(t, err, ErrInvalidCriteria, "radius=%q", bad)
	}
}

// Partner: только известные провайдеры.
func TestParseSearchCriteria_Partner(t *testing.T) {
	t.Parallel()

	c, err := ParseSearchCriteria(RawSearchParams{Partner: "dave"})
	require.NoError(t, err)
	require.Equal(t, models.ProviderDave, c.Partner)

	_, err = ParseSearchCriteria(RawSearchParams{Partner: "indeed"})
	require.ErrorIs(t, err, ErrInvalidCriteria)
}

// Сортировки: asc/desc без учёта регистра; distanceSort требует координат;
// одновременные сортировки запрещены.
func TestParseSearchCriteria_Sorts(t *testing.T) {
	t.Parallel()

	c, err := ParseSearchCriteria(RawSearchParams{Keyword: "x", PostedDateSort: "DESC"})
	require.NoError(t, err)
	require.Equal(t, models.SortDesc, c.PostedDateSort)

	c, err = ParseSearchCriteria(RawSearchParams{Lat: "1", Long: "2", DistanceSort: "Asc"})
	require.NoError(t, err)
	require.Equal(t, models.SortAsc, c.DistanceSort)

	_, err = ParseSearchCriteria(RawSearchParams{Keyword: "x", PostedDateSort: "upward"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	_, err = ParseSearchCriteria(RawSearchParams{Keyword: "x", DistanceSort: "asc"})
	require.ErrorIs(t, err, ErrInvalidCriteria)

	_, err = ParseSearchCriteria(RawSearchParams{Lat: "1", Long: "2", DistanceSort: "asc", PostedDateSort: "desc"})
	require.ErrorIs(t, err, ErrInvalidCriteria)
}

// Page: целое >= 0; страница 0 — валидный явный запрос (PageSet).
func TestParseSearchCriteria_Page(t *testing.T) {
	t.Parallel()

	c, err := ParseSearchCriteria(RawSearchParams{Keyword: "x", Page: "0"})
	require.NoError(t, err)
	require.Equal(t, 0, c.Page)
	require.True(t, c.PageSet)

	c, err = ParseSearchCriteria(RawSearchParams{Keyword: "x"})
	require.NoError(t, err)
	require.False(t, c.PageSet)

	for _, bad := range []string{"-1", "two", "1.5"} {
		_, err = ParseSearchCriteria(RawSearchParams{Keyword: "x", Page: bad})
		require.ErrorIs(t, err, ErrInvalidCriteria, "page=%q", bad)
	}
}

// Пустые критерии отклоняются отдельной ошибкой, отличной от пофилдовой.
func TestParseSearchCriteria_AtLeastOneRequired(t *testing.T) {
	t.Parallel()

	_, err := ParseSearchCriteria(RawSearchParams{})
	require.ErrorIs(t, err, ErrEmptyCriteria)
	require.NotErrorIs(t, err, ErrInvalidCriteria)

	// Page сам по себе критерием не является.
	_, err = ParseSearchCriteria(RawSearchParams{Page: "2"})
	require.ErrorIs(t, err, ErrEmptyCriteria)

	// Любого одного критерия достаточно.
	for _, raw := range []RawSearchParams{
		{Keyword: "driver"},
		{Category: "Delivery"},
		{Partner: "appcast"},
		{Lat: "1", Long: "2"},
	} {
		_, err = ParseSearchCriteria(raw)
		require.NoError(t, err)
	}
}
