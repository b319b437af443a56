package service

// Тесты локального фильтра (internal/service/filter.go).

import (
	"testing"

	"github.com/steadypay/hustle-service/internal/models"
	"github.com/stretchr/testify/require"
)

func localJob(name, company, description string, category models.Category) models.Hustle {
	return models.Hustle{
		Name:        name,
		Company:     company,
		Description: description,
		Category:    category,
		Provider:    models.ProviderDave,
		IsActive:    true,
	}
}

// Ключевые слова: OR по фрагментам и OR по полям, без учёта регистра.
func TestFilterLocalHustles_KeywordOR(t *testing.T) {
	t.Parallel()

	jobs := []models.Hustle{
		localJob("Pink Llama Crew", "Acme", "paint houses", models.CategoryCreative),
		localJob("Dog Walker", "Bear Services", "walk dogs", models.CategoryPetCare),
		localJob("House Painter", "BrushCo", "interior walls", models.CategoryHandyman),
	}

	got := filterLocalHustles(jobs, models.SearchCriteria{Keywords: []string{"pink", "bear"}})

	require.Len(t, got, 2)
	require.Equal(t, "Pink Llama Crew", got[0].Name)
	require.Equal(t, "Dog Walker", got[1].Name)
}

// Фрагменты короче 3 символов отбрасываются целиком и не матчат ничего.
func TestFilterLocalHustles_ShortFragmentsDropped(t *testing.T) {
	t.Parallel()

	jobs := []models.Hustle{
		localJob("Go Dev", "It Co", "go go go", models.CategoryDataEntry),
	}

	got := filterLocalHustles(jobs, models.SearchCriteria{Keywords: []string{"go", "it"}})
	require.Empty(t, got)
}

// Не-буквенно-цифровые символы чистятся, слово режется по ним на фрагменты.
func TestFilterLocalHustles_KeywordSanitization(t *testing.T) {
	t.Parallel()

	jobs := []models.Hustle{
		localJob("Night Courier", "Roadie", "deliver packages overnight", models.CategoryDelivery),
	}

	got := filterLocalHustles(jobs, models.SearchCriteria{Keywords: []string{"courier!!!"}})
	require.Len(t, got, 1)

	got = filterLocalHustles(jobs, models.SearchCriteria{Keywords: []string{"night-courier"}})
	require.Len(t, got, 1)

	// Спецсимволы регэкспа не ломают матчер.
	got = filterLocalHustles(jobs, models.SearchCriteria{Keywords: []string{"c++(courier)"}})
	require.Len(t, got, 1)
}

// Категория — точное совпадение; комбинируется с ключевыми словами через AND.
func TestFilterLocalHustles_Category(t *testing.T) {
	t.Parallel()

	jobs := []models.Hustle{
		localJob("Dog Walker", "Wag", "walk dogs", models.CategoryPetCare),
		localJob("Cat Sitter", "Meow", "sit cats", models.CategoryPetCare),
		localJob("Mover", "Lift", "move boxes", models.CategoryMoving),
	}

	got := filterLocalHustles(jobs, models.SearchCriteria{Category: models.CategoryPetCare})
	require.Len(t, got, 2)

	got = filterLocalHustles(jobs, models.SearchCriteria{
		Category: models.CategoryPetCare,
		Keywords: []string{"dogs"},
	})
	require.Len(t, got, 1)
	require.Equal(t, "Dog Walker", got[0].Name)
}

// Отсутствие совпадений — пустой результат, не ошибка.
func TestFilterLocalHustles_NoMatches(t *testing.T) {
	t.Parallel()

	jobs := []models.Hustle{
		localJob("Dog Walker", "Wag", "walk dogs", models.CategoryPetCare),
	}

	got := filterLocalHustles(jobs, models.SearchCriteria{Keywords: []string{"plumbing"}})
	require.Empty(t, got)
}

// Пустые критерии (только partner) пропускают всё как есть.
func TestFilterLocalHustles_NoFilters(t *testing.T) {
	t.Parallel()

	jobs := []models.Hustle{
		localJob("A", "B", "C", models.CategoryMoving),
		localJob("D", "E", "F", models.CategoryPetCare),
	}

	got := filterLocalHustles(jobs, models.SearchCriteria{Partner: models.ProviderDave})
	require.Equal(t, jobs, got)
}
