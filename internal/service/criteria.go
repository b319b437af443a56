package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/steadypay/hustle-service/internal/models"
)

// RawSearchParams — сырые строковые параметры запроса, как они пришли
// с транспорта. Нормализация в типизированные критерии происходит сразу
// на границе; дальше по коду динамических полей нет.
type RawSearchParams struct {
	Keyword        string
	Category       string
	Lat            string
	Long           string
	Radius         string
	Partner        string
	PostedDateSort string
	DistanceSort   string
	Page           string
}

var (
	// Ключевые слова разделяются литеральным "+", percent-encoded пробелом
	// либо пробельными последовательностями.
	keywordSep = regexp.MustCompile(`(?:%20|[+\s])+`)
	// Подписанное десятичное число координаты.
	coordinate = regexp.MustCompile(`^[-]?[0-9]+([.][0-9]+)?$`)
	// Декодер пробелов в значении категории.
	categorySpaces = strings.NewReplacer("%20", " ", "+", " ")
)

// ParseSearchCriteria превращает сырые параметры в валидированные критерии.
//
// Ошибки:
//   - ErrInvalidCriteria — нарушено пофилдовое правило (обёрнута с именем поля);
//   - ErrEmptyCriteria — не задан ни один из keywords/category/partner/(lat&&long).
func ParseSearchCriteria(raw RawSearchParams) (*models.SearchCriteria, error) {
	var c models.SearchCriteria

	if kw := strings.TrimSpace(raw.Keyword); kw != "" {
		for _, part := range keywordSep.Split(kw, -1) {
			if part != "" {
				c.Keywords = append(c.Keywords, part)
			}
		}
	}

	if raw.Category != "" {
		category, ok := models.ParseCategory(categorySpaces.Replace(raw.Category))
		if !ok {
			return nil, fmt.Errorf("category %q: %w", raw.Category, ErrInvalidCriteria)
		}
		c.Category = category
	}

	// Координаты — только парой.
	if (raw.Lat == "") != (raw.Long == "") {
		return nil, fmt.Errorf("lat and long must be provided together: %w", ErrInvalidCriteria)
	}
	if raw.Lat != "" {
		if !coordinate.MatchString(raw.Lat) || !coordinate.MatchString(raw.Long) {
			return nil, fmt.Errorf("lat/long must be decimal numbers: %w", ErrInvalidCriteria)
		}
		c.Lat, c.Long = raw.Lat, raw.Long
	}

	if raw.Radius != "" {
		if !c.HasLocation() {
			return nil, fmt.Errorf("radius requires lat and long: %w", ErrInvalidCriteria)
		}
		// Дробное значение усекается к нулю ("3.14159" -> 3); поведение
		// зафиксировано тестами.
		f, err := strconv.ParseFloat(raw.Radius, 64)
		if err != nil || int(f) <= 0 {
			return nil, fmt.Errorf("radius must be a positive integer: %w", ErrInvalidCriteria)
		}
		c.Radius = int(f)
	}

	if raw.Partner != "" {
		partner, ok := models.ParseProvider(raw.Partner)
		if !ok {
			return nil, fmt.Errorf("partner %q: %w", raw.Partner, ErrInvalidCriteria)
		}
		c.Partner = partner
	}

	if raw.PostedDateSort != "" {
		dir, ok := models.ParseSortDirection(raw.PostedDateSort)
		if !ok {
			return nil, fmt.Errorf("postedDateSort must be asc or desc: %w", ErrInvalidCriteria)
		}
		c.PostedDateSort = dir
	}

	if raw.DistanceSort != "" {
		dir, ok := models.ParseSortDirection(raw.DistanceSort)
		if !ok {
			return nil, fmt.Errorf("distanceSort must be asc or desc: %w", ErrInvalidCriteria)
		}
		if !c.HasLocation() {
			return nil, fmt.Errorf("distanceSort requires lat and long: %w", ErrInvalidCriteria)
		}
		c.DistanceSort = dir
	}

	if c.PostedDateSort != models.SortUnset && c.DistanceSort != models.SortUnset {
		return nil, fmt.Errorf("postedDateSort and distanceSort are mutually exclusive: %w", ErrInvalidCriteria)
	}

	if raw.Page != "" {
		page, err := strconv.Atoi(raw.Page)
		if err != nil || page < 0 {
			return nil, fmt.Errorf("page must be an integer >= 0: %w", ErrInvalidCriteria)
		}
		// Страница 0 — валидный явный запрос, отличный от «не задано».
		c.Page = page
		c.PageSet = true
	}

	if len(c.Keywords) == 0 && c.Category == "" && c.Partner == "" && !c.HasLocation() {
		return nil, ErrEmptyCriteria
	}

	return &c, nil
}
