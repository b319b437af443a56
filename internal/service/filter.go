package service

import (
	"regexp"

	"github.com/steadypay/hustle-service/internal/models"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// filterLocalHustles применяет критерии к активным локальным вакансиям
// в памяти (у локального каталога нет серверного поиска).
//
// Категория — точное совпадение. Ключевые слова — нарочито широкий матч:
// OR по фрагментам и OR по полям {description, company, name}, чтобы
// расширять выдачу, а не сужать её. Пустой результат — не ошибка.
func filterLocalHustles(jobs []models.Hustle, c models.SearchCriteria) []models.Hustle {
	var result []models.Hustle

	patterns := keywordPatterns(c.Keywords)

	for _, job := range jobs {
		if c.Category != "" && job.Category != c.Category {
			continue
		}
		if len(c.Keywords) > 0 && !matchesAny(job, patterns) {
			continue
		}
		result = append(result, job)
	}

	return result
}

// keywordPatterns превращает ключевые слова в регистронезависимые паттерны:
// каждое слово чистится от не-буквенно-цифровых символов, режется по
// образовавшимся пробелам, фрагменты короче 3 символов отбрасываются
// целиком и не матчат ничего.
func keywordPatterns(keywords []string) []*regexp.Regexp {
	var patterns []*regexp.Regexp

	for _, kw := range keywords {
		for _, fragment := range nonAlnum.Split(kw, -1) {
			if len(fragment) < 3 {
				continue
			}
			patterns = append(patterns, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(fragment)))
		}
	}

	return patterns
}

func matchesAny(job models.Hustle, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(job.Description) || p.MatchString(job.Company) || p.MatchString(job.Name) {
			return true
		}
	}
	return false
}
