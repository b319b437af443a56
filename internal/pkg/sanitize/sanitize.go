// sanitize приводит HTML-описания вакансий внешнего провайдера
// к безопасному плоскому тексту.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spaces = regexp.MustCompile(`\s+`)

// Description убирает из сырого HTML скрипты, стили и ссылки
// (анкоры вырезаются целиком вместе с текстом), остальную разметку
// схлопывает в текст с одиночными пробелами.
//
// Функция чистая: при неразбираемом входе возвращает вход,
// прогнанный только через нормализацию пробелов.
func Description(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return collapse(raw)
	}

	doc.Find("script, style, iframe, a").Remove()

	return collapse(doc.Text())
}

func collapse(s string) string {
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
