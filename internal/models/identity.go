package models

import (
	"errors"
	"strings"
)

// hustleIDSep — разделитель составного идентификатора "<provider>|<externalID>".
const hustleIDSep = "|"

// ErrInvalidHustleID — составной идентификатор не декодируется:
// неизвестный провайдер либо пустой externalID.
var ErrInvalidHustleID = errors.New("invalid hustle id")

// EncodeHustleID собирает составной идентификатор вакансии.
//
// Это единственная идентичность, пересекающая границу внешнее/внутреннее:
// для пары (provider, externalID) она стабильна на всё время жизни вакансии.
// Ограничение: externalID не должен содержать "|"; если содержит,
// неоднозначность декодирования — принятое ограничение формата.
func EncodeHustleID(provider Provider, externalID string) string {
	return string(provider) + hustleIDSep + externalID
}

// DecodeHustleID разбирает составной идентификатор по первому "|".
// Чистая функция без побочных эффектов.
func DecodeHustleID(id string) (Provider, string, error) {
	token, externalID, found := strings.Cut(id, hustleIDSep)
	if !found || externalID == "" {
		return "", "", ErrInvalidHustleID
	}

	provider, ok := ParseProvider(token)
	if !ok {
		return "", "", ErrInvalidHustleID
	}

	return provider, externalID, nil
}
