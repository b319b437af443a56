package models

// Тесты кодека составного идентификатора (internal/models/identity.go).
//
// Проверяем:
//  - roundtrip encode -> decode для всех валидных провайдеров;
//  - отказ на неизвестном провайдере и пустом/отсутствующем externalID;
//  - split по первому "|" (лишний разделитель уходит в externalID).

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Roundtrip: decode(encode(p, id)) == (p, id) для валидных пар.
func TestHustleID_Roundtrip(t *testing.T) {
	t.Parallel()

	for _, provider := range []Provider{ProviderDave, ProviderAppcast} {
		id := EncodeHustleID(provider, "job-42")
		gotProvider, gotExternal, err := DecodeHustleID(id)
		require.NoError(t, err)
		require.Equal(t, provider, gotProvider)
		require.Equal(t, "job-42", gotExternal)
	}
}

// Форма составного идентификатора фиксирована: "<provider>|<externalID>".
func TestEncodeHustleID_Format(t *testing.T) {
	t.Parallel()
	require.Equal(t, "appcast|abc123", EncodeHustleID(ProviderAppcast, "abc123"))
}

// Невалидные идентификаторы отвергаются с ErrInvalidHustleID.
func TestDecodeHustleID_Invalid(t *testing.T) {
	t.Parallel()

	cases := []string{
		"",
		"appcast",
		"appcast|",
		"|abc123",
		"linkedin|abc123",
		"dave%7Cabc",
	}

	for _, raw := range cases {
		_, _, err := DecodeHustleID(raw)
		require.ErrorIs(t, err, ErrInvalidHustleID, "id=%q", raw)
	}
}

// Split идёт по первому "|": лишний разделитель попадает в externalID,
// но не в токен провайдера.
func TestDecodeHustleID_FirstSeparatorWins(t *testing.T) {
	t.Parallel()

	provider, externalID, err := DecodeHustleID("dave|a|b")
	require.NoError(t, err)
	require.Equal(t, ProviderDave, provider)
	require.Equal(t, "a|b", externalID)
}
