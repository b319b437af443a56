package sanitize

// Тесты санитайзера описаний (internal/pkg/sanitize/sanitize.go).

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDescription(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "plain_text",
			raw:  "Walk dogs in your neighborhood",
			want: "Walk dogs in your neighborhood",
		},
		{
			name: "strips_tags",
			raw:  "<p>Deliver <b>groceries</b></p><ul><li>two hours</li></ul>",
			want: "Deliver groceries two hours",
		},
		{
			name: "strips_script_with_body",
			raw:  `Earn cash<script>alert("x")</script> weekly`,
			want: "Earn cash weekly",
		},
		{
			name: "strips_anchor_entirely",
			raw:  `Flexible shifts <a href="https://spam.example">Apply now!!!</a> available`,
			want: "Flexible shifts available",
		},
		{
			name: "collapses_whitespace",
			raw:  "Set\n\nyour   own\tschedule",
			want: "Set your own schedule",
		},
		{
			name: "empty",
			raw:  "",
			want: "",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Description(tc.raw))
		})
	}
}
