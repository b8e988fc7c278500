package content

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Hello, World! 2024", "hello-world-2024"},
		{"Doubling Pipeline with LinkedIn", "doubling-pipeline-with-linkedin"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"Ünïcödé & Émojis 🚀", "ncd-mojis"},
		{"---leading and trailing---", "leading-and-trailing"},
		{"under_score", "underscore"},
		{"!!!", ""},
		{"", ""},
	}
	for _, c := range cases {
		require.Equal(t, c.want, GenerateSlug(c.in), "input %q", c.in)
	}
}

func TestGenerateSlugIdempotent(t *testing.T) {
	titles := []string{
		"Hello, World! 2024",
		"B2B Lead Generation: The 2025 Playbook",
		"--- weird --- input ---",
		"MiXeD CaSe",
	}
	for _, title := range titles {
		once := GenerateSlug(title)
		require.Equal(t, once, GenerateSlug(once), "input %q", title)
	}
}
