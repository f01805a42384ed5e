package services

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Hello World", "hello-world"},
		{"already slug", "hello-world", "hello-world"},
		{"uppercase", "TAX PLANNING", "tax-planning"},
		{"punctuation dropped", "GST: What's New in 2026?", "gst-whats-new-in-2026"},
		{"whitespace run", "a   b\t\tc", "a-b-c"},
		{"hyphen run", "a---b", "a-b"},
		{"mixed run", "a - - b", "a-b"},
		{"leading trailing", "  -hello-  ", "hello"},
		{"digits kept", "Budget 2026 Highlights", "budget-2026-highlights"},
		{"unicode dropped", "Café Déjà Vu", "caf-dj-vu"},
		{"empty", "", ""},
		{"only punctuation", "!!! ???", ""},
		{"only emoji", "🎉🎉", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, GenerateSlug(tc.title))
		})
	}
}

func TestGenerateSlugShape(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9-]*$`)

	titles := []string{
		"Hello World",
		"  lots   of   spaces  ",
		"---",
		"A&B Partners (Chartered Accountants)",
		"100% legit! No, really.",
		"tabs\tand\nnewlines",
	}

	for _, title := range titles {
		slug := GenerateSlug(title)
		assert.True(t, pattern.MatchString(slug), "slug %q from %q", slug, title)
		assert.NotContains(t, slug, "--", "slug %q has consecutive hyphens", slug)
		assert.False(t, strings.HasPrefix(slug, "-"), "slug %q has leading hyphen", slug)
		assert.False(t, strings.HasSuffix(slug, "-"), "slug %q has trailing hyphen", slug)
	}
}
