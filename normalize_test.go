package docgrab_test

import (
	"testing"

	"github.com/fwojciec/docgrab"
	"github.com/stretchr/testify/assert"
)

func TestCleanText_BlankLines(t *testing.T) {
	t.Parallel()

	t.Run("collapses runs of blank lines to one", func(t *testing.T) {
		t.Parallel()

		got := docgrab.CleanText("first\n\n\n\nsecond")

		assert.Equal(t, "first\n\nsecond", got)
	})

	t.Run("drops blank lines at the start", func(t *testing.T) {
		t.Parallel()

		got := docgrab.CleanText("\n\n\nfirst")

		assert.Equal(t, "first", got)
	})

	t.Run("treats whitespace-only lines as blank", func(t *testing.T) {
		t.Parallel()

		got := docgrab.CleanText("first\n   \n\t\nsecond")

		assert.Equal(t, "first\n\nsecond", got)
	})

	t.Run("trims each line", func(t *testing.T) {
		t.Parallel()

		got := docgrab.CleanText("  indented  \n\ttabbed\t")

		assert.Equal(t, "indented\ntabbed", got)
	})
}

func TestCleanText_Artifacts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "obfuscated email placeholder",
			in:   "Contact [email protected] for help",
			want: "Contact email@example.com for help",
		},
		{
			name: "construction glyph",
			in:   "\U0001f6a7 Under construction",
			want: "[NOTE] Under construction",
		},
		{
			name: "arrow glyph",
			in:   "Settings ➔ Advanced",
			want: "Settings -> Advanced",
		},
		{
			name: "heart glyph",
			in:   "Made with ❤️ by us",
			want: "Made with <3 by us",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docgrab.CleanText(tt.in))
		})
	}
}

func TestCleanText_WordBoundaryRepair(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "splits joined words",
			in:   "GetStarted",
			want: "Get Started",
		},
		{
			name: "splits inside a sentence",
			in:   "GetStarted now",
			want: "Get Started now",
		},
		{
			name: "REST acronym is protected",
			in:   "RESTApi",
			want: "RESTApi",
		},
		{
			name: "JSON acronym is protected",
			in:   "JSONData",
			want: "JSONData",
		},
		{
			name: "SDK acronym is protected",
			in:   "SDKReference",
			want: "SDKReference",
		},
		{
			name: "consecutive uppercase is not split",
			in:   "HTML",
			want: "HTML",
		},
		{
			name: "single rune lines pass through",
			in:   "A",
			want: "A",
		},
		{
			name: "already separated text is untouched",
			in:   "Get Started",
			want: "Get Started",
		},
		{
			name: "multiple joins in one line",
			in:   "GetStarted and LearnMore",
			want: "Get Started and Learn More",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, docgrab.CleanText(tt.in))
		})
	}
}

func TestCleanText_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"first\n\n\n\nsecond\nGetStarted\n➔ done\n\n",
		"\n\nleading blanks\n\n\ntrailing\n",
		"RESTApi JSONData GetStarted",
		"",
	}

	for _, in := range inputs {
		once := docgrab.CleanText(in)
		twice := docgrab.CleanText(once)
		assert.Equal(t, once, twice, "input %q", in)
	}
}
