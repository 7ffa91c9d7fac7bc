package docgrab

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// artifactReplacer fixes a small set of literal artifacts left behind by
// HTML-to-text flattening: obfuscated email placeholders and Unicode glyphs
// that downstream plain-text consumers handle poorly.
var artifactReplacer = strings.NewReplacer(
	"[email protected]", "email@example.com",
	"\U0001f6a7", "[NOTE]", // 🚧
	"➔", "->",
	"❤️", "<3",
)

// protectedSuffixes are acronyms that the word-boundary repair never splits
// inside, so "RESTApi" stays intact.
var protectedSuffixes = []string{"REST", "API", "UI", "JSON", "SDK"}

// CleanText normalizes flattened page text while preserving intentional
// line structure. Each line is trimmed and has artifacts substituted and
// joined words repaired; runs of blank lines collapse to a single
// separator, and blank lines at the start of the text are dropped.
// CleanText is idempotent.
func CleanText(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	prevEmpty := true // drops leading blanks

	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = artifactReplacer.Replace(line)
		if utf8.RuneCountInString(line) > 1 {
			line = repairJoinedWords(line)
		}

		if line != "" {
			cleaned = append(cleaned, line)
			prevEmpty = false
		} else if !prevEmpty {
			cleaned = append(cleaned, "")
			prevEmpty = true
		}
	}

	return strings.Join(cleaned, "\n")
}

// repairJoinedWords inserts a space before an uppercase rune that directly
// follows a lowercase rune, recovering word boundaries destroyed when
// adjacent inline elements were flattened to text ("GetStarted" was
// "Get" + "Started" in the source markup). Words ending in a protected
// acronym are left alone. This is a heuristic: camelCase identifiers that
// escaped code-block preservation get split too.
func repairJoinedWords(line string) string {
	runes := []rune(line)
	var words []string
	current := []rune{runes[0]}

	for _, r := range runes[1:] {
		prev := current[len(current)-1]
		if unicode.IsUpper(r) && unicode.IsLower(prev) && !endsInProtectedSuffix(current) {
			words = append(words, string(current))
			current = []rune{r}
		} else {
			current = append(current, r)
		}
	}
	words = append(words, string(current))

	return strings.Join(words, " ")
}

func endsInProtectedSuffix(word []rune) bool {
	s := string(word)
	for _, suffix := range protectedSuffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
