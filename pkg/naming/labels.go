package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	underscorePageSuffix = regexp.MustCompile(`(?i)_page_\d+$`)
	loosePageSuffix      = regexp.MustCompile(`(?i)[\s_-]+page\s*\d+$`)
	pageInfix            = regexp.MustCompile(`(?i)_page_\d+(_|$)`)
)

// FormatDisplayName turns a structural key into a label: trailing page
// artifacts are removed, underscores become spaces and every word gets an
// upper-case first letter. The rest of each word is left untouched.
//
//	issuing_authority_page_2 -> Issuing Authority
//	total_amount             -> Total Amount
func FormatDisplayName(key string) string {
	stripped := strings.ReplaceAll(StripPageSuffix(key), "_", " ")
	words := strings.Fields(stripped)
	for i, word := range words {
		words[i] = upperFirst(word)
	}
	return strings.Join(words, " ")
}

// StripPageSuffix removes trailing page-number artifacts from key. The
// underscore form `_page_<N>` is tried before the looser `<sep>page <N>`
// form, and stripping repeats until the key is stable. A key that would
// become empty is returned unchanged.
func StripPageSuffix(key string) string {
	current := key
	for {
		next := stripPageSuffixOnce(current)
		if next == current || strings.TrimSpace(next) == "" {
			return current
		}
		current = next
	}
}

func stripPageSuffixOnce(key string) string {
	if underscorePageSuffix.MatchString(key) {
		return strings.TrimRightFunc(underscorePageSuffix.ReplaceAllString(key, ""), unicode.IsSpace)
	}
	if loosePageSuffix.MatchString(key) {
		return strings.TrimRightFunc(loosePageSuffix.ReplaceAllString(key, ""), unicode.IsSpace)
	}
	return key
}

// StripPageInfix removes every `_page_<N>` segment from key, wherever it
// occurs, and collapses the double underscores left behind. It is used on
// order-metadata keys whose section or field component carried a page suffix.
func StripPageInfix(key string) string {
	current := key
	for {
		next := pageInfix.ReplaceAllString(current, "$1")
		for strings.Contains(next, "__") {
			next = strings.ReplaceAll(next, "__", "_")
		}
		if next == current {
			return current
		}
		current = next
	}
}

// NormalizeKey converts a label into the lower-case, underscore separated
// form used for section ids and field keys. Runs of anything other than
// letters and digits collapse into a single underscore.
func NormalizeKey(label string) string {
	var b strings.Builder
	pendingSeparator := false
	for _, r := range strings.ToLower(strings.TrimSpace(label)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingSeparator && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSeparator = false
			b.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}
	if b.Len() == 0 {
		return "field"
	}
	return b.String()
}

func upperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
