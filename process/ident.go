package process

import (
	"strings"
	"unicode"
)

// Ident normalizes identifier-like labels so that "CustomerName",
// "customer_name" and "customer-name" share one key: it splits camel case,
// drops '_', '-' and ' ' separators and lowercases the result.
var Ident = Named("ident", identKey)

// Ident appends identifier normalization.
func (p Processor) Ident() Processor { return p.Compose(Ident) }

func identKey(s string) string {
	return strings.ToLower(strings.Join(splitWords(s), ""))
}

// splitWords splits a camel case or separated label into words.
//   - "OrderID" -> ["Order", "ID"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "order_id" -> ["order", "id"]
func splitWords(s string) []string {
	if s == "" {
		return nil
	}

	var (
		words   []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsWord(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return words
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsWord reports whether a new word begins at runes[i]: on a lower to
// upper transition, or at the last capital of an acronym followed by lowercase.
func startsWord(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}

	if !unicode.IsUpper(prev) && !isSeparator(prev) {
		return true
	}

	return unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
