package phrase

import (
	"strconv"
	"strings"
)

// Phrase is one ordering fragment parsed out of free text: an item name and
// how many of it the user asked for.
type Phrase struct {
	Item     string
	Quantity int
}

// Parse splits free text into ordering phrases. Fragments are separated by
// every literal occurrence of "and" or ",". Each fragment may start with a
// count; when the count is missing or not positive it defaults to 1. The
// remainder is trimmed and lower-cased into the item name. Empty fragments
// still yield an entry with an empty item name so callers can report them.
func Parse(text string) []Phrase {
	fragments := splitFragments(text)
	phrases := make([]Phrase, 0, len(fragments))
	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)

		quantity := 1
		digits := 0
		for digits < len(fragment) && fragment[digits] >= '0' && fragment[digits] <= '9' {
			digits++
		}
		if digits > 0 {
			if parsed, err := strconv.Atoi(fragment[:digits]); err == nil && parsed > 0 {
				quantity = parsed
			}
		}

		item := strings.ToLower(strings.TrimSpace(fragment[digits:]))
		phrases = append(phrases, Phrase{Item: item, Quantity: quantity})
	}
	return phrases
}

// splitFragments cuts text at every "," and at every literal "and",
// including one inside a longer word.
func splitFragments(text string) []string {
	var fragments []string
	var current strings.Builder

	for i := 0; i < len(text); {
		if text[i] == ',' {
			fragments = append(fragments, current.String())
			current.Reset()
			i++
			continue
		}
		if strings.HasPrefix(text[i:], "and") {
			fragments = append(fragments, current.String())
			current.Reset()
			i += len("and")
			continue
		}
		current.WriteByte(text[i])
		i++
	}

	fragments = append(fragments, current.String())
	return fragments
}
