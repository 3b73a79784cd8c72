package menu

import (
	"strconv"
	"strings"
)

// DefaultPrice is charged when a dish is on the menu but the retrieved text
// carries no readable price next to it.
const DefaultPrice = 100

// Resolver decides menu membership and unit price from retrieved text
// chunks. The chunks are loosely formatted menu passages, so membership is a
// case-insensitive substring check rather than an exact lookup; keeping that
// tolerance is part of the contract.
type Resolver struct {
	defaultPrice int
}

func NewResolver(defaultPrice int) *Resolver {
	if defaultPrice <= 0 {
		defaultPrice = DefaultPrice
	}
	return &Resolver{defaultPrice: defaultPrice}
}

// Resolve reports whether item occurs in any chunk and the price found after
// it. A matched item with no digits nearby resolves to the default price.
// An empty or unknown item resolves to (false, 0).
func (r *Resolver) Resolve(item string, chunks []string) (bool, int) {
	needle := strings.ToLower(strings.TrimSpace(item))
	if needle == "" {
		return false, 0
	}

	for _, chunk := range chunks {
		idx := strings.Index(strings.ToLower(chunk), needle)
		if idx < 0 {
			continue
		}
		if price, ok := scanPrice(chunk[idx+len(needle):]); ok {
			return true, price
		}
		return true, r.defaultPrice
	}

	return false, 0
}

// scanPrice returns the first ASCII digit run in s as an integer. Currency
// glyphs and any other text before the digits are skipped.
func scanPrice(s string) (int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			continue
		}
		end := i
		for end < len(s) && s[end] >= '0' && s[end] <= '9' {
			end++
		}
		price, err := strconv.Atoi(s[i:end])
		if err != nil {
			return 0, false
		}
		return price, true
	}
	return 0, false
}
