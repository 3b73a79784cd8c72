package cart

import (
	"fmt"
	"strings"
	"unicode"

	"restobot/app/services/assistant/internal/agent/menu"
	"restobot/app/services/assistant/internal/agent/phrase"
)

// LineItem is one priced, quantified entry. The unit price is resolved at
// add time and frozen; later menu changes do not touch it.
type LineItem struct {
	Item      string `json:"item"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"`
}

// Cart is the ordered line-item collection for one session. Lines are
// append-only: re-adding a dish appends a new independent line instead of
// merging quantities. The owning session serializes access, so Cart itself
// carries no lock.
type Cart struct {
	resolver *menu.Resolver
	lines    []LineItem
}

func New(resolver *menu.Resolver) *Cart {
	return &Cart{resolver: resolver}
}

// AddItems parses text into phrases, resolves each against the retrieved
// menu chunks, and appends a line per resolved phrase. Unresolved phrases go
// into a not-found list; one miss never fails the rest of the call.
func (c *Cart) AddItems(text string, chunks []string) string {
	var added []string
	var notFound []string

	for _, p := range phrase.Parse(text) {
		found, price := c.resolver.Resolve(p.Item, chunks)
		if !found {
			notFound = append(notFound, p.Item)
			continue
		}
		c.lines = append(c.lines, LineItem{Item: p.Item, Quantity: p.Quantity, UnitPrice: price})
		added = append(added, fmt.Sprintf("%d x %s (₹%d each)", p.Quantity, titleWords(p.Item), price))
	}

	var sb strings.Builder
	if len(added) > 0 {
		sb.WriteString("Added to cart: ")
		sb.WriteString(strings.Join(added, ", "))
	}
	if len(notFound) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Not found in menu: ")
		sb.WriteString(strings.Join(notFound, ", "))
	}
	return sb.String()
}

// RemoveItems parses text into item names (counts are ignored) and removes
// every line whose item contains a parsed name as a substring. The scan runs
// from the end of the cart backward so in-place deletion never skips a line.
func (c *Cart) RemoveItems(text string) string {
	var removed []string

	for _, p := range phrase.Parse(text) {
		for i := len(c.lines) - 1; i >= 0; i-- {
			if strings.Contains(c.lines[i].Item, p.Item) {
				removed = append(removed, c.lines[i].Item)
				c.lines = append(c.lines[:i], c.lines[i+1:]...)
			}
		}
	}

	if len(removed) == 0 {
		return "None of the items were found in your cart."
	}
	return "Removed from cart: " + strings.Join(removed, ", ")
}

// Review formats every line with its subtotal and the overall total. The
// total is recomputed on every call, never cached.
func (c *Cart) Review() string {
	if len(c.lines) == 0 {
		return "Your cart is empty."
	}

	var sb strings.Builder
	sb.WriteString("Your current order:\n")
	total := 0
	for _, line := range c.lines {
		subtotal := line.Quantity * line.UnitPrice
		total += subtotal
		fmt.Fprintf(&sb, "%d x %s = ₹%d\n", line.Quantity, titleWords(line.Item), subtotal)
	}
	fmt.Fprintf(&sb, "\nTotal: ₹%d", total)
	return sb.String()
}

// PlaceOrder captures the review summary, clears the cart unconditionally,
// and confirms. The placed order is not recorded anywhere beyond the
// returned message.
func (c *Cart) PlaceOrder() string {
	if len(c.lines) == 0 {
		return "No items to place. Your cart is empty."
	}

	summary := c.Review()
	c.lines = nil
	return summary + "\n\nOrder placed! Your food will be prepared soon."
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) Total() int {
	total := 0
	for _, line := range c.lines {
		total += line.Quantity * line.UnitPrice
	}
	return total
}

// Lines returns a copy of the current line items.
func (c *Cart) Lines() []LineItem {
	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

func titleWords(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
