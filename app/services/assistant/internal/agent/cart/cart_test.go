package cart

import (
	"strings"
	"testing"

	"restobot/app/services/assistant/internal/agent/menu"
)

var menuChunks = []string{
	"Burgers ₹80, Fries ₹50, Coke ₹40",
	"Paneer Tikka ₹240. Salad is fresh and healthy",
}

func newTestCart() *Cart {
	return New(menu.NewResolver(0))
}

func TestAddItemsPartialSuccess(t *testing.T) {
	c := newTestCart()

	msg := c.AddItems("2 burgers, fries, sushi", menuChunks)

	if !strings.Contains(msg, "Added to cart: 2 x Burgers (₹80 each), 1 x Fries (₹50 each)") {
		t.Errorf("add summary missing additions: %q", msg)
	}
	if !strings.Contains(msg, "Not found in menu: sushi") {
		t.Errorf("add summary missing not-found list: %q", msg)
	}
	if c.Len() != 2 {
		t.Errorf("cart has %d lines, want 2", c.Len())
	}
}

func TestAddItemsDefaultPriceLine(t *testing.T) {
	c := newTestCart()

	c.AddItems("salad", menuChunks)

	lines := c.Lines()
	if len(lines) != 1 || lines[0].UnitPrice != menu.DefaultPrice {
		t.Fatalf("lines = %v, want one salad line at the default price", lines)
	}
}

func TestAddItemsKeepsDuplicateLines(t *testing.T) {
	c := newTestCart()

	c.AddItems("fries", menuChunks)
	c.AddItems("2 fries", menuChunks)

	if c.Len() != 2 {
		t.Fatalf("cart has %d lines, want 2 separate fries lines", c.Len())
	}
	if c.Total() != 50+2*50 {
		t.Errorf("total = %d, want %d", c.Total(), 150)
	}
}

func TestRemoveAfterAddLeavesCartEmpty(t *testing.T) {
	c := newTestCart()

	c.AddItems("2 burgers", menuChunks)
	msg := c.RemoveItems("burgers")

	if !strings.Contains(msg, "Removed from cart: burgers") {
		t.Errorf("remove summary = %q", msg)
	}
	if c.Len() != 0 {
		t.Errorf("cart has %d lines after remove, want 0", c.Len())
	}
}

func TestRemoveMatchesSubstringAcrossAllLines(t *testing.T) {
	c := newTestCart()

	c.AddItems("fries, burgers, fries", menuChunks)
	c.RemoveItems("fries")

	lines := c.Lines()
	if len(lines) != 1 || lines[0].Item != "burgers" {
		t.Errorf("lines after remove = %v, want only burgers", lines)
	}
}

func TestRemoveNothingMatched(t *testing.T) {
	c := newTestCart()
	c.AddItems("fries", menuChunks)

	msg := c.RemoveItems("pizza")

	if msg != "None of the items were found in your cart." {
		t.Errorf("remove miss message = %q", msg)
	}
	if c.Len() != 1 {
		t.Errorf("cart mutated on a miss: %d lines", c.Len())
	}
}

func TestReviewTotalsAndIdempotence(t *testing.T) {
	c := newTestCart()
	c.AddItems("2 burgers and fries", menuChunks)

	first := c.Review()
	second := c.Review()

	if !strings.Contains(first, "2 x Burgers = ₹160") {
		t.Errorf("review missing burger subtotal: %q", first)
	}
	if !strings.Contains(first, "1 x Fries = ₹50") {
		t.Errorf("review missing fries subtotal: %q", first)
	}
	if !strings.Contains(first, "Total: ₹210") {
		t.Errorf("review missing total 210: %q", first)
	}
	if first != second {
		t.Errorf("review is not idempotent:\n%q\n%q", first, second)
	}
	if c.Total() != 210 {
		t.Errorf("Total() = %d, want 210", c.Total())
	}
}

func TestPlaceOrderReportsTotalAndClears(t *testing.T) {
	c := newTestCart()
	c.AddItems("2 burgers and fries", menuChunks)

	msg := c.PlaceOrder()

	if !strings.Contains(msg, "210") {
		t.Errorf("confirmation missing total 210: %q", msg)
	}
	if !strings.Contains(msg, "Order placed!") {
		t.Errorf("confirmation missing notice: %q", msg)
	}
	if c.Len() != 0 {
		t.Errorf("cart not cleared after placing: %d lines", c.Len())
	}
}

func TestEmptyCartMessages(t *testing.T) {
	c := newTestCart()

	if got := c.Review(); got != "Your cart is empty." {
		t.Errorf("empty review = %q", got)
	}
	if got := c.PlaceOrder(); got != "No items to place. Your cart is empty." {
		t.Errorf("empty place order = %q", got)
	}
	if got := c.RemoveItems("fries"); got != "None of the items were found in your cart." {
		t.Errorf("empty remove = %q", got)
	}
}
