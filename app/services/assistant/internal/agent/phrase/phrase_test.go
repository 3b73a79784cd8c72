package phrase

import (
	"strings"
	"testing"
)

func TestParseQuantityAndItems(t *testing.T) {
	cases := []struct {
		name string
		text string
		want []Phrase
	}{
		{
			name: "quantity then bare item",
			text: "2 burgers and fries",
			want: []Phrase{{Item: "burgers", Quantity: 2}, {Item: "fries", Quantity: 1}},
		},
		{
			name: "comma separated",
			text: "coke, 3 samosa",
			want: []Phrase{{Item: "coke", Quantity: 1}, {Item: "samosa", Quantity: 3}},
		},
		{
			name: "single item defaults to one",
			text: "Paneer Tikka",
			want: []Phrase{{Item: "paneer tikka", Quantity: 1}},
		},
		{
			name: "digits only fragment",
			text: "2",
			want: []Phrase{{Item: "", Quantity: 2}},
		},
		{
			name: "trailing separator yields empty entry",
			text: "fries,",
			want: []Phrase{{Item: "fries", Quantity: 1}, {Item: "", Quantity: 1}},
		},
		{
			name: "zero count clamps to one",
			text: "0 burgers",
			want: []Phrase{{Item: "burgers", Quantity: 1}},
		},
		{
			name: "empty input",
			text: "",
			want: []Phrase{{Item: "", Quantity: 1}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse(tc.text)
			if len(got) != len(tc.want) {
				t.Fatalf("Parse(%q) = %v, want %v", tc.text, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("Parse(%q)[%d] = %v, want %v", tc.text, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestParseAlwaysLowercasesAndKeepsPositiveQuantity(t *testing.T) {
	inputs := []string{
		"2 Burgers and FRIES",
		"  , and ,, 5",
		"10 Veg Rolls, 0 coke and",
		"no digits here at all",
	}

	for _, text := range inputs {
		for _, p := range Parse(text) {
			if p.Quantity < 1 {
				t.Errorf("Parse(%q) produced quantity %d below 1", text, p.Quantity)
			}
			if p.Item != strings.ToLower(p.Item) {
				t.Errorf("Parse(%q) produced non-lowercase item %q", text, p.Item)
			}
			if p.Item != "" && p.Item[0] >= '0' && p.Item[0] <= '9' {
				t.Errorf("Parse(%q) left a leading digit in item %q", text, p.Item)
			}
		}
	}
}

func TestParseSplitsOnLiteralAnd(t *testing.T) {
	// "and" is cut wherever it appears, even inside a word; downstream
	// resolution turns the leftovers into a not-found report.
	got := Parse("sandwich")
	if len(got) != 2 {
		t.Fatalf("Parse(\"sandwich\") = %v, want two fragments", got)
	}
	if got[0].Item != "s" || got[1].Item != "wich" {
		t.Errorf("Parse(\"sandwich\") = %v, want [s wich]", got)
	}
}
