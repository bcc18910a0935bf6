package request

import (
	"strings"
	"testing"

	"angies_cleaning/internal/domain/entities"
)

func TestQuoteEmailRequest_SanitizedEscapesMarkup(t *testing.T) {
	r := QuoteEmailRequest{
		Name:            `<script>alert("x")</script>`,
		AdditionalNotes: "Tom & Jerry's <notes>",
	}

	got := r.Sanitized()

	if got.Name != "&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;" {
		t.Fatalf("unexpected escaped name: %q", got.Name)
	}
	if got.AdditionalNotes != "Tom &amp; Jerry&#039;s &lt;notes&gt;" {
		t.Fatalf("unexpected escaped notes: %q", got.AdditionalNotes)
	}
	for _, forbidden := range []string{"<", ">", `"`, "'"} {
		if strings.Contains(got.Name, forbidden) {
			t.Fatalf("unescaped %q survived sanitization: %q", forbidden, got.Name)
		}
	}
}

func TestQuoteEmailRequest_SanitizedClampsLengths(t *testing.T) {
	long := strings.Repeat("a", 2000)
	r := QuoteEmailRequest{
		Name:            long,
		Phone:           long,
		Address:         long,
		AdditionalNotes: long,
	}

	got := r.Sanitized()

	cases := []struct {
		field string
		value string
		max   int
	}{
		{"name", got.Name, 100},
		{"phone", got.Phone, 50},
		{"address", got.Address, 255},
		{"notes", got.AdditionalNotes, 1000},
	}
	for _, tc := range cases {
		if len([]rune(tc.value)) != tc.max {
			t.Fatalf("%s: expected clamp to %d, got %d", tc.field, tc.max, len([]rune(tc.value)))
		}
	}
}

func TestQuoteEmailRequest_SanitizedAddOns(t *testing.T) {
	r := QuoteEmailRequest{
		AddOns: []string{"Ironing Standard Basket", "Int/Ext Window Cleaning", "Small Patio/Balcony (10-20 sqm)"},
		AddOnQuantities: map[string]int{
			"Ironing Standard Basket": 2,
			"Int/Ext Window Cleaning": 5,
			// no quantity for the patio: single-unit add-on
		},
	}

	got := r.Sanitized()

	if len(got.AddOns) != 3 {
		t.Fatalf("expected 3 selections, got %d", len(got.AddOns))
	}
	if got.AddOns[0] != (entities.AddOnSelection{Name: entities.AddOnIroningBasket, Quantity: 2}) {
		t.Fatalf("unexpected first selection: %+v", got.AddOns[0])
	}
	if got.AddOns[2].Quantity != 0 {
		t.Fatalf("absent quantity should stay 0 for pricing to default, got %d", got.AddOns[2].Quantity)
	}
}

func TestResolveSquareMeters(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want int
	}{
		{"string number", "140", 140},
		{"padded string", " 85 ", 85},
		{"empty string", "", 0},
		{"garbage", "big", 0},
		{"negative string", "-5", 0},
		{"json number", float64(120), 120},
		{"nil", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := resolveSquareMeters(tc.in); got != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, got)
			}
		})
	}
}
