package email

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"angies_cleaning/internal/domain/entities"
)

func testRequest() entities.QuoteRequest {
	return entities.QuoteRequest{
		Name:         "Thandi Nkosi",
		Phone:        "082 555 0000",
		Email:        "thandi@example.com",
		Address:      "12 Oak Avenue, Randburg",
		SelectedDate: "2026-09-14",
		ServiceType:  "Deep Clean (FURNISHED)",
		PropertySize: "3-bed/2-bath",
		SquareMeters: 140,
	}
}

func testPricedQuote() entities.PricedQuote {
	return entities.PricedQuote{
		ServiceType:  entities.ServiceDeepCleanFurnished,
		PropertySize: entities.SizeThreeBedTwoBath,
		BasePrice:    1600,
		BaseKnown:    true,
		AddOns: []entities.AddOnLineItem{
			{Name: entities.AddOnIroningBasket, Quantity: 2, UnitPrice: 150, LineTotal: 300},
		},
		GrandTotal: 1900,
	}
}

func TestRenderer_Render(t *testing.T) {
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	doc, err := r.Render(testRequest(), testPricedQuote())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.Subject != "Your Quote from Angie's Cleaning Service" {
		t.Fatalf("unexpected subject %q", doc.Subject)
	}
	for _, want := range []string{
		"Thandi Nkosi",
		"Deep Clean (FURNISHED)",
		"R 1600.00",
		"Ironing Standard Basket (Qty: 2)",
		"R 300.00",
		"R 1900.00",
		"Monday, 14 September 2026",
		"140 m²",
		"Terms and Conditions",
	} {
		if !strings.Contains(doc.HTML, want) {
			t.Fatalf("document missing %q", want)
		}
	}
}

func TestRenderer_LogoFallback(t *testing.T) {
	t.Run("missing asset degrades to wordmark", func(t *testing.T) {
		r, _ := NewRenderer("does/not/exist.png")
		doc, err := r.Render(testRequest(), testPricedQuote())
		if err != nil {
			t.Fatalf("missing logo must not fail the render: %v", err)
		}
		if doc.HasLogo {
			t.Fatalf("expected HasLogo=false")
		}
		if strings.Contains(doc.HTML, "cid:logo.png") {
			t.Fatalf("document references an embedded logo that will not be attached")
		}
		if !strings.Contains(doc.HTML, "Angie's Cleaning Service") {
			t.Fatalf("expected text wordmark fallback")
		}
	})

	t.Run("present asset is referenced by cid", func(t *testing.T) {
		dir := t.TempDir()
		logo := filepath.Join(dir, "logo.png")
		if err := os.WriteFile(logo, []byte("png"), 0o644); err != nil {
			t.Fatalf("write logo: %v", err)
		}

		r, _ := NewRenderer(logo)
		doc, err := r.Render(testRequest(), testPricedQuote())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !doc.HasLogo || doc.LogoPath != logo {
			t.Fatalf("expected logo marker, got HasLogo=%v path=%q", doc.HasLogo, doc.LogoPath)
		}
		if !strings.Contains(doc.HTML, "cid:logo.png") {
			t.Fatalf("expected cid reference for inline logo")
		}
	})
}

func TestRenderer_OptionalSections(t *testing.T) {
	r, _ := NewRenderer("")

	t.Run("notes only when present", func(t *testing.T) {
		req := testRequest()
		doc, _ := r.Render(req, testPricedQuote())
		if strings.Contains(doc.HTML, "Additional Notes") {
			t.Fatalf("notes block rendered for empty notes")
		}

		req.AdditionalNotes = "Please bring eco products."
		doc, _ = r.Render(req, testPricedQuote())
		if !strings.Contains(doc.HTML, "Additional Notes") || !strings.Contains(doc.HTML, "Please bring eco products.") {
			t.Fatalf("notes block missing")
		}
	})

	t.Run("business row only when present", func(t *testing.T) {
		req := testRequest()
		doc, _ := r.Render(req, testPricedQuote())
		if strings.Contains(doc.HTML, "Business:") {
			t.Fatalf("business row rendered for empty business name")
		}

		req.BusinessName = "Nkosi Holdings"
		doc, _ = r.Render(req, testPricedQuote())
		if !strings.Contains(doc.HTML, "Business:") {
			t.Fatalf("business row missing")
		}
	})

	t.Run("absent date and square meters", func(t *testing.T) {
		req := testRequest()
		req.SelectedDate = ""
		req.SquareMeters = 0
		doc, _ := r.Render(req, testPricedQuote())
		if !strings.Contains(doc.HTML, "Not selected") {
			t.Fatalf("expected explicit date marker")
		}
		if !strings.Contains(doc.HTML, "Not specified") {
			t.Fatalf("expected square-meters marker")
		}
	})
}

func TestFormatDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "Not selected"},
		{"2026-09-14", "Monday, 14 September 2026"},
		{"2026-09-14T00:00:00Z", "Monday, 14 September 2026"},
		{"whenever suits", "whenever suits"},
	}
	for _, tc := range cases {
		if got := formatDate(tc.in); got != tc.want {
			t.Fatalf("formatDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
