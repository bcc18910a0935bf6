package response

import (
	"testing"

	"angies_cleaning/internal/domain/entities"
)

func TestFromReceipt(t *testing.T) {
	got := FromReceipt(entities.QuoteReceipt{MessageID: "<abc@angicleans.co.za>", GrandTotal: 2150})
	if !got.Success {
		t.Fatalf("expected success=true")
	}
	if got.Message != "Email sent successfully" {
		t.Fatalf("unexpected message %q", got.Message)
	}
	if got.MessageID != "<abc@angicleans.co.za>" {
		t.Fatalf("unexpected messageId %q", got.MessageID)
	}
}

func TestFromPricedQuote(t *testing.T) {
	got := FromPricedQuote(entities.PricedQuote{
		ServiceType:  entities.ServiceDeepCleanFurnished,
		PropertySize: entities.SizeThreeBedTwoBath,
		BasePrice:    1600,
		AddOns: []entities.AddOnLineItem{
			{Name: entities.AddOnWindowCleaning, Quantity: 5, UnitPrice: 50, LineTotal: 250},
		},
		GrandTotal: 1850,
	})

	if got.Authoritative {
		t.Fatalf("previews must never claim authority")
	}
	if got.GrandTotal != 1850 || got.BasePrice != 1600 {
		t.Fatalf("unexpected totals: %+v", got)
	}
	if len(got.AddOns) != 1 || got.AddOns[0].LineTotal != 250 {
		t.Fatalf("unexpected add-ons: %+v", got.AddOns)
	}
}

func TestNewCatalogResponse(t *testing.T) {
	got := NewCatalogResponse()

	if len(got.Services) != 3 {
		t.Fatalf("expected 3 services, got %d", len(got.Services))
	}
	if len(got.PropertySizes) != 5 {
		t.Fatalf("expected 5 size tiers, got %d", len(got.PropertySizes))
	}
	if len(got.AddOns) != 6 {
		t.Fatalf("expected 6 add-ons, got %d", len(got.AddOns))
	}
	if got.Aliases["Pre and Post Tenancy Clean (UNFURNISHED)"] != "Pre and Post Tenancy Deposit Clean (UNFURNISHED)" {
		t.Fatalf("alias table missing the tenancy alias: %+v", got.Aliases)
	}
	if got.Services["Deep Clean (FURNISHED)"]["3-bed/2-bath"] != 1600 {
		t.Fatalf("unexpected deep clean price: %+v", got.Services)
	}
}
