package catalog

import (
	"testing"

	"angies_cleaning/internal/domain/entities"
)

func TestCatalogCompleteness(t *testing.T) {
	// Every canonical service must price every size tier; a zero or missing
	// combination would silently produce a free quote.
	for service, sizes := range Services() {
		for _, size := range PropertySizes() {
			price, ok := sizes[size]
			if !ok {
				t.Fatalf("service %q missing price for %q", service, size)
			}
			if price <= 0 {
				t.Fatalf("service %q size %q has non-positive price %d", service, size, price)
			}
		}
	}
}

func TestAliasesResolveToCanonicalKeys(t *testing.T) {
	services := Services()
	for alias, canonical := range Aliases() {
		if _, ok := services[canonical]; !ok {
			t.Fatalf("alias %q targets unknown service %q", alias, canonical)
		}
		if _, chained := Aliases()[canonical]; chained {
			t.Fatalf("alias %q targets another alias %q", alias, canonical)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Run("alias resolves", func(t *testing.T) {
		got := Normalize(string(entities.AliasTenancyCleanUnfurnished))
		if got != entities.ServiceTenancyCleanUnfurnished {
			t.Fatalf("expected canonical tenancy label, got %q", got)
		}
	})

	t.Run("canonical passes through", func(t *testing.T) {
		got := Normalize(string(entities.ServiceDeepCleanFurnished))
		if got != entities.ServiceDeepCleanFurnished {
			t.Fatalf("expected unchanged label, got %q", got)
		}
	})

	t.Run("unknown passes through", func(t *testing.T) {
		if got := Normalize("Garden Clean"); got != "Garden Clean" {
			t.Fatalf("expected unchanged label, got %q", got)
		}
	})

	t.Run("idempotent", func(t *testing.T) {
		for _, label := range []string{
			string(entities.AliasTenancyCleanUnfurnished),
			string(entities.ServiceStandardCleanFurnished),
			"nonsense",
		} {
			once := Normalize(label)
			twice := Normalize(string(once))
			if once != twice {
				t.Fatalf("normalize not idempotent for %q: %q vs %q", label, once, twice)
			}
		}
	})
}

func TestBasePrice(t *testing.T) {
	price, ok := BasePrice(entities.ServiceTenancyCleanUnfurnished, entities.SizeFourBedTwoBath)
	if !ok || price != 2500 {
		t.Fatalf("expected 2500 (known), got %d (known=%v)", price, ok)
	}

	price, ok = BasePrice("Garden Clean", entities.SizeOneBedOneBath)
	if ok || price != 0 {
		t.Fatalf("expected 0 (unknown), got %d (known=%v)", price, ok)
	}

	price, ok = BasePrice(entities.ServiceDeepCleanFurnished, "6-bed")
	if ok || price != 0 {
		t.Fatalf("expected 0 (unknown size), got %d (known=%v)", price, ok)
	}
}

func TestAddOnUnitPrice(t *testing.T) {
	price, ok := AddOnUnitPrice(entities.AddOnWindowCleaning)
	if !ok || price != 50 {
		t.Fatalf("expected 50, got %d (known=%v)", price, ok)
	}
	if price, ok := AddOnUnitPrice("Chimney Sweep"); ok || price != 0 {
		t.Fatalf("expected unknown add-on to price 0, got %d (known=%v)", price, ok)
	}
}

func TestReadOnlyViewsAreCopies(t *testing.T) {
	view := Services()
	view[entities.ServiceDeepCleanFurnished][entities.SizeOneBedOneBath] = 1

	price, _ := BasePrice(entities.ServiceDeepCleanFurnished, entities.SizeOneBedOneBath)
	if price != 800 {
		t.Fatalf("mutating the view leaked into the catalog: got %d", price)
	}
}
