// Package catalog is the single source of truth for quote pricing. Both the
// authoritative server-side calculation and the client-facing catalog
// endpoint read from these tables; nothing else may define a price.
package catalog

import "angies_cleaning/internal/domain/entities"

// basePrices maps (service type, property size) to a base price in whole Rand.
// Every canonical service type must price every size tier; a missing
// combination is a data-entry defect, not a free clean.
var basePrices = map[entities.ServiceType]map[entities.PropertySize]int{
	entities.ServiceStandardCleanFurnished: {
		entities.SizeOneBedOneBath:   450,
		entities.SizeTwoBedOneBath:   600,
		entities.SizeThreeBedTwoBath: 800,
		entities.SizeFourBedTwoBath:  1000,
		entities.SizeFiveBedTwoBath:  1200,
	},
	entities.ServiceDeepCleanFurnished: {
		entities.SizeOneBedOneBath:   800,
		entities.SizeTwoBedOneBath:   1200,
		entities.SizeThreeBedTwoBath: 1600,
		entities.SizeFourBedTwoBath:  2000,
		entities.SizeFiveBedTwoBath:  2400,
	},
	entities.ServiceTenancyCleanUnfurnished: {
		entities.SizeOneBedOneBath:   1000,
		entities.SizeTwoBedOneBath:   1500,
		entities.SizeThreeBedTwoBath: 2000,
		entities.SizeFourBedTwoBath:  2500,
		entities.SizeFiveBedTwoBath:  3000,
	},
}

// serviceAliases resolves drifted client labels to canonical catalog keys.
// Aliasing is one level deep: every target must be a basePrices key, never
// another alias.
var serviceAliases = map[entities.ServiceType]entities.ServiceType{
	entities.AliasTenancyCleanUnfurnished: entities.ServiceTenancyCleanUnfurnished,
}

// addOnPrices maps each add-on to its unit price in whole Rand. Whether an
// add-on is quantity-bearing is form policy, not catalog data; pricing
// charges unit price times max(1, quantity) for any selection.
var addOnPrices = map[entities.AddOn]int{
	entities.AddOnIroningBasket:  150,
	entities.AddOnWindowCleaning: 50,
	entities.AddOnSmallPatio:     200,
	entities.AddOnMediumPatio:    500,
	entities.AddOnLargePatio:     800,
	entities.AddOnCupboardSort:   250,
}

// Normalize resolves a client-supplied service-type label to its canonical
// catalog key. Unknown labels pass through unchanged and simply miss the
// catalog downstream.
func Normalize(serviceType string) entities.ServiceType {
	if canonical, ok := serviceAliases[entities.ServiceType(serviceType)]; ok {
		return canonical
	}
	return entities.ServiceType(serviceType)
}

// BasePrice returns the tabled base price for a service/size pair. The
// second return reports whether the pair exists in the catalog.
func BasePrice(service entities.ServiceType, size entities.PropertySize) (int, bool) {
	sizes, ok := basePrices[service]
	if !ok {
		return 0, false
	}
	price, ok := sizes[size]
	return price, ok
}

// AddOnUnitPrice returns the unit price for an add-on. The second return
// reports whether the add-on is in the catalog.
func AddOnUnitPrice(name entities.AddOn) (int, bool) {
	price, ok := addOnPrices[name]
	return price, ok
}

// Services returns a read-only copy of the base-price table.
func Services() map[entities.ServiceType]map[entities.PropertySize]int {
	out := make(map[entities.ServiceType]map[entities.PropertySize]int, len(basePrices))
	for service, sizes := range basePrices {
		inner := make(map[entities.PropertySize]int, len(sizes))
		for size, price := range sizes {
			inner[size] = price
		}
		out[service] = inner
	}
	return out
}

// Aliases returns a read-only copy of the service-type alias table.
func Aliases() map[entities.ServiceType]entities.ServiceType {
	out := make(map[entities.ServiceType]entities.ServiceType, len(serviceAliases))
	for alias, canonical := range serviceAliases {
		out[alias] = canonical
	}
	return out
}

// AddOns returns a read-only copy of the add-on price table.
func AddOns() map[entities.AddOn]int {
	out := make(map[entities.AddOn]int, len(addOnPrices))
	for name, price := range addOnPrices {
		out[name] = price
	}
	return out
}

// PropertySizes lists the priced size tiers in display order.
func PropertySizes() []entities.PropertySize {
	return []entities.PropertySize{
		entities.SizeOneBedOneBath,
		entities.SizeTwoBedOneBath,
		entities.SizeThreeBedTwoBath,
		entities.SizeFourBedTwoBath,
		entities.SizeFiveBedTwoBath,
	}
}
