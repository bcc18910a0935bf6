package pricing

import (
	"angies_cleaning/internal/domain/catalog"
	"angies_cleaning/internal/domain/entities"
)

// Calculate prices a quote from the catalog: tabled base price for the
// service/size pair plus one line per add-on selection at unit price times
// max(1, quantity).
//
// Pure and deterministic; identical inputs always produce identical output.
// Unknown service/size pairs and unknown add-ons price at zero with
// BaseKnown=false (respectively a zero line item) so callers can decide how
// loudly to flag the miss.
func Calculate(service entities.ServiceType, size entities.PropertySize, selections []entities.AddOnSelection) entities.PricedQuote {
	basePrice, baseKnown := catalog.BasePrice(service, size)

	priced := entities.PricedQuote{
		ServiceType:  service,
		PropertySize: size,
		BasePrice:    basePrice,
		BaseKnown:    baseKnown,
		GrandTotal:   basePrice,
	}

	for _, sel := range selections {
		unit, _ := catalog.AddOnUnitPrice(sel.Name)
		quantity := sel.Quantity
		if quantity < 1 {
			quantity = 1
		}
		line := entities.AddOnLineItem{
			Name:      sel.Name,
			Quantity:  quantity,
			UnitPrice: unit,
			LineTotal: unit * quantity,
		}
		priced.AddOns = append(priced.AddOns, line)
		priced.GrandTotal += line.LineTotal
	}

	return priced
}
