package services

import (
	rates "github.com/malusev998/privat-rates"
)

// Filter reduces raw day payloads to the configured currencies.
// The zero value keeps USD and EUR.
type Filter struct {
	Currencies []rates.Currency
}

func (f Filter) wanted() map[string]rates.Currency {
	currencies := f.Currencies

	if len(currencies) == 0 {
		currencies = rates.SupportedCurrencies
	}

	wanted := make(map[string]rates.Currency, len(currencies))

	for _, c := range currencies {
		wanted[string(c)] = c
	}

	return wanted
}

func (f Filter) Filter(results []rates.DayResult) rates.ResultSet {
	wanted := f.wanted()
	filtered := make(rates.ResultSet, 0, len(results))

	for _, result := range results {
		if !result.Present() {
			continue
		}

		quotes := make(map[rates.Currency]rates.CurrencyQuote, len(wanted))

		// Codes match exactly; a later record for the same code replaces the earlier one.
		for _, record := range result.Payload.ExchangeRate {
			c, ok := wanted[record.Currency]
			if !ok {
				continue
			}

			quotes[c] = rates.CurrencyQuote{
				Sale:     record.SaleRate,
				Purchase: record.PurchaseRate,
			}
		}

		if len(quotes) == 0 {
			continue
		}

		filtered = append(filtered, rates.FilteredDay{
			Date:   result.Payload.Date,
			Quotes: quotes,
		})
	}

	return filtered
}

func FilterRates(results []rates.DayResult) rates.ResultSet {
	return Filter{}.Filter(results)
}
