package rates

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type (
	RateRecord struct {
		Currency       string              `json:"currency"`
		BaseCurrency   string              `json:"baseCurrency,omitempty"`
		SaleRate       decimal.NullDecimal `json:"saleRate"`
		PurchaseRate   decimal.NullDecimal `json:"purchaseRate"`
		SaleRateNB     decimal.NullDecimal `json:"saleRateNB"`
		PurchaseRateNB decimal.NullDecimal `json:"purchaseRateNB"`
	}

	// RawDayPayload is the decoded body of one exchange_rates response.
	RawDayPayload struct {
		Date            string       `json:"date"`
		Bank            string       `json:"bank,omitempty"`
		BaseCurrency    int          `json:"baseCurrency,omitempty"`
		BaseCurrencyLit string       `json:"baseCurrencyLit,omitempty"`
		ExchangeRate    []RateRecord `json:"exchangeRate"`
	}

	// DayResult is the outcome of fetching a single date. Payload is nil
	// when the fetch failed, and Err then holds the reason.
	DayResult struct {
		Date    DateKey
		Payload *RawDayPayload
		Err     error
	}

	CurrencyQuote struct {
		Sale     decimal.NullDecimal
		Purchase decimal.NullDecimal
	}

	FilteredDay struct {
		Date   string
		Quotes map[Currency]CurrencyQuote
	}

	ResultSet []FilteredDay

	// QuoteWithID is a single archived (date, currency) quote.
	QuoteWithID struct {
		Date      string
		Currency  Currency
		Quote     CurrencyQuote
		Provider  Provider
		CreatedAt time.Time
		ID        interface{}
	}
)

func Present(date DateKey, payload *RawDayPayload) DayResult {
	return DayResult{Date: date, Payload: payload}
}

func Absent(date DateKey, reason error) DayResult {
	return DayResult{Date: date, Err: reason}
}

func (d DayResult) Present() bool {
	return d.Payload != nil
}

func nullableNumber(d decimal.NullDecimal) *json.Number {
	if !d.Valid {
		return nil
	}

	n := json.Number(d.Decimal.String())

	return &n
}

func (q CurrencyQuote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sale     *json.Number `json:"sale"`
		Purchase *json.Number `json:"purchase"`
	}{
		Sale:     nullableNumber(q.Sale),
		Purchase: nullableNumber(q.Purchase),
	})
}

func (q *CurrencyQuote) UnmarshalJSON(b []byte) error {
	var raw struct {
		Sale     decimal.NullDecimal `json:"sale"`
		Purchase decimal.NullDecimal `json:"purchase"`
	}

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	q.Sale = raw.Sale
	q.Purchase = raw.Purchase

	return nil
}

// MarshalJSON renders the day as a single-key object: {"<date>": {...}}.
func (f FilteredDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]map[Currency]CurrencyQuote{
		f.Date: f.Quotes,
	})
}

func (f *FilteredDay) UnmarshalJSON(b []byte) error {
	var raw map[string]map[Currency]CurrencyQuote

	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	if len(raw) != 1 {
		return ErrMalformedResponse
	}

	for date, quotes := range raw {
		f.Date = date
		f.Quotes = quotes
	}

	return nil
}

// Quotes flattens the result set into one entry per (date, currency),
// keeping the day order and a stable currency order inside a day.
func (r ResultSet) Quotes(provider Provider) []QuoteWithID {
	quotes := make([]QuoteWithID, 0, len(r)*len(SupportedCurrencies))

	for _, day := range r {
		for _, c := range SupportedCurrencies {
			q, ok := day.Quotes[c]
			if !ok {
				continue
			}

			quotes = append(quotes, QuoteWithID{
				Date:     day.Date,
				Currency: c,
				Quote:    q,
				Provider: provider,
			})
		}
	}

	return quotes
}
