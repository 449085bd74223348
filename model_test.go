package rates_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/privat-rates"
)

func TestRawDayPayload_Unmarshal(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	body := `{
		"date": "01.01.2024",
		"bank": "PB",
		"baseCurrency": 980,
		"baseCurrencyLit": "UAH",
		"exchangeRate": [
			{"baseCurrency": "UAH", "currency": "USD", "saleRateNB": 37.98, "purchaseRateNB": 37.98, "saleRate": 38.2, "purchaseRate": 37.6},
			{"baseCurrency": "UAH", "currency": "AZN", "saleRateNB": 22.34, "purchaseRateNB": 22.34}
		]
	}`

	var payload rates.RawDayPayload
	asserts.NoError(json.Unmarshal([]byte(body), &payload))

	asserts.Equal("01.01.2024", payload.Date)
	asserts.Len(payload.ExchangeRate, 2)
	asserts.True(payload.ExchangeRate[0].SaleRate.Valid)
	asserts.Equal("38.2", payload.ExchangeRate[0].SaleRate.Decimal.String())
	asserts.False(payload.ExchangeRate[1].SaleRate.Valid)
	asserts.False(payload.ExchangeRate[1].PurchaseRate.Valid)
}

func TestResultSet_MarshalJSON(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	rs := rates.ResultSet{
		{
			Date: "01.01.2024",
			Quotes: map[rates.Currency]rates.CurrencyQuote{
				rates.USD: {
					Sale:     decimal.NewNullDecimal(decimal.RequireFromString("40.1")),
					Purchase: decimal.NewNullDecimal(decimal.RequireFromString("39.5")),
				},
				rates.EUR: {},
			},
		},
	}

	out, err := json.Marshal(rs)
	asserts.NoError(err)
	asserts.JSONEq(`[{"01.01.2024":{"EUR":{"sale":null,"purchase":null},"USD":{"sale":40.1,"purchase":39.5}}}]`, string(out))

	var decoded rates.ResultSet
	asserts.NoError(json.Unmarshal(out, &decoded))
	asserts.Equal(rs, decoded)
}

func TestResultSet_Quotes(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	rs := rates.ResultSet{
		{Date: "02.01.2024", Quotes: map[rates.Currency]rates.CurrencyQuote{rates.EUR: {}, rates.USD: {}}},
		{Date: "01.01.2024", Quotes: map[rates.Currency]rates.CurrencyQuote{rates.EUR: {}}},
	}

	quotes := rs.Quotes(rates.PrivatBankProvider)
	asserts.Len(quotes, 3)
	asserts.Equal(rates.USD, quotes[0].Currency)
	asserts.Equal(rates.EUR, quotes[1].Currency)
	asserts.Equal("01.01.2024", quotes[2].Date)

	for _, q := range quotes {
		asserts.Equal(rates.PrivatBankProvider, q.Provider)
	}
}
