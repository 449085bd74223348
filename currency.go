package rates

import (
	"context"
	"fmt"
	"strings"
)

type (
	Currency string

	Fetcher interface {
		// FetchAll returns one DayResult per requested day, index-aligned
		// with DateRange(now, days).
		FetchAll(ctx context.Context, days int) ([]DayResult, error)
	}
)

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
)

var SupportedCurrencies = []Currency{USD, EUR}

func ConvertToCurrenciesFromStringSlice(strs []string) ([]Currency, error) {
	currencies := make([]Currency, 0, len(strs))

	for _, str := range strs {
		c, err := ConvertToCurrencyFromString(str)
		if err != nil {
			return nil, err
		}

		currencies = append(currencies, c)
	}

	return currencies, nil
}

func ConvertToCurrencyFromString(str string) (Currency, error) {
	switch strings.ToUpper(strings.TrimSpace(str)) {
	case "USD":
		return USD, nil
	case "EUR":
		return EUR, nil
	}

	return "", fmt.Errorf("value %s is not valid Currency", str)
}
