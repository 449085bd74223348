package rates_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/privat-rates"
)

func TestConvertToCurrenciesFromStringSlice(t *testing.T) {
	assert := require.New(t)

	values := []struct {
		value    []string
		expected []rates.Currency
		err      error
	}{
		{[]string{"USD", "eur"}, []rates.Currency{rates.USD, rates.EUR}, nil},
		{[]string{" usd "}, []rates.Currency{rates.USD}, nil},
		{[]string{"JPY"}, nil, errors.New("value JPY is not valid Currency")},
	}

	for _, value := range values {
		currencies, err := rates.ConvertToCurrenciesFromStringSlice(value.value)
		assert.Equal(value.expected, currencies)
		assert.Equal(value.err, err)
	}
}

func TestConvertToProviderFromString(t *testing.T) {
	assert := require.New(t)
	values := []struct {
		value    string
		expected rates.Provider
		err      error
	}{
		{"privatbank", rates.PrivatBankProvider, nil},
		{"PrivatBank", rates.PrivatBankProvider, nil},
		{"", rates.EmptyProvider, errors.New("value  is not valid Provider")},
		{"not-valid-value", rates.EmptyProvider, errors.New("value not-valid-value is not valid Provider")},
	}

	for _, value := range values {
		provider, err := rates.ConvertToProviderFromString(value.value)
		assert.Equal(value.expected, provider)
		assert.Equal(value.err, err)
	}
}
