package fetchers

import (
	"fmt"
	"log"
	"time"

	rates "github.com/malusev998/privat-rates"
)

type (
	BaseConfig struct {
		URL    string
		Logger *log.Logger
	}
	PrivatBankConfig struct {
		BaseConfig
		Days    int
		MaxDays int
		Timeout time.Duration
	}
)

func NewRateFetcher(provider rates.Provider, config interface{}) (rates.Fetcher, error) {
	switch provider {
	case rates.PrivatBankProvider:
		c, ok := config.(PrivatBankConfig)
		if !ok {
			return nil, fmt.Errorf("%w: expected PrivatBankConfig for %s", rates.ErrInvalidConfiguration, provider)
		}

		return NewPrivatBankFetcher(c)
	}

	return nil, fmt.Errorf("%w: fetcher %s does not exist", rates.ErrInvalidConfiguration, provider)
}
