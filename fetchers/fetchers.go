package fetchers

import (
	"context"
	"net/http"
	"time"
)

const (
	PrivatBankURL     = "https://api.privatbank.ua/p24api/exchange_rates?json&date="
	DefaultMaxDays    = 10
	DefaultTimeout    = 30 * time.Second
	maxBodyBytes      = 1 << 20
	acceptContentType = "application/json"
)

func getData(ctx context.Context, url string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)

	if err != nil {
		return nil, err
	}

	req.Header.Add("Accept", acceptContentType)

	return req, nil
}

// newClient builds the client shared by every request of one FetchAll call.
func newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: http.DefaultTransport.(*http.Transport).Clone(),
		Timeout:   timeout,
	}
}
