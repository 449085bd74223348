package fetchers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	rates "github.com/malusev998/privat-rates"
)

type PrivatBankFetcher struct {
	URL     string
	// Days is the day count the fetcher was configured for. It is only
	// validated on construction; FetchAll takes its own count.
	Days    int
	MaxDays int
	Timeout time.Duration
	Logger  *log.Logger
	Now     func() time.Time
}

func NewPrivatBankFetcher(c PrivatBankConfig) (*PrivatBankFetcher, error) {
	f := &PrivatBankFetcher{
		URL:     c.URL,
		Days:    c.Days,
		MaxDays: c.MaxDays,
		Timeout: c.Timeout,
		Logger:  c.Logger,
		Now:     time.Now,
	}

	if f.URL == "" {
		f.URL = PrivatBankURL
	}

	// The bound can be lowered, never raised.
	if f.MaxDays <= 0 || f.MaxDays > DefaultMaxDays {
		f.MaxDays = DefaultMaxDays
	}

	if f.Logger == nil {
		f.Logger = log.New(io.Discard, "", 0)
	}

	if err := f.ValidateDays(f.Days); err != nil {
		return nil, err
	}

	return f, nil
}

func (p *PrivatBankFetcher) ValidateDays(days int) error {
	if days > p.MaxDays {
		return fmt.Errorf("%w: days must not exceed %d, got %d", rates.ErrInvalidConfiguration, p.MaxDays, days)
	}

	if days < 0 {
		return fmt.Errorf("%w: days must not be negative, got %d", rates.ErrInvalidConfiguration, days)
	}

	return nil
}

// Fetch requests a single date. Failures are logged and returned as an
// absent result, they never surface as errors.
func (p *PrivatBankFetcher) Fetch(ctx context.Context, client *http.Client, date rates.DateKey) rates.DayResult {
	req, err := getData(ctx, p.URL+date.String())

	if err != nil {
		p.Logger.Printf("Error while building request for %s: %v", date, err)
		return rates.Absent(date, fmt.Errorf("%w: %v", rates.ErrRequestFailure, err))
	}

	res, err := client.Do(req)

	if err != nil {
		p.Logger.Printf("Network error for %s: %v", date, err)
		return rates.Absent(date, fmt.Errorf("%w: %v", rates.ErrRequestFailure, err))
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		p.Logger.Printf("Error while fetching rates for %s: %d", date, res.StatusCode)
		return rates.Absent(date, fmt.Errorf("%w: status %d", rates.ErrRequestFailure, res.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))

	if err != nil {
		p.Logger.Printf("Error while reading body for %s: %v", date, err)
		return rates.Absent(date, fmt.Errorf("%w: %v", rates.ErrRequestFailure, err))
	}

	var payload rates.RawDayPayload

	if err := json.Unmarshal(body, &payload); err != nil {
		p.Logger.Printf("Malformed response for %s: %v", date, err)
		return rates.Absent(date, fmt.Errorf("%w: %v", rates.ErrMalformedResponse, err))
	}

	if payload.Date == "" {
		p.Logger.Printf("Malformed response for %s: missing date", date)
		return rates.Absent(date, fmt.Errorf("%w: missing date", rates.ErrMalformedResponse))
	}

	return rates.Present(date, &payload)
}

// FetchAll issues one request per day concurrently and waits for all of
// them. results[i] always belongs to DateRange(now, days)[i].
func (p *PrivatBankFetcher) FetchAll(ctx context.Context, days int) ([]rates.DayResult, error) {
	if err := p.ValidateDays(days); err != nil {
		return nil, err
	}

	if ctx == nil {
		ctx = context.Background()
	}

	dates := rates.DateRange(p.Now(), days)
	results := make([]rates.DayResult, len(dates))

	if len(dates) == 0 {
		return results, nil
	}

	client := newClient(p.Timeout)
	defer client.CloseIdleConnections()

	var g errgroup.Group

	for i, date := range dates {
		i, date := i, date

		g.Go(func() error {
			results[i] = p.Fetch(ctx, client, date)
			return nil
		})
	}

	_ = g.Wait()

	return results, nil
}
