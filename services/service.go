package services

import (
	"context"
	"io"
	"log"
	"sync"

	"golang.org/x/sync/errgroup"

	rates "github.com/malusev998/privat-rates"
)

type Service struct {
	Fetcher rates.Fetcher
	Filter  Filter
	Storage []rates.Storage
	Logger  *log.Logger
}

func saveToStorage(
	ctx context.Context,
	days rates.ResultSet,
	data map[string][]rates.QuoteWithID,
	storage rates.Storage,
	mutex sync.Locker,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	quotes, err := storage.Store(days)

	if err != nil {
		return err
	}

	mutex.Lock()
	data[storage.GetStorageProviderName()] = quotes
	mutex.Unlock()

	return nil
}

// Save archives days into every configured storage and returns what each
// storage stored, keyed by storage name.
func (s Service) Save(ctx context.Context, days rates.ResultSet) (map[string][]rates.QuoteWithID, error) {
	data := make(map[string][]rates.QuoteWithID, len(s.Storage))

	if len(s.Storage) == 0 || len(days) == 0 {
		return data, nil
	}

	mutex := &sync.Mutex{}
	g, ctx := errgroup.WithContext(ctx)

	for _, storage := range s.Storage {
		storage := storage

		g.Go(func() error {
			return saveToStorage(ctx, days, data, storage, mutex)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return data, nil
}

func (s Service) Run(ctx context.Context, days int) (rates.ResultSet, error) {
	logger := s.Logger

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	results, err := s.Fetcher.FetchAll(ctx, days)

	if err != nil {
		return nil, err
	}

	failed := 0

	for _, r := range results {
		if !r.Present() {
			failed++
		}
	}

	filtered := s.Filter.Filter(results)

	logger.Printf("Fetched %d days, %d failed, %d with matching currencies", len(results), failed, len(filtered))

	saved, err := s.Save(ctx, filtered)

	if err != nil {
		return nil, err
	}

	for storage, quotes := range saved {
		logger.Printf("Saved %d quotes to %s", len(quotes), storage)
	}

	return filtered, nil
}
