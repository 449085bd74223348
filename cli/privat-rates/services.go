package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/viper"

	rates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/fetchers"
	"github.com/malusev998/privat-rates/services"
	"github.com/malusev998/privat-rates/storage"
)

type application struct {
	ctx      context.Context
	storages []rates.Storage
	logger   *log.Logger
}

func createStorages(config *Config) ([]rates.Storage, error) {
	storages := make([]rates.Storage, 0, len(config.Storage))

	for _, s := range config.Storage {
		c, ok := config.StorageConfig[s]
		if !ok {
			return storages, fmt.Errorf("storage %s does not exist", s)
		}

		st, err := storage.NewStorage(s, c)
		if err != nil {
			return storages, err
		}

		storages = append(storages, st)
	}

	return storages, nil
}

func (a *application) createService(v *viper.Viper, days int, errLogger, debugLogger *log.Logger) (rates.Service, error) {
	a.logger = errLogger

	config, err := getConfig(a.ctx, v)
	if err != nil {
		return nil, err
	}

	fetcher, err := fetchers.NewRateFetcher(config.Provider, fetchers.PrivatBankConfig{
		BaseConfig: fetchers.BaseConfig{
			URL:    config.URL,
			Logger: errLogger,
		},
		Days:    days,
		MaxDays: config.MaxDays,
		Timeout: config.Timeout,
	})
	if err != nil {
		return nil, err
	}

	a.storages, err = createStorages(config)
	if err != nil {
		return nil, err
	}

	return services.Service{
		Fetcher: fetcher,
		Filter:  services.Filter{Currencies: config.Currencies},
		Storage: a.storages,
		Logger:  debugLogger,
	}, nil
}

func (a *application) close() {
	for _, st := range a.storages {
		if err := st.Close(); err != nil && a.logger != nil {
			a.logger.Printf("Error while closing %s storage: %v", st.GetStorageProviderName(), err)
		}
	}
}
