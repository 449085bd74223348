package storage_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/storage"
)

func TestConvertToProvidersFromStringSlice(t *testing.T) {
	assert := require.New(t)

	providers, err := storage.ConvertToProvidersFromStringSlice([]string{"MySQL", "mongodb", "mongo"})
	assert.NoError(err)
	assert.Equal([]storage.Provider{storage.MySQL, storage.MongoDB, storage.MongoDB}, providers)

	providers, err = storage.ConvertToProvidersFromStringSlice([]string{"redis"})
	assert.Nil(providers)
	assert.EqualError(err, "value redis is not valid Provider")
}

func TestNewStorage(t *testing.T) {
	assert := require.New(t)

	st, err := storage.NewStorage(storage.Provider("redis"), nil)
	assert.Nil(st)
	assert.True(errors.Is(err, storage.ErrStorageNotFound))

	st, err = storage.NewStorage(storage.MySQL, storage.MongoDBConfig{})
	assert.Nil(st)
	assert.True(errors.Is(err, rates.ErrInvalidConfiguration))
}
