package main

import (
	"context"
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	rates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/fetchers"
	"github.com/malusev998/privat-rates/storage"
)

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	return v
}

func TestGetConfig(t *testing.T) {
	t.Parallel()

	t.Run("Defaults", func(t *testing.T) {
		asserts := require.New(t)

		config, err := getConfig(context.Background(), newViper())

		asserts.NoError(err)
		asserts.Equal(rates.PrivatBankProvider, config.Provider)
		asserts.Equal(fetchers.PrivatBankURL, config.URL)
		asserts.Equal(fetchers.DefaultMaxDays, config.MaxDays)
		asserts.Equal(fetchers.DefaultTimeout, config.Timeout)
		asserts.Equal([]rates.Currency{rates.USD, rates.EUR}, config.Currencies)
		asserts.Empty(config.Storage)
	})

	t.Run("StorageAndDatabases", func(t *testing.T) {
		asserts := require.New(t)
		v := newViper()
		v.Set("storage", []string{"mysql", "mongo"})
		v.Set("migrate", true)
		v.Set("databases.mysql", map[string]interface{}{
			"user": "root", "password": "secret", "addr": "127.0.0.1:3306", "db": "rates", "table": "quotes",
		})
		v.Set("databases.mongo", map[string]interface{}{
			"uri": "mongodb://127.0.0.1:27017", "db": "rates", "collection": "quotes",
		})

		config, err := getConfig(context.Background(), v)
		asserts.NoError(err)
		asserts.Equal([]storage.Provider{storage.MySQL, storage.MongoDB}, config.Storage)

		mysqlConfig, ok := config.StorageConfig[storage.MySQL].(storage.MySQLConfig)
		asserts.True(ok)
		asserts.Equal("root:secret@tcp(127.0.0.1:3306)/rates", mysqlConfig.ConnectionString)
		asserts.Equal("quotes", mysqlConfig.TableName)
		asserts.True(mysqlConfig.Migrate)

		mongoConfig, ok := config.StorageConfig[storage.MongoDB].(storage.MongoDBConfig)
		asserts.True(ok)
		asserts.Equal("mongodb://127.0.0.1:27017", mongoConfig.ConnectionString)
		asserts.Equal("quotes", mongoConfig.Collection)
	})

	errorCases := []struct {
		name  string
		key   string
		value interface{}
		msg   string
	}{
		{"InvalidCurrency", "currencies", []string{"USD", "JPY"}, "value JPY is not valid Currency"},
		{"InvalidStorage", "storage", []string{"postgres"}, "value postgres is not valid Provider"},
		{"InvalidProvider", "provider", "monobank", "value monobank is not valid Provider"},
	}

	for _, c := range errorCases {
		c := c

		t.Run(c.name, func(t *testing.T) {
			asserts := require.New(t)
			v := newViper()
			v.Set(c.key, c.value)

			config, err := getConfig(context.Background(), v)

			asserts.Nil(config)
			asserts.EqualError(err, c.msg)
		})
	}
}

type closingStorage struct {
	rates.Storage
	closed int
}

func (s *closingStorage) GetStorageProviderName() string {
	return "closing"
}

func (s *closingStorage) Close() error {
	s.closed++
	return nil
}

func TestCreateStorages(t *testing.T) {
	t.Parallel()

	t.Run("KeepsBuiltStoragesOnError", func(t *testing.T) {
		asserts := require.New(t)

		// sql.Open does not connect, so the MySQL storage is built without a server.
		config := &Config{
			Storage: []storage.Provider{storage.MySQL, storage.MongoDB},
			StorageConfig: StorageConfig{
				storage.MySQL: storage.MySQLConfig{ConnectionString: "root@tcp(127.0.0.1:3306)/rates"},
			},
		}

		storages, err := createStorages(config)

		asserts.EqualError(err, "storage mongodb does not exist")
		asserts.Len(storages, 1)
		asserts.NoError(storages[0].Close())
	})

	t.Run("WrongConfigType", func(t *testing.T) {
		asserts := require.New(t)
		config := &Config{
			Storage:       []storage.Provider{storage.MySQL},
			StorageConfig: StorageConfig{storage.MySQL: storage.MongoDBConfig{}},
		}

		storages, err := createStorages(config)

		asserts.True(errors.Is(err, rates.ErrInvalidConfiguration))
		asserts.Empty(storages)
	})
}

func TestApplication_Close(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	first, second := &closingStorage{}, &closingStorage{}
	app := &application{ctx: context.Background(), storages: []rates.Storage{first, second}}

	app.close()

	asserts.Equal(1, first.closed)
	asserts.Equal(1, second.closed)
}
