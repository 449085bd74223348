package main

import (
	"context"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/viper"

	rates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/fetchers"
	"github.com/malusev998/privat-rates/storage"
)

type (
	StorageConfig map[storage.Provider]interface{}
	Config        struct {
		Provider      rates.Provider
		URL           string
		MaxDays       int
		Timeout       time.Duration
		Currencies    []rates.Currency
		Storage       []storage.Provider
		StorageConfig StorageConfig
	}
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("provider", "privatbank")
	v.SetDefault("url", fetchers.PrivatBankURL)
	v.SetDefault("maxdays", fetchers.DefaultMaxDays)
	v.SetDefault("timeout", fetchers.DefaultTimeout)
	v.SetDefault("currencies", []string{string(rates.USD), string(rates.EUR)})
	v.SetDefault("storage", []string{})
	v.SetDefault("migrate", false)
}

func getMysqlDSN(config map[string]string) string {
	mysqlDriverConfig := mysql.NewConfig()
	mysqlDriverConfig.User = config["user"]
	mysqlDriverConfig.Passwd = config["password"]
	mysqlDriverConfig.Addr = config["addr"]
	mysqlDriverConfig.Net = "tcp"
	mysqlDriverConfig.DBName = config["db"]

	return mysqlDriverConfig.FormatDSN()
}

func getConfig(ctx context.Context, v *viper.Viper) (*Config, error) {
	provider, err := rates.ConvertToProviderFromString(v.GetString("provider"))
	if err != nil {
		return nil, err
	}

	currencies, err := rates.ConvertToCurrenciesFromStringSlice(v.GetStringSlice("currencies"))
	if err != nil {
		return nil, err
	}

	storages, err := storage.ConvertToProvidersFromStringSlice(v.GetStringSlice("storage"))
	if err != nil {
		return nil, err
	}

	mysqlConfig := v.GetStringMapString("databases.mysql")
	mongodbConfig := v.GetStringMapString("databases.mongo")

	storageBaseConfig := storage.BaseConfig{
		Cxt:     ctx,
		Migrate: v.GetBool("migrate"),
	}

	return &Config{
		Provider:   provider,
		URL:        v.GetString("url"),
		MaxDays:    v.GetInt("maxdays"),
		Timeout:    v.GetDuration("timeout"),
		Currencies: currencies,
		Storage:    storages,
		StorageConfig: StorageConfig{
			storage.MySQL: storage.MySQLConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: getMysqlDSN(mysqlConfig),
				TableName:        mysqlConfig["table"],
			},
			storage.MongoDB: storage.MongoDBConfig{
				BaseConfig:       storageBaseConfig,
				ConnectionString: mongodbConfig["uri"],
				Database:         mongodbConfig["db"],
				Collection:       mongodbConfig["collection"],
			},
		},
	}, nil
}
