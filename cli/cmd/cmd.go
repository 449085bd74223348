package cmd

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	rates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/fetchers"
)

type (
	// ServiceFactory builds the service for an already validated day count.
	ServiceFactory func(v *viper.Viper, days int, errLogger, debugLogger *log.Logger) (rates.Service, error)

	Config struct {
		Ctx        context.Context
		Viper      *viper.Viper
		NewService ServiceFactory
		debug      bool
		pretty     bool
	}
)

func (c *Config) viper() *viper.Viper {
	if c.Viper == nil {
		c.Viper = viper.GetViper()
	}

	return c.Viper
}

func (c *Config) context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}

	return c.Ctx
}

func loadConfig(v *viper.Viper, configFile string, explicit bool) error {
	if configFile == "" {
		return nil
	}

	absolutePath, err := filepath.Abs(configFile)
	if err != nil {
		return err
	}

	v.SetConfigFile(absolutePath)

	if err := v.ReadInConfig(); err != nil {
		// The default config file is optional.
		if os.IsNotExist(err) && !explicit {
			return nil
		}

		return err
	}

	return nil
}

func NewRootCommand(config *Config) *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:     "privat-rates <days>",
		Short:   "USD and EUR exchange rates from PrivatBank for the last days",
		Long:    "Fetches PrivatBank exchange rates for today and up to the previous days and prints the USD and EUR sale/purchase rates as JSON.",
		Version: "v1.0.0",
		Args:    cobra.ExactArgs(1),
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return loadConfig(config.viper(), configFile, cmd.Flags().Changed("config"))
	}
	rootCmd.RunE = fetchCobraCommand(config)

	rootCmd.PersistentFlags().BoolVar(&config.debug, "debug", false, "Debug flag")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./config.yml", "Path to config file")
	rootCmd.Flags().BoolVar(&config.pretty, "pretty", false, "Indent the JSON output")
	rootCmd.Flags().Duration("timeout", fetchers.DefaultTimeout, "Timeout for a single request, 0 disables it")

	_ = config.viper().BindPFlag("timeout", rootCmd.Flags().Lookup("timeout"))

	return rootCmd
}

func Execute(config *Config) error {
	return NewRootCommand(config).Execute()
}
