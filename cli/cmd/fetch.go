package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/spf13/cobra"

	rates "github.com/malusev998/privat-rates"
	"github.com/malusev998/privat-rates/fetchers"
)

func parseDays(arg string) (int, error) {
	days, err := strconv.Atoi(arg)

	if err != nil {
		return 0, fmt.Errorf("days must be an integer, got %q", arg)
	}

	return days, nil
}

func checkDays(days, maxDays int) error {
	if days > maxDays {
		return fmt.Errorf("%w: days must not exceed %d, got %d", rates.ErrInvalidConfiguration, maxDays, days)
	}

	if days < 0 {
		return fmt.Errorf("%w: days must not be negative, got %d", rates.ErrInvalidConfiguration, days)
	}

	return nil
}

func printResult(w io.Writer, result rates.ResultSet, pretty bool) error {
	if result == nil {
		result = rates.ResultSet{}
	}

	encoder := json.NewEncoder(w)

	if pretty {
		encoder.SetIndent("", "  ")
	}

	return encoder.Encode(result)
}

func fetchCobraCommand(config *Config) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		v := config.viper()

		maxDays := v.GetInt("maxdays")
		if maxDays <= 0 || maxDays > fetchers.DefaultMaxDays {
			maxDays = fetchers.DefaultMaxDays
		}

		days, err := parseDays(args[0])
		if err != nil {
			return err
		}

		// From here on the argument is well formed, errors are not usage errors.
		cmd.SilenceUsage = true

		if err := checkDays(days, maxDays); err != nil {
			return err
		}

		errLogger := log.New(cmd.ErrOrStderr(), "privat-rates-error ", 0)
		debugLogger := log.New(io.Discard, "", 0)

		if config.debug {
			debugLogger = log.New(cmd.ErrOrStderr(), "privat-rates ", 0)
		}

		service, err := config.NewService(v, days, errLogger, debugLogger)
		if err != nil {
			return err
		}

		result, err := service.Run(config.context(), days)
		if err != nil {
			return err
		}

		return printResult(cmd.OutOrStdout(), result, config.pretty)
	}
}
