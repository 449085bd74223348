package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/malusev998/privat-rates/cli/cmd"
)

func main() {
	// .env is optional, real environment variables win.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("PRIVAT_RATES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	app := &application{ctx: ctx}

	err := cmd.Execute(&cmd.Config{
		Ctx:        ctx,
		Viper:      v,
		NewService: app.createService,
	})

	app.close()
	stop()

	if err != nil {
		os.Exit(1)
	}
}
