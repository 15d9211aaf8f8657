// Copyright (c) 2026 Server Settings Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package main

import (
	"fmt"
	"log/slog"
	"os"

	settings "github.com/jtheisen/server-settings"

	"github.com/spf13/viper"
)

type config struct {
	Host    string `setting:"Host"`
	Port    int    `setting:"Port"`
	Debug   bool   `setting:"Debug"`
	Retries int    `setting:"Retries"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// the platform store is usually populated by the host; here we stand
	// in for it with an explicit viper instance
	store := viper.New()
	store.Set("Host", "example.com")
	store.Set("Retries", 3)

	r := settings.New(settings.Chain(
		settings.FileInHome("custom_chain", settings.WithLogger(logger)),
		settings.FromViper(store),
		settings.FromEnv(),
	))

	var cfg config
	err := r.Unmarshal(&cfg)
	if err != nil {
		slog.Error("failed to unmarshal settings", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("%+v\n", cfg)
}
