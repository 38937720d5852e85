// Package main seeds the local development database with the demo accounts,
// the Server Room area, and one pending access request.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/credential"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/config"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/seed"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage/sqlite"
)

type seedEnv struct {
	DBPath     string `env:"WAYNE_DB_PATH" envDefault:"data/wayne.db"`
	BcryptCost int    `env:"WAYNE_BCRYPT_COST" envDefault:"12"`
}

func main() {
	var cfg seedEnv
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer store.Close()

	if err := seed.Run(ctx, store, credential.NewVerifier(cfg.BcryptCost)); err != nil {
		config.Exitf("seed: %v", err)
	}
	fmt.Fprintf(os.Stdout, "seeded %s\n", cfg.DBPath)
}
