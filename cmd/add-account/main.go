// Package main provisions a single console account from the command line.
// The password comes from WAYNE_NEW_ACCOUNT_PASSWORD rather than a flag so
// it never lands in shell history or process listings.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/account"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/credential"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/config"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage/sqlite"
)

type addAccountEnv struct {
	DBPath     string `env:"WAYNE_DB_PATH" envDefault:"data/wayne.db"`
	BcryptCost int    `env:"WAYNE_BCRYPT_COST" envDefault:"12"`
	Password   string `env:"WAYNE_NEW_ACCOUNT_PASSWORD"`
}

func main() {
	var email string
	var fullName string
	var roleValue string
	flag.StringVar(&email, "email", "", "account email (required)")
	flag.StringVar(&fullName, "name", "", "account full name (required)")
	flag.StringVar(&roleValue, "role", "basic", "account role: basic, manager, or administrator")
	flag.Parse()

	var cfg addAccountEnv
	if err := config.ParseEnv(&cfg); err != nil {
		config.Exitf("load config: %v", err)
	}
	if cfg.Password == "" {
		config.Exitf("WAYNE_NEW_ACCOUNT_PASSWORD is required")
	}

	parsedRole, err := role.Parse(roleValue)
	if err != nil {
		config.Exitf("parse role: %v", err)
	}

	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		config.Exitf("open store: %v", err)
	}
	defer store.Close()

	verifier := credential.NewVerifier(cfg.BcryptCost)
	hash, err := verifier.Hash(cfg.Password)
	if err != nil {
		config.Exitf("hash password: %v", err)
	}

	created, err := account.Create(account.CreateInput{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
		Role:         parsedRole,
	}, nil, nil)
	if err != nil {
		config.Exitf("create account: %v", err)
	}
	if err := store.PutAccount(context.Background(), created); err != nil {
		config.Exitf("store account: %v", err)
	}
	fmt.Fprintf(os.Stdout, "created %s account %s (%s)\n", created.Role, created.Email, created.ID)
}
