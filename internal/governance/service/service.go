// Package service wires credential verification, session resolution,
// authorization policy, and the access-request lifecycle into one
// governance facade.
package service

import (
	"fmt"
	"time"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/audit"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/credential"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/token"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/id"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

// Config carries the collaborators a Service needs. Now and IDGenerator
// default to time.Now and platform IDs when unset.
type Config struct {
	Accounts storage.AccountStore
	Areas    storage.AreaStore
	Requests storage.AccessRequestStore
	Verifier credential.Verifier
	Codec    *token.Codec
	Audit    *audit.Emitter

	Now         func() time.Time
	IDGenerator func() (string, error)
}

// Service exposes the governance operations of the console.
type Service struct {
	accounts storage.AccountStore
	areas    storage.AreaStore
	requests storage.AccessRequestStore
	verifier credential.Verifier
	codec    *token.Codec
	audit    *audit.Emitter

	now         func() time.Time
	idGenerator func() (string, error)
}

// New creates a governance service from its collaborators.
func New(cfg Config) (*Service, error) {
	if cfg.Accounts == nil {
		return nil, fmt.Errorf("account store is required")
	}
	if cfg.Areas == nil {
		return nil, fmt.Errorf("area store is required")
	}
	if cfg.Requests == nil {
		return nil, fmt.Errorf("access request store is required")
	}
	if cfg.Codec == nil {
		return nil, fmt.Errorf("session codec is required")
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	idGenerator := cfg.IDGenerator
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	return &Service{
		accounts:    cfg.Accounts,
		areas:       cfg.Areas,
		requests:    cfg.Requests,
		verifier:    cfg.Verifier,
		codec:       cfg.Codec,
		audit:       cfg.Audit,
		now:         now,
		idGenerator: idGenerator,
	}, nil
}
