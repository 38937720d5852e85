// Package seed provisions the demo dataset for local development: three
// accounts across the role tiers, one restricted area, and one pending
// access request. Every insert is guarded by a lookup, so running it twice
// changes nothing.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/accessrequest"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/account"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/area"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/credential"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

type demoAccount struct {
	email    string
	fullName string
	password string
	role     role.Role
}

var demoAccounts = []demoAccount{
	{email: "bruce@wayne.com", fullName: "Bruce Wayne", password: "batman123", role: role.Administrator},
	{email: "dick@grayson.com", fullName: "Dick Grayson", password: "asanoturna123", role: role.Manager},
	{email: "damian@wayne.com", fullName: "Damian Wayne", password: "robin123", role: role.Basic},
}

// Store is the slice of persistence the seeder needs.
type Store interface {
	storage.AccountStore
	storage.AreaStore
	storage.AccessRequestStore
}

// Run populates the store with the demo dataset.
func Run(ctx context.Context, store Store, verifier credential.Verifier) error {
	accountsByName := make(map[string]account.Account, len(demoAccounts))
	for _, demo := range demoAccounts {
		existing, err := store.GetAccountByEmail(ctx, demo.email)
		if err == nil {
			accountsByName[existing.FullName] = existing
			continue
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("look up %s: %w", demo.email, err)
		}

		hash, err := verifier.Hash(demo.password)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", demo.email, err)
		}
		created, err := account.Create(account.CreateInput{
			Email:        demo.email,
			FullName:     demo.fullName,
			PasswordHash: hash,
			Role:         demo.role,
		}, nil, nil)
		if err != nil {
			return fmt.Errorf("create account %s: %w", demo.email, err)
		}
		if err := store.PutAccount(ctx, created); err != nil {
			return fmt.Errorf("put account %s: %w", demo.email, err)
		}
		accountsByName[created.FullName] = created
	}

	serverRoom, err := store.GetAreaByName(ctx, "Server Room")
	if errors.Is(err, storage.ErrNotFound) {
		allowed, setErr := role.NewSet(role.Administrator, role.Manager)
		if setErr != nil {
			return setErr
		}
		created, createErr := area.Create(area.CreateInput{
			Name:         "Server Room",
			Description:  "Access to critical servers.",
			AllowedRoles: allowed,
		}, nil, nil)
		if createErr != nil {
			return fmt.Errorf("create area: %w", createErr)
		}
		if err := store.PutArea(ctx, created); err != nil {
			return fmt.Errorf("put area: %w", err)
		}
		serverRoom = created
	} else if err != nil {
		return fmt.Errorf("look up area: %w", err)
	}

	// One pending request from the basic-tier account, so a fresh install
	// has something in the review queue.
	requester, ok := accountsByName["Damian Wayne"]
	if !ok {
		return nil
	}
	_, err = store.FindPendingAccessRequest(ctx, requester.ID, serverRoom.Name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("look up pending request: %w", err)
	}

	request, err := accessrequest.Create(accessrequest.CreateInput{
		RequesterID:   requester.ID,
		RequesterName: requester.FullName,
		AreaName:      serverRoom.Name,
		Justification: "Needed for routine maintenance.",
	}, nil, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if err := store.InsertAccessRequest(ctx, request); errors.Is(err, storage.ErrDuplicatePending) {
		return nil
	} else if err != nil {
		return fmt.Errorf("insert request: %w", err)
	}
	return nil
}
