// Package account models console accounts and their governed mutations.
package account

import (
	"strings"
	"time"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/id"
)

// Account is a durable user record. Role and active are mutated only
// through policy-gated service operations.
type Account struct {
	ID           string
	Email        string
	PasswordHash string
	FullName     string
	Role         role.Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CreateInput describes the fields needed to provision an account.
// PasswordHash must already be a credential digest, never plaintext.
type CreateInput struct {
	Email        string
	FullName     string
	PasswordHash string
	Role         role.Role
}

// NormalizeCreateInput canonicalizes and validates provisioning input.
// Emails are lowercased so lookup is case-insensitive.
func NormalizeCreateInput(input CreateInput) (CreateInput, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if input.Email == "" || !strings.Contains(input.Email, "@") {
		return CreateInput{}, apperrors.New(apperrors.CodeInvalidInput, "a valid email is required")
	}
	input.FullName = strings.TrimSpace(input.FullName)
	if input.FullName == "" {
		return CreateInput{}, apperrors.New(apperrors.CodeInvalidInput, "full name is required")
	}
	if strings.TrimSpace(input.PasswordHash) == "" {
		return CreateInput{}, apperrors.New(apperrors.CodeInvalidInput, "password hash is required")
	}
	if !input.Role.Valid() {
		return CreateInput{}, role.ErrInvalid
	}
	return input, nil
}

// Create constructs a new active account with a generated ID.
func Create(input CreateInput, now func() time.Time, idGenerator func() (string, error)) (Account, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateInput(input)
	if err != nil {
		return Account{}, err
	}

	accountID, err := idGenerator()
	if err != nil {
		return Account{}, apperrors.Wrap(apperrors.CodeUnknown, "generate account id", err)
	}

	createdAt := now().UTC()
	return Account{
		ID:           accountID,
		Email:        normalized.Email,
		PasswordHash: normalized.PasswordHash,
		FullName:     normalized.FullName,
		Role:         normalized.Role,
		Active:       true,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}, nil
}

// SetActive returns the account with its active flag changed.
func SetActive(a Account, active bool, now func() time.Time) Account {
	if now == nil {
		now = time.Now
	}
	a.Active = active
	a.UpdatedAt = now().UTC()
	return a
}

// ChangeRole returns the account with a new, validated role.
func ChangeRole(a Account, newRole role.Role, now func() time.Time) (Account, error) {
	if now == nil {
		now = time.Now
	}
	if !newRole.Valid() {
		return Account{}, role.ErrInvalid
	}
	a.Role = newRole
	a.UpdatedAt = now().UTC()
	return a, nil
}
