package service

import (
	"context"
	"strings"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/audit"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/account"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/policy"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/principal"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
)

// CreateAccountInput carries the plaintext provisioning fields. The
// plaintext password never reaches storage; it is hashed here.
type CreateAccountInput struct {
	Email    string
	Password string
	FullName string
	Role     string
}

// CreateAccount provisions a console account. Administrator only.
func (s *Service) CreateAccount(ctx context.Context, actor principal.Principal, input CreateAccountInput) (account.Account, error) {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return account.Account{}, err
	}

	if strings.TrimSpace(input.Password) == "" {
		return account.Account{}, apperrors.New(apperrors.CodeInvalidInput, "a password is required")
	}
	parsedRole, err := role.Parse(input.Role)
	if err != nil {
		return account.Account{}, err
	}
	hash, err := s.verifier.Hash(input.Password)
	if err != nil {
		return account.Account{}, err
	}

	created, err := account.Create(account.CreateInput{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         parsedRole,
	}, s.now, s.idGenerator)
	if err != nil {
		return account.Account{}, err
	}

	if err := s.accounts.PutAccount(ctx, created); err != nil {
		return account.Account{}, err
	}
	if err := s.emit(ctx, "account.create", actor.ID, created.ID, audit.OutcomeApplied); err != nil {
		return account.Account{}, err
	}
	return created, nil
}

// ListAccounts returns every account. Administrator only.
func (s *Service) ListAccounts(ctx context.Context, actor principal.Principal) ([]account.Account, error) {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return nil, err
	}
	return s.accounts.ListAccounts(ctx)
}

// SetAccountActive flips an account's active flag. Managers may toggle
// accounts, but never their own off; existing sessions of a deactivated
// account die on the next resolve.
func (s *Service) SetAccountActive(ctx context.Context, actor principal.Principal, accountID string, active bool) (account.Account, error) {
	if err := policy.RequireRole(actor, role.Manager); err != nil {
		return account.Account{}, err
	}
	if !active {
		if err := policy.VetoSelfMutation(actor, accountID, policy.MutationDeactivate, ""); err != nil {
			return account.Account{}, err
		}
	}

	a, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return account.Account{}, err
	}
	updated := account.SetActive(a, active, s.now)
	if err := s.accounts.PutAccount(ctx, updated); err != nil {
		return account.Account{}, err
	}

	name := "account.activate"
	if !active {
		name = "account.deactivate"
	}
	if err := s.emit(ctx, name, actor.ID, updated.ID, audit.OutcomeApplied); err != nil {
		return account.Account{}, err
	}
	return updated, nil
}

// ChangeAccountRole assigns an account a new role. Administrator only; an
// administrator cannot strip their own administrator role.
func (s *Service) ChangeAccountRole(ctx context.Context, actor principal.Principal, accountID, newRoleValue string) (account.Account, error) {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return account.Account{}, err
	}
	newRole, err := role.Parse(newRoleValue)
	if err != nil {
		return account.Account{}, err
	}
	if err := policy.VetoSelfMutation(actor, accountID, policy.MutationChangeRole, newRole); err != nil {
		return account.Account{}, err
	}

	a, err := s.accounts.GetAccount(ctx, accountID)
	if err != nil {
		return account.Account{}, err
	}
	updated, err := account.ChangeRole(a, newRole, s.now)
	if err != nil {
		return account.Account{}, err
	}
	if err := s.accounts.PutAccount(ctx, updated); err != nil {
		return account.Account{}, err
	}
	if err := s.emit(ctx, "account.change_role", actor.ID, updated.ID, audit.OutcomeApplied); err != nil {
		return account.Account{}, err
	}
	return updated, nil
}

// DeleteAccount removes an account. Administrator only; self-deletion is
// vetoed.
func (s *Service) DeleteAccount(ctx context.Context, actor principal.Principal, accountID string) error {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return err
	}
	if err := policy.VetoSelfMutation(actor, accountID, policy.MutationDelete, ""); err != nil {
		return err
	}
	if err := s.accounts.DeleteAccount(ctx, accountID); err != nil {
		return err
	}
	return s.emit(ctx, "account.delete", actor.ID, accountID, audit.OutcomeApplied)
}
