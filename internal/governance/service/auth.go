package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/audit"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/principal"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/token"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

// ErrInvalidCredentials covers every authentication failure: unknown email,
// wrong password, and deactivated account. Collapsing them denies an
// attacker a probe for which emails exist.
var ErrInvalidCredentials = apperrors.New(apperrors.CodeInvalidCredentials, "email or password is incorrect")

// emit appends one audit event. An emit failure fails the operation that
// produced the event; an unrecorded governance decision must not stand.
func (s *Service) emit(ctx context.Context, name, actorID, subjectID string, outcome audit.Outcome) error {
	err := s.audit.Emit(ctx, storage.AuditEvent{
		Name:      name,
		ActorID:   actorID,
		SubjectID: subjectID,
		Outcome:   string(outcome),
	})
	if err != nil {
		return fmt.Errorf("audit %s: %w", name, err)
	}
	return nil
}

// Authenticate verifies a credential pair and issues a session token for the
// matching account.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, principal.Principal, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	a, err := s.accounts.GetAccountByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return "", principal.Principal{}, ErrInvalidCredentials
	}
	if err != nil {
		return "", principal.Principal{}, err
	}

	if !s.verifier.Verify(password, a.PasswordHash) || !a.Active {
		if auditErr := s.emit(ctx, "session.authenticate", a.ID, "", audit.OutcomeDenied); auditErr != nil {
			return "", principal.Principal{}, auditErr
		}
		return "", principal.Principal{}, ErrInvalidCredentials
	}

	p := principal.Principal{ID: a.ID, FullName: a.FullName, Role: a.Role}
	signed, err := s.codec.Issue(p)
	if err != nil {
		return "", principal.Principal{}, fmt.Errorf("issue session token: %w", err)
	}
	if err := s.emit(ctx, "session.authenticate", a.ID, "", audit.OutcomeGranted); err != nil {
		return "", principal.Principal{}, err
	}
	return signed, p, nil
}

// ResolveSession turns a presented session token into a live principal.
//
// The token's claims are treated as a hypothesis, not a fact: the account is
// re-read and the session only stands while the account is active and its
// identity fields still match the claims byte for byte. Deactivating an
// account or changing its role invalidates outstanding sessions on the next
// resolve.
func (s *Service) ResolveSession(ctx context.Context, tokenString string) (principal.Principal, error) {
	claims, err := s.codec.Parse(tokenString)
	if err != nil {
		return principal.Principal{}, err
	}

	a, err := s.accounts.GetAccount(ctx, claims.AccountID)
	if errors.Is(err, storage.ErrNotFound) {
		return principal.Principal{}, token.ErrInvalid
	}
	if err != nil {
		return principal.Principal{}, err
	}

	if !a.Active || a.ID != claims.AccountID || a.FullName != claims.FullName || a.Role != claims.Role {
		return principal.Principal{}, token.ErrInvalid
	}
	return principal.Principal{ID: a.ID, FullName: a.FullName, Role: a.Role}, nil
}
