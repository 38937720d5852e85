// Package storage defines the persistence interfaces the governance core
// consumes. Implementations must keep the access-request uniqueness and
// settle operations atomic; the core relies on that for its race guarantees.
package storage

import (
	"context"
	"time"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/accessrequest"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/account"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/area"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")
	// ErrEmailTaken indicates the account email is already registered.
	ErrEmailTaken = apperrors.New(apperrors.CodeEmailTaken, "email is already registered")
	// ErrAreaNameTaken indicates the area name is already in use.
	ErrAreaNameTaken = apperrors.New(apperrors.CodeAreaNameTaken, "area name is already in use")
	// ErrDuplicatePending indicates a pending request already exists for the
	// same requester and area. Stores must return it for the uniqueness
	// violation at insert time, not only for pre-checks.
	ErrDuplicatePending = apperrors.New(apperrors.CodeRequestDuplicatePending, "a pending request for this area already exists")
	// ErrAlreadyProcessed indicates a settle attempt on a terminal request.
	ErrAlreadyProcessed = apperrors.New(apperrors.CodeRequestAlreadyProcessed, "access request was already processed")
)

// AccountStore persists console account records.
type AccountStore interface {
	PutAccount(ctx context.Context, a account.Account) error
	GetAccount(ctx context.Context, accountID string) (account.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (account.Account, error)
	ListAccounts(ctx context.Context) ([]account.Account, error)
	DeleteAccount(ctx context.Context, accountID string) error
}

// AreaStore persists restricted-area records.
type AreaStore interface {
	PutArea(ctx context.Context, a area.Area) error
	GetArea(ctx context.Context, areaID string) (area.Area, error)
	GetAreaByName(ctx context.Context, name string) (area.Area, error)
	ListAreas(ctx context.Context) ([]area.Area, error)
	DeleteArea(ctx context.Context, areaID string) error
}

// AccessRequestStore persists access-request records.
//
// InsertAccessRequest must be backed by a uniqueness guarantee on
// (requester, area) over pending rows, and SettleAccessRequest must be a
// single conditional write, so two concurrent callers cannot both succeed.
type AccessRequestStore interface {
	InsertAccessRequest(ctx context.Context, r accessrequest.AccessRequest) error
	GetAccessRequest(ctx context.Context, requestID string) (accessrequest.AccessRequest, error)
	FindPendingAccessRequest(ctx context.Context, requesterID, areaName string) (accessrequest.AccessRequest, error)
	SettleAccessRequest(ctx context.Context, requestID string, status accessrequest.Status, decidedBy string, decidedAt time.Time) error
	ListAccessRequests(ctx context.Context) ([]accessrequest.AccessRequest, error)
}

// AuditEvent records one governance decision for the durable audit trail.
type AuditEvent struct {
	ID        string
	Name      string
	ActorID   string
	SubjectID string
	Outcome   string
	CreatedAt time.Time
}

// AuditStore persists the append-only audit trail.
type AuditStore interface {
	AppendAuditEvent(ctx context.Context, event AuditEvent) error
	ListAuditEvents(ctx context.Context, limit int) ([]AuditEvent, error)
}
