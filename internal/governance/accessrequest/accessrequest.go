// Package accessrequest models the lifecycle of restricted-area access requests.
//
// A request starts pending and settles exactly once into approved or
// rejected; there is no reopen. The requester's name and the area's name are
// snapshots taken at creation, so later renames never rewrite history.
package accessrequest

import (
	"strings"
	"time"

	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/id"
)

// Status represents access-request lifecycle state.
type Status string

const (
	// StatusPending indicates the request awaits a manager decision.
	StatusPending Status = "pending"
	// StatusApproved indicates the request was granted. Terminal.
	StatusApproved Status = "approved"
	// StatusRejected indicates the request was refused. Terminal.
	StatusRejected Status = "rejected"
)

// Decision represents a review action taken by a manager or administrator.
type Decision string

const (
	// DecisionApprove settles a pending request as approved.
	DecisionApprove Decision = "approve"
	// DecisionReject settles a pending request as rejected.
	DecisionReject Decision = "reject"
)

// AccessRequest records one principal's ask for standing access to an area.
type AccessRequest struct {
	ID            string
	RequesterID   string
	RequesterName string
	AreaName      string
	Justification string
	Status        Status
	DecidedBy     string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// CreateInput contains requester-provided fields for request creation.
type CreateInput struct {
	RequesterID   string
	RequesterName string
	AreaName      string
	Justification string
}

// NormalizeCreateInput canonicalizes and validates request creation input.
// Justification may be empty.
func NormalizeCreateInput(input CreateInput) (CreateInput, error) {
	input.RequesterID = strings.TrimSpace(input.RequesterID)
	if input.RequesterID == "" {
		return CreateInput{}, apperrors.New(apperrors.CodeInvalidInput, "requester id is required")
	}
	input.RequesterName = strings.TrimSpace(input.RequesterName)
	if input.RequesterName == "" {
		return CreateInput{}, apperrors.New(apperrors.CodeInvalidInput, "requester name is required")
	}
	input.AreaName = strings.TrimSpace(input.AreaName)
	if input.AreaName == "" {
		return CreateInput{}, apperrors.New(apperrors.CodeInvalidInput, "area name is required")
	}
	input.Justification = strings.TrimSpace(input.Justification)
	return input, nil
}

// Create constructs a normalized pending access request.
func Create(input CreateInput, now func() time.Time, idGenerator func() (string, error)) (AccessRequest, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateInput(input)
	if err != nil {
		return AccessRequest{}, err
	}

	requestID, err := idGenerator()
	if err != nil {
		return AccessRequest{}, apperrors.Wrap(apperrors.CodeUnknown, "generate access request id", err)
	}

	return AccessRequest{
		ID:            requestID,
		RequesterID:   normalized.RequesterID,
		RequesterName: normalized.RequesterName,
		AreaName:      normalized.AreaName,
		Justification: normalized.Justification,
		Status:        StatusPending,
		CreatedAt:     now().UTC(),
	}, nil
}

// ParseDecision canonicalizes a raw decision value.
func ParseDecision(value string) (Decision, error) {
	d := Decision(strings.ToLower(strings.TrimSpace(value)))
	if d != DecisionApprove && d != DecisionReject {
		return "", apperrors.WithMetadata(apperrors.CodeInvalidInput,
			"decision must be approve or reject",
			map[string]string{"Decision": value})
	}
	return d, nil
}

// Decide settles a pending request. Terminal requests refuse any further
// transition regardless of who asks; that refusal is a state-machine
// condition, distinct from an authorization denial.
func Decide(request AccessRequest, decision Decision, decidedBy string, now func() time.Time) (AccessRequest, error) {
	if now == nil {
		now = time.Now
	}
	if decision != DecisionApprove && decision != DecisionReject {
		return AccessRequest{}, apperrors.New(apperrors.CodeInvalidInput, "decision must be approve or reject")
	}
	decidedBy = strings.TrimSpace(decidedBy)
	if decidedBy == "" {
		return AccessRequest{}, apperrors.New(apperrors.CodeInvalidInput, "decider name is required")
	}
	if request.Status != StatusPending {
		return AccessRequest{}, apperrors.WithMetadata(apperrors.CodeRequestAlreadyProcessed,
			"access request was already processed",
			map[string]string{"Status": string(request.Status)})
	}

	decidedAt := now().UTC()
	if decision == DecisionApprove {
		request.Status = StatusApproved
	} else {
		request.Status = StatusRejected
	}
	request.DecidedBy = decidedBy
	request.UpdatedAt = &decidedAt
	return request, nil
}
