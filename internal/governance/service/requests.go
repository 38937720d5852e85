package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/audit"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/accessrequest"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/policy"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/principal"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

// CreateAccessRequest opens a pending access request from the acting
// principal for the named area.
//
// Guards run in a fixed order: the area must exist and be active, the
// actor's role must not already grant entry, and no pending request for the
// same pair may exist. The pending pre-check is advisory; the store's
// uniqueness guarantee closes the race between two concurrent submissions.
func (s *Service) CreateAccessRequest(ctx context.Context, actor principal.Principal, areaName, justification string) (accessrequest.AccessRequest, error) {
	a, err := s.areas.GetAreaByName(ctx, strings.TrimSpace(areaName))
	if err != nil {
		return accessrequest.AccessRequest{}, err
	}
	if !a.Active {
		return accessrequest.AccessRequest{}, storage.ErrNotFound
	}

	if a.AllowedRoles.Contains(actor.Role) {
		return accessrequest.AccessRequest{}, apperrors.New(apperrors.CodeRequestAlreadyHasAccess,
			"your role already grants access to this area")
	}

	if _, err := s.requests.FindPendingAccessRequest(ctx, actor.ID, a.Name); err == nil {
		return accessrequest.AccessRequest{}, storage.ErrDuplicatePending
	} else if !errors.Is(err, storage.ErrNotFound) {
		return accessrequest.AccessRequest{}, err
	}

	request, err := accessrequest.Create(accessrequest.CreateInput{
		RequesterID:   actor.ID,
		RequesterName: actor.FullName,
		AreaName:      a.Name,
		Justification: justification,
	}, s.now, s.idGenerator)
	if err != nil {
		return accessrequest.AccessRequest{}, err
	}

	if err := s.requests.InsertAccessRequest(ctx, request); err != nil {
		return accessrequest.AccessRequest{}, err
	}
	if err := s.emit(ctx, "request.create", actor.ID, request.ID, audit.OutcomeApplied); err != nil {
		return accessrequest.AccessRequest{}, err
	}
	return request, nil
}

// DecideAccessRequest settles a pending request. Deciding requires at least
// the manager tier; the decider's name is stamped on the request.
func (s *Service) DecideAccessRequest(ctx context.Context, actor principal.Principal, requestID, decisionValue string) (accessrequest.AccessRequest, error) {
	if err := policy.RequireRole(actor, role.Manager); err != nil {
		return accessrequest.AccessRequest{}, err
	}

	decision, err := accessrequest.ParseDecision(decisionValue)
	if err != nil {
		return accessrequest.AccessRequest{}, err
	}

	request, err := s.requests.GetAccessRequest(ctx, strings.TrimSpace(requestID))
	if err != nil {
		return accessrequest.AccessRequest{}, err
	}

	decided, err := accessrequest.Decide(request, decision, actor.FullName, s.now)
	if err != nil {
		return accessrequest.AccessRequest{}, err
	}

	// Conditional write; a concurrent decider surfaces as already processed.
	if err := s.requests.SettleAccessRequest(ctx, decided.ID, decided.Status, decided.DecidedBy, *decided.UpdatedAt); err != nil {
		return accessrequest.AccessRequest{}, err
	}

	name := "request.approve"
	outcome := audit.OutcomeApplied
	if decision == accessrequest.DecisionReject {
		name = "request.reject"
		outcome = audit.OutcomeRejected
	}
	if err := s.emit(ctx, name, actor.ID, decided.ID, outcome); err != nil {
		return accessrequest.AccessRequest{}, err
	}
	return decided, nil
}

// ListAccessRequests returns every request, newest first. The review queue
// is a manager surface.
func (s *Service) ListAccessRequests(ctx context.Context, actor principal.Principal) ([]accessrequest.AccessRequest, error) {
	if err := policy.RequireRole(actor, role.Manager); err != nil {
		return nil, err
	}
	return s.requests.ListAccessRequests(ctx)
}

// ListOwnAccessRequests returns the acting principal's requests, newest
// first.
func (s *Service) ListOwnAccessRequests(ctx context.Context, actor principal.Principal) ([]accessrequest.AccessRequest, error) {
	all, err := s.requests.ListAccessRequests(ctx)
	if err != nil {
		return nil, err
	}
	var own []accessrequest.AccessRequest
	for _, r := range all {
		if r.RequesterID == actor.ID {
			own = append(own, r)
		}
	}
	return own, nil
}
