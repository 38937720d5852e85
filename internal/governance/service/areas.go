package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/audit"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/area"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/policy"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/principal"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/storage"
)

// CreateArea registers a restricted area. Administrator only.
func (s *Service) CreateArea(ctx context.Context, actor principal.Principal, input area.CreateInput) (area.Area, error) {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return area.Area{}, err
	}

	created, err := area.Create(input, s.now, s.idGenerator)
	if err != nil {
		return area.Area{}, err
	}

	if _, err := s.areas.GetAreaByName(ctx, created.Name); err == nil {
		return area.Area{}, storage.ErrAreaNameTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return area.Area{}, err
	}

	if err := s.areas.PutArea(ctx, created); err != nil {
		return area.Area{}, err
	}
	if err := s.emit(ctx, "area.create", actor.ID, created.ID, audit.OutcomeApplied); err != nil {
		return area.Area{}, err
	}
	return created, nil
}

// UpdateArea replaces an area's metadata and allowed roles. Administrator
// only. Renaming onto an existing area's name fails.
func (s *Service) UpdateArea(ctx context.Context, actor principal.Principal, areaID string, input area.CreateInput) (area.Area, error) {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return area.Area{}, err
	}

	existing, err := s.areas.GetArea(ctx, strings.TrimSpace(areaID))
	if err != nil {
		return area.Area{}, err
	}
	updated, err := area.Update(existing, input)
	if err != nil {
		return area.Area{}, err
	}
	if err := s.areas.PutArea(ctx, updated); err != nil {
		return area.Area{}, err
	}
	if err := s.emit(ctx, "area.update", actor.ID, updated.ID, audit.OutcomeApplied); err != nil {
		return area.Area{}, err
	}
	return updated, nil
}

// SetAreaActive flips an area's active flag. Administrator only. An
// inactive area admits nobody and accepts no new requests.
func (s *Service) SetAreaActive(ctx context.Context, actor principal.Principal, areaID string, active bool) (area.Area, error) {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return area.Area{}, err
	}

	a, err := s.areas.GetArea(ctx, strings.TrimSpace(areaID))
	if err != nil {
		return area.Area{}, err
	}
	a.Active = active
	if err := s.areas.PutArea(ctx, a); err != nil {
		return area.Area{}, err
	}

	name := "area.activate"
	if !active {
		name = "area.deactivate"
	}
	if err := s.emit(ctx, name, actor.ID, a.ID, audit.OutcomeApplied); err != nil {
		return area.Area{}, err
	}
	return a, nil
}

// DeleteArea removes an area. Administrator only.
func (s *Service) DeleteArea(ctx context.Context, actor principal.Principal, areaID string) error {
	if err := policy.RequireRole(actor, role.Administrator); err != nil {
		return err
	}
	if err := s.areas.DeleteArea(ctx, strings.TrimSpace(areaID)); err != nil {
		return err
	}
	return s.emit(ctx, "area.delete", actor.ID, areaID, audit.OutcomeApplied)
}

// ListAreas returns every area. Any authenticated principal may browse the
// catalog; entry is governed separately.
func (s *Service) ListAreas(ctx context.Context, actor principal.Principal) ([]area.Area, error) {
	return s.areas.ListAreas(ctx)
}

// EnterArea checks whether the acting principal may enter the named area
// right now, and records the attempt either way. Membership in the area's
// allowed set is exact; an administrator is turned away from a manager-only
// area.
func (s *Service) EnterArea(ctx context.Context, actor principal.Principal, areaName string) (area.Area, error) {
	a, err := s.areas.GetAreaByName(ctx, strings.TrimSpace(areaName))
	if err != nil {
		return area.Area{}, err
	}

	if err := policy.RequireAreaAccess(actor, a); err != nil {
		if auditErr := s.emit(ctx, "area.enter", actor.ID, a.ID, audit.OutcomeDenied); auditErr != nil {
			return area.Area{}, auditErr
		}
		return area.Area{}, err
	}
	if err := s.emit(ctx, "area.enter", actor.ID, a.ID, audit.OutcomeGranted); err != nil {
		return area.Area{}, err
	}
	return a, nil
}
