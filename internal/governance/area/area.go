// Package area models restricted areas gated by explicit role sets.
package area

import (
	"strings"
	"time"

	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/id"
)

// Area is a named resource whose entry is governed by set membership,
// not role tier: an area open to managers does not admit administrators
// unless they are listed too.
type Area struct {
	ID           string
	Name         string
	Description  string
	AllowedRoles role.Set
	Active       bool
	CreatedAt    time.Time
}

// CreateInput describes the fields needed to create a restricted area.
type CreateInput struct {
	Name         string
	Description  string
	AllowedRoles role.Set
}

// NormalizeCreateInput trims and validates area creation input.
func NormalizeCreateInput(input CreateInput) (CreateInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return CreateInput{}, apperrors.New(apperrors.CodeInvalidInput, "area name is required")
	}
	if len(input.AllowedRoles) == 0 {
		return CreateInput{}, apperrors.New(apperrors.CodeAreaNoAllowedRoles, "at least one allowed role is required")
	}
	for r := range input.AllowedRoles {
		if !r.Valid() {
			return CreateInput{}, role.ErrInvalid
		}
	}
	input.Description = strings.TrimSpace(input.Description)
	return input, nil
}

// Create constructs a new active area with a generated ID.
func Create(input CreateInput, now func() time.Time, idGenerator func() (string, error)) (Area, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateInput(input)
	if err != nil {
		return Area{}, err
	}

	areaID, err := idGenerator()
	if err != nil {
		return Area{}, apperrors.Wrap(apperrors.CodeUnknown, "generate area id", err)
	}

	return Area{
		ID:           areaID,
		Name:         normalized.Name,
		Description:  normalized.Description,
		AllowedRoles: normalized.AllowedRoles,
		Active:       true,
		CreatedAt:    now().UTC(),
	}, nil
}

// Update applies new metadata and allowed roles to an existing area.
func Update(existing Area, input CreateInput) (Area, error) {
	normalized, err := NormalizeCreateInput(input)
	if err != nil {
		return Area{}, err
	}
	existing.Name = normalized.Name
	existing.Description = normalized.Description
	existing.AllowedRoles = normalized.AllowedRoles
	return existing, nil
}

// Admits reports whether the given role may enter the area.
// Inactive areas admit nobody.
func (a Area) Admits(r role.Role) bool {
	return a.Active && a.AllowedRoles.Contains(r)
}
