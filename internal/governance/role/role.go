// Package role defines the closed role enumeration and its total order.
//
// Administrative-function authorization compares roles by tier
// (basic < manager < administrator); restricted-area authorization treats
// roles as opaque set members instead. Both views live here so every
// comparison goes through the same enumeration.
package role

import (
	"sort"
	"strings"

	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
)

// Role identifies an account's authority level.
type Role string

const (
	// Basic is the entry tier with no administrative functions.
	Basic Role = "basic"
	// Manager can review access requests and manage the team roster.
	Manager Role = "manager"
	// Administrator can manage accounts, permissions, and restricted areas.
	Administrator Role = "administrator"
)

// tiers is the total order used by Compare. Higher value means more authority.
var tiers = map[Role]int{
	Basic:         1,
	Manager:       2,
	Administrator: 3,
}

// ErrInvalid indicates a value outside the closed role enumeration.
var ErrInvalid = apperrors.New(apperrors.CodeRoleInvalid, "role must be basic, manager, or administrator")

// Parse canonicalizes a raw role value against the closed enumeration.
func Parse(value string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := tiers[r]; !ok {
		return "", apperrors.WithMetadata(apperrors.CodeRoleInvalid,
			"role must be basic, manager, or administrator",
			map[string]string{"Role": value})
	}
	return r, nil
}

// Valid reports whether r belongs to the closed enumeration.
func (r Role) Valid() bool {
	_, ok := tiers[r]
	return ok
}

// Compare returns a negative, zero, or positive value as r is below, equal
// to, or above other in the tier order. Both roles must be valid.
func (r Role) Compare(other Role) int {
	return tiers[r] - tiers[other]
}

// AtLeast reports whether r holds minimum's tier or higher.
func (r Role) AtLeast(minimum Role) bool {
	return r.Valid() && minimum.Valid() && r.Compare(minimum) >= 0
}

// Set is an explicit, non-hierarchical collection of roles.
type Set map[Role]struct{}

// ParseSet canonicalizes a comma-separated role list into a Set.
// The empty list is rejected: an area no role can enter is unreachable.
func ParseSet(value string) (Set, error) {
	parts := strings.Split(value, ",")
	set := make(Set, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		r, err := Parse(part)
		if err != nil {
			return nil, err
		}
		set[r] = struct{}{}
	}
	if len(set) == 0 {
		return nil, apperrors.New(apperrors.CodeAreaNoAllowedRoles, "at least one allowed role is required")
	}
	return set, nil
}

// NewSet builds a Set from explicit roles, rejecting empty or invalid input.
func NewSet(roles ...Role) (Set, error) {
	set := make(Set, len(roles))
	for _, r := range roles {
		if !r.Valid() {
			return nil, ErrInvalid
		}
		set[r] = struct{}{}
	}
	if len(set) == 0 {
		return nil, apperrors.New(apperrors.CodeAreaNoAllowedRoles, "at least one allowed role is required")
	}
	return set, nil
}

// Contains reports exact membership; no tier fallback.
func (s Set) Contains(r Role) bool {
	_, ok := s[r]
	return ok
}

// String encodes the set as a sorted comma-separated list.
func (s Set) String() string {
	names := make([]string, 0, len(s))
	for r := range s {
		names = append(names, string(r))
	}
	sort.Strings(names)
	return strings.Join(names, ",")
}
