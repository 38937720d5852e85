// Package policy provides pure authorization decisions over a resolved principal.
//
// Denials are modeled outcomes, never panics or storage errors: callers map
// them to 403s, flash messages, or whatever the surface calls for. Two
// distinct shapes of check coexist deliberately. Administrative functions use
// the role tier order, while restricted-area entry uses exact set membership,
// so a higher tier never implies area access.
package policy

import (
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/area"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/principal"
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
	apperrors "github.com/Rafaelmcsampaio/projetp-wayne/internal/platform/errors"
)

// Mutation identifies a governed account mutation for self-protection checks.
type Mutation int

const (
	// MutationDeactivate flips an account's active flag off.
	MutationDeactivate Mutation = iota + 1
	// MutationDelete removes an account entirely.
	MutationDelete
	// MutationChangeRole assigns an account a new role.
	MutationChangeRole
)

// RequireRole allows principals holding at least the minimum tier.
func RequireRole(p principal.Principal, minimum role.Role) error {
	if p.Role.AtLeast(minimum) {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodeRoleInsufficient,
		"insufficient role tier",
		map[string]string{"Role": string(p.Role), "Minimum": string(minimum)})
}

// RequireAreaAccess allows principals whose role is listed in the area's
// allowed set. Membership is exact: tier carries no weight here.
func RequireAreaAccess(p principal.Principal, a area.Area) error {
	if a.Admits(p.Role) {
		return nil
	}
	return apperrors.WithMetadata(apperrors.CodeAreaAccessDenied,
		"role is not allowed to enter this area",
		map[string]string{"Role": string(p.Role), "Area": a.Name, "AllowedRoles": a.AllowedRoles.String()})
}

// VetoSelfMutation blocks the three self-inflicted mutations that could
// cripple the acting account: self-deactivation, self-deletion, and changing
// one's own role away from administrator. The veto does not consider role
// level; administrators cannot bypass it on themselves.
//
// For MutationChangeRole, newRole is the role being assigned; for the other
// mutations it is ignored.
func VetoSelfMutation(actor principal.Principal, targetID string, mutation Mutation, newRole role.Role) error {
	if actor.ID != targetID {
		return nil
	}
	switch mutation {
	case MutationDeactivate:
		return apperrors.New(apperrors.CodeSelfDeactivation, "you cannot deactivate your own account")
	case MutationDelete:
		return apperrors.New(apperrors.CodeSelfDeletion, "you cannot delete your own account")
	case MutationChangeRole:
		if newRole != role.Administrator {
			return apperrors.New(apperrors.CodeSelfDemotion, "you cannot remove your own administrator access")
		}
		return nil
	default:
		return nil
	}
}
