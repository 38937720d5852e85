// Package principal defines the resolved identity for one operation.
package principal

import (
	"github.com/Rafaelmcsampaio/projetp-wayne/internal/governance/role"
)

// Principal is the authenticated actor for a single inbound action.
//
// It is derived fresh from the account store and never cached past the
// operation it was resolved for; downstream code receives it explicitly
// instead of reading ambient session state.
type Principal struct {
	ID       string
	FullName string
	Role     role.Role
}
