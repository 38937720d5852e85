package errors

import (
	stderrors "errors"

	"google.golang.org/grpc/codes"
)

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Authentication errors
	CodeInvalidCredentials Code = "INVALID_CREDENTIALS"
	CodeSessionInvalid     Code = "SESSION_INVALID"

	// Authorization errors
	CodeRoleInsufficient Code = "ROLE_INSUFFICIENT"
	CodeAreaAccessDenied Code = "AREA_ACCESS_DENIED"
	CodeSelfDeactivation Code = "SELF_DEACTIVATION"
	CodeSelfDeletion     Code = "SELF_DELETION"
	CodeSelfDemotion     Code = "SELF_DEMOTION"

	// Access-request lifecycle errors
	CodeRequestAlreadyHasAccess Code = "REQUEST_ALREADY_HAS_ACCESS"
	CodeRequestDuplicatePending Code = "REQUEST_DUPLICATE_PENDING"
	CodeRequestAlreadyProcessed Code = "REQUEST_ALREADY_PROCESSED"

	// Provisioning conflicts
	CodeEmailTaken    Code = "EMAIL_TAKEN"
	CodeAreaNameTaken Code = "AREA_NAME_TAKEN"

	// Validation errors
	CodeRoleInvalid        Code = "ROLE_INVALID"
	CodeAreaNoAllowedRoles Code = "AREA_NO_ALLOWED_ROLES"
	CodeInvalidInput       Code = "INVALID_INPUT"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// Unauthenticated - recoverable by re-login
	case CodeInvalidCredentials,
		CodeSessionInvalid:
		return codes.Unauthenticated

	// PermissionDenied - authenticated but insufficient authority
	case CodeRoleInsufficient,
		CodeAreaAccessDenied,
		CodeSelfDeactivation,
		CodeSelfDeletion,
		CodeSelfDemotion:
		return codes.PermissionDenied

	// FailedPrecondition - state doesn't allow operation
	case CodeRequestAlreadyHasAccess,
		CodeRequestAlreadyProcessed:
		return codes.FailedPrecondition

	// AlreadyExists - conflicting record present
	case CodeRequestDuplicatePending,
		CodeEmailTaken,
		CodeAreaNameTaken:
		return codes.AlreadyExists

	// InvalidArgument - validation failures, bad input
	case CodeRoleInvalid,
		CodeAreaNoAllowedRoles,
		CodeInvalidInput:
		return codes.InvalidArgument

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	default:
		return codes.Internal
	}
}

// GetCode extracts the error code from any error.
// Returns CodeUnknown if the error is not a domain error.
func GetCode(err error) Code {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks if the error has the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
