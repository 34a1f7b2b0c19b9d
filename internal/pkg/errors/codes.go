package errors

import "net/http"

// Error code constants. Errors carry code + params; clients branch on the
// code, messages are for humans.

// Config editing codes.
const (
	CodeConfigNotFound          = "CONFIG_NOT_FOUND"
	CodeConfigVersionMismatch   = "CONFIG_VERSION_MISMATCH"
	CodeSchemaValidationFailed  = "SCHEMA_VALIDATION_FAILED"
	CodeOverrideReferenceBroken = "OVERRIDE_REFERENCE_INVALID"
	CodeNameTaken               = "NAME_TAKEN"
)

// Review workflow codes.
const (
	CodeApprovalRequired      = "APPROVAL_REQUIRED"
	CodeProposalNotFound      = "PROPOSAL_NOT_FOUND"
	CodeProposalNotPending    = "PROPOSAL_NOT_PENDING"
	CodeSelfApprovalForbidden = "SELF_APPROVAL_FORBIDDEN"
)

// Tenancy guard codes.
const (
	CodeLastAdmin       = "LAST_ADMIN"
	CodeLastEnvironment = "LAST_ENVIRONMENT"
	CodeLastProject     = "LAST_PROJECT"
)

// Lookup codes.
const (
	CodeWorkspaceNotFound   = "WORKSPACE_NOT_FOUND"
	CodeProjectNotFound     = "PROJECT_NOT_FOUND"
	CodeEnvironmentNotFound = "ENVIRONMENT_NOT_FOUND"
	CodeVariantNotFound     = "VARIANT_NOT_FOUND"
	CodeVersionNotFound     = "VERSION_NOT_FOUND"
	CodeMemberNotFound      = "MEMBER_NOT_FOUND"
	CodeKeyNotFound         = "KEY_NOT_FOUND"
)

// Identity and authorization codes.
const (
	CodeForbidden            = "FORBIDDEN"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeUserIdentityRequired = "USER_IDENTITY_REQUIRED"
	CodeInvalidToken         = "INVALID_TOKEN"
	CodeInvalidScope         = "INVALID_SCOPE"
)

// Validation codes.
const (
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeInvalidCursor    = "INVALID_CURSOR"
)

// Internal code.
const (
	CodeInternal = "INTERNAL_ERROR"
)

// Convenience constructors using predefined codes.

// ErrConfigVersionMismatch reports a stale prevVersion on an optimistic
// update; callers should refresh and retry.
func ErrConfigVersionMismatch(want, got int) *AppError {
	return (&AppError{
		Code:       CodeConfigVersionMismatch,
		Message:    "config was modified concurrently, refresh and retry",
		HTTPStatus: http.StatusBadRequest,
	}).WithParams(map[string]interface{}{"currentVersion": want, "submittedVersion": got})
}

// ErrApprovalRequired reports that a direct edit is gated behind the
// proposal workflow; reason names the field that triggered the gate.
func ErrApprovalRequired(reason string) *AppError {
	return &AppError{
		Code:       CodeApprovalRequired,
		Message:    "this change requires a proposal: " + reason,
		HTTPStatus: http.StatusBadRequest,
	}
}

// ErrForbidden builds the generic permission denial.
func ErrForbidden(message string) *AppError {
	return Forbidden(CodeForbidden, message)
}

// ErrInvalidToken reports an unusable bearer token without revealing why.
func ErrInvalidToken() *AppError {
	return Unauthorized(CodeInvalidToken, "invalid or unknown key")
}
