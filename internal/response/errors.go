package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrEmailRequired  ErrCode = "EMAIL_REQUIRED"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrCourseNotFound ErrCode = "COURSE_NOT_FOUND"
	ErrNotFound       ErrCode = "NOT_FOUND"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Validation ────────────────────────────────────────────────────
	case ErrEmailRequired:
		return "Email is required"
	case ErrInvalidPayload:
		return "Invalid request payload"

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrCourseNotFound:
		return "Course not found"
	case ErrNotFound:
		return "Not Found"

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "Internal Server Error"
	default:
		return "Internal Server Error"
	}
}
