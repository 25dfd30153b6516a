package tire

import "fmt"

// ErrorKind classifies engine failures so the UI can react appropriately:
// validation errors re-show the form, conflicts offer reload-and-retry,
// not-found errors drop the stale reference.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindConflict   ErrorKind = "conflict"
	KindNotFound   ErrorKind = "not_found"
)

// Machine-checkable reason codes carried on engine errors.
const (
	CodeUnknownPosition    = "UNKNOWN_POSITION"
	CodeNoLayout           = "NO_LAYOUT_DEFINED"
	CodeTireNotInStock     = "TIRE_NOT_IN_STOCK"
	CodeMissingDisposition = "MISSING_DISPOSITION"
	CodeBadDisposition     = "INVALID_DISPOSITION"
	CodeSamePosition       = "POSITIONS_MUST_DIFFER"
	CodeBadTransition      = "INVALID_TRANSITION"
	CodeTireNotFound       = "TIRE_NOT_FOUND"
	CodeVehicleNotFound    = "VEHICLE_NOT_FOUND"
	CodeStateChanged       = "STATE_CHANGED"
	CodeSerialTaken        = "SERIAL_TAKEN"
	CodeTireMounted        = "TIRE_MOUNTED"
	CodeBadField           = "INVALID_FIELD"
	CodeRecordNotFound     = "RECORD_NOT_FOUND"
)

// Error is the structured failure the engine hands back to callers.
// Field names the offending request field when one applies.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s (%s, field %s)", e.Message, e.Code, e.Field)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Code)
}

func validationErr(code, field, format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Code: code, Field: field, Message: fmt.Sprintf(format, args...)}
}

// NotFoundErr builds the error for a dangling reference: the tire,
// vehicle or record the caller named no longer exists.
func NotFoundErr(code, format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: fmt.Sprintf(format, args...)}
}

// ConflictErr signals a lost optimistic-concurrency race. The stored state
// changed between read and write; the caller should reload and retry.
func ConflictErr() *Error {
	return &Error{Kind: KindConflict, Code: CodeStateChanged, Message: "state changed, reload and retry"}
}
