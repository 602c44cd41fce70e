package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK Code = "OK"

	// User-facing command failures; their messages are echoed back to the
	// invoking chat user verbatim.
	CodeParse        Code = "PARSE"
	CodeParam        Code = "PARAM"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeCommand      Code = "COMMAND"

	// Plumbing failures; never shown to chat users beyond a generic
	// failure indicator.
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeAlreadyExists   Code = "ALREADY_EXISTS"
	CodeInternal        Code = "INTERNAL"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// UserFacing reports whether an error with this code may have its message
// sent back to the invoking user. Everything else is logged and replaced
// with a generic failure indicator.
func (c Code) UserFacing() bool {
	switch c {
	case CodeParse, CodeParam, CodeUnauthorized, CodeCommand:
		return true
	default:
		return false
	}
}
