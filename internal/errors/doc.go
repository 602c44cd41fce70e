// Package errors provides the error handling solution for prismbot.
//
// This package provides:
//   - Structured errors with codes, messages, and metadata
//   - A user-facing/internal split decided by error code
//   - Error context preservation through wrapping
//   - Validation error helpers for dependency configs
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.Commandf("unknown prism %q", name)
//	err := errors.Paramf("invalid value for parameter %q: %q", param, raw)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx, input); err != nil {
//	    return errors.Wrap(err, "failed to get character sheet")
//	}
//
// # Error Checking
//
//	if errors.IsCommand(err) {
//	    // domain rule violation, message is safe to show the user
//	}
//
//	code := errors.GetCode(err)
//	message := errors.GetMessage(err)
//
// # Layer-Specific Guidelines
//
// Repository layer:
//   - Return NotFound/AlreadyExists for record state
//   - Wrap Redis errors with context (these surface as INTERNAL)
//
// Engine and command layer:
//   - PARSE for malformed quoting, PARAM for binding failures,
//     UNAUTHORIZED for capability gates, COMMAND for rule violations
//
// Dispatch boundary:
//   - UserFacing codes are echoed back to the invoking user verbatim
//   - everything else is logged with full context and replaced with a
//     generic failure indicator
package errors
