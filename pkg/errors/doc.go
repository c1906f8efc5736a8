// Package errors provides structured error types for better observability
// and programmatic error handling across the cookbook tooling.
//
// Input and output failures carry ErrCodeReadFailed and ErrCodeWriteFailed so
// callers can tell which side of a conversion failed:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeReadFailed,
//	    "failed to read cookbook document",
//	    cause,
//	    map[string]any{
//	        "source": uri,
//	    },
//	)
package errors
