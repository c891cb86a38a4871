// Package errors provides structured error types for better observability
// and programmatic error handling across the menu service.
//
// Each layer reports failures with an ErrorCode so the HTTP boundary can map
// them to status codes without inspecting messages:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeInternal,
//	    "failed to insert menu item",
//	    cause,
//	    map[string]any{
//	        "collection": "menuitems",
//	    },
//	)
package errors
