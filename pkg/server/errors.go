// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"errors"
	"log/slog"
	"net/http"

	menuerrors "github.com/NVIDIA/menu-record-service/pkg/errors"
	"github.com/NVIDIA/menu-record-service/pkg/serializer"
)

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error   string `json:"error" yaml:"error"`
	Details string `json:"details,omitempty" yaml:"details,omitempty"`
}

// HTTPStatusFromCode maps an error code to an HTTP status.
func HTTPStatusFromCode(code menuerrors.ErrorCode) int {
	switch code {
	case menuerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case menuerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case menuerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case menuerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case menuerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case menuerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case menuerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// WriteError writes an error response. An empty details is omitted.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int, message, details string) {
	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// WriteErrorFromErr writes an error response derived from err.
//
// Client errors use the StructuredError message as the error string and the
// cause as details. Server errors use fallback as the error string and the
// full failure text as details, and are logged.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	code := menuerrors.ErrCodeInternal
	message := fallback
	details := ""

	var se *menuerrors.StructuredError
	if errors.As(err, &se) {
		code = se.Code
		if se.Cause != nil {
			details = se.Cause.Error()
		}
	}

	status := HTTPStatusFromCode(code)
	if status >= http.StatusInternalServerError {
		details = describe(err)
		slog.Error("request failed",
			"requestID", RequestIDFromContext(r.Context()),
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"error", err,
		)
	} else if se != nil {
		message = se.Message
	}

	WriteError(w, r, status, message, details)
}

// describe returns the failure text without the error code prefix.
func describe(err error) string {
	var se *menuerrors.StructuredError
	if !errors.As(err, &se) {
		return err.Error()
	}
	if se.Cause != nil {
		return se.Message + ": " + se.Cause.Error()
	}
	return se.Message
}
