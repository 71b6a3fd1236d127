// Package api - API types for service recommendations
// These types define the contract for the /api/v1 endpoints.
package api

import (
	"time"

	"aws-recommender/core/catalog"
	"aws-recommender/core/types"
)

// RecommendRequest is the body of POST /api/v1/recommendations
type RecommendRequest = types.PreferenceVector

// RecommendResponse is the ranked catalog for one set of answers
type RecommendResponse struct {
	RequestID       string                 `json:"request_id"`
	InputHash       string                 `json:"input_hash"`
	Inputs          types.PreferenceVector `json:"inputs"`
	Recommendations []types.Recommendation `json:"recommendations"`
	Timestamp       time.Time              `json:"timestamp"`

	// Saved is false when persisting the last recommendation failed
	Saved bool `json:"saved"`

	// Unknown lists answers outside the known options; they score the default for every service
	Unknown []types.Criterion `json:"unknown,omitempty"`
}

// CatalogResponse lists catalog services
type CatalogResponse struct {
	Services []catalog.ServiceProfile `json:"services"`
	Count    int                      `json:"count"`
}

// ThemeRequest is the body of PUT /api/v1/preferences/theme
type ThemeRequest struct {
	DarkMode *bool `json:"darkMode" validate:"required"`
}

// ThemeResponse is the stored theme preference
type ThemeResponse struct {
	DarkMode bool `json:"darkMode"`
}

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a failure
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Error codes
const (
	CodeInvalidJSON      = "INVALID_JSON"
	CodeValidation       = "VALIDATION_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeNotSupported     = "NOT_SUPPORTED"
	CodeStale            = "STALE"
	CodeStorage          = "STORAGE_ERROR"
	CodeInternal         = "INTERNAL_ERROR"
	CodeRateLimited      = "RATE_LIMITED"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)
