package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "armory/internal/errors"
	"armory/internal/logger"
	"armory/internal/middleware"
)

const dateOnly = "2006-01-02"

// ErrorDetail represents the error body of a failed request.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse represents a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get(middleware.ContextUserID)
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathID parses a uint path parameter.
// Returns ErrInvalidInput if the parameter is not a valid positive integer.
func parsePathID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return uint(id), nil
}

// parseQueryID parses an optional uint query parameter. Absent means nil.
func parseQueryID(c *gin.Context, key string) (*uint, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(v, 10, 32)
	if err != nil || id == 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+key)
	}
	out := uint(id)
	return &out, nil
}

// parseFlexibleTime accepts RFC3339 or a bare YYYY-MM-DD (midnight UTC).
func parseFlexibleTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(dateOnly, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// parseRangeEnd is parseFlexibleTime for the upper bound of a range: a bare
// day covers the whole day.
func parseRangeEnd(value string) (time.Time, error) {
	if t, err := time.Parse(dateOnly, value); err == nil {
		return t.Add(24*time.Hour - time.Nanosecond), nil
	}
	return parseFlexibleTime(value)
}

// parseDateRange reads an optional [startKey, endKey] range from the query.
func parseDateRange(c *gin.Context, startKey, endKey string) (start, end *time.Time, err error) {
	if v := c.Query(startKey); v != "" {
		t, parseErr := parseFlexibleTime(v)
		if parseErr != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+startKey+" format, use RFC3339 or YYYY-MM-DD")
		}
		start = &t
	}
	if v := c.Query(endKey); v != "" {
		t, parseErr := parseRangeEnd(v)
		if parseErr != nil {
			return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid "+endKey+" format, use RFC3339 or YYYY-MM-DD")
		}
		end = &t
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, apperrors.WithMessage(apperrors.ErrInvalidInput, endKey+" must not be before "+startKey)
	}
	return start, end, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
