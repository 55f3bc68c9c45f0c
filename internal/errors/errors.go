package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("user already exists")
	// ErrHandleTaken is returned when a profile handle is already in use.
	ErrHandleTaken = errors.New("that handle already exists")
	// ErrUserNotFound is returned when a user record is absent.
	ErrUserNotFound = errors.New("user not found")
	// ErrProfileNotFound is returned when a user has no profile yet.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrPostNotFound is returned when a post record is absent.
	ErrPostNotFound = errors.New("post not found")
	// ErrNotPostOwner is returned when a non-owner tries to delete a post.
	ErrNotPostOwner = errors.New("not the post owner")
	// ErrAlreadyLiked is returned when liking a post twice.
	ErrAlreadyLiked = errors.New("post already liked")
	// ErrNotLiked is returned when unliking a post that was never liked.
	ErrNotLiked = errors.New("post has not yet been liked")
	// ErrCommentNotFound is returned when a comment is absent from a post.
	ErrCommentNotFound = errors.New("comment does not exist")
	// ErrEntryNotFound is returned when an experience or education entry is absent.
	ErrEntryNotFound = errors.New("entry does not exist")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch err {
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusUnauthorized, err.Error(), "INVALID_CREDENTIALS")
	case ErrEmailTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "EMAIL_TAKEN")
	case ErrHandleTaken:
		return NewHTTPError(http.StatusConflict, err.Error(), "HANDLE_TAKEN")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrProfileNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "PROFILE_NOT_FOUND")
	case ErrPostNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case ErrNotPostOwner:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_POST_OWNER")
	case ErrAlreadyLiked:
		return NewHTTPError(http.StatusConflict, err.Error(), "ALREADY_LIKED")
	case ErrNotLiked:
		return NewHTTPError(http.StatusNotFound, err.Error(), "NOT_LIKED")
	case ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case ErrEntryNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "ENTRY_NOT_FOUND")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
