package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrEmailTaken is returned when registering an already used email.
	ErrEmailTaken = errors.New("user with this email already exists")
	// ErrInvalidRole is returned when the requested role is not recognized.
	ErrInvalidRole = errors.New("role must be student or alumni")
	// ErrInvalidCredentials is returned for both unknown email and wrong
	// password, so callers cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is returned when a user id is unknown.
	ErrUserNotFound = errors.New("user not found")
	// ErrPostNotFound is returned when a post id is unknown.
	ErrPostNotFound = errors.New("post not found")
	// ErrCommentNotFound is returned when a comment id is unknown on the post.
	ErrCommentNotFound = errors.New("comment does not exist")
	// ErrAlumniOnly is returned when a student attempts to create a post.
	ErrAlumniOnly = errors.New("only alumni can create posts")
	// ErrNotPostAuthor is returned when a caller deletes someone else's post.
	ErrNotPostAuthor = errors.New("user not authorized to delete this post")
	// ErrNotCommentAuthor is returned when a caller deletes someone else's comment.
	ErrNotCommentAuthor = errors.New("user not authorized to delete this comment")
	// ErrAlreadyLiked is returned when liking a post a second time.
	ErrAlreadyLiked = errors.New("post already liked")
	// ErrNotLiked is returned when unliking a post that was never liked.
	ErrNotLiked = errors.New("post has not yet been liked")
	// ErrEmptyContent is returned when post content is blank after trimming.
	ErrEmptyContent = errors.New("post content is required")
	// ErrEmptyComment is returned when comment text is blank after trimming.
	ErrEmptyComment = errors.New("comment text is required")
	// ErrEmptyMessage is returned when message content is blank after trimming.
	ErrEmptyMessage = errors.New("message content is required")
	// ErrSelfMessage is returned when a user messages themselves.
	ErrSelfMessage = errors.New("cannot send a message to yourself")
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
	case ErrEmailTaken:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMAIL_TAKEN")
	case ErrInvalidRole:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_ROLE")
	case ErrInvalidCredentials:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_CREDENTIALS")
	case ErrUserNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case ErrPostNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "POST_NOT_FOUND")
	case ErrCommentNotFound:
		return NewHTTPError(http.StatusNotFound, err.Error(), "COMMENT_NOT_FOUND")
	case ErrAlumniOnly:
		return NewHTTPError(http.StatusForbidden, err.Error(), "ALUMNI_ONLY")
	case ErrNotPostAuthor:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_POST_AUTHOR")
	case ErrNotCommentAuthor:
		return NewHTTPError(http.StatusForbidden, err.Error(), "NOT_COMMENT_AUTHOR")
	case ErrAlreadyLiked:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "ALREADY_LIKED")
	case ErrNotLiked:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "NOT_LIKED")
	case ErrEmptyContent:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_CONTENT")
	case ErrEmptyComment:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_COMMENT")
	case ErrEmptyMessage:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "EMPTY_MESSAGE")
	case ErrSelfMessage:
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SELF_MESSAGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
