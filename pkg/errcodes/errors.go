package errcodes

import (
	"fmt"
	"net/http"
)

type Error struct {
	HTTPCode int
	Message  string
	Code     string
}

func (err *Error) Error() string {
	return err.Message
}

func (err *Error) As(target interface{}) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	te.HTTPCode = err.HTTPCode
	te.Message = err.Message
	te.Code = err.Code
	return true
}

func (err *Error) Is(target error) bool {
	te, ok := target.(*Error)
	if !ok {
		return false
	}
	return te.HTTPCode == err.HTTPCode &&
		te.Message == err.Message &&
		te.Code == err.Code
}

// UnsupportedFormat returns a 422 error for a book format with no registered
// trim size. This is a caller bug, so it's surfaced before any drawing begins
// and is never retried.
func UnsupportedFormat(format string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Book format %q has no registered trim size.", format),
		"unsupported_format",
	}
}

// InvalidPageCount returns a 422 error for a negative or otherwise impossible
// page count.
func InvalidPageCount(count int) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Page count %d is not a non-negative integer.", count),
		"invalid_page_count",
	}
}

// MissingCoverArt returns a 422 error when a cover export is requested for a
// project with no front cover image.
func MissingCoverArt() error {
	return &Error{
		http.StatusUnprocessableEntity,
		"Project has no front cover image.",
		"missing_cover_art",
	}
}

// NotFound returns a 404 error with a message indicating the given resource.
func NotFound(resource string) error {
	return &Error{
		http.StatusNotFound,
		resource + " not found.",
		"not_found",
	}
}

func UnsupportedMediaType() error {
	return &Error{
		http.StatusUnsupportedMediaType,
		"Unsupported Media Type",
		"unsupported_media_type",
	}
}

func UnknownParameter(param string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		fmt.Sprintf("Unknown Parameter %q", param),
		"unknown_parameter",
	}
}

func ValidationTypeError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_type_error",
	}
}

func ValidationError(msg string) error {
	return &Error{
		http.StatusUnprocessableEntity,
		msg,
		"validation_error",
	}
}

func MalformedPayload() error {
	return &Error{
		http.StatusBadRequest,
		"Malformed Payload",
		"malformed_payload",
	}
}

func EmptyRequestBody() error {
	return &Error{
		http.StatusBadRequest,
		"Request body can't be empty.",
		"empty_request_body",
	}
}
