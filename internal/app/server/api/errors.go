package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

var defaultNewError = huma.NewError

func init() {
	huma.NewError = newError
}

// newError keeps huma's problem model for client errors but strips
// everything except status and title from 5xx responses, so wrapped
// errors never reach the body.
func newError(status int, msg string, errs ...error) huma.StatusError {
	if status >= http.StatusInternalServerError {
		return &huma.ErrorModel{
			Status: status,
			Title:  http.StatusText(status),
		}
	}

	return defaultNewError(status, msg, errs...)
}
