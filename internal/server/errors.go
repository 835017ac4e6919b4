package server

import (
	"errors"
	"net/http"

	"github.com/dipyourtrip/brochure-agent/internal/parsing"
)

// HTTPStatus returns the appropriate HTTP status code for a pipeline
// error. Caller mistakes (missing or undecodable payload) map to 400;
// everything downstream of a valid request is a 500.
func HTTPStatus(err error) int {
	var inputErr *parsing.InputError
	if errors.As(err, &inputErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
