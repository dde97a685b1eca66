package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/ndishimyeemilien/job-connect/internal/util"
)

// respondError maps the error taxonomy onto HTTP statuses: validation
// problems are the user's to fix, missing records are 404, network-bound
// failures are 502, everything else is a 500.
func respondError(c *fiber.Ctx, err error) error {
	var validationErr *util.ValidationError
	var notFoundErr *util.NotFoundError
	var transientErr *util.TransientError

	switch {
	case errors.As(err, &validationErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: validationErr.Message,
			Details: validationErr.Fields,
		}, err)
	case errors.As(err, &notFoundErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusNotFound,
			Message: notFoundErr.Error(),
		}, err)
	case errors.As(err, &transientErr):
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: "a temporary error occurred, please try again",
		}, err)
	default:
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "internal server error",
		}, err)
	}
}

// splitCSV splits a comma-separated query value, dropping empty entries.
func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
