package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/morikuni/failure/v2"
	"github.com/takatori/wnsim/internal/errors"
)

// errorJSON maps an error code to an HTTP status and writes {"error": ...}.
func errorJSON(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case failure.Is(err, errors.ErrNotFound):
		status = http.StatusNotFound
	case failure.Is(err, errors.ErrInvalidArgument):
		status = http.StatusBadRequest
	case failure.Is(err, errors.ErrIncompleteInformationContent):
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Path(), "error", err)
	}
	return c.JSON(status, map[string]string{"error": err.Error()})
}

func synSetNotFound(id string) error {
	return failure.New(
		errors.ErrNotFound,
		failure.Field(failure.Message("synset not found")),
		failure.Context{
			"synset": id,
		},
	)
}

func invalidRequest(err error) error {
	return failure.Translate(
		err,
		errors.ErrInvalidArgument,
		failure.Field(failure.Message("invalid request payload")),
	)
}
