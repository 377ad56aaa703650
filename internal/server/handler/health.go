package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/takatori/wnsim/internal/wordnet"
)

func NewHealthHandler(wn *wordnet.WordNet) func(echo.Context) error {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "ok",
			"synsets": wn.Size(),
		})
	}
}
