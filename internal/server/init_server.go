package server

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/takatori/wnsim/internal"
	"github.com/takatori/wnsim/internal/server/handler"
	"github.com/takatori/wnsim/internal/similarity"
	"github.com/takatori/wnsim/internal/wordnet"
)

func InitServer(config *internal.Config, wn *wordnet.WordNet, ic similarity.InformationContents) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Recover())

	e.GET("/health", handler.NewHealthHandler(wn))
	e.GET("/synsets/:id", handler.NewSynSetHandler(wn))
	e.GET("/synsets/:id/path", handler.NewPathToRootHandler(wn))
	e.GET("/literals/:name", handler.NewLiteralHandler(wn, config.SuggestLimit))
	e.POST("/similarity", handler.NewSimilarityHandler(wn, ic))
	e.POST("/similarity/batch", handler.NewBatchSimilarityHandler(wn, ic, config.BatchWorkers))

	return e, nil
}
