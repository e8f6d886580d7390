package gameapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/beka-birhanu/vinom-levels/game/session"
	"github.com/beka-birhanu/vinom-levels/service"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors to HTTP statuses. Unknown errors are hidden behind a 500.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrNotSessionOwner):
		status, msg = http.StatusForbidden, err.Error()
	case errors.Is(err, session.ErrGameEnded), errors.Is(err, session.ErrNothingToUndo):
		status, msg = http.StatusConflict, err.Error()
	case errors.Is(err, maze.ErrInvalidMove),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidLevelCount):
		status, msg = http.StatusBadRequest, err.Error()
	}

	ctx.JSON(status, gin.H{"error": msg})
}
