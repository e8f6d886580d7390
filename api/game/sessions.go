package gameapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-levels/api/identity"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionController serves the game sessions of the authenticated player.
type SessionController struct {
	sessions i.SessionManager
}

// NewSessionController initializes a SessionController.
func NewSessionController(sm i.SessionManager) *SessionController {
	return &SessionController{sessions: sm}
}

// RegisterPublic registers public routes.
func (sc *SessionController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (sc *SessionController) RegisterProtected(route *gin.RouterGroup) {
	sessions := route.Group("/sessions")
	{
		sessions.POST("", sc.start)
		sessions.GET("/:ID", sc.state)
		sessions.GET("/:ID/levels/:index", sc.level)
		sessions.POST("/:ID/moves", sc.move)
		sessions.POST("/:ID/tick", sc.tick)
		sessions.POST("/:ID/undo", sc.undo)
		sessions.POST("/:ID/save", sc.save)
		sessions.POST("/:ID/load", sc.load)
	}
}

// start opens a new session. The seed defaults to the current time.
func (sc *SessionController) start(ctx *gin.Context) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	var request StartRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}
	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	st, err := sc.sessions.Start(ctx.Request.Context(), playerID, seed)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, toStateResponse(st))
}

func (sc *SessionController) state(ctx *gin.Context) {
	playerID, sessionID, ok := ids(ctx)
	if !ok {
		return
	}

	st, err := sc.sessions.State(playerID, sessionID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStateResponse(st))
}

func (sc *SessionController) level(ctx *gin.Context) {
	playerID, sessionID, ok := ids(ctx)
	if !ok {
		return
	}
	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "level index must be an integer"})
		return
	}

	grid, err := sc.sessions.Level(playerID, sessionID, index)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toLevelResponse(grid))
}

func (sc *SessionController) move(ctx *gin.Context) {
	playerID, sessionID, ok := ids(ctx)
	if !ok {
		return
	}
	var request MoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	event, st, err := sc.sessions.Move(ctx.Request.Context(), playerID, sessionID, request.Direction)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, EventResponse{Event: event, State: toStateResponse(st)})
}

func (sc *SessionController) tick(ctx *gin.Context) {
	playerID, sessionID, ok := ids(ctx)
	if !ok {
		return
	}

	event, st, err := sc.sessions.Tick(ctx.Request.Context(), playerID, sessionID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, EventResponse{Event: event, State: toStateResponse(st)})
}

func (sc *SessionController) undo(ctx *gin.Context) {
	playerID, sessionID, ok := ids(ctx)
	if !ok {
		return
	}

	st, err := sc.sessions.Undo(playerID, sessionID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStateResponse(st))
}

func (sc *SessionController) save(ctx *gin.Context) {
	playerID, sessionID, ok := ids(ctx)
	if !ok {
		return
	}

	if err := sc.sessions.Save(ctx.Request.Context(), playerID, sessionID); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (sc *SessionController) load(ctx *gin.Context) {
	playerID, sessionID, ok := ids(ctx)
	if !ok {
		return
	}

	st, err := sc.sessions.Load(ctx.Request.Context(), playerID, sessionID)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, toStateResponse(st))
}

// ids reads the authenticated player and the :ID path parameter, writing the
// error response itself when either is missing.
func ids(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	playerID, ok := identity.PlayerID(ctx)
	if !ok {
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return uuid.Nil, uuid.Nil, false
	}
	sessionID, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid session id"})
		return uuid.Nil, uuid.Nil, false
	}
	return playerID, sessionID, true
}
