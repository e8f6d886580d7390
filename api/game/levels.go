package gameapi

import (
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/gin-gonic/gin"
)

// LevelController serves level previews that are not tied to a session.
type LevelController struct {
	levels i.LevelGenerator
}

// NewLevelController initializes a LevelController.
func NewLevelController(lg i.LevelGenerator) *LevelController {
	return &LevelController{levels: lg}
}

// RegisterPublic registers public routes.
func (lc *LevelController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/levels/preview", lc.preview)
}

// RegisterProtected registers protected routes.
func (lc *LevelController) RegisterProtected(route *gin.RouterGroup) {}

func (lc *LevelController) preview(ctx *gin.Context) {
	var request PreviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}

	grids, err := lc.levels.Generate(ctx.Request.Context(), request.Count, request.Rows, request.Cols, seed)
	if err != nil {
		writeError(ctx, err)
		return
	}

	response := PreviewResponse{Seed: seed, Levels: make([]LevelResponse, len(grids))}
	for n, g := range grids {
		response.Levels[n] = toLevelResponse(g)
	}
	ctx.JSON(http.StatusOK, response)
}
