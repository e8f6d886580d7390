// Package gameapi exposes game sessions, level previews and the leaderboard over HTTP.
package gameapi

import (
	"github.com/beka-birhanu/vinom-levels/game/maze"
	"github.com/beka-birhanu/vinom-levels/game/session"
	"github.com/beka-birhanu/vinom-levels/service/i"
	"github.com/google/uuid"
)

// StartRequest optionally pins the seed of a new session.
type StartRequest struct {
	Seed *int64 `json:"seed"`
}

// MoveRequest carries one step of the player.
type MoveRequest struct {
	Direction maze.Direction `json:"direction" binding:"required"`
}

// PreviewRequest asks for levels without starting a session.
type PreviewRequest struct {
	Count int    `json:"count" binding:"required,min=1,max=10"`
	Rows  int    `json:"rows" binding:"required,min=1,max=50"`
	Cols  int    `json:"cols" binding:"required,min=1,max=50"`
	Seed  *int64 `json:"seed"`
}

// StateResponse is the public view of a session. Levels are fetched separately.
type StateResponse struct {
	ID         uuid.UUID         `json:"id"`
	Level      int               `json:"level"`
	LevelCount int               `json:"level_count"`
	Position   maze.CellPosition `json:"position"`
	Lives      int               `json:"lives"`
	TimeLeft   int               `json:"time_left"`
	Score      int               `json:"score"`
	Status     session.Status    `json:"status"`
}

// EventResponse is returned by moves and ticks.
type EventResponse struct {
	Event session.Event `json:"event"`
	State StateResponse `json:"state"`
}

// LevelResponse is a grid with its cells as kind names plus an ASCII rendering.
type LevelResponse struct {
	Rows  int               `json:"rows"`
	Cols  int               `json:"cols"`
	Cells [][]maze.CellKind `json:"cells"`
	Text  string            `json:"text"`
}

// PreviewResponse holds generated levels and the seed that reproduces them.
type PreviewResponse struct {
	Seed   int64           `json:"seed"`
	Levels []LevelResponse `json:"levels"`
}

// ScoreResponse is one leaderboard row.
type ScoreResponse struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
}

func toStateResponse(st session.State) StateResponse {
	return StateResponse{
		ID:         st.ID,
		Level:      st.Level,
		LevelCount: len(st.Levels),
		Position:   st.Position,
		Lives:      st.Lives,
		TimeLeft:   st.TimeLeft,
		Score:      st.Score,
		Status:     st.Status,
	}
}

func toLevelResponse(g *maze.Grid) LevelResponse {
	return LevelResponse{
		Rows:  g.Rows(),
		Cols:  g.Cols(),
		Cells: g.Kinds(),
		Text:  g.String(),
	}
}

func toScoreResponses(entries []i.ScoreEntry) []ScoreResponse {
	rows := make([]ScoreResponse, len(entries))
	for n, e := range entries {
		rows[n] = ScoreResponse{Rank: n + 1, PlayerID: e.PlayerID, Score: e.Score}
	}
	return rows
}
