package dto

import (
	"group-exercise-api/internal/repository"
)

// RankResponse represents a group's participant ranking for a trailing window
type RankResponse struct {
	Duration string               `json:"duration"`
	Data     []repository.RankRow `json:"data"`
}
