package dto

import (
	"time"
)

// CreateRecordRequest represents the multipart form body for record
// creation. Numeric fields arrive as raw strings and are validated in the
// service layer.
type CreateRecordRequest struct {
	ExerciseType   string `form:"exerciseType" json:"exerciseType"`
	Description    string `form:"description" json:"description"`
	Time           string `form:"time" json:"time"`
	Distance       string `form:"distance" json:"distance"`
	AuthorNickname string `form:"authorNickname" json:"authorNickname"`
	AuthorPassword string `form:"authorPassword" json:"authorPassword"`
	// UploadedPhotos are the stored filenames assigned by the storage layer
	UploadedPhotos []string `form:"-" json:"-"`
}

// ListRecordsRequest holds raw query parameters before boundary validation
type ListRecordsRequest struct {
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=10"`
	OrderBy string `form:"orderBy,default=createdAt"`
	Order   string `form:"order,default=desc"`
	Search  string `form:"search"`
}

// RecordResponse represents a single record projection with photo paths
// projected to public URLs
type RecordResponse struct {
	ID           uint                 `json:"id"`
	GroupID      uint                 `json:"groupId"`
	ExerciseType string               `json:"exerciseType"`
	Description  string               `json:"description"`
	Time         int                  `json:"time"`
	Distance     float64              `json:"distance"`
	Photos       []string             `json:"photos"`
	Author       *ParticipantResponse `json:"author"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
}

// RecordListResponse represents the paginated record list
type RecordListResponse struct {
	Data  []*RecordResponse `json:"data"`
	Total int64             `json:"total"`
}
