package dto

import (
	"time"
)

// CreateGroupRequest represents the multipart form body for group creation.
// goalRep arrives as a raw string and is validated in the service layer.
type CreateGroupRequest struct {
	Name              string   `form:"name" json:"name"`
	Description       string   `form:"description" json:"description"`
	PhotoURL          *string  `form:"photoUrl" json:"photoUrl"`
	GoalRep           string   `form:"goalRep" json:"goalRep"`
	Tags              []string `form:"tags" json:"tags"`
	DiscordWebhookURL *string  `form:"discordWebhookUrl" json:"discordWebhookUrl"`
	DiscordInviteURL  *string  `form:"discordInviteUrl" json:"discordInviteUrl"`
	OwnerNickname     string   `form:"ownerNickname" json:"ownerNickname"`
	OwnerPassword     string   `form:"ownerPassword" json:"ownerPassword"`
	// UploadedImage is the stored filename assigned by the storage layer.
	// When set it wins over the PhotoURL string.
	UploadedImage string `form:"-" json:"-"`
}

// UpdateGroupRequest represents the multipart form body for a group patch.
// Pointer fields distinguish "absent" (leave unchanged) from "empty".
type UpdateGroupRequest struct {
	OwnerPassword     string   `form:"ownerPassword" json:"ownerPassword"`
	Name              *string  `form:"name" json:"name"`
	Description       *string  `form:"description" json:"description"`
	PhotoURL          *string  `form:"photoUrl" json:"photoUrl"`
	GoalRep           *string  `form:"goalRep" json:"goalRep"`
	Tags              []string `form:"tags" json:"tags"`
	DiscordWebhookURL *string  `form:"discordWebhookUrl" json:"discordWebhookUrl"`
	DiscordInviteURL  *string  `form:"discordInviteUrl" json:"discordInviteUrl"`
	UploadedImage     string   `form:"-" json:"-"`
}

// DeleteGroupRequest represents the body for group deletion
type DeleteGroupRequest struct {
	OwnerPassword string `form:"ownerPassword" json:"ownerPassword"`
}

// ListGroupsRequest holds raw query parameters before boundary validation
type ListGroupsRequest struct {
	Page    int    `form:"page,default=1"`
	Limit   int    `form:"limit,default=10"`
	OrderBy string `form:"orderBy,default=createdAt"`
	Order   string `form:"order,default=desc"`
	Search  string `form:"search"`
}

// ParticipantResponse represents a participant inside a group response
type ParticipantResponse struct {
	ID        uint      `json:"id"`
	Nickname  string    `json:"nickname"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GroupResponse represents the full group projection. PhotoURL is always
// projected to a publicly resolvable URL.
type GroupResponse struct {
	ID                uint                  `json:"id"`
	Name              string                `json:"name"`
	Description       string                `json:"description"`
	PhotoURL          *string               `json:"photoUrl"`
	GoalRep           int                   `json:"goalRep"`
	Tags              []string              `json:"tags"`
	DiscordWebhookURL *string               `json:"discordWebhookUrl"`
	DiscordInviteURL  *string               `json:"discordInviteUrl"`
	LikeCount         int                   `json:"likeCount"`
	Badges            []string              `json:"badges"`
	Owner             *ParticipantResponse  `json:"owner"`
	Participants      []ParticipantResponse `json:"participants"`
	RecordCount       *int64                `json:"recordCount,omitempty"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

// GroupListResponse represents the paginated group list
type GroupListResponse struct {
	Data  []*GroupResponse `json:"data"`
	Total int64            `json:"total"`
}

// LikeCountData carries the updated like counter
type LikeCountData struct {
	ID        uint `json:"id"`
	LikeCount int  `json:"likeCount"`
}

// LikeCountResponse represents the like/unlike acknowledgment
type LikeCountResponse struct {
	Message string        `json:"message"`
	Data    LikeCountData `json:"data"`
}
