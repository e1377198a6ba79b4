package dto

// JoinGroupRequest represents the body for joining a group
type JoinGroupRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}

// LeaveGroupRequest represents the body for leaving a group. The nickname
// and password identify the departing participant.
type LeaveGroupRequest struct {
	Nickname string `json:"nickname"`
	Password string `json:"password"`
}
