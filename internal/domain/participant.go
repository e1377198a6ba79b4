package domain

// Participant represents a member of a group, authenticated by a
// per-participant shared password
type Participant struct {
	BaseModel
	GroupID  uint   `gorm:"not null;index:idx_participants_group_id;uniqueIndex:uq_participants_group_nickname" json:"groupId"`
	Nickname string `gorm:"type:varchar(100);not null;uniqueIndex:uq_participants_group_nickname" json:"nickname"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
}

// TableName specifies the table name for Participant
func (Participant) TableName() string {
	return "participants"
}
