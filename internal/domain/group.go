package domain

import (
	"gorm.io/datatypes"
)

// Group represents an exercise group that participants join and that
// accumulates records, likes and badges
type Group struct {
	BaseModel
	Name              string                      `gorm:"type:varchar(255);not null" json:"name"`
	Description       string                      `gorm:"type:text" json:"description"`
	PhotoURL          *string                     `gorm:"type:varchar(512)" json:"photoUrl"`
	GoalRep           int                         `gorm:"not null;default:0" json:"goalRep"`
	Tags              datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	LikeCount         int                         `gorm:"not null;default:0" json:"likeCount"`
	Badges            datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"badges"`
	DiscordWebhookURL *string                     `gorm:"type:varchar(512)" json:"discordWebhookUrl"`
	DiscordInviteURL  *string                     `gorm:"type:varchar(512)" json:"discordInviteUrl"`
	OwnerID           *uint                       `gorm:"index:idx_groups_owner_id" json:"-"`
	Participants      []Participant               `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"participants,omitempty"`
	Records           []Record                    `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE" json:"records,omitempty"`
	// Owner는 참여자 테이블과 순환 참조가 생기므로 FK 없이 Repository에서 별도 조회
	Owner *Participant `gorm:"-" json:"owner,omitempty"`
}

// TableName specifies the table name for Group
func (Group) TableName() string {
	return "groups"
}

// ResolveOwner fills the Owner back-reference from the loaded participant set.
// The owner is always one of the group's own participants.
func (g *Group) ResolveOwner() {
	if g.OwnerID == nil {
		return
	}
	for i := range g.Participants {
		if g.Participants[i].ID == *g.OwnerID {
			g.Owner = &g.Participants[i]
			return
		}
	}
}
