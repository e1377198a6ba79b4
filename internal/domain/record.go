package domain

import (
	"gorm.io/datatypes"
)

// ExerciseType is the closed vocabulary of supported exercises
type ExerciseType string

const (
	ExerciseRun  ExerciseType = "run"
	ExerciseBike ExerciseType = "bike"
	ExerciseSwim ExerciseType = "swim"
)

// IsValid reports whether t is a known exercise type
func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseRun, ExerciseBike, ExerciseSwim:
		return true
	}
	return false
}

// Record represents a single logged exercise entry authored by a
// participant within a group
type Record struct {
	BaseModel
	GroupID      uint                        `gorm:"not null;index:idx_records_group_id" json:"groupId"`
	AuthorID     uint                        `gorm:"not null;index:idx_records_author_id" json:"authorId"`
	ExerciseType ExerciseType                `gorm:"type:varchar(20);not null" json:"exerciseType"`
	Description  string                      `gorm:"type:text" json:"description"`
	Time         int                         `gorm:"not null" json:"time"`
	Distance     float64                     `gorm:"type:numeric(10,2);not null" json:"distance"`
	Photos       datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"photos"`
	Author       *Participant                `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

// TableName specifies the table name for Record
func (Record) TableName() string {
	return "records"
}
