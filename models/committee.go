package models

import (
	"time"

	"gorm.io/gorm"
)

// Committee records the officers voted in at an AGM. One row per committee
// term, so old rows double as a service history for the members involved.
type Committee struct {
	ID                   uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	PresidentID          uint           `json:"president_id"`
	President            *Player        `json:"president,omitempty" gorm:"foreignKey:PresidentID"`
	VicePresidentID      uint           `json:"vice_president_id"`
	VicePresident        *Player        `json:"vice_president,omitempty" gorm:"foreignKey:VicePresidentID"`
	TreasurerID          uint           `json:"treasurer_id"`
	Treasurer            *Player        `json:"treasurer,omitempty" gorm:"foreignKey:TreasurerID"`
	StatisticianID       uint           `json:"statistician_id"`
	Statistician         *Player        `json:"statistician,omitempty" gorm:"foreignKey:StatisticianID"`
	SecretaryID          uint           `json:"secretary_id"`
	Secretary            *Player        `json:"secretary,omitempty" gorm:"foreignKey:SecretaryID"`
	AssistantSecretaryID uint           `json:"assistant_secretary_id"`
	AssistantSecretary   *Player        `json:"assistant_secretary,omitempty" gorm:"foreignKey:AssistantSecretaryID"`
	StartDate            time.Time      `json:"start_date"` // AGM date, inferring the election date
	EndDate              *time.Time     `json:"end_date"`
}
