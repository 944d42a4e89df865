package model

import "time"

type AgendaModel struct {
	ID          string     `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description *string    `gorm:"column:description" json:"description"`
	Location    *string    `gorm:"column:location" json:"location"`
	StartsAt    time.Time  `gorm:"column:starts_at" json:"starts_at"`
	EndsAt      *time.Time `gorm:"column:ends_at" json:"ends_at"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (AgendaModel) TableName() string {
	return "agendas"
}

var Columns = []string{"id", "title", "description", "location", "starts_at", "ends_at", "created_at"}
