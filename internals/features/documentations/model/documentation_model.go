package model

import "time"

type DocumentationAssetModel struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description *string   `gorm:"column:description" json:"description"`
	Category    *string   `gorm:"column:category" json:"category"`
	FileURL     string    `gorm:"column:file_url" json:"file_url"`
	FileType    *string   `gorm:"column:file_type" json:"file_type"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (DocumentationAssetModel) TableName() string {
	return "documentation_assets"
}

var Columns = []string{"id", "title", "description", "category", "file_url", "file_type", "created_at"}
