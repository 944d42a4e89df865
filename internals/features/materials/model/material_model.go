package model

import "time"

type MaterialModel struct {
	ID          string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Title       string    `gorm:"column:title" json:"title"`
	Description *string   `gorm:"column:description" json:"description"`
	Content     *string   `gorm:"column:content" json:"content"`
	FileURL     *string   `gorm:"column:file_url" json:"file_url"`
	FileName    *string   `gorm:"column:file_name" json:"file_name"`
	FileType    *string   `gorm:"column:file_type" json:"file_type"`
	FileSize    *int64    `gorm:"column:file_size" json:"file_size"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName sets the table name for MaterialModel
func (MaterialModel) TableName() string {
	return "materials"
}

// Columns: proyeksi tetap untuk list & detail.
var Columns = []string{
	"id", "title", "description", "content",
	"file_url", "file_name", "file_type", "file_size", "created_at",
}
