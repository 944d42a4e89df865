package model

import "time"

// PostModel: galeri per anggota (posts.user_id → profiles.id).
type PostModel struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID    string    `gorm:"column:user_id;type:uuid" json:"user_id,omitempty"`
	Caption   *string   `gorm:"column:caption" json:"caption"`
	ImageURL  string    `gorm:"column:image_url" json:"image_url"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (PostModel) TableName() string {
	return "posts"
}
