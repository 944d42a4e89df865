package model

import "time"

// ProfileModel: baris tabel profiles (dikelola dashboard admin, situs hanya membaca).
type ProfileModel struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	FullName  *string   `gorm:"column:full_name" json:"full_name"`
	Role      string    `gorm:"column:role" json:"role"`
	Tingkatan *string   `gorm:"column:tingkatan" json:"tingkatan"`
	Jabatan   *string   `gorm:"column:jabatan" json:"jabatan"`
	Instagram *string   `gorm:"column:instagram" json:"instagram"`
	Motto     *string   `gorm:"column:motto" json:"motto"`
	Bio       *string   `gorm:"column:bio" json:"bio"`
	AvatarURL *string   `gorm:"column:avatar_url" json:"avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName sets the table name for ProfileModel
func (ProfileModel) TableName() string {
	return "profiles"
}
