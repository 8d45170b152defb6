package model

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	UserID           uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserUsername     string    `gorm:"column:user_username;type:varchar(60);uniqueIndex;not null" json:"user_username"`
	UserName         string    `gorm:"column:user_name;type:varchar(120)" json:"user_name"`
	UserEmail        string    `gorm:"column:user_email;type:varchar(120)" json:"user_email"`
	UserPhone        string    `gorm:"column:user_phone;type:varchar(20)" json:"user_phone"`
	UserRole         string    `gorm:"column:user_role;type:varchar(20);not null;default:admin" json:"user_role"`
	UserPasswordHash string    `gorm:"column:user_password_hash;type:varchar(120);not null" json:"-"`
	UserPhoto        string    `gorm:"column:user_photo;type:varchar(200)" json:"user_photo"`

	CreatedAt time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string { return "users" }
