package model

import (
	"time"
)

type UserModel struct {
	UserID    int64     `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string { return "app_user" }
