package models

import "time"

// User 账号, Name 即登录名, @提及按它解析
type User struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:64;uniqueIndex;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "t_user"
}

// UserProfile 展示用资料, 读多写少
type UserProfile struct {
	UserID    int64     `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	Loginname string    `gorm:"size:64;index" json:"loginname"`
	Nickname  string    `gorm:"size:64" json:"nickname"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "t_user_profile"
}
