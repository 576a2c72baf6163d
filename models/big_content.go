package models

import "time"

// BigContent 外置的大段正文
type BigContent struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Data      string    `gorm:"type:longtext"`
	CreatedAt time.Time
}

func (BigContent) TableName() string {
	return "t_big_content"
}
