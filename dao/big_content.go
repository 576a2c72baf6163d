package dao

import (
	"Forum/models"

	"gorm.io/gorm"
)

type BigContent struct {
	Repo[models.BigContent]
}

func NewBigContent(db *gorm.DB) *BigContent {
	return &BigContent{
		Repo: NewRepo[models.BigContent](db),
	}
}
