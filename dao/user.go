package dao

import (
	"Forum/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.User]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.User](db),
	}
}

// FindByName 登录名查询, 不存在返回 nil
func (u *Users) FindByName(ctx context.Context, name string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "name = ?", name)
}

type UserProfile struct {
	Repo[models.UserProfile]
}

func NewUserProfile(db *gorm.DB) *UserProfile {
	return &UserProfile{
		Repo: NewRepo[models.UserProfile](db),
	}
}

func (u *UserProfile) FindByUserID(ctx context.Context, userID int64) (*models.UserProfile, error) {
	return u.Repo.FindByWhere(ctx, "user_id = ?", userID)
}

// FindByNameFold 忽略大小写的登录名查询
func (u *Users) FindByNameFold(ctx context.Context, name string) (*models.User, error) {
	return u.Repo.FindByWhere(ctx, "LOWER(name) = LOWER(?)", name)
}
