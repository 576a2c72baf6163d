package database

import (
	"Forum/config"
	"Forum/models"
	"Forum/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if conf.MySQL.MaxIdle > 0 {
			sqlDB.SetMaxIdleConns(conf.MySQL.MaxIdle)
		}
		if conf.MySQL.MaxOpen > 0 {
			sqlDB.SetMaxOpenConns(conf.MySQL.MaxOpen)
		}
	}
	if conf.MySQL.Migrate {
		if err := Migrate(db); err != nil {
			log.L.Fatal("failed to migrate database", zap.Error(err))
		}
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 建表
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Topic{},
		&models.TopicReply{},
		&models.User{},
		&models.UserProfile{},
		&models.BigContent{},
	)
}
