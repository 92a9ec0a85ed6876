package gdb

import (
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/dropradar/DropRadar/stores/gdb/airdrop"
	"github.com/dropradar/DropRadar/stores/gdb/user"
)

// NewDB 建立mysql连接并迁移表结构
func NewDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "gorm.Open failed")
	}

	err = db.AutoMigrate(
		&airdrop.Airdrop{},
		&airdrop.AirdropTask{},
		&airdrop.UserAirdropStatus{},
		&user.User{},
	)
	if err != nil {
		return nil, errors.Wrap(err, "db.AutoMigrate failed")
	}
	return db, nil
}
