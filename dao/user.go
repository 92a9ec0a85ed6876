package dao

import (
	"context"

	"github.com/dropradar/DropRadar/stores/gdb/user"
)

func (d *Dao) GetUserByID(c context.Context, userID string) (*user.User, error) {
	var u user.User
	err := d.DB.WithContext(c).Where("id = ?", userID).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (d *Dao) CreateUser(c context.Context, u *user.User) error {
	return d.DB.WithContext(c).Create(u).Error
}

func (d *Dao) SaveUser(c context.Context, u *user.User) error {
	return d.DB.WithContext(c).Save(u).Error
}
