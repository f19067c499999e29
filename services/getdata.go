package services

import (
	"context"
	"errors"

	"minesafety/model"

	"gorm.io/gorm"
)

type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (d *GormUserDirectory) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := d.db.WithContext(ctx).Where("user_id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (d *GormUserDirectory) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := d.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (d *GormUserDirectory) ListUsersByRole(ctx context.Context, roles ...string) ([]model.User, error) {
	users := []model.User{}
	if err := d.db.WithContext(ctx).Where("role IN ?", roles).Order("name").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (d *GormUserDirectory) UpdateShift(ctx context.Context, user *model.User) error {
	return d.db.WithContext(ctx).Model(user).
		Updates(map[string]interface{}{
			"shift_location": user.ShiftLocation,
			"shift_date":     user.ShiftDate,
		}).Error
}

func (d *GormUserDirectory) CreateUser(ctx context.Context, user *model.User) error {
	return d.db.WithContext(ctx).Create(user).Error
}
