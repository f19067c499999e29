// model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	UserID         string     `gorm:"column:user_id;primaryKey;type:varchar(36)" json:"_id"`
	Name           string     `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email          string     `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	HashedPassword string     `gorm:"column:hashed_password;type:varchar(255);not null" json:"-"`
	Role           string     `gorm:"column:role;type:varchar(32);not null;default:'worker'" json:"role"`
	ShiftLocation  string     `gorm:"column:shift_location;type:varchar(255)" json:"shiftLocation"`
	ShiftDate      *time.Time `gorm:"column:shift_date" json:"shiftDate"`
	CreatedAt      time.Time  `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string {
	return "user"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}
	return nil
}
