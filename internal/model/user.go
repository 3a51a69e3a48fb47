package model

import "time"

type User struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string  `json:"username" gorm:"unique;not null;size:20"`
	Password  string  `json:"-" gorm:"not null"` // bcrypt 哈希，绝不存储明文
	Photos    []Photo `json:"-"`
	Likes     []Like  `json:"-"`
}
