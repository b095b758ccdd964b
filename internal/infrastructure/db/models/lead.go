package models

import "time"

type Lead struct {
	ID             int64   `gorm:"primaryKey"`
	Username       string `gorm:"size:255;not null;index"`
	FollowersCount *int64
	FollowingCount *int64
	PostsCount     *int64
	FullName       *string `gorm:"size:255"`
	Bio            *string `gorm:"type:text"`
	ProfileURL     *string `gorm:"size:2048"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Lead) TableName() string {
	return "leads"
}
