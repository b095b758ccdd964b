package models

import "time"

type ImportRun struct {
	ID              string  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	ColumnsPayload  string  `gorm:"type:text;not null"`
	Status          string  `gorm:"type:text;not null"`
	RowCount        int64   `gorm:"not null;default:0"`
	ChunksTotal     int     `gorm:"not null;default:0"`
	ChunksCompleted int     `gorm:"not null;default:0"`
	PercentComplete float64 `gorm:"not null;default:0"`
	Attempts        int     `gorm:"not null;default:0"`
	MaxAttempts     int     `gorm:"not null;default:5"`
	ErrorMessage    *string `gorm:"type:text"`
	HeartbeatAt     *time.Time
	LeaseExpiresAt  *time.Time
	StartedAt       *time.Time
	FinishedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (ImportRun) TableName() string {
	return "import_runs"
}
