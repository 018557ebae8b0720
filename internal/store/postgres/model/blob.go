package model

import (
	"time"

	"gorm.io/datatypes"
)

type Blob struct {
	Name      string         `gorm:"primaryKey"`
	Data      datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Blob) TableName() string {
	return "blobs"
}
