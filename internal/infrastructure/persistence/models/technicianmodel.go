package models

import (
	"time"

	"gorm.io/gorm"

	"fieldops/internal/shared/constants"
)

type TechnicianModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	Email     string `gorm:"uniqueIndex;size:255;not null"`
	IsActive  bool   `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (TechnicianModel) TableName() string {
	return constants.TableTechnicians
}
