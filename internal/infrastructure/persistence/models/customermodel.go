package models

import (
	"time"

	"gorm.io/gorm"

	"fieldops/internal/shared/constants"
)

// CustomerModel is a read model joined for display names. Customer CRUD
// lives in the accounts service.
type CustomerModel struct {
	ID        uint   `gorm:"primaryKey"`
	CompanyID uint   `gorm:"not null;index"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:255"`
	Phone     string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CustomerModel) TableName() string {
	return constants.TableCustomers
}
