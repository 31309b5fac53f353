package technician

import "context"

type Repository interface {
	GetByID(ctx context.Context, id uint) (*Technician, error)
	ListActive(ctx context.Context, companyID uint) ([]*Technician, error)
}
