package setting

import "context"

// Repository persists workshop settings. GetByCompanyID returns (nil, nil)
// when the company has no settings row; callers decide how to default.
type Repository interface {
	Save(ctx context.Context, settings *WorkshopSettings) error
	Update(ctx context.Context, settings *WorkshopSettings) error
	GetByCompanyID(ctx context.Context, companyID uint) (*WorkshopSettings, error)
}
