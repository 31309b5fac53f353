// Package technician provides a minimal read model of field technicians.
// Full technician management lives outside this service; the workshop only
// needs identity and active state for claim validation and reporting.
package technician

import "time"

type Technician struct {
	id        uint
	companyID uint
	name      string
	email     string
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// ReconstructParams carries persisted state back into the entity.
type ReconstructParams struct {
	ID        uint
	CompanyID uint
	Name      string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstructTechnician rebuilds a technician from persistence.
func ReconstructTechnician(params ReconstructParams) *Technician {
	return &Technician{
		id:        params.ID,
		companyID: params.CompanyID,
		name:      params.Name,
		email:     params.Email,
		active:    params.Active,
		createdAt: params.CreatedAt,
		updatedAt: params.UpdatedAt,
	}
}

func (t *Technician) ID() uint             { return t.id }
func (t *Technician) CompanyID() uint      { return t.companyID }
func (t *Technician) Name() string         { return t.name }
func (t *Technician) Email() string        { return t.email }
func (t *Technician) IsActive() bool       { return t.active }
func (t *Technician) CreatedAt() time.Time { return t.createdAt }
func (t *Technician) UpdatedAt() time.Time { return t.updatedAt }
