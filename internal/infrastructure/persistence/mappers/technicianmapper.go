package mappers

import (
	"fieldops/internal/domain/technician"
	"fieldops/internal/infrastructure/persistence/models"
)

type TechnicianMapper interface {
	ToDomain(model *models.TechnicianModel) *technician.Technician
}

type TechnicianMapperImpl struct{}

func NewTechnicianMapper() TechnicianMapper {
	return &TechnicianMapperImpl{}
}

// ToDomain converts a technician row. Technicians are a read model here;
// account management lives in the identity service.
func (m *TechnicianMapperImpl) ToDomain(model *models.TechnicianModel) *technician.Technician {
	return technician.ReconstructTechnician(technician.ReconstructParams{
		ID:        model.ID,
		CompanyID: model.CompanyID,
		Name:      model.Name,
		Email:     model.Email,
		Active:    model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
}
