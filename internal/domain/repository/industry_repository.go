package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// IndustryRepository define el puerto de persistencia para Industry y la
// tabla puente company_industry.
type IndustryRepository interface {
	// ListWithCompanies devuelve todas las industrias con sus comp_codes
	// asociados, resueltos en una sola consulta con LEFT JOIN.
	ListWithCompanies(ctx context.Context) ([]*entity.IndustryWithCompanies, error)
	// Exists informa si hay una industria con ese code.
	Exists(ctx context.Context, code string) (bool, error)
	// Create devuelve domain.ErrDuplicate si el code ya existe.
	Create(ctx context.Context, industry *entity.Industry) error
	// Associate inserta la fila puente empresa↔industria. Devuelve
	// domain.ErrDuplicate si la asociación ya existe y domain.ErrInvalidInput
	// si alguna llave foránea no existe.
	Associate(ctx context.Context, assoc *entity.CompanyIndustry) error
}
