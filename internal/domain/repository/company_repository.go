package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	// List devuelve todas las empresas en el orden nativo de la base.
	List(ctx context.Context) ([]*entity.Company, error)
	// GetByCode devuelve (nil, nil) si la empresa no existe.
	GetByCode(ctx context.Context, code string) (*entity.Company, error)
	// ListIndustryLabels devuelve las etiquetas de industria asociadas a la
	// empresa vía company_industry (posiblemente vacío).
	ListIndustryLabels(ctx context.Context, code string) ([]string, error)
	// Create devuelve domain.ErrDuplicate si el code ya existe.
	Create(ctx context.Context, company *entity.Company) error
	// Update devuelve domain.ErrNotFound si no hay fila con ese code.
	Update(ctx context.Context, company *entity.Company) error
	// Delete devuelve domain.ErrNotFound si no se afectó ninguna fila.
	Delete(ctx context.Context, code string) error
}
