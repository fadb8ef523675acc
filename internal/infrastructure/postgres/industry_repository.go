package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que IndustryRepo implementa repository.IndustryRepository.
var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación del puerto IndustryRepository sobre PostgreSQL.
type IndustryRepo struct {
	pool *pgxpool.Pool
}

// NewIndustryRepository construye el adaptador de persistencia para industrias.
func NewIndustryRepository(pool *pgxpool.Pool) *IndustryRepo {
	return &IndustryRepo{pool: pool}
}

// ListWithCompanies devuelve todas las industrias con sus comp_codes en una
// sola consulta (LEFT JOIN agregado en memoria), evitando una consulta por
// industria.
func (r *IndustryRepo) ListWithCompanies(ctx context.Context) ([]*entity.IndustryWithCompanies, error) {
	query := `
		SELECT i.code, i.industry, ci.comp_code
		FROM industries i
		LEFT JOIN company_industry ci ON ci.industry_code = i.code
		ORDER BY i.code`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var list []*entity.IndustryWithCompanies
	byCode := make(map[string]*entity.IndustryWithCompanies)
	for rows.Next() {
		var code, label string
		var compCode *string
		if err := rows.Scan(&code, &label, &compCode); err != nil {
			return nil, fmt.Errorf("scan industry: %w", err)
		}
		ind, ok := byCode[code]
		if !ok {
			ind = &entity.IndustryWithCompanies{Code: code, Industry: label}
			byCode[code] = ind
			list = append(list, ind)
		}
		if compCode != nil {
			ind.CompCodes = append(ind.CompCodes, *compCode)
		}
	}
	return list, rows.Err()
}

// Exists informa si hay una industria con ese code.
func (r *IndustryRepo) Exists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM industries WHERE code = $1)`, code,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check industry: %w", err)
	}
	return exists, nil
}

// Create persiste una nueva industria. Un code repetido se reporta como
// domain.ErrDuplicate.
func (r *IndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO industries (code, industry) VALUES ($1, $2)`,
		industry.Code, industry.Industry,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("code %q ya existe: %w", industry.Code, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// Associate inserta la fila puente empresa↔industria con parámetros ligados.
func (r *IndustryRepo) Associate(ctx context.Context, assoc *entity.CompanyIndustry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO company_industry (comp_code, industry_code) VALUES ($1, $2)`,
		assoc.CompCode, assoc.IndustryCode,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("asociación %s↔%s ya existe: %w", assoc.CompCode, assoc.IndustryCode, domain.ErrDuplicate)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("asociación %s↔%s: %w", assoc.CompCode, assoc.IndustryCode, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert company_industry: %w", err)
	}
	return nil
}
