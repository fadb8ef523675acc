package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
	"github.com/jhoicas/biztime-api/internal/domain/slug"
)

// IndustryUseCase aplica reglas de negocio para industrias y su asociación
// con empresas.
type IndustryUseCase struct {
	industries repository.IndustryRepository
	companies  repository.CompanyRepository
}

// NewIndustryUseCase construye el caso de uso con los puertos de persistencia.
func NewIndustryUseCase(industries repository.IndustryRepository, companies repository.CompanyRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries, companies: companies}
}

// List devuelve todas las industrias. Las que tienen empresas asociadas
// llevan comp_codes; las demás van en su forma plana {code, industry}.
func (uc *IndustryUseCase) List(ctx context.Context) (*dto.IndustriesEnvelope, error) {
	list, err := uc.industries.ListWithCompanies(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryResponse, 0, len(list))
	for _, ind := range list {
		items = append(items, dto.IndustryResponse{
			Code:      ind.Code,
			Industry:  ind.Industry,
			CompCodes: ind.CompCodes,
		})
	}
	return &dto.IndustriesEnvelope{Industries: items}, nil
}

// Create crea una industria. El code recibido se pasa por el generador de
// slugs antes de insertar (no se usa verbatim).
func (uc *IndustryUseCase) Create(ctx context.Context, in dto.CreateIndustryRequest) (*dto.IndustryEnvelope, error) {
	code := slug.Make(in.Code)
	if code == "" {
		return nil, fmt.Errorf("code %q no produce un slug válido: %w", in.Code, domain.ErrInvalidInput)
	}
	industry := &entity.Industry{Code: code, Industry: in.Industry}
	if err := uc.industries.Create(ctx, industry); err != nil {
		return nil, err
	}
	return &dto.IndustryEnvelope{Industry: dto.IndustryResponse{
		Code:     industry.Code,
		Industry: industry.Industry,
	}}, nil
}

// Associate crea la fila puente empresa↔industria. Verifica primero que
// ambos lados existan y reporta cuál falta con domain.ErrInvalidInput.
func (uc *IndustryUseCase) Associate(ctx context.Context, industryCode string, in dto.AssociateIndustryRequest) (*dto.CompanyIndustryEnvelope, error) {
	exists, err := uc.industries.Exists(ctx, industryCode)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("la industria %q no existe: %w", industryCode, domain.ErrInvalidInput)
	}

	company, err := uc.companies.GetByCode(ctx, in.CompCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("la empresa %q no existe: %w", in.CompCode, domain.ErrInvalidInput)
	}

	assoc := &entity.CompanyIndustry{
		CompCode:     in.CompCode,
		IndustryCode: industryCode,
	}
	if err := uc.industries.Associate(ctx, assoc); err != nil {
		return nil, err
	}
	return &dto.CompanyIndustryEnvelope{CompanyIndustry: dto.CompanyIndustryResponse{
		CompCode:     assoc.CompCode,
		IndustryCode: assoc.IndustryCode,
	}}, nil
}
