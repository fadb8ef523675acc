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

// CompanyUseCase aplica reglas de negocio para empresas.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	invoices  repository.InvoiceRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
// Necesita InvoiceRepository porque el detalle anida las facturas de la empresa.
func NewCompanyUseCase(companies repository.CompanyRepository, invoices repository.InvoiceRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices}
}

// List devuelve todas las empresas.
func (uc *CompanyUseCase) List(ctx context.Context) (*dto.CompaniesEnvelope, error) {
	list, err := uc.companies.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanyResponse, 0, len(list))
	for _, c := range list {
		items = append(items, companyToResponse(c))
	}
	return &dto.CompaniesEnvelope{Companies: items}, nil
}

// Get devuelve una empresa con sus industrias y facturas anidadas.
// Las dos listas van siempre en la respuesta, vacías si no hay filas.
func (uc *CompanyUseCase) Get(ctx context.Context, code string) (*dto.CompanyDetailEnvelope, error) {
	company, err := uc.companies.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("empresa %q: %w", code, domain.ErrNotFound)
	}

	industries, err := uc.companies.ListIndustryLabels(ctx, code)
	if err != nil {
		return nil, err
	}
	invoices, err := uc.invoices.ListByCompany(ctx, code)
	if err != nil {
		return nil, err
	}

	detail := dto.CompanyDetailResponse{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Industries:  make([]string, 0, len(industries)),
		Invoices:    make([]dto.InvoiceResponse, 0, len(invoices)),
	}
	detail.Industries = append(detail.Industries, industries...)
	for _, inv := range invoices {
		detail.Invoices = append(detail.Invoices, invoiceToResponse(inv))
	}
	return &dto.CompanyDetailEnvelope{Company: detail}, nil
}

// Create crea una empresa derivando el code como slug del nombre.
// Un nombre sin caracteres alfanuméricos produce domain.ErrInvalidInput;
// una colisión de code llega como domain.ErrDuplicate desde el repo.
func (uc *CompanyUseCase) Create(ctx context.Context, in dto.CreateCompanyRequest) (*dto.CompanyEnvelope, error) {
	code := slug.Make(in.Name)
	if code == "" {
		return nil, fmt.Errorf("name %q no produce un code válido: %w", in.Name, domain.ErrInvalidInput)
	}
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.companies.Create(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyEnvelope{Company: companyToResponse(company)}, nil
}

// Update reemplaza name y description de la empresa identificada por code.
func (uc *CompanyUseCase) Update(ctx context.Context, code string, in dto.UpdateCompanyRequest) (*dto.CompanyEnvelope, error) {
	company := &entity.Company{
		Code:        code,
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.companies.Update(ctx, company); err != nil {
		return nil, err
	}
	return &dto.CompanyEnvelope{Company: companyToResponse(company)}, nil
}

// Delete elimina la empresa; domain.ErrNotFound si no existe.
func (uc *CompanyUseCase) Delete(ctx context.Context, code string) (*dto.StatusResponse, error) {
	if err := uc.companies.Delete(ctx, code); err != nil {
		return nil, err
	}
	return &dto.StatusResponse{Status: "deleted"}, nil
}

func companyToResponse(c *entity.Company) dto.CompanyResponse {
	return dto.CompanyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}
