package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Fakes en memoria que implementan los puertos de repository con el mismo
// contrato que los adaptadores de PostgreSQL (nil,nil para filas ausentes,
// ErrDuplicate/ErrNotFound/ErrInvalidInput según el caso).

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)
var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)
var _ repository.IndustryRepository = (*fakeIndustryRepo)(nil)

type fakeCompanyRepo struct {
	companies  map[string]*entity.Company
	industries map[string][]string // labels por comp_code
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies:  make(map[string]*entity.Company),
		industries: make(map[string][]string),
	}
}

func (r *fakeCompanyRepo) List(ctx context.Context) ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.companies {
		list = append(list, c)
	}
	return list, nil
}

func (r *fakeCompanyRepo) GetByCode(ctx context.Context, code string) (*entity.Company, error) {
	c, ok := r.companies[code]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeCompanyRepo) ListIndustryLabels(ctx context.Context, code string) ([]string, error) {
	return r.industries[code], nil
}

func (r *fakeCompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	if _, ok := r.companies[company.Code]; ok {
		return fmt.Errorf("code %q ya existe: %w", company.Code, domain.ErrDuplicate)
	}
	r.companies[company.Code] = company
	return nil
}

func (r *fakeCompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	if _, ok := r.companies[company.Code]; !ok {
		return fmt.Errorf("empresa %q: %w", company.Code, domain.ErrNotFound)
	}
	r.companies[company.Code] = company
	return nil
}

func (r *fakeCompanyRepo) Delete(ctx context.Context, code string) error {
	if _, ok := r.companies[code]; !ok {
		return fmt.Errorf("empresa %q: %w", code, domain.ErrNotFound)
	}
	delete(r.companies, code)
	return nil
}

type fakeInvoiceRepo struct {
	seq       int64
	invoices  map[int64]*entity.Invoice
	companies *fakeCompanyRepo // para simular la llave foránea de comp_code
}

func newFakeInvoiceRepo(companies *fakeCompanyRepo) *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[int64]*entity.Invoice), companies: companies}
}

func (r *fakeInvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		list = append(list, inv)
	}
	return list, nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.invoices {
		if inv.CompCode == compCode {
			list = append(list, inv)
		}
	}
	return list, nil
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	if _, ok := r.companies.companies[invoice.CompCode]; !ok {
		return fmt.Errorf("la empresa %q no existe: %w", invoice.CompCode, domain.ErrInvalidInput)
	}
	r.seq++
	invoice.ID = r.seq
	invoice.Paid = false
	invoice.PaidDate = nil
	invoice.AddDate = time.Now()
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	if _, ok := r.invoices[invoice.ID]; !ok {
		return fmt.Errorf("factura %d: %w", invoice.ID, domain.ErrNotFound)
	}
	cp := *invoice
	r.invoices[invoice.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.invoices[id]; !ok {
		return fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}
	delete(r.invoices, id)
	return nil
}

type fakeIndustryRepo struct {
	industries map[string]*entity.Industry
	assocs     []entity.CompanyIndustry
}

func newFakeIndustryRepo() *fakeIndustryRepo {
	return &fakeIndustryRepo{industries: make(map[string]*entity.Industry)}
}

func (r *fakeIndustryRepo) ListWithCompanies(ctx context.Context) ([]*entity.IndustryWithCompanies, error) {
	var list []*entity.IndustryWithCompanies
	for _, ind := range r.industries {
		item := &entity.IndustryWithCompanies{Code: ind.Code, Industry: ind.Industry}
		for _, a := range r.assocs {
			if a.IndustryCode == ind.Code {
				item.CompCodes = append(item.CompCodes, a.CompCode)
			}
		}
		list = append(list, item)
	}
	return list, nil
}

func (r *fakeIndustryRepo) Exists(ctx context.Context, code string) (bool, error) {
	_, ok := r.industries[code]
	return ok, nil
}

func (r *fakeIndustryRepo) Create(ctx context.Context, industry *entity.Industry) error {
	if _, ok := r.industries[industry.Code]; ok {
		return fmt.Errorf("code %q ya existe: %w", industry.Code, domain.ErrDuplicate)
	}
	r.industries[industry.Code] = industry
	return nil
}

func (r *fakeIndustryRepo) Associate(ctx context.Context, assoc *entity.CompanyIndustry) error {
	for _, a := range r.assocs {
		if a == *assoc {
			return fmt.Errorf("asociación ya existe: %w", domain.ErrDuplicate)
		}
	}
	r.assocs = append(r.assocs, *assoc)
	return nil
}

func seedCompany(r *fakeCompanyRepo, code, name, description string) {
	r.companies[code] = &entity.Company{Code: code, Name: name, Description: description}
}
