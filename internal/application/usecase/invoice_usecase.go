package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceUseCase aplica reglas de negocio para facturas, en particular la
// transición de estado de pago sobre paid_date.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso con los puertos de persistencia.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, companies repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, companies: companies, now: time.Now}
}

// List devuelve todas las facturas.
func (uc *InvoiceUseCase) List(ctx context.Context) (*dto.InvoicesEnvelope, error) {
	list, err := uc.invoices.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, invoiceToResponse(inv))
	}
	return &dto.InvoicesEnvelope{Invoices: items}, nil
}

// Get devuelve una factura con la empresa dueña embebida. Si la llave
// foránea cuelga (no esperado en operación normal) la empresa se omite.
func (uc *InvoiceUseCase) Get(ctx context.Context, id int64) (*dto.InvoiceDetailEnvelope, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}
	return uc.detailEnvelope(ctx, invoice)
}

// Create inserta una factura nueva (paid=false, add_date=now) y devuelve la
// fila creada con la empresa embebida. Un comp_code inexistente llega como
// domain.ErrInvalidInput desde el repo (violación de llave foránea).
func (uc *InvoiceUseCase) Create(ctx context.Context, in dto.CreateInvoiceRequest) (*dto.InvoiceDetailEnvelope, error) {
	invoice := &entity.Invoice{
		CompCode: in.CompCode,
		Amt:      decimal.NewFromFloat(in.Amt),
	}
	if err := uc.invoices.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return uc.detailEnvelope(ctx, invoice)
}

// Update actualiza amt y aplica la transición de estado de pago:
//   - paid true→false: paid_date se limpia a null.
//   - paid false→true: paid_date toma la hora actual.
//   - sin cambio en paid: paid_date queda intacto.
func (uc *InvoiceUseCase) Update(ctx context.Context, id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceEnvelope, error) {
	invoice, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}

	paid := *in.Paid
	switch {
	case invoice.Paid && !paid:
		invoice.PaidDate = nil
	case !invoice.Paid && paid:
		paidAt := uc.now()
		invoice.PaidDate = &paidAt
	}
	invoice.Paid = paid
	invoice.Amt = decimal.NewFromFloat(*in.Amt)

	if err := uc.invoices.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return &dto.InvoiceEnvelope{Invoice: invoiceToResponse(invoice)}, nil
}

// Delete elimina la factura; domain.ErrNotFound si no existe.
func (uc *InvoiceUseCase) Delete(ctx context.Context, id int64) (*dto.StatusResponse, error) {
	if err := uc.invoices.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &dto.StatusResponse{Status: "deleted"}, nil
}

func (uc *InvoiceUseCase) detailEnvelope(ctx context.Context, invoice *entity.Invoice) (*dto.InvoiceDetailEnvelope, error) {
	detail := dto.InvoiceDetailResponse{InvoiceResponse: invoiceToResponse(invoice)}
	company, err := uc.companies.GetByCode(ctx, invoice.CompCode)
	if err != nil {
		return nil, err
	}
	if company != nil {
		resp := companyToResponse(company)
		detail.Company = &resp
	}
	return &dto.InvoiceDetailEnvelope{Invoice: detail}, nil
}

func invoiceToResponse(inv *entity.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt.InexactFloat64(),
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
