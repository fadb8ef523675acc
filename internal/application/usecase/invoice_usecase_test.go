package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
)

func newInvoiceUC() (*usecase.InvoiceUseCase, *fakeCompanyRepo, *fakeInvoiceRepo) {
	companies := newFakeCompanyRepo()
	invoices := newFakeInvoiceRepo(companies)
	return usecase.NewInvoiceUseCase(invoices, companies), companies, invoices
}

func ptrFloat(f float64) *float64 { return &f }
func ptrBool(b bool) *bool        { return &b }

func TestInvoiceCreate_EmbebeEmpresa(t *testing.T) {
	uc, companies, _ := newInvoiceUC()
	seedCompany(companies, "microsoft", "Microsoft", "Maker of Windows OS")

	out, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		CompCode: "microsoft",
		Amt:      299.99,
	})
	require.NoError(t, err)
	assert.Equal(t, 299.99, out.Invoice.Amt)
	assert.False(t, out.Invoice.Paid, "una factura nueva nace sin pagar")
	assert.Nil(t, out.Invoice.PaidDate)
	require.NotNil(t, out.Invoice.Company, "la respuesta debe embeber la empresa dueña")
	assert.Equal(t, "Microsoft", out.Invoice.Company.Name)
}

func TestInvoiceCreate_EmpresaInexistente(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	_, err := uc.Create(context.Background(), dto.CreateInvoiceRequest{
		CompCode: "acme",
		Amt:      10,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvoiceGet_EmbebeEmpresa(t *testing.T) {
	uc, companies, _ := newInvoiceUC()
	ctx := context.Background()
	seedCompany(companies, "msft", "Microsoft", "Maker of Windows OS")
	created, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "msft", Amt: 50})
	require.NoError(t, err)

	got, err := uc.Get(ctx, created.Invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Invoice.ID, got.Invoice.ID)
	require.NotNil(t, got.Invoice.Company)
	assert.Equal(t, "msft", got.Invoice.Company.Code)
}

func TestInvoiceGet_NoExiste(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	_, err := uc.Get(context.Background(), 94378264)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Transición no pagada -> pagada: paid_date toma la hora de la actualización.
func TestInvoiceUpdate_TransicionAPagada(t *testing.T) {
	uc, companies, _ := newInvoiceUC()
	ctx := context.Background()
	seedCompany(companies, "msft", "Microsoft", "")
	created, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "msft", Amt: 100})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.Invoice.ID, dto.UpdateInvoiceRequest{
		Amt:  ptrFloat(100),
		Paid: ptrBool(true),
	})
	require.NoError(t, err)
	assert.True(t, out.Invoice.Paid)
	require.NotNil(t, out.Invoice.PaidDate, "pagar debe fijar paid_date")
	assert.WithinDuration(t, time.Now(), *out.Invoice.PaidDate, 2*time.Second)
}

// Transición pagada -> no pagada: paid_date se limpia a null.
func TestInvoiceUpdate_TransicionANoPagada(t *testing.T) {
	uc, companies, _ := newInvoiceUC()
	ctx := context.Background()
	seedCompany(companies, "msft", "Microsoft", "")
	created, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "msft", Amt: 100})
	require.NoError(t, err)

	_, err = uc.Update(ctx, created.Invoice.ID, dto.UpdateInvoiceRequest{Amt: ptrFloat(100), Paid: ptrBool(true)})
	require.NoError(t, err)

	out, err := uc.Update(ctx, created.Invoice.ID, dto.UpdateInvoiceRequest{Amt: ptrFloat(100), Paid: ptrBool(false)})
	require.NoError(t, err)
	assert.False(t, out.Invoice.Paid)
	assert.Nil(t, out.Invoice.PaidDate, "despagar debe limpiar paid_date")
}

// Sin cambio en paid: paid_date queda intacto y amt sí se actualiza.
func TestInvoiceUpdate_SinCambioDePaid(t *testing.T) {
	uc, companies, _ := newInvoiceUC()
	ctx := context.Background()
	seedCompany(companies, "msft", "Microsoft", "")
	created, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "msft", Amt: 100})
	require.NoError(t, err)

	paidOut, err := uc.Update(ctx, created.Invoice.ID, dto.UpdateInvoiceRequest{Amt: ptrFloat(100), Paid: ptrBool(true)})
	require.NoError(t, err)
	firstPaidDate := *paidOut.Invoice.PaidDate

	out, err := uc.Update(ctx, created.Invoice.ID, dto.UpdateInvoiceRequest{Amt: ptrFloat(250.50), Paid: ptrBool(true)})
	require.NoError(t, err)
	assert.Equal(t, 250.50, out.Invoice.Amt)
	require.NotNil(t, out.Invoice.PaidDate)
	assert.Equal(t, firstPaidDate, *out.Invoice.PaidDate, "repetir paid=true no debe mover paid_date")
}

func TestInvoiceUpdate_NoExiste(t *testing.T) {
	uc, _, _ := newInvoiceUC()
	_, err := uc.Update(context.Background(), 404, dto.UpdateInvoiceRequest{Amt: ptrFloat(1), Paid: ptrBool(false)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceDelete(t *testing.T) {
	uc, companies, _ := newInvoiceUC()
	ctx := context.Background()
	seedCompany(companies, "msft", "Microsoft", "")
	created, err := uc.Create(ctx, dto.CreateInvoiceRequest{CompCode: "msft", Amt: 10})
	require.NoError(t, err)

	out, err := uc.Delete(ctx, created.Invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "deleted", out.Status)

	_, err = uc.Delete(ctx, created.Invoice.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
