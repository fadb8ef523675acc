package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que InvoiceRepo implementa repository.InvoiceRepository.
var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación del puerto InvoiceRepository sobre PostgreSQL.
type InvoiceRepo struct {
	pool *pgxpool.Pool
}

// NewInvoiceRepository construye el adaptador de persistencia para facturas.
func NewInvoiceRepository(pool *pgxpool.Pool) *InvoiceRepo {
	return &InvoiceRepo{pool: pool}
}

const invoiceColumns = `id, comp_code, amt, paid, add_date, paid_date`

// List devuelve todas las facturas.
func (r *InvoiceRepo) List(ctx context.Context) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+invoiceColumns+` FROM invoices`)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// GetByID obtiene una factura por id; (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id int64) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := r.pool.QueryRow(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id,
	).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &inv, nil
}

// ListByCompany devuelve las facturas de una empresa.
func (r *InvoiceRepo) ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+invoiceColumns+` FROM invoices WHERE comp_code = $1`, compCode)
	if err != nil {
		return nil, fmt.Errorf("list invoices by company: %w", err)
	}
	defer rows.Close()
	return scanInvoices(rows)
}

// Create inserta la factura con los defaults de la tabla (paid=false,
// add_date=now) y completa la entidad desde RETURNING. Un comp_code
// inexistente se reporta como domain.ErrInvalidInput.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING `+invoiceColumns,
		invoice.CompCode, invoice.Amt,
	).Scan(&invoice.ID, &invoice.CompCode, &invoice.Amt, &invoice.Paid, &invoice.AddDate, &invoice.PaidDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("la empresa %q no existe: %w", invoice.CompCode, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update escribe amt, paid y paid_date; domain.ErrNotFound si no hay fila.
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE invoices SET amt = $2, paid = $3, paid_date = $4 WHERE id = $1`,
		invoice.ID, invoice.Amt, invoice.Paid, invoice.PaidDate,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("factura %d: %w", invoice.ID, domain.ErrNotFound)
	}
	return nil
}

// Delete elimina una factura por id; domain.ErrNotFound si no hay fila.
func (r *InvoiceRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("factura %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanInvoices(rows pgx.Rows) ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for rows.Next() {
		var inv entity.Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &inv)
	}
	return list, rows.Err()
}
