package repository

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List(ctx context.Context) ([]*entity.Invoice, error)
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(ctx context.Context, id int64) (*entity.Invoice, error)
	// ListByCompany devuelve las facturas de una empresa (posiblemente vacío).
	ListByCompany(ctx context.Context, compCode string) ([]*entity.Invoice, error)
	// Create inserta con paid=false y add_date=now; completa ID, AddDate y
	// PaidDate desde RETURNING. Devuelve domain.ErrInvalidInput si comp_code
	// viola la llave foránea.
	Create(ctx context.Context, invoice *entity.Invoice) error
	// Update escribe amt, paid y paid_date. Devuelve domain.ErrNotFound si no
	// hay fila con ese id.
	Update(ctx context.Context, invoice *entity.Invoice) error
	// Delete devuelve domain.ErrNotFound si no se afectó ninguna fila.
	Delete(ctx context.Context, id int64) error
}
