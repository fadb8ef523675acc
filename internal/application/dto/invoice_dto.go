package dto

import "time"

// CreateInvoiceRequest entrada para crear una factura.
type CreateInvoiceRequest struct {
	CompCode string  `json:"comp_code" validate:"required"`
	Amt      float64 `json:"amt" validate:"required,gt=0"`
}

// UpdateInvoiceRequest entrada para actualizar una factura. Ambas llaves son
// obligatorias; se usan punteros para distinguir "llave ausente" de cero.
type UpdateInvoiceRequest struct {
	Amt  *float64 `json:"amt" validate:"required,gt=0"`
	Paid *bool    `json:"paid" validate:"required"`
}

// InvoiceResponse salida plana de una factura.
type InvoiceResponse struct {
	ID       int64      `json:"id"`
	CompCode string     `json:"comp_code"`
	Amt      float64    `json:"amt"`
	Paid     bool       `json:"paid"`
	AddDate  time.Time  `json:"add_date"`
	PaidDate *time.Time `json:"paid_date"`
}

// InvoiceDetailResponse factura con la empresa dueña embebida.
type InvoiceDetailResponse struct {
	InvoiceResponse
	Company *CompanyResponse `json:"company,omitempty"`
}

// InvoicesEnvelope {"invoices":[...]}.
type InvoicesEnvelope struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

// InvoiceEnvelope {"invoice":{...}} sin empresa embebida (update).
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetailEnvelope {"invoice":{...}} con empresa embebida (get/create).
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetailResponse `json:"invoice"`
}
