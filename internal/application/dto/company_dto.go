package dto

// CreateCompanyRequest entrada para crear una empresa.
// El code no se recibe: se deriva como slug del name.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para actualizar una empresa (PUT/PATCH).
type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CompanyResponse salida plana de una empresa.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyDetailResponse empresa con sus industrias y facturas anidadas.
// Ambas listas siempre están presentes, vacías si no hay asociaciones.
type CompanyDetailResponse struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Industries  []string          `json:"industries"`
	Invoices    []InvoiceResponse `json:"invoices"`
}

// CompaniesEnvelope {"companies":[...]}.
type CompaniesEnvelope struct {
	Companies []CompanyResponse `json:"companies"`
}

// CompanyEnvelope {"company":{...}} para create/update.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetailEnvelope {"company":{...}} para el detalle.
type CompanyDetailEnvelope struct {
	Company CompanyDetailResponse `json:"company"`
}
