package dto

// CreateIndustryRequest entrada para crear una industria. El code recibido
// también se pasa por el generador de slugs antes de insertar.
type CreateIndustryRequest struct {
	Code     string `json:"code" validate:"required"`
	Industry string `json:"industry" validate:"required"`
}

// AssociateIndustryRequest entrada para asociar una industria a una empresa.
type AssociateIndustryRequest struct {
	CompCode string `json:"comp_code" validate:"required"`
}

// IndustryResponse salida de una industria. CompCodes solo aparece cuando la
// industria tiene al menos una empresa asociada.
type IndustryResponse struct {
	Code      string   `json:"code"`
	Industry  string   `json:"industry"`
	CompCodes []string `json:"comp_codes,omitempty"`
}

// CompanyIndustryResponse fila puente creada por la asociación.
type CompanyIndustryResponse struct {
	CompCode     string `json:"comp_code"`
	IndustryCode string `json:"industry_code"`
}

// IndustriesEnvelope {"industries":[...]}.
type IndustriesEnvelope struct {
	Industries []IndustryResponse `json:"industries"`
}

// IndustryEnvelope {"industry":{...}}.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// CompanyIndustryEnvelope {"company_industry":{...}}.
type CompanyIndustryEnvelope struct {
	CompanyIndustry CompanyIndustryResponse `json:"company_industry"`
}
