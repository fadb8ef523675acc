package entity

// Company representa una empresa registrada en el sistema.
// El code es el identificador público (slug derivado del nombre).
type Company struct {
	Code        string
	Name        string
	Description string
}

// CompanyIndustry representa la asociación N:M entre empresa e industria.
// No tiene atributos propios; solo las dos llaves foráneas.
type CompanyIndustry struct {
	CompCode     string
	IndustryCode string
}
