package entity

// Industry representa un sector/industria al que pueden pertenecer empresas.
type Industry struct {
	Code     string // slug único
	Industry string // etiqueta legible
}

// IndustryWithCompanies es una industria junto con los codes de las empresas
// asociadas vía company_industry (puede estar vacío).
type IndustryWithCompanies struct {
	Code      string
	Industry  string
	CompCodes []string
}
