package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
)

// IndustryHandler maneja las peticiones HTTP para el recurso Industry.
type IndustryHandler struct {
	uc *usecase.IndustryUseCase
}

// NewIndustryHandler construye el handler inyectando el caso de uso.
func NewIndustryHandler(uc *usecase.IndustryUseCase) *IndustryHandler {
	return &IndustryHandler{uc: uc}
}

// List godoc
// @Summary      Listar industrias con sus empresas asociadas
// @Tags         industries
// @Produce      json
// @Success      200  {object}  dto.IndustriesEnvelope
// @Router       /industries [get]
func (h *IndustryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear industria (el code recibido se slugifica)
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIndustryRequest  true  "code e industry"
// @Success      201  {object}  dto.IndustryEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /industries [post]
func (h *IndustryHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Associate godoc
// @Summary      Asociar una industria a una empresa
// @Tags         industries
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Code de la industria"
// @Param        body  body  dto.AssociateIndustryRequest  true  "comp_code"
// @Success      201  {object}  dto.CompanyIndustryEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /industries/{code} [post]
func (h *IndustryHandler) Associate(c *fiber.Ctx) error {
	var in dto.AssociateIndustryRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Associate(c.UserContext(), c.Params("code"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
