package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
)

// statusForError traduce un error de dominio a un status HTTP.
// Recurso ausente y petición malformada siempre se distinguen por status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError escribe el sobre uniforme {"error":{"message","status"}}.
// Los errores no clasificados se loguean y salen con mensaje genérico para
// no exponer detalles internos.
func respondError(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	message := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error no manejado")
		message = "error interno del servidor"
	}
	return c.Status(status).JSON(dto.NewError(status, message))
}
