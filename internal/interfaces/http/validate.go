package http

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/domain"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// parseBody decodifica el cuerpo JSON en dst y lo valida contra sus tags
// `validate`. Cualquier falla se envuelve en domain.ErrInvalidInput (400).
func parseBody(c *fiber.Ctx, dst any) error {
	if err := c.BodyParser(dst); err != nil {
		return fmt.Errorf("cuerpo JSON inválido: %w", domain.ErrInvalidInput)
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("campo %q no cumple la regla %q: %w", f.Field(), f.Tag(), domain.ErrInvalidInput)
		}
		return fmt.Errorf("cuerpo inválido: %w", domain.ErrInvalidInput)
	}
	return nil
}
