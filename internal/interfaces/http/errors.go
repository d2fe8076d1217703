package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/stock-sentinel/internal/application/dto"
	"github.com/tu-usuario/stock-sentinel/pkg/logger"
)

// LocalLogger clave de locals donde vive el logger de la petición.
const LocalLogger = "logger"

// LoggerMiddleware deja el logger en los locals para que los handlers puedan
// registrar fallos con contexto.
func LoggerMiddleware(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(LocalLogger, log)
		return c.Next()
	}
}

// internalError registra un fallo inesperado con la operación y los ids
// involucrados, y responde 500 con un mensaje fijo. El detalle interno queda en
// el log, nunca en la respuesta.
func internalError(c *fiber.Ctx, op string, err error, fields map[string]string) error {
	if log, ok := c.Locals(LocalLogger).(*logger.Logger); ok && log != nil {
		ev := log.Error().Err(err).Str("operation", op)
		for k, v := range fields {
			ev = ev.Str(k, v)
		}
		ev.Msg("fallo interno")
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Code:    "INTERNAL",
		Message: "error interno",
	})
}
