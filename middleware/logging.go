package middleware

import (
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Campos del cuerpo que nunca se escriben en el log
var camposSensibles = []string{"password", "codigo", "secret", "token", "mfa_code"}

const maxBodyLog = 1000

// RequestLogger registra cada petición con zap
func RequestLogger(log *zap.Logger) fiber.Handler {
	log = log.Named("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		resolverError(c, err)
		status := c.Response().StatusCode()

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("ip", c.IP()),
		}
		if rid, ok := c.Locals("requestid").(string); ok {
			fields = append(fields, zap.String("request_id", rid))
		}
		if uid := UserID(c); uid != 0 {
			fields = append(fields, zap.Int64("user_id", uid))
		}
		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		if log.Core().Enabled(zapcore.DebugLevel) {
			if body := filterSensitiveData(c.Body()); body != "" {
				fields = append(fields, zap.String("body", body))
			}
		}
		log.Log(determineLogLevel(status), "Petición HTTP", fields...)
		return nil
	}
}

// resolverError aplica el ErrorHandler de la app para que la respuesta y el
// status queden escritos antes de leerlos; las capas externas reciben nil
func resolverError(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}

// filterSensitiveData oculta los campos sensibles de un cuerpo JSON
func filterSensitiveData(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var data map[string]interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		// No es JSON, solo truncamos
		s := string(body)
		if len(s) > maxBodyLog {
			s = s[:maxBodyLog] + "..."
		}
		return s
	}

	for _, field := range camposSensibles {
		if _, exists := data[field]; exists {
			data[field] = "[FILTERED]"
		}
	}

	filtered, err := json.Marshal(data)
	if err != nil {
		return "[ERROR_FILTERING]"
	}
	s := string(filtered)
	if len(s) > maxBodyLog {
		s = s[:maxBodyLog] + "..."
	}
	return s
}

func determineLogLevel(statusCode int) zapcore.Level {
	switch {
	case statusCode >= 500:
		return zapcore.ErrorLevel
	case statusCode >= 400:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}
