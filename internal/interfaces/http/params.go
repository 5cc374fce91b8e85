package http

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
)

// pathParam devuelve el parámetro de ruta des-escapado: los nombres de
// producto llevan espacios y acentos y llegan URL-encoded.
func pathParam(c *fiber.Ctx, key string) (string, error) {
	return url.PathUnescape(c.Params(key))
}
