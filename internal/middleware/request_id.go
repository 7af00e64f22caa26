package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey es la clave del contexto gin donde vive el id de la solicitud.
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID propaga el X-Request-ID entrante o genera uno nuevo, y lo copia
// a la respuesta para correlacionar logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
