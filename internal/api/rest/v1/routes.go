package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/theeman05/keypost/internal/domain/keys"
	"github.com/theeman05/keypost/internal/domain/messages"
)

// requestIDHeader carries the per-request correlation id.
const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a correlation id, keeping one supplied
// by the client when present.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		ctx.Writer.Header().Set(requestIDHeader, requestID)
		ctx.Next()
	}
}

// SetupRoutes sets up the key and message store routes. The protocol keeps
// one slot per email for each resource; PUT overwrites, GET of an empty
// slot answers 204.
func SetupRoutes(r *gin.Engine,
	keyRepository keys.PublicKeyRepository,
	messageRepository messages.MessageRepository) {

	r.Use(RequestID())

	keyHandler := NewKeyHandler(keyRepository)
	r.GET("/Key/:email", keyHandler.GetByEmail)
	r.PUT("/Key/:email", keyHandler.PutByEmail)

	messageHandler := NewMessageHandler(messageRepository)
	r.GET("/Message/:email", messageHandler.GetByEmail)
	r.PUT("/Message/:email", messageHandler.PutByEmail)
}
