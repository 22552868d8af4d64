package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/theeman05/keypost/internal/domain/messages"
)

// MessageHandler defines the interface for handling stored-message operations
type MessageHandler interface {
	GetByEmail(ctx *gin.Context)
	PutByEmail(ctx *gin.Context)
}

// messageHandler struct holds the repository
type messageHandler struct {
	repository messages.MessageRepository
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(repository messages.MessageRepository) MessageHandler {
	return &messageHandler{
		repository: repository,
	}
}

// GetByEmail handles the GET request to fetch the message stored for an email
// @Summary Fetch the message stored for an email
// @Description Fetch the single message currently stored for the given email. Answers 204 when none is stored.
// @Tags Message
// @Accept json
// @Produce json
// @Param email path string true "Email identity"
// @Success 200 {object} MessageResponse
// @Success 204 "No message stored"
// @Failure 500 {object} ErrorResponse
// @Router /Message/{email} [get]
func (handler *messageHandler) GetByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	message, err := handler.repository.Get(ctx, email)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error fetching message for %s: %v", email, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}
	if message == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{
		Email:           message.Email,
		Content:         message.Content,
		DateTimeCreated: message.DateTimeCreated,
	})
}

// PutByEmail handles the PUT request to store a message for an email
// @Summary Store a message for an email
// @Description Store the given encrypted message under the email, overwriting any previously stored one.
// @Tags Message
// @Accept json
// @Produce json
// @Param email path string true "Email identity"
// @Param requestBody body PutMessageRequest true "Encrypted Message Data"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /Message/{email} [put]
func (handler *messageHandler) PutByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	var request PutMessageRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid message data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	createdAt := request.DateTimeCreated
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	message := &messages.Message{
		Email:           email,
		Content:         request.Content,
		DateTimeCreated: createdAt,
	}
	if err := handler.repository.Put(ctx, email, message); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error storing message for %s: %v", email, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("stored message for %s", email)
	ctx.JSON(http.StatusOK, infoResponse)
}
