package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/theeman05/keypost/internal/domain/keys"
)

// KeyHandler defines the interface for handling published-key operations
type KeyHandler interface {
	GetByEmail(ctx *gin.Context)
	PutByEmail(ctx *gin.Context)
}

// keyHandler struct holds the repository
type keyHandler struct {
	repository keys.PublicKeyRepository
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(repository keys.PublicKeyRepository) KeyHandler {
	return &keyHandler{
		repository: repository,
	}
}

// GetByEmail handles the GET request to fetch the public key published for an email
// @Summary Fetch the public key published for an email
// @Description Fetch the public key currently published for the given email. Answers 204 when none is published.
// @Tags Key
// @Accept json
// @Produce json
// @Param email path string true "Email identity"
// @Success 200 {object} KeyResponse
// @Success 204 "No key published"
// @Failure 500 {object} ErrorResponse
// @Router /Key/{email} [get]
func (handler *keyHandler) GetByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	key, err := handler.repository.Get(ctx, email)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error fetching key for %s: %v", email, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}
	if key == nil {
		ctx.Status(http.StatusNoContent)
		return
	}

	ctx.JSON(http.StatusOK, KeyResponse{
		Key:   key.Key,
		Email: key.Email,
	})
}

// PutByEmail handles the PUT request to publish a public key for an email
// @Summary Publish a public key for an email
// @Description Store the given public key under the email, overwriting any previously published one.
// @Tags Key
// @Accept json
// @Produce json
// @Param email path string true "Email identity"
// @Param requestBody body PutKeyRequest true "Public Key Data"
// @Success 200 {object} InfoResponse
// @Failure 400 {object} ErrorResponse
// @Router /Key/{email} [put]
func (handler *keyHandler) PutByEmail(ctx *gin.Context) {
	email := ctx.Param("email")

	var request PutKeyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("invalid key data: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	if err := request.Validate(); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("validation failed: %v", err.Error())
		ctx.JSON(http.StatusBadRequest, errorResponse)
		return
	}

	key := &keys.PublicKey{
		Key:   request.Key,
		Email: email,
	}
	if err := handler.repository.Put(ctx, email, key); err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = fmt.Sprintf("error storing key for %s: %v", email, err.Error())
		ctx.JSON(http.StatusInternalServerError, errorResponse)
		return
	}

	var infoResponse InfoResponse
	infoResponse.Message = fmt.Sprintf("stored key for %s", email)
	ctx.JSON(http.StatusOK, infoResponse)
}
