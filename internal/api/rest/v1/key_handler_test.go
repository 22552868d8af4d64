//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/theeman05/keypost/internal/domain/keys"
)

const testKeyBlob = "AAAAAQMAAAABBQ=="

func TestKeyHandler_GetByEmail_Success(t *testing.T) {
	mockRepository := new(MockPublicKeyRepository)
	handler := NewKeyHandler(mockRepository)

	mockRepository.
		On("Get", mock.Anything, "alice@example.com").
		Return(&keys.PublicKey{Key: testKeyBlob, Email: "alice@example.com"}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/Key/alice@example.com", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "email", Value: "alice@example.com"}}

	handler.GetByEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), testKeyBlob)
	mockRepository.AssertExpectations(t)
}

func TestKeyHandler_GetByEmail_Absent(t *testing.T) {
	mockRepository := new(MockPublicKeyRepository)
	handler := NewKeyHandler(mockRepository)

	mockRepository.
		On("Get", mock.Anything, "nobody@example.com").
		Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/Key/nobody@example.com", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "email", Value: "nobody@example.com"}}

	handler.GetByEmail(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	mockRepository.AssertExpectations(t)
}

func TestKeyHandler_GetByEmail_Error(t *testing.T) {
	mockRepository := new(MockPublicKeyRepository)
	handler := NewKeyHandler(mockRepository)

	mockRepository.
		On("Get", mock.Anything, "alice@example.com").
		Return(nil, errors.New("db unreachable"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/Key/alice@example.com", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "email", Value: "alice@example.com"}}

	handler.GetByEmail(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockRepository.AssertExpectations(t)
}

func TestKeyHandler_PutByEmail_Success(t *testing.T) {
	mockRepository := new(MockPublicKeyRepository)
	handler := NewKeyHandler(mockRepository)

	mockRepository.
		On("Put", mock.Anything, "alice@example.com", mock.MatchedBy(func(key *keys.PublicKey) bool {
			return key.Key == testKeyBlob && key.Email == "alice@example.com"
		})).
		Return(nil)

	requestBody := `{"key": "` + testKeyBlob + `", "email": "alice@example.com"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/Key/alice@example.com", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "email", Value: "alice@example.com"}}

	handler.PutByEmail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRepository.AssertExpectations(t)
}

func TestKeyHandler_PutByEmail_InvalidBody(t *testing.T) {
	mockRepository := new(MockPublicKeyRepository)
	handler := NewKeyHandler(mockRepository)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/Key/alice@example.com", bytes.NewBufferString("not json"))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "email", Value: "alice@example.com"}}

	handler.PutByEmail(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepository.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestKeyHandler_PutByEmail_ValidationError(t *testing.T) {
	mockRepository := new(MockPublicKeyRepository)
	handler := NewKeyHandler(mockRepository)

	requestBody := `{"key": "!!not-base64!!"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/Key/alice@example.com", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "email", Value: "alice@example.com"}}

	handler.PutByEmail(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockRepository.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything)
}

func TestKeyHandler_PutByEmail_RepositoryError(t *testing.T) {
	mockRepository := new(MockPublicKeyRepository)
	handler := NewKeyHandler(mockRepository)

	mockRepository.
		On("Put", mock.Anything, "alice@example.com", mock.Anything).
		Return(errors.New("db unreachable"))

	requestBody := `{"key": "` + testKeyBlob + `"}`

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("PUT", "/Key/alice@example.com", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "email", Value: "alice@example.com"}}

	handler.PutByEmail(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockRepository.AssertExpectations(t)
}
