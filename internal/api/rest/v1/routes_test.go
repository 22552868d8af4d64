//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(keyRepository *MockPublicKeyRepository, messageRepository *MockMessageRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupRoutes(r, keyRepository, messageRepository)
	return r
}

func TestSetupRoutes_RegistersKeyAndMessageSlots(t *testing.T) {
	keyRepository := new(MockPublicKeyRepository)
	messageRepository := new(MockMessageRepository)
	keyRepository.On("Get", mock.Anything, "alice@example.com").Return(nil, nil)
	messageRepository.On("Get", mock.Anything, "alice@example.com").Return(nil, nil)

	r := setupRouter(keyRepository, messageRepository)

	for _, path := range []string{"/Key/alice@example.com", "/Message/alice@example.com"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNoContent, w.Code, path)
	}
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	keyRepository := new(MockPublicKeyRepository)
	keyRepository.On("Get", mock.Anything, "alice@example.com").Return(nil, nil)

	r := setupRouter(keyRepository, new(MockMessageRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/Key/alice@example.com", nil)
	r.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}

func TestRequestID_KeepsClientSuppliedID(t *testing.T) {
	keyRepository := new(MockPublicKeyRepository)
	keyRepository.On("Get", mock.Anything, "alice@example.com").Return(nil, nil)

	r := setupRouter(keyRepository, new(MockMessageRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/Key/alice@example.com", nil)
	req.Header.Set(requestIDHeader, "fixed-id")
	r.ServeHTTP(w, req)

	assert.Equal(t, "fixed-id", w.Header().Get(requestIDHeader))
}

func TestSetupRoutes_UnknownRouteIs404(t *testing.T) {
	r := setupRouter(new(MockPublicKeyRepository), new(MockMessageRepository))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/Unknown/alice@example.com", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
