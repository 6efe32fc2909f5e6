//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
	"github.com/stretchr/testify/assert"
)

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	SetupRoutes(r, new(MockKeyGenerationService), new(MockCipherService))

	routes := r.Routes()
	expected := map[string]string{
		BasePath + "/keys":    http.MethodPost,
		BasePath + "/encrypt": http.MethodPost,
		BasePath + "/decrypt": http.MethodPost,
		BasePath + "/info":    http.MethodGet,
	}

	found := map[string]string{}
	for _, route := range routes {
		found[route.Path] = route.Method
	}
	for path, method := range expected {
		assert.Equal(t, method, found[path], "route %s", path)
	}
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func() *gin.Engine {
		cipherService := new(MockCipherService)
		cipherService.On("Parameters").Return(textbook.Parameters{KeySizeBits: 1024})
		r := gin.New()
		SetupRoutes(r, new(MockKeyGenerationService), cipherService)
		return r
	}

	t.Run("assigns a new id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, BasePath+"/info", nil)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		_, err := uuid.Parse(w.Header().Get(RequestIDHeader))
		assert.NoError(t, err)
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		id := uuid.New().String()
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, BasePath+"/info", nil)
		req.Header.Set(RequestIDHeader, id)
		newRouter().ServeHTTP(w, req)

		assert.Equal(t, id, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces an invalid incoming id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, BasePath+"/info", nil)
		req.Header.Set(RequestIDHeader, "not-a-uuid")
		newRouter().ServeHTTP(w, req)

		assert.NotEqual(t, "not-a-uuid", w.Header().Get(RequestIDHeader))
	})
}

