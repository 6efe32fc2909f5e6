package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerationService textbook.KeyGenerationService,
	cipherService textbook.CipherService) {

	v1 := r.Group(BasePath)
	v1.Use(RequestID())

	rsaHandler := NewRSAHandler(keyGenerationService, cipherService)
	v1.POST("/keys", rsaHandler.GenerateKeys)
	v1.POST("/encrypt", rsaHandler.Encrypt)
	v1.POST("/decrypt", rsaHandler.Decrypt)
	v1.GET("/info", rsaHandler.Info)
}
