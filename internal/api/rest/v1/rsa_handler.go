package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pbsphp/schoolboy-rsa/internal/domain/textbook"
)

// RSAHandler defines the interface for the key generation and cipher endpoints
type RSAHandler interface {
	GenerateKeys(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Info(ctx *gin.Context)
}

// rsaHandler struct holds the services
type rsaHandler struct {
	keyGenerationService textbook.KeyGenerationService
	cipherService        textbook.CipherService
}

// NewRSAHandler creates a new RSAHandler
func NewRSAHandler(keyGenerationService textbook.KeyGenerationService, cipherService textbook.CipherService) RSAHandler {
	return &rsaHandler{
		keyGenerationService: keyGenerationService,
		cipherService:        cipherService,
	}
}

// GenerateKeys handles POST /keys
// @Summary Generate an RSA key pair
// @Tags RSA
// @Produce json
// @Success 201 {object} KeysResponse
// @Failure 500 {object} ErrorResponse
// @Router /keys [post]
func (handler *rsaHandler) GenerateKeys(ctx *gin.Context) {
	keys, err := handler.keyGenerationService.GenerateKeys(ctx.Request.Context())
	if err != nil {
		respondError(ctx, fmt.Errorf("error generating keys: %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, KeysResponse{
		PublicKey:  keys.PublicKey,
		PrivateKey: keys.PrivateKey,
	})
}

// Encrypt handles POST /encrypt
// @Summary Encrypt a short plaintext with a key string
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Plaintext and key"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *rsaHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	ciphertext, err := handler.cipherService.Encrypt(ctx.Request.Context(), request.Plaintext, request.Key)
	if err != nil {
		respondError(ctx, fmt.Errorf("error encrypting: %w", err))
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles POST /decrypt
// @Summary Decrypt a base-36 ciphertext with a key string
// @Tags RSA
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext and key"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *rsaHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if !bindRequest(ctx, &request, request.Validate) {
		return
	}

	plaintext, err := handler.cipherService.Decrypt(ctx.Request.Context(), request.Ciphertext, request.Key)
	if err != nil {
		respondError(ctx, fmt.Errorf("error decrypting: %w", err))
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Plaintext: plaintext})
}

// Info handles GET /info
// @Summary Report the key size and block size in use
// @Tags RSA
// @Produce json
// @Success 200 {object} InfoResponse
// @Router /info [get]
func (handler *rsaHandler) Info(ctx *gin.Context) {
	params := handler.cipherService.Parameters()
	ctx.JSON(http.StatusOK, InfoResponse{
		KeySizeBits:      params.KeySizeBits,
		MaxSourceSize:    params.MaxSourceSize,
		MaxKeyStringSize: params.MaxKeyStringSize,
		PublicExponent:   params.PublicExponent,
	})
}

func bindRequest(ctx *gin.Context, request interface{}, validate func() error) bool {
	if err := ctx.ShouldBindJSON(request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(ctx, fmt.Sprintf("invalid request body: %v", err)))
		return false
	}
	if err := validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(ctx, err.Error()))
		return false
	}
	return true
}

// clientErrors are caused by the request and map to 400
var clientErrors = []error{
	textbook.ErrValue,
	textbook.ErrInvalidParameter,
	textbook.ErrMessageTooLong,
	textbook.ErrInvalidCiphertext,
	textbook.ErrMalformedKey,
	textbook.ErrKeyTooLong,
}

func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	for _, clientErr := range clientErrors {
		if errors.Is(err, clientErr) {
			status = http.StatusBadRequest
			break
		}
	}
	ctx.JSON(status, errorResponse(ctx, err.Error()))
}

func errorResponse(ctx *gin.Context, message string) ErrorResponse {
	return ErrorResponse{
		Message:   message,
		RequestID: ctx.GetString(requestIDKey),
	}
}
