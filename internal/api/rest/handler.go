package rest

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/rustaceans/internal/api/middleware"
	"github.com/feral-file/rustaceans/internal/api/rest/dto"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/issuance"
	"github.com/feral-file/rustaceans/internal/logger"
	"github.com/feral-file/rustaceans/internal/media/rasterizer"
)

var errNoCaller = errors.New("request carries no caller identity")

// Handler defines the interface for REST API handlers
type Handler interface {
	// GetCollection returns name, symbol, supply counters and pricing
	// GET /api/v1/collection
	GetCollection(c *gin.Context)

	// GetToken returns an issued token
	// GET /api/v1/tokens/:id
	GetToken(c *gin.Context)

	// GetTokenURI returns the data URI metadata document
	// GET /api/v1/tokens/:id/uri
	GetTokenURI(c *gin.Context)

	// GetTokenSVG returns the token image
	// GET /api/v1/tokens/:id/image.svg
	GetTokenSVG(c *gin.Context)

	// GetTokenPNG returns a rasterized preview of the token image
	// GET /api/v1/tokens/:id/image.png?width=<pixels>
	GetTokenPNG(c *gin.Context)

	// GetBalance returns the number of tokens held by an address
	// GET /api/v1/owners/:address/balance
	GetBalance(c *gin.Context)

	// Mint issues a free token (owner only)
	// POST /api/v1/mint
	Mint(c *gin.Context)

	// Craft issues a paid token to the caller or to a friend
	// POST /api/v1/craft
	Craft(c *gin.Context)

	// Transfer moves a token held by the caller
	// POST /api/v1/tokens/:id/transfer
	Transfer(c *gin.Context)

	// SetPrice updates the base price (owner only)
	// PUT /api/v1/admin/price
	SetPrice(c *gin.Context)

	// SetDevelopmentFee updates the development fee (owner only)
	// PUT /api/v1/admin/development-fee
	SetDevelopmentFee(c *gin.Context)

	// SetCranes updates the companion collection address (owner only)
	// PUT /api/v1/admin/cranes
	SetCranes(c *gin.Context)

	// Withdraw releases the collected payments (owner only)
	// POST /api/v1/admin/withdraw
	Withdraw(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug      bool
	controller issuance.Controller
	rasterizer rasterizer.Rasterizer
}

// NewHandler creates a new REST API handler
func NewHandler(debug bool, controller issuance.Controller, r rasterizer.Rasterizer) Handler {
	return &handler{
		debug:      debug,
		controller: controller,
		rasterizer: r,
	}
}

func (h *handler) GetCollection(c *gin.Context) {
	info, err := h.controller.Info(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "Failed to get collection")
		return
	}
	c.JSON(http.StatusOK, dto.MapCollection(info))
}

func (h *handler) GetToken(c *gin.Context) {
	id, ok := tokenIDParam(c)
	if !ok {
		return
	}

	token, err := h.controller.Token(c.Request.Context(), id)
	if err != nil {
		respondControllerError(c, err, "Failed to get token")
		return
	}
	c.JSON(http.StatusOK, dto.MapToken(token))
}

func (h *handler) GetTokenURI(c *gin.Context) {
	id, ok := tokenIDParam(c)
	if !ok {
		return
	}

	tokenURI, err := h.controller.TokenURI(c.Request.Context(), id)
	if err != nil {
		respondControllerError(c, err, "Failed to get token URI")
		return
	}
	c.JSON(http.StatusOK, dto.TokenURIResponse{TokenID: id.String(), TokenURI: tokenURI})
}

func (h *handler) GetTokenSVG(c *gin.Context) {
	id, ok := tokenIDParam(c)
	if !ok {
		return
	}

	svg, err := h.controller.Image(c.Request.Context(), id)
	if err != nil {
		respondControllerError(c, err, "Failed to get token image")
		return
	}
	respondImage(c, svg)
}

func (h *handler) GetTokenPNG(c *gin.Context) {
	id, ok := tokenIDParam(c)
	if !ok {
		return
	}

	width := 0
	if raw := c.Query("width"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil || w <= 0 || w > rasterizer.MaxWidth {
			respondBadRequest(c, "Invalid width", "width must be between 1 and "+strconv.Itoa(rasterizer.MaxWidth))
			return
		}
		width = w
	}

	ctx := c.Request.Context()
	svg, err := h.controller.Image(ctx, id)
	if err != nil {
		respondControllerError(c, err, "Failed to get token image")
		return
	}

	png, err := h.rasterizer.Rasterize(ctx, svg, width)
	if err != nil {
		respondInternalError(c, err, "Failed to rasterize token image")
		return
	}
	respondImage(c, png)
}

func (h *handler) GetBalance(c *gin.Context) {
	raw := c.Param("address")
	if !common.IsHexAddress(raw) {
		respondBadRequest(c, "Invalid address", raw)
		return
	}
	addr := common.HexToAddress(raw)

	balance, err := h.controller.BalanceOf(c.Request.Context(), addr)
	if err != nil {
		respondInternalError(c, err, "Failed to get balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{Address: addr.Hex(), Balance: balance})
}

func (h *handler) Mint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	recipient, ok := recipientField(c, req.Recipient)
	if !ok {
		return
	}
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	token, err := h.controller.Mint(c.Request.Context(), caller, recipient)
	if err != nil {
		respondControllerError(c, err, "Failed to mint")
		return
	}
	c.JSON(http.StatusCreated, dto.MapToken(token))
}

func (h *handler) Craft(c *gin.Context) {
	var req dto.CraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	payment, ok := amountField(c, req.Payment)
	if !ok {
		return
	}
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var token *domain.Token
	var err error
	if req.Recipient == "" {
		token, err = h.controller.CraftForSelf(ctx, caller, payment)
	} else {
		recipient, ok := recipientField(c, req.Recipient)
		if !ok {
			return
		}
		token, err = h.controller.CraftForFriend(ctx, caller, recipient, payment)
	}
	if err != nil {
		respondControllerError(c, err, "Failed to craft")
		return
	}
	c.JSON(http.StatusCreated, dto.MapToken(token))
}

func (h *handler) Transfer(c *gin.Context) {
	id, ok := tokenIDParam(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	to, ok := recipientField(c, req.To)
	if !ok {
		return
	}
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.controller.Transfer(ctx, caller, to, id); err != nil {
		respondControllerError(c, err, "Failed to transfer")
		return
	}

	token, err := h.controller.Token(ctx, id)
	if err != nil {
		respondControllerError(c, err, "Failed to get token")
		return
	}
	c.JSON(http.StatusOK, dto.MapToken(token))
}

func (h *handler) SetPrice(c *gin.Context) {
	h.setAmount(c, h.controller.SetPrice, "Failed to set price")
}

func (h *handler) SetDevelopmentFee(c *gin.Context) {
	h.setAmount(c, h.controller.SetDevelopmentFee, "Failed to set development fee")
}

func (h *handler) SetCranes(c *gin.Context) {
	var req dto.AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if !common.IsHexAddress(req.Address) {
		respondBadRequest(c, "Invalid address", req.Address)
		return
	}
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	if err := h.controller.SetCranes(c.Request.Context(), caller, common.HexToAddress(req.Address)); err != nil {
		respondControllerError(c, err, "Failed to set cranes")
		return
	}
	h.GetCollection(c)
}

func (h *handler) Withdraw(c *gin.Context) {
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	amount, err := h.controller.Withdraw(c.Request.Context(), caller)
	if err != nil {
		respondControllerError(c, err, "Failed to withdraw")
		return
	}
	c.JSON(http.StatusOK, dto.WithdrawResponse{Amount: dto.Amount(amount)})
}

func (h *handler) HealthCheck(c *gin.Context) {
	if _, err := h.controller.TotalSupply(c.Request.Context()); err != nil {
		logger.WarnCtx(c.Request.Context(), "Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"service": "rustaceans-api",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rustaceans-api",
	})
}

func (h *handler) setAmount(c *gin.Context, set func(ctx context.Context, caller common.Address, amount *big.Int) error, message string) {
	var req dto.AmountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}
	amount, ok := amountField(c, req.Amount)
	if !ok {
		return
	}
	caller, ok := h.caller(c)
	if !ok {
		return
	}

	if err := set(c.Request.Context(), caller, amount); err != nil {
		respondControllerError(c, err, message)
		return
	}
	h.GetCollection(c)
}

// caller resolves the authenticated caller. API keys act as the contract owner.
func (h *handler) caller(c *gin.Context) (common.Address, bool) {
	if addr, ok := middleware.Caller(c); ok {
		return addr, true
	}
	if middleware.IsAPIKey(c) {
		info, err := h.controller.Info(c.Request.Context())
		if err != nil {
			respondInternalError(c, err, "Failed to resolve caller")
			return common.Address{}, false
		}
		return info.Owner, true
	}
	respondUnauthorized(c, errNoCaller.Error())
	return common.Address{}, false
}

func tokenIDParam(c *gin.Context) (domain.TokenID, bool) {
	id, err := domain.ParseTokenID(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "Invalid token id", err.Error())
		return 0, false
	}
	return id, true
}

// recipientField parses an address from the request body. Malformed
// addresses are rejected the same way as the zero address.
func recipientField(c *gin.Context, raw string) (common.Address, bool) {
	if !common.IsHexAddress(raw) {
		respondControllerError(c, domain.ErrInvalidRecipient, "Invalid recipient")
		return common.Address{}, false
	}
	return common.HexToAddress(raw), true
}

// amountField parses a decimal wei amount. Sign checks are left to the controller.
func amountField(c *gin.Context, raw string) (*big.Int, bool) {
	v, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		respondControllerError(c, domain.ErrInvalidAmount, "Invalid amount")
		return nil, false
	}
	return v, true
}

func respondImage(c *gin.Context, data []byte) {
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Data(http.StatusOK, mimetype.Detect(data).String(), data)
}
