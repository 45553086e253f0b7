package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/rustaceans/internal/api/middleware"
	"github.com/feral-file/rustaceans/internal/domain"
	"github.com/feral-file/rustaceans/internal/issuance"
	"github.com/feral-file/rustaceans/internal/mocks"
)

const testAPIKey = "operator-key"

var (
	ownerAddr  = common.HexToAddress("0x00000000000000000000000000000000000000aa")
	friendAddr = common.HexToAddress("0x00000000000000000000000000000000000000bb")
)

// handlerTestFixture wires the routes to mocked collaborators
type handlerTestFixture struct {
	ctrl       *gomock.Controller
	controller *mocks.MockController
	rasterizer *mocks.MockRasterizer
	router     *gin.Engine
}

func setupHandlerTest(t *testing.T) *handlerTestFixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	f := &handlerTestFixture{
		ctrl:       ctrl,
		controller: mocks.NewMockController(ctrl),
		rasterizer: mocks.NewMockRasterizer(ctrl),
		router:     gin.New(),
	}
	SetupRoutes(f.router, NewHandler(false, f.controller, f.rasterizer), middleware.AuthConfig{APIKeys: []string{testAPIKey}})
	return f
}

func (f *handlerTestFixture) tearDown() {
	f.ctrl.Finish()
}

func (f *handlerTestFixture) do(method, path string, body any, authed bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

// expectOwnerLookup covers the Info call that resolves API-key callers
func (f *handlerTestFixture) expectOwnerLookup() {
	f.controller.EXPECT().Info(gomock.Any()).Return(testInfo(), nil)
}

func testInfo() *issuance.Info {
	return &issuance.Info{
		Name:            domain.CollectionName,
		Symbol:          domain.CollectionSymbol,
		Owner:           ownerAddr,
		TotalSupply:     3,
		BasePrice:       domain.DefaultBasePrice(),
		DevelopmentFee:  domain.DefaultDevelopmentFee(),
		RequiredPayment: big.NewInt(20_000_000_000_000_000),
		Collected:       big.NewInt(0),
		YearAnchor:      time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func testToken(id domain.TokenID, owner common.Address, kind domain.IssuanceKind) *domain.Token {
	return &domain.Token{
		ID:       id,
		Owner:    owner,
		Minter:   ownerAddr,
		Kind:     kind,
		Paid:     big.NewInt(0),
		IssuedAt: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) (code, details string) {
	t.Helper()
	var body struct {
		Error struct {
			Code    string `json:"code"`
			Details string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code, body.Error.Details
}

func TestGetCollection(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.controller.EXPECT().Info(gomock.Any()).Return(testInfo(), nil)

	w := f.do(http.MethodGet, "/api/v1/collection", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rustaceans", body["name"])
	assert.Equal(t, "RUST", body["symbol"])
	assert.Equal(t, "18000000000000000", body["base_price"])
	assert.Equal(t, "20000000000000000", body["required_payment"])
	assert.Equal(t, float64(3), body["total_supply"])
}

func TestGetToken(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.controller.EXPECT().Token(gomock.Any(), domain.TokenID(1)).
		Return(testToken(1, friendAddr, domain.IssuanceKindOwnerMint), nil)
	f.controller.EXPECT().Token(gomock.Any(), domain.TokenID(9)).
		Return(nil, fmt.Errorf("token 9: %w", domain.ErrUnknownToken))

	w := f.do(http.MethodGet, "/api/v1/tokens/1", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner":"`+friendAddr.Hex()+`"`)
	assert.Contains(t, w.Body.String(), `"kind":"owner_mint"`)

	w = f.do(http.MethodGet, "/api/v1/tokens/9", nil, false)
	assert.Equal(t, http.StatusNotFound, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, domain.ReasonUnknownToken, code)

	w = f.do(http.MethodGet, "/api/v1/tokens/abc", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTokenURI(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.controller.EXPECT().TokenURI(gomock.Any(), domain.TokenID(2)).Return("data:application/json;base64,e30=", nil)

	w := f.do(http.MethodGet, "/api/v1/tokens/2/uri", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"token_id":"2","token_uri":"data:application/json;base64,e30="}`, w.Body.String())
}

func TestGetTokenImages(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="400"></svg>`)
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

	f.controller.EXPECT().Image(gomock.Any(), domain.TokenID(4)).Return(svg, nil).Times(2)
	f.rasterizer.EXPECT().Rasterize(gomock.Any(), svg, 200).Return(png, nil)

	w := f.do(http.MethodGet, "/api/v1/tokens/4/image.svg", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "image/svg+xml")
	assert.Equal(t, svg, w.Body.Bytes())

	w = f.do(http.MethodGet, "/api/v1/tokens/4/image.png?width=200", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = f.do(http.MethodGet, "/api/v1/tokens/4/image.png?width=99999", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTokenPNG_RasterizeFailure(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.controller.EXPECT().Image(gomock.Any(), domain.TokenID(4)).Return([]byte("<svg/>"), nil)
	f.rasterizer.EXPECT().Rasterize(gomock.Any(), gomock.Any(), 0).Return(nil, errors.New("resvg failed"))

	w := f.do(http.MethodGet, "/api/v1/tokens/4/image.png", nil, false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetBalance(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.controller.EXPECT().BalanceOf(gomock.Any(), friendAddr).Return(uint64(2), nil)

	w := f.do(http.MethodGet, "/api/v1/owners/"+friendAddr.Hex()+"/balance", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"address":"`+friendAddr.Hex()+`","balance":2}`, w.Body.String())

	w = f.do(http.MethodGet, "/api/v1/owners/nothex/balance", nil, false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMint(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.expectOwnerLookup()
	f.controller.EXPECT().Mint(gomock.Any(), ownerAddr, friendAddr).
		Return(testToken(1, friendAddr, domain.IssuanceKindOwnerMint), nil)

	w := f.do(http.MethodPost, "/api/v1/mint", map[string]string{"recipient": friendAddr.Hex()}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"token_id":"1"`)
}

func TestMint_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		code    string
		details string
	}{
		{"no cranes", domain.ErrInsufficientCranes, http.StatusUnprocessableEntity, domain.ReasonNotEnoughCranes, ""},
		{
			"cranes not configured",
			errors.Join(domain.ErrInsufficientCranes, domain.ErrCranesNotConfigured),
			http.StatusUnprocessableEntity, domain.ReasonNotEnoughCranes, domain.ReasonCranesNotConfigured,
		},
		{"not owner", domain.ErrNotOwner, http.StatusForbidden, domain.ReasonNotOwner, ""},
		{"store failure", errors.New("db down"), http.StatusInternalServerError, "internal_error", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setupHandlerTest(t)
			defer f.tearDown()

			f.expectOwnerLookup()
			f.controller.EXPECT().Mint(gomock.Any(), ownerAddr, friendAddr).Return(nil, tt.err)

			w := f.do(http.MethodPost, "/api/v1/mint", map[string]string{"recipient": friendAddr.Hex()}, true)
			assert.Equal(t, tt.status, w.Code)
			code, details := decodeError(t, w)
			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.details, details)
		})
	}
}

func TestMint_RequiresAuth(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	w := f.do(http.MethodPost, "/api/v1/mint", map[string]string{"recipient": friendAddr.Hex()}, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMint_InvalidRecipient(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	w := f.do(http.MethodPost, "/api/v1/mint", map[string]string{"recipient": "0x123"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, domain.ReasonInvalidRecipient, code)

	w = f.do(http.MethodPost, "/api/v1/mint", map[string]string{}, true)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCraft(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	payment := big.NewInt(20_000_000_000_000_000)
	f.controller.EXPECT().Info(gomock.Any()).Return(testInfo(), nil).Times(3)
	f.controller.EXPECT().CraftForSelf(gomock.Any(), ownerAddr, payment).
		Return(testToken(2, ownerAddr, domain.IssuanceKindCraftSelf), nil)
	f.controller.EXPECT().CraftForFriend(gomock.Any(), ownerAddr, friendAddr, payment).
		Return(testToken(3, friendAddr, domain.IssuanceKindCraftFriend), nil)
	f.controller.EXPECT().CraftForSelf(gomock.Any(), ownerAddr, big.NewInt(1)).
		Return(nil, fmt.Errorf("craft: %w", domain.ErrPaymentTooLow))

	w := f.do(http.MethodPost, "/api/v1/craft", map[string]string{"payment": payment.String()}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"kind":"craft_self"`)

	w = f.do(http.MethodPost, "/api/v1/craft", map[string]string{
		"payment":   payment.String(),
		"recipient": friendAddr.Hex(),
	}, true)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"owner":"`+friendAddr.Hex()+`"`)

	w = f.do(http.MethodPost, "/api/v1/craft", map[string]string{"payment": "1"}, true)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, domain.ReasonPriceNotMet, code)

	w = f.do(http.MethodPost, "/api/v1/craft", map[string]string{"payment": "0.01"}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	code, _ = decodeError(t, w)
	assert.Equal(t, domain.ReasonInvalidAmount, code)
}

func TestTransfer(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.controller.EXPECT().Info(gomock.Any()).Return(testInfo(), nil).Times(2)
	f.controller.EXPECT().Transfer(gomock.Any(), ownerAddr, friendAddr, domain.TokenID(5)).Return(nil)
	f.controller.EXPECT().Token(gomock.Any(), domain.TokenID(5)).
		Return(testToken(5, friendAddr, domain.IssuanceKindCraftSelf), nil)
	f.controller.EXPECT().Transfer(gomock.Any(), ownerAddr, friendAddr, domain.TokenID(6)).
		Return(domain.ErrNotTokenOwner)

	w := f.do(http.MethodPost, "/api/v1/tokens/5/transfer", map[string]string{"to": friendAddr.Hex()}, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner":"`+friendAddr.Hex()+`"`)

	w = f.do(http.MethodPost, "/api/v1/tokens/6/transfer", map[string]string{"to": friendAddr.Hex()}, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdmin(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	cranesAddr := common.HexToAddress("0x00000000000000000000000000000000000000cc")

	// one owner lookup per request plus one collection read per successful update
	f.controller.EXPECT().Info(gomock.Any()).Return(testInfo(), nil).Times(7)
	f.controller.EXPECT().SetPrice(gomock.Any(), ownerAddr, big.NewInt(1000)).Return(nil)
	f.controller.EXPECT().SetDevelopmentFee(gomock.Any(), ownerAddr, big.NewInt(10)).Return(nil)
	f.controller.EXPECT().SetCranes(gomock.Any(), ownerAddr, cranesAddr).Return(nil)
	f.controller.EXPECT().Withdraw(gomock.Any(), ownerAddr).Return(big.NewInt(42), nil)

	w := f.do(http.MethodPut, "/api/v1/admin/price", map[string]string{"amount": "1000"}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPut, "/api/v1/admin/development-fee", map[string]string{"amount": "10"}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPut, "/api/v1/admin/cranes", map[string]string{"address": cranesAddr.Hex()}, true)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/v1/admin/withdraw", nil, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"amount":"42"}`, w.Body.String())
}

func TestAdmin_NotOwner(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.expectOwnerLookup()
	f.controller.EXPECT().SetPrice(gomock.Any(), ownerAddr, big.NewInt(1)).Return(domain.ErrNotOwner)

	w := f.do(http.MethodPut, "/api/v1/admin/price", map[string]string{"amount": "1"}, true)
	assert.Equal(t, http.StatusForbidden, w.Code)
	code, _ := decodeError(t, w)
	assert.Equal(t, domain.ReasonNotOwner, code)
}

func TestHealthCheck(t *testing.T) {
	f := setupHandlerTest(t)
	defer f.tearDown()

	f.controller.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), nil)
	f.controller.EXPECT().TotalSupply(gomock.Any()).Return(uint64(0), context.DeadlineExceeded)

	w := f.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
