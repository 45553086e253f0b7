package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCaller = "0x00000000000000000000000000000000000000aa"

func newTestKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

func signToken(t *testing.T, key *rsa.PrivateKey, claims jwt.RegisteredClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func TestAuthenticate(t *testing.T) {
	key, publicPEM := newTestKey(t)
	otherKey, _ := newTestKey(t)
	cfg := AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"secret"}}

	valid := signToken(t, key, jwt.RegisteredClaims{
		Subject:   testCaller,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	tests := []struct {
		name     string
		header   string
		cfg      AuthConfig
		success  bool
		authType string
		caller   common.Address
	}{
		{"valid jwt", "Bearer " + valid, cfg, true, AuthTypeJWT, common.HexToAddress(testCaller)},
		{"valid api key", "ApiKey secret", cfg, true, AuthTypeAPIKey, common.Address{}},
		{"missing header", "", cfg, false, "", common.Address{}},
		{"malformed header", "Bearer", cfg, false, "", common.Address{}},
		{"unsupported scheme", "Basic abc", cfg, false, "", common.Address{}},
		{"wrong api key", "ApiKey nope", cfg, false, "", common.Address{}},
		{"no api keys configured", "ApiKey secret", AuthConfig{JWTPublicKey: publicPEM}, false, "", common.Address{}},
		{"no public key configured", "Bearer " + valid, AuthConfig{}, false, "", common.Address{}},
		{
			"expired jwt",
			"Bearer " + signToken(t, key, jwt.RegisteredClaims{
				Subject:   testCaller,
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			}),
			cfg, false, "", common.Address{},
		},
		{
			"jwt signed by another key",
			"Bearer " + signToken(t, otherKey, jwt.RegisteredClaims{Subject: testCaller}),
			cfg, false, "", common.Address{},
		},
		{
			"subject is not an address",
			"Bearer " + signToken(t, key, jwt.RegisteredClaims{Subject: "alice"}),
			cfg, false, "", common.Address{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Authenticate(tt.header, tt.cfg)
			assert.Equal(t, tt.success, result.Success)
			if !tt.success {
				assert.Error(t, result.Error)
				return
			}
			assert.Equal(t, tt.authType, result.AuthType)
			assert.Equal(t, tt.caller, result.Caller)
		})
	}
}

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	key, publicPEM := newTestKey(t)
	cfg := AuthConfig{JWTPublicKey: publicPEM, APIKeys: []string{"secret"}}

	router := gin.New()
	router.POST("/protected", Auth(cfg), func(c *gin.Context) {
		caller, ok := Caller(c)
		c.JSON(http.StatusOK, gin.H{
			"caller": caller.Hex(),
			"jwt":    ok,
			"apikey": IsAPIKey(c),
		})
	})

	t.Run("jwt sets caller", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, key, jwt.RegisteredClaims{Subject: testCaller}))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"caller":"`+common.HexToAddress(testCaller).Hex()+`","jwt":true,"apikey":false}`, w.Body.String())
	})

	t.Run("api key", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		req.Header.Set("Authorization", "ApiKey secret")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"apikey":true`)
		assert.Contains(t, w.Body.String(), `"jwt":false`)
	})

	t.Run("rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/protected", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"unauthorized"`)
	})
}
