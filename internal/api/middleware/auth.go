package middleware

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/theanh098/sei-market-oxide/internal/logger"
)

const (
	AUTH_TYPE_KEY    = "auth_type"
	AUTH_SUBJECT_KEY = "auth_subject"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string // RSA public key in PEM format
	APIKeys      []string
}

// Enabled reports whether any credential is configured
func (c AuthConfig) Enabled() bool {
	return c.JWTPublicKey != "" || slices.ContainsFunc(c.APIKeys, func(k string) bool { return k != "" })
}

// AuthResult holds the result of authentication
type AuthResult struct {
	AuthType string // "jwt" or "apikey"
	Subject  string
}

// Authenticate validates an Authorization header of the form
// "Bearer <jwt>" or "ApiKey <key>"
func Authenticate(authHeader string, cfg AuthConfig) (*AuthResult, error) {
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	scheme, credentials, ok := strings.Cut(authHeader, " ")
	if !ok || credentials == "" {
		return nil, errors.New("invalid Authorization header format")
	}

	switch strings.ToLower(scheme) {
	case "bearer":
		claims, err := validateJWT(credentials, cfg.JWTPublicKey)
		if err != nil {
			return nil, err
		}
		return &AuthResult{AuthType: "jwt", Subject: claims.Subject}, nil
	case "apikey":
		if !slices.Contains(cfg.APIKeys, credentials) {
			return nil, errors.New("invalid API key")
		}
		return &AuthResult{AuthType: "apikey"}, nil
	default:
		return nil, fmt.Errorf("unsupported authorization type: %s", scheme)
	}
}

// Auth returns a gin middleware accepting either a JWT or an API key
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := Authenticate(c.GetHeader("Authorization"), cfg)
		if err != nil {
			logger.Warn("Authentication failed",
				zap.Error(err),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "unauthorized",
					"message": "Authentication failed",
					"details": err.Error(),
				},
			})
			return
		}

		c.Set(AUTH_TYPE_KEY, result.AuthType)
		if result.Subject != "" {
			c.Set(AUTH_SUBJECT_KEY, result.Subject)
		}

		c.Next()
	}
}

// validateJWT validates an RS256-family token and returns its claims.
// jwt/v5 checks exp and nbf while parsing.
func validateJWT(tokenString string, publicKeyPEM string) (*jwt.RegisteredClaims, error) {
	if publicKeyPEM == "" {
		return nil, errors.New("JWT public key not configured")
	}

	publicKey, err := parseRSAPublicKey(publicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RSA public key: %w", err)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// parseRSAPublicKey parses an RSA public key in PKIX or PKCS1 PEM form
func parseRSAPublicKey(publicKeyPEM string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(publicKeyPEM))
	if block == nil {
		return nil, errors.New("failed to parse PEM block containing public key")
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return x509.ParsePKCS1PublicKey(block.Bytes)
	}

	rsaKey, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("public key is not an RSA key")
	}

	return rsaKey, nil
}
