package middleware

import (
	"errors"
	"net/http"
	"strings"

	"bell24h_negotiation/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const subjectKey = "auth.subject"

var (
	errMissingToken = errors.New("missing bearer token")
	errNoSubject    = errors.New("token has no subject")
)

// JWT validates an HS256 bearer token and stores its subject on the context.
// Preflight requests pass through untouched.
func JWT(secret string, logger *zap.Logger) gin.HandlerFunc {
	key := []byte(secret)
	unauthorized := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid token", http.StatusUnauthorized)

	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		subject, err := parseSubject(c.GetHeader("Authorization"), key)
		if err != nil {
			logger.Info("[auth][middleware] rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(unauthorized.HTTPStatus, unauthorized.ToHTTPError())
			return
		}
		c.Set(subjectKey, subject)
		c.Next()
	}
}

func parseSubject(header string, key []byte) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return "", errMissingToken
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errNoSubject
	}
	return claims.Subject, nil
}

// AuthSubject returns the authenticated caller, if the JWT middleware ran.
func AuthSubject(c *gin.Context) (string, bool) {
	v, ok := c.Get(subjectKey)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok && s != ""
}
