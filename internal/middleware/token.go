package middleware

import (
	jwtPkg "ResponderBot/pkg/jwt"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	AccessTokenSecret = "JWT_ACCESS_TOKEN_SECRET"
)

type tokenMiddleware struct {
}

func newTokenMiddleware() *tokenMiddleware {
	return &tokenMiddleware{}
}

// NewTokenMiddleware guards admin writes with a bearer token. When no
// secret is configured the guard is a no-op, matching a panel running on
// a trusted local network.
func (m *middleware) NewTokenMiddleware(ctx *fiber.Ctx) error {
	if os.Getenv(AccessTokenSecret) == "" {
		return ctx.Next()
	}

	authHeader := ctx.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"path":      ctx.Path(),
			"client_ip": ctx.IP(),
		}).Warn("Missing or malformed Authorization header")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	userToken, err := jwtPkg.VerifyTokenHeader(ctx, AccessTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	claims, ok := userToken.Claims.(jwt.MapClaims)
	if !ok || claims["authorization"] != true {
		m.log.WithFields(logrus.Fields{
			"error": "invalid token claims",
		}).Warn("Token claims check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, access token invalid or expired",
		})
	}

	return ctx.Next()
}
