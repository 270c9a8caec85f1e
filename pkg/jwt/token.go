package jwtPkg

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

func Sign(data map[string]interface{}, expiredAt time.Duration) (string, int64, error) {
	exp := time.Now().Add(expiredAt).Unix()

	secret := os.Getenv("JWT_ACCESS_TOKEN_SECRET")
	if secret == "" {
		return "", 0, fmt.Errorf("JWT_ACCESS_TOKEN_SECRET not set")
	}

	claims := jwt.MapClaims{}
	claims["exp"] = exp
	claims["authorization"] = true

	for k, v := range data {
		claims[k] = v
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString([]byte(secret))
	if err != nil {
		logrus.WithError(err).Error("Failed to sign token")
		return "", 0, err
	}

	return accessToken, exp, nil
}

func VerifyTokenHeader(c *fiber.Ctx, secretEnvKey string) (*jwt.Token, error) {
	header := c.Get("Authorization")
	if header == "" {
		return nil, errors.New("empty Authorization header")
	}

	parts := strings.Split(header, "Bearer ")
	if len(parts) != 2 {
		return nil, errors.New("invalid Authorization format")
	}

	accessToken := strings.TrimSpace(parts[1])
	if accessToken == "" {
		return nil, errors.New("empty token")
	}

	secret := os.Getenv(secretEnvKey)
	if secret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	return token, nil
}
