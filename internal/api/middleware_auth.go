package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// AuthRequired resolves the auth cookie to a user and stores it on the
// request context. Every /api route except register, login, the transfer
// lookup and healthz sits behind it.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	c.Locals(contextUserKey, user)
	return c.Next()
}

// MechanicOnly gates the shop surface. Runs after AuthRequired.
func (handler *Handler) MechanicOnly(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil || !user.IsMechanic {
		return apiError(c, fiber.StatusForbidden, "mechanic access required")
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(contextUserKey).(*models.User)
	return user
}

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return nil, errors.New("missing auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, user *models.User, remember bool) error {
	ttl := defaultAuthTokenTTL
	if remember {
		ttl = rememberAuthTokenTTL
	}

	now := time.Now()
	claims := authClaims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(handler.secretKey)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Expires:  now.Add(ttl),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}
