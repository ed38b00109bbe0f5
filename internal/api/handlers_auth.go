package api

import (
	"strings"
	"time"

	"github.com/gearbox-app/gearbox/internal/models"
	"github.com/gearbox-app/gearbox/internal/services"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, err := services.NormalizeEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid email")
	}
	if err := services.ValidatePasswordStrength(input.Password); err != nil {
		return apiError(c, fiber.StatusBadRequest, "password must be at least 8 characters with letters and digits")
	}

	handler.ensureDependencies()
	exists, err := handler.authService.RegistrationEmailExists(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:            email,
		PasswordHash:     string(passwordHash),
		FullName:         strings.TrimSpace(input.FullName),
		SubscriptionTier: models.TierFree,
		IsMechanic:       input.IsMechanic,
		ShopName:         strings.TrimSpace(input.ShopName),
		ShopAddress:      strings.TrimSpace(input.ShopAddress),
		ShopPhone:        strings.TrimSpace(input.ShopPhone),
		Certification:    strings.TrimSpace(input.Certification),
		Specialties:      input.Specialties,
		CreatedAt:        time.Now().In(handler.location),
	}
	if err := handler.authService.CreateUser(&user); err != nil {
		return apiError(c, fiber.StatusConflict, "email already exists")
	}

	if err := handler.setAuthCookie(c, &user, true); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	email, err := services.NormalizeEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	handler.ensureDependencies()
	user, err := handler.authService.FindByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return apiError(c, fiber.StatusUnauthorized, "invalid credentials")
	}

	if err := handler.setAuthCookie(c, &user, input.RememberMe); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}
	return c.JSON(user)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	return c.JSON(currentUser(c))
}

func (handler *Handler) UpdateMe(c *fiber.Ctx) error {
	user := currentUser(c)
	input := profileUpdateInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updates := map[string]any{}
	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.SubscriptionTier != nil {
		tier := strings.TrimSpace(*input.SubscriptionTier)
		if tier != models.TierFree && tier != models.TierPaid {
			return apiError(c, fiber.StatusBadRequest, "unknown subscription tier")
		}
		updates["subscription_tier"] = tier
	}
	if input.IsMechanic != nil {
		updates["is_mechanic"] = *input.IsMechanic
	}
	if input.ShopName != nil {
		updates["shop_name"] = strings.TrimSpace(*input.ShopName)
	}
	if input.ShopAddress != nil {
		updates["shop_address"] = strings.TrimSpace(*input.ShopAddress)
	}
	if input.ShopPhone != nil {
		updates["shop_phone"] = strings.TrimSpace(*input.ShopPhone)
	}
	if input.Certification != nil {
		updates["certification"] = strings.TrimSpace(*input.Certification)
	}
	if input.Specialties != nil {
		updates["specialties"] = *input.Specialties
	}
	if input.NotificationPreferences != nil {
		updates["notification_preferences"] = *input.NotificationPreferences
	}

	handler.ensureDependencies()
	if err := handler.authService.UpdateProfile(user.ID, updates); err != nil {
		return respondServiceError(c, err)
	}

	refreshed, err := handler.authService.FindByID(user.ID)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(refreshed)
}
