package controllers

import (
	"errors"
	"net/mail"
	"os"
	"time"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/psymatch/therapy-app/db"
	"github.com/psymatch/therapy-app/models"
	"github.com/psymatch/therapy-app/redis"
	"github.com/psymatch/therapy-app/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegisterInput struct {
	Email           string `json:"email"`
	Username        string `json:"username"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	InviteCode      string `json:"invite_code"`
}

// validate checks everything that can be checked before touching the DB.
func (in *RegisterInput) validate() (string, bool) {
	if in.Email == "" || in.Password == "" {
		return "Email and password are required", false
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return "Invalid email address", false
	}
	if in.Password != in.PasswordConfirm {
		return "Passwords do not match", false
	}
	if in.Username == "" {
		in.Username = in.Email
	}
	return "", true
}

// UserView is the public JSON shape of a user. The therapist/client flags
// are derived from the stored role, never stored themselves.
func UserView(user *models.User) fiber.Map {
	view := fiber.Map{
		"id":           user.ID,
		"public_id":    user.PublicID,
		"email":        user.Email,
		"username":     user.Username,
		"role":         user.Role,
		"is_therapist": user.IsTherapist(),
		"is_client":    user.IsClient(),
	}
	if user.Profile != nil {
		view["profile"] = fiber.Map{
			"first_name": user.Profile.FirstName,
			"last_name":  user.Profile.LastName,
			"gender":     user.Profile.Gender,
			"avatar_url": user.Profile.Avatar(),
			"role":       user.Role,
		}
	}
	return view
}

// RegisterClient creates a client account: user, base profile and client
// profile in one transaction.
func RegisterClient(c *fiber.Ctx) error {
	return register(c, models.RoleClient)
}

// RegisterTherapist creates a therapist account. Requires a valid unused
// invite code, which is consumed in the same transaction.
func RegisterTherapist(c *fiber.Ctx) error {
	return register(c, models.RoleTherapist)
}

func register(c *fiber.Ctx, role models.AccountRole) error {
	input := new(RegisterInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	if msg, ok := input.validate(); !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": msg,
		})
	}

	if role == models.RoleTherapist && input.InviteCode == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invite code is required",
		})
	}

	// Check if user already exists
	var existingUser models.User
	if db.DB.Where("email = ?", input.Email).First(&existingUser).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "User with this email already exists",
		})
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to hash password",
		})
	}

	user := models.User{
		PublicID: uuid.NewString(),
		Email:    input.Email,
		Username: input.Username,
		Password: string(hashedPassword),
		Role:     role,
	}

	inviteErr := false
	emailTaken := false
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if role == models.RoleTherapist {
			// Atomic claim: the conditional update is the race guard. If a
			// concurrent registration consumed the code first, zero rows
			// match and the whole transaction rolls back.
			now := time.Now()
			claim := tx.Model(&models.InviteCode{}).
				Where("code = ? AND is_used = ? AND (expires_at IS NULL OR expires_at > ?)",
					input.InviteCode, false, now).
				Updates(map[string]interface{}{
					"is_used": true,
					"used_at": now,
				})
			if claim.Error != nil {
				return claim.Error
			}
			if claim.RowsAffected == 0 {
				inviteErr = true
				return gorm.ErrRecordNotFound
			}
		}

		if err := tx.Create(&user).Error; err != nil {
			// A concurrent registration can win the email between the
			// pre-check and this insert; the unique constraint decides.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				emailTaken = true
			}
			return err
		}

		profile := models.UserProfile{
			UserID:    user.ID,
			FirstName: input.FirstName,
			LastName:  input.LastName,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		user.Profile = &profile

		switch role {
		case models.RoleTherapist:
			therapist := models.TherapistProfile{
				UserID: user.ID,
				Status: models.TherapistPending,
			}
			if err := tx.Create(&therapist).Error; err != nil {
				return err
			}
			// Attribute the consumed code to the account it authorized.
			if err := tx.Model(&models.InviteCode{}).
				Where("code = ?", input.InviteCode).
				Update("used_by", user.ID).Error; err != nil {
				return err
			}
		case models.RoleClient:
			client := models.ClientProfile{UserID: user.ID}
			if err := tx.Create(&client).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if inviteErr {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid or already-used invite code",
			})
		}
		if emailTaken {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "User with this email already exists",
			})
		}
		log.Printf("Error creating user: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create user",
		})
	}

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	// Best effort, the account exists either way.
	go func(email, name string) {
		if err := utils.SendEmail(email, "Welcome to PsyMatch", utils.WelcomeEmailBody(name)); err != nil {
			log.Printf("Failed to send welcome email to %s: %v", email, err)
		}
	}(user.Email, input.FirstName)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user":         UserView(&user),
	})
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "your_secret_key" // Replace with secure key in production
	}
	return []byte(secret)
}

func issueTokens(user *models.User) (string, string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Hour * 24).Unix(), // 24 hour expiration
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}

	refreshClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 day expiration
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString(jwtSecret())
	if err != nil {
		return "", "", err
	}
	return tokenString, refreshTokenString, nil
}

// Login handles user authentication
func Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(LoginInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	// Same message whether the email is unknown or the password is wrong.
	var user models.User
	if db.DB.Preload("Profile").Where("email = ?", input.Email).First(&user).RowsAffected == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid credentials",
		})
	}

	token, refreshToken, err := issueTokens(&user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token":        token,
		"refreshToken": refreshToken,
		"user":         UserView(&user),
	})
}

// CurrentUser returns the authenticated user's full aggregate.
func CurrentUser(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var user models.User
	query := db.DB.Preload("Profile").
		Preload("TherapistProfile").
		Preload("TherapistProfile.Skills").
		Preload("TherapistProfile.Languages").
		Preload("ClientProfile").
		Preload("ClientProfile.Interests")
	if err := query.First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "User not found",
		})
	}

	view := UserView(&user)
	if user.TherapistProfile != nil {
		view["therapist_profile"] = user.TherapistProfile
	}
	if user.ClientProfile != nil {
		view["client_profile"] = user.ClientProfile
	}
	return c.JSON(view)
}

// Logout revokes the presented token. Revocation lives in Redis until the
// token would have expired anyway.
func Logout(c *fiber.Ctx) error {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)

	ttl := time.Duration(0)
	if exp, ok := claims["exp"].(float64); ok {
		ttl = time.Until(time.Unix(int64(exp), 0))
	}

	if err := redis.RevokeToken(token.Raw, ttl); err != nil {
		log.Printf("Failed to revoke token: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to log out",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Successfully logged out",
	})
}

// RefreshToken generates a new access token using a refresh token
func RefreshToken(c *fiber.Ctx) error {
	type RefreshRequest struct {
		RefreshToken string `json:"refreshToken"`
	}

	refreshRequest := new(RefreshRequest)
	if err := c.BodyParser(refreshRequest); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	token, err := jwt.Parse(refreshRequest.RefreshToken, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})

	if err != nil || !token.Valid || redis.IsTokenRevoked(refreshRequest.RefreshToken) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	claims := token.Claims.(jwt.MapClaims)
	var user models.User
	if err := db.DB.First(&user, uint(claims["id"].(float64))).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid refresh token",
		})
	}

	newClaims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"role":  string(user.Role),
		"exp":   time.Now().Add(time.Hour * 24).Unix(),
	}

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, newClaims)
	tokenString, err := newToken.SignedString(jwtSecret())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate token",
		})
	}

	return c.JSON(fiber.Map{
		"token": tokenString,
	})
}
