package backendtest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type userPayload struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func userToPayload(user User) userPayload {
	return userPayload{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		Avatar:    user.Avatar,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
		UpdatedAt: user.UpdatedAt.Format(time.RFC3339),
	}
}

// IssueToken signs a short-lived session token for the given user.
func (env *Env) IssueToken(userID, role string) string {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(15 * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(env.JWTSecret)
	if err != nil {
		env.T.Fatalf("sign token: %v", err)
	}
	return token
}

// authenticate resolves the request's user from the token cookie or the
// bearer header. Returns nil when the request carries no valid session.
func (env *Env) authenticate(c echo.Context) *User {
	raw := ""
	if cookie, err := c.Cookie("token"); err == nil {
		raw = cookie.Value
	}
	if raw == "" {
		header := c.Request().Header.Get("Authorization")
		raw = strings.TrimPrefix(header, "Bearer ")
	}
	if raw == "" {
		return nil
	}

	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		return env.JWTSecret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !parsed.Valid {
		return nil
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	sub, _ := claims["sub"].(string)

	var user User
	if err := env.DB.Where("id = ?", sub).First(&user).Error; err != nil {
		return nil
	}
	return &user
}

func (env *Env) login(c echo.Context) error {
	var req struct {
		Email    string `json:"Email"`
		Password string `json:"Password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing fields"})
	}

	var user User
	if err := env.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid credentials"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"token": env.IssueToken(user.ID, user.Role),
		"user":  userToPayload(user),
	})
}

func (env *Env) registerUser(c echo.Context) error {
	var req struct {
		Username string `json:"Username"`
		Email    string `json:"Email"`
		Password string `json:"Password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid body"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "missing fields"})
	}

	var existing User
	if err := env.DB.Where("email = ?", req.Email).First(&existing).Error; !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusConflict, echo.Map{"message": "user already exists"})
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot hash password"})
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Username:     req.Username,
		Avatar:       "https://example.com/avatar2.png",
		PasswordHash: string(hash),
		Role:         "user",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := env.DB.Create(&user).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "cannot create user"})
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"token": env.IssueToken(user.ID, user.Role),
		"user":  userToPayload(user),
	})
}

func (env *Env) refreshToken(c echo.Context) error {
	user := env.authenticate(c)
	if user == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "invalid session"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"token": env.IssueToken(user.ID, user.Role),
		"user":  userToPayload(*user),
	})
}
