package helper

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"wedding_invitation/config"
	"wedding_invitation/model"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is not configured")

func jwtSecret() ([]byte, error) {
	secret := config.Config("JWT_SECRET")
	if secret == "" {
		return nil, ErrMissingJWTSecret
	}
	return []byte(secret), nil
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckAdminCredentials so khớp với ADMIN_USERNAME và ADMIN_PASSWORD_HASH (bcrypt).
func CheckAdminCredentials(username, password string) bool {
	wantUser := config.Config("ADMIN_USERNAME")
	hash := config.Config("ADMIN_PASSWORD_HASH")
	if wantUser == "" || hash == "" {
		return false
	}
	return username == wantUser && CheckPasswordHash(password, hash)
}

func GenerateAccessToken(tokenClaim model.TokenClaim) (string, error) {
	secret, err := jwtSecret()
	if err != nil {
		return "", err
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = tokenClaim.Username
	claims["role"] = tokenClaim.Role
	claims["exp"] = time.Now().Add(time.Minute * 60).Unix()

	return token.SignedString(secret)
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	secret, err := jwtSecret()
	if err != nil {
		return nil, err
	}
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Xác thực thuật toán ký là HMAC
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
}

func GetInfoAccountFromToken(c *fiber.Ctx) (model.TokenClaim, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return model.TokenClaim{}, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return model.TokenClaim{}, false
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return model.TokenClaim{Username: username, Role: role}, true
}

// ClientIP ưu tiên X-Forwarded-For, rồi X-Real-IP, cuối cùng là IP kết nối.
func ClientIP(c *fiber.Ctx) string {
	if forwarded := c.Get("X-Forwarded-For"); forwarded != "" {
		if ip := strings.TrimSpace(strings.Split(forwarded, ",")[0]); ip != "" {
			return ip
		}
	}
	if realIP := strings.TrimSpace(c.Get("X-Real-IP")); realIP != "" {
		return realIP
	}
	if ip := c.IP(); ip != "" {
		return ip
	}
	return "127.0.0.1"
}
