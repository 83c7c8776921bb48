package auth

import (
	"fmt"
	"time"

	"kmteams/config"
	"kmteams/utils"

	"github.com/golang-jwt/jwt/v5"
)

const PermissionAdmin = "admin"

type Claims struct {
	UserId      int      `json:"user_id"`
	Permissions []string `json:"permissions"`
	Exp         int64    `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return fmt.Errorf("unexpected claims type %T", jwtClaims)
	}
	permissions := []string{}
	if raw, ok := mapClaims["permissions"].([]interface{}); ok {
		for _, perm := range raw {
			if s, ok := perm.(string); ok {
				permissions = append(permissions, s)
			}
		}
	}
	claims.Permissions = permissions
	if userId, ok := mapClaims["user_id"].(float64); ok {
		claims.UserId = int(userId)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.Exp = int64(exp)
	}
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func (claims *Claims) HasPermission(permission string) bool {
	return utils.Contains(claims.Permissions, permission)
}

func CreateToken(userId int, permissions []string, validFor time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":     userId,
			"permissions": permissions,
			"exp":         time.Now().Add(validFor).Unix(),
		})

	tokenString, err := token.SignedString([]byte(config.Env().JWTSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ParseToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(config.Env().JWTSecret), nil
	})

	if err != nil {
		return nil, err
	}
	return token, nil
}
