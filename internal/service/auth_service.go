package service

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/perera99-msd/coach-service-app/internal/config"
	"github.com/perera99-msd/coach-service-app/internal/middleware"
)

// RoleCoordinator 唯一的管理角色
const RoleCoordinator = "coordinator"

// AuthService issues coordinator tokens. Exactly one privileged principal
// exists; its credential comes from config, never from the database.
type AuthService struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
}

// NewAuthService 创建认证服务
func NewAuthService(admin config.AdminConfig, jwtCfg config.JWTConfig) *AuthService {
	return &AuthService{admin: admin, jwt: jwtCfg}
}

// LoginResult 登录结果
type LoginResult struct {
	Token string    `json:"token"`
	User  LoginUser `json:"user"`
}

// LoginUser 登录用户信息
type LoginUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login verifies the coordinator credential and returns a signed HS256 token.
func (s *AuthService) Login(username, password string) (*LoginResult, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.admin.Password)) == 1
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	expire := s.jwt.TokenExpire
	if expire <= 0 {
		expire = 24 * time.Hour
	}

	now := time.Now()
	claims := middleware.Claims{
		Username: username,
		Role:     RoleCoordinator,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    s.jwt.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{
		Token: signed,
		User:  LoginUser{Username: username, Role: RoleCoordinator},
	}, nil
}
