package service

import (
	"errors"
	"strings"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// 未配置时的初始后台账号
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

// AuthService 后台管理员认证服务
type AuthService struct {
	cfg       *config.Config
	adminRepo repository.AdminRepository
	now       func() time.Time
}

// NewAuthService 创建认证服务实例
func NewAuthService(cfg *config.Config, adminRepo repository.AdminRepository) *AuthService {
	return &AuthService{
		cfg:       cfg,
		adminRepo: adminRepo,
		now:       time.Now,
	}
}

// HashPassword 使用 bcrypt 加密密码
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword 验证密码
func (s *AuthService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePassword 校验密码是否符合策略
func (s *AuthService) ValidatePassword(password string) error {
	if s == nil || s.cfg == nil {
		return nil
	}
	return validatePassword(s.cfg.Security.PasswordPolicy, password)
}

// JWTClaims 管理员 JWT 声明
type JWTClaims struct {
	AdminID      uint   `json:"admin_id"`
	Username     string `json:"username"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// GenerateJWT 生成 JWT Token
func (s *AuthService) GenerateJWT(admin *models.Admin) (string, time.Time, error) {
	now := s.now()
	hours := s.cfg.JWT.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	expiresAt := now.Add(time.Duration(hours) * time.Hour)

	claims := JWTClaims{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseJWT 解析 JWT Token
func (s *AuthService) ParseJWT(tokenString string) (*JWTClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid && claims.AdminID != 0 {
		return claims, nil
	}
	return nil, errors.New("无效的 token")
}

// Authenticate 校验管理员 Token 并确认未被吊销
func (s *AuthService) Authenticate(tokenString string) (*models.Admin, error) {
	claims, err := s.ParseJWT(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	admin, err := s.adminRepo.GetByID(claims.AdminID)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrUnauthenticated
	}
	if claims.TokenVersion != admin.TokenVersion || !isIssuedAfterInvalidBefore(claims.IssuedAt, admin.TokenInvalidBefore) {
		return nil, ErrTokenRevoked
	}
	return admin, nil
}

// Login 管理员登录
func (s *AuthService) Login(username, password string) (*models.Admin, string, time.Time, error) {
	admin, err := s.adminRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if admin == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := s.VerifyPassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := s.GenerateJWT(admin)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	now := s.now()
	if err := s.adminRepo.TouchLastLogin(admin.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	admin.LastLoginAt = &now
	return admin, token, expiresAt, nil
}

// ChangePassword 修改管理员密码
func (s *AuthService) ChangePassword(adminID uint, oldPassword, newPassword string) error {
	admin, err := s.adminRepo.GetByID(adminID)
	if err != nil {
		return err
	}
	if admin == nil {
		return ErrNotFound
	}
	if err := s.VerifyPassword(admin.PasswordHash, oldPassword); err != nil {
		return ErrInvalidPassword
	}
	if err := s.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := s.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.adminRepo.RotatePassword(admin.ID, hashedPassword, s.now())
}

// CreateAdmin 创建后台账号
func (s *AuthService) CreateAdmin(username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, NewValidationError("username", "form.required")
	}
	existing, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}
	if err := s.ValidatePassword(password); err != nil {
		return nil, err
	}
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Username: username, PasswordHash: hash}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// EnsureDefaultAdmin 库中没有后台账号时创建超级管理员；已有账号时只保证同名账号为超级管理员
func (s *AuthService) EnsureDefaultAdmin(username, password string) (*models.Admin, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		username = DefaultAdminUsername
	}
	total, err := s.adminRepo.Count()
	if err != nil {
		return nil, err
	}
	if total > 0 {
		if _, err := s.adminRepo.PromoteSuper(username); err != nil {
			return nil, err
		}
		return nil, nil
	}
	if password == "" {
		password = DefaultAdminPassword
	}
	hash, err := s.HashPassword(password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{Username: username, PasswordHash: hash, IsSuper: true}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// GetAdmin 获取管理员
func (s *AuthService) GetAdmin(id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrNotFound
	}
	return admin, nil
}

// ListAdmins 管理员列表
func (s *AuthService) ListAdmins() ([]models.Admin, error) {
	return s.adminRepo.List()
}
