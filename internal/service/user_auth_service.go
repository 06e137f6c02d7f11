package service

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	usernameMaxLength = 150
	nameMaxLength     = 150
)

var usernamePattern = regexp.MustCompile(`^[\p{L}\p{N}_.@+-]+$`)

// UserAuthService 博客用户认证与资料服务
type UserAuthService struct {
	cfg      *config.Config
	userRepo repository.UserRepository
	now      func() time.Time
}

// NewUserAuthService 创建用户认证服务
func NewUserAuthService(cfg *config.Config, userRepo repository.UserRepository) *UserAuthService {
	return &UserAuthService{
		cfg:      cfg,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// UserJWTClaims 会话 Cookie 中的 JWT 声明
type UserJWTClaims struct {
	UserID       uint   `json:"user_id"`
	Username     string `json:"username"`
	TokenVersion uint64 `json:"token_version"`
	jwt.RegisteredClaims
}

// RegisterInput 注册表单
type RegisterInput struct {
	Username        string
	Password        string
	PasswordConfirm string
}

// ProfileInput 个人资料表单
type ProfileInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
}

// PasswordChangeInput 修改密码表单
type PasswordChangeInput struct {
	OldPassword     string
	NewPassword     string
	PasswordConfirm string
}

// GenerateUserJWT 签发会话 Token
func (s *UserAuthService) GenerateUserJWT(user *models.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(time.Duration(resolveUserJWTExpireHours(s.cfg.UserJWT)) * time.Hour)
	claims := UserJWTClaims{
		UserID:       user.ID,
		Username:     user.Username,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.UserJWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseUserJWT 解析会话 Token
func (s *UserAuthService) ParseUserJWT(tokenString string) (*UserJWTClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	claims := &UserJWTClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.UserJWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid || claims.UserID == 0 {
		return nil, errors.New("无效的 token")
	}
	return claims, nil
}

// Authenticate 校验会话 Token 并加载当前用户
func (s *UserAuthService) Authenticate(tokenString string) (*models.User, error) {
	claims, err := s.ParseUserJWT(tokenString)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	user, err := s.userRepo.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthenticated
	}
	if !user.IsActive {
		return nil, ErrUserDisabled
	}
	if claims.TokenVersion != user.TokenVersion || !isIssuedAfterInvalidBefore(claims.IssuedAt, user.TokenInvalidBefore) {
		return nil, ErrTokenRevoked
	}
	return user, nil
}

// Register 用户注册，成功后不自动登录
func (s *UserAuthService) Register(input RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(input.Username)
	verr := &ValidationError{}
	if key := validateUsername(username); key != "" {
		verr.Add("username", key)
	}
	if input.Password == "" {
		verr.Add("password", "form.required")
	}
	if input.PasswordConfirm == "" {
		verr.Add("password_confirm", "form.required")
	} else if input.Password != input.PasswordConfirm {
		verr.Add("password_confirm", "form.password_mismatch")
	}
	if input.Password != "" {
		if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
			key, _, _ := PasswordPolicyKeyArgs(err)
			verr.Add("password", key)
		}
	}
	if !verr.HasErrors() {
		count, err := s.userRepo.CountByUsername(username, 0)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			verr.Add("username", "form.username_taken")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 用户名密码登录，返回会话 Token
func (s *UserAuthService) Login(username, password string) (*models.User, string, time.Time, error) {
	user, err := s.userRepo.GetByUsername(strings.TrimSpace(username))
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if user == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, "", time.Time{}, ErrUserDisabled
	}

	token, expiresAt, err := s.GenerateUserJWT(user)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	now := s.now()
	if err := s.userRepo.TouchLastLogin(user.ID, now); err != nil {
		return nil, "", time.Time{}, err
	}
	user.LastLoginAt = &now
	return user, token, expiresAt, nil
}

// ChangePassword 登录态修改密码，其余会话全部失效
func (s *UserAuthService) ChangePassword(userID uint, input PasswordChangeInput) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	verr := &ValidationError{}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)) != nil {
		verr.Add("old_password", "form.old_password_incorrect")
	}
	if input.NewPassword == "" {
		verr.Add("new_password", "form.required")
	} else if err := validatePassword(s.cfg.Security.PasswordPolicy, input.NewPassword); err != nil {
		key, _, _ := PasswordPolicyKeyArgs(err)
		verr.Add("new_password", key)
	}
	if input.NewPassword != input.PasswordConfirm {
		verr.Add("password_confirm", "form.password_mismatch")
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := s.now()
	user.PasswordHash = string(hash)
	user.TokenVersion++
	user.TokenInvalidBefore = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateProfile 更新姓名、用户名与邮箱
func (s *UserAuthService) UpdateProfile(userID uint, input ProfileInput) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	username := strings.TrimSpace(input.Username)
	verr := &ValidationError{}
	if key := validateUsername(username); key != "" {
		verr.Add("username", key)
	}
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	if utf8.RuneCountInString(firstName) > nameMaxLength {
		verr.Add("first_name", "form.too_long")
	}
	if utf8.RuneCountInString(lastName) > nameMaxLength {
		verr.Add("last_name", "form.too_long")
	}
	email, err := normalizeOptionalEmail(input.Email)
	if err != nil {
		verr.Add("email", "form.invalid_email")
	}
	if _, exists := verr.Fields["username"]; !exists {
		count, err := s.userRepo.CountByUsername(username, user.ID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			verr.Add("username", "form.username_taken")
		}
	}
	if err := verr.OrNil(); err != nil {
		return nil, err
	}

	user.FirstName = firstName
	user.LastName = lastName
	user.Username = username
	user.Email = email
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID 获取用户
func (s *UserAuthService) GetUserByID(id uint) (*models.User, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// ListUsers 后台用户列表
func (s *UserAuthService) ListUsers(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// SetActive 后台启用/停用用户
func (s *UserAuthService) SetActive(id uint, active bool) (*models.User, error) {
	if _, err := s.GetUserByID(id); err != nil {
		return nil, err
	}
	if err := s.userRepo.UpdateActive(id, active); err != nil {
		return nil, err
	}
	return s.GetUserByID(id)
}

// DeleteUser 后台删除用户（级联删除其文章与评论）
func (s *UserAuthService) DeleteUser(id uint) error {
	if _, err := s.GetUserByID(id); err != nil {
		return err
	}
	return s.userRepo.Delete(id)
}

func validateUsername(username string) string {
	switch {
	case username == "":
		return "form.required"
	case utf8.RuneCountInString(username) > usernameMaxLength:
		return "form.too_long"
	case !usernamePattern.MatchString(username):
		return "form.username_invalid"
	}
	return ""
}

func normalizeOptionalEmail(email string) (string, error) {
	normalized := strings.TrimSpace(email)
	if normalized == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return "", errors.New("invalid email")
	}
	return normalized, nil
}

func resolveUserJWTExpireHours(cfg config.JWTConfig) int {
	if cfg.ExpireHours <= 0 {
		return 24
	}
	return cfg.ExpireHours
}

func isIssuedAfterInvalidBefore(issuedAt *jwt.NumericDate, invalidBefore *time.Time) bool {
	if invalidBefore == nil {
		return true
	}
	if issuedAt == nil {
		return false
	}
	return issuedAt.Time.Unix() >= invalidBefore.Unix()
}
