package service

import (
	"strings"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/constants"

	"github.com/mojocn/base64Captcha"
)

const captchaSource = "23456789abcdefghjkmnpqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ"

// CaptchaImageChallenge 图片验证码挑战
type CaptchaImageChallenge struct {
	CaptchaID   string `json:"captcha_id"`
	ImageBase64 string `json:"image_base64"`
}

// CaptchaService 图片验证码服务，按场景开关决定是否校验
type CaptchaService struct {
	cfg   config.CaptchaConfig
	store base64Captcha.Store
}

// NewCaptchaService 创建验证码服务，store 为空时使用进程内存储
func NewCaptchaService(cfg config.CaptchaConfig, store base64Captcha.Store) *CaptchaService {
	cfg.Image = normalizeCaptchaImageConfig(cfg.Image)
	if store == nil {
		store = base64Captcha.NewMemoryStore(cfg.Image.MaxStore, time.Duration(cfg.Image.ExpireSeconds)*time.Second)
	}
	return &CaptchaService{cfg: cfg, store: store}
}

// SceneEnabled 判断场景是否需要验证码
func (s *CaptchaService) SceneEnabled(scene string) bool {
	if s == nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(scene)) {
	case constants.CaptchaSceneRegister:
		return s.cfg.Scenes.Register
	case constants.CaptchaSceneLogin:
		return s.cfg.Scenes.Login
	default:
		return false
	}
}

// GenerateImageChallenge 生成图片验证码
func (s *CaptchaService) GenerateImageChallenge() (*CaptchaImageChallenge, error) {
	if s == nil || s.store == nil {
		return nil, ErrCaptchaConfigInvalid
	}
	img := s.cfg.Image
	driver := base64Captcha.NewDriverString(
		img.Height,
		img.Width,
		img.NoiseCount,
		img.ShowLine,
		img.Length,
		captchaSource,
		nil,
		base64Captcha.DefaultEmbeddedFonts,
		nil,
	)
	id, b64s, _, err := base64Captcha.NewCaptcha(driver, s.store).Generate()
	if err != nil {
		return nil, err
	}
	return &CaptchaImageChallenge{
		CaptchaID:   strings.TrimSpace(id),
		ImageBase64: strings.TrimSpace(b64s),
	}, nil
}

// Verify 按场景校验验证码，场景未开启时直接通过
func (s *CaptchaService) Verify(scene, captchaID, captchaCode string) error {
	if !s.SceneEnabled(scene) {
		return nil
	}
	captchaID = strings.TrimSpace(captchaID)
	captchaCode = strings.TrimSpace(captchaCode)
	if captchaID == "" || captchaCode == "" {
		return ErrCaptchaRequired
	}
	if !s.store.Verify(captchaID, captchaCode, true) {
		return ErrCaptchaInvalid
	}
	return nil
}

func normalizeCaptchaImageConfig(img config.CaptchaImageConfig) config.CaptchaImageConfig {
	if img.Length <= 0 {
		img.Length = 5
	}
	if img.Width <= 0 {
		img.Width = 240
	}
	if img.Height <= 0 {
		img.Height = 80
	}
	if img.NoiseCount < 0 {
		img.NoiseCount = 0
	}
	if img.ShowLine < 0 {
		img.ShowLine = 0
	}
	if img.ExpireSeconds <= 0 {
		img.ExpireSeconds = 300
	}
	if img.MaxStore <= 0 {
		img.MaxStore = 10240
	}
	return img
}
