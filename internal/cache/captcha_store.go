package cache

import (
	"context"
	"strings"
	"time"

	"github.com/blogicum-next/internal/logger"

	"github.com/redis/go-redis/v9"
)

const captchaOpTimeout = time.Second

// CaptchaStore 基于 Redis 的图片验证码答案存储，实现 base64Captcha.Store
type CaptchaStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCaptchaStore 创建验证码存储
func NewCaptchaStore(client *redis.Client, ttl time.Duration) *CaptchaStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &CaptchaStore{client: client, ttl: ttl}
}

// Set 保存验证码答案
func (s *CaptchaStore) Set(id string, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), captchaOpTimeout)
	defer cancel()
	return s.client.Set(ctx, Key("captcha", id), value, s.ttl).Err()
}

// Get 读取验证码答案，clear 为 true 时读取后删除
func (s *CaptchaStore) Get(id string, clear bool) string {
	ctx, cancel := context.WithTimeout(context.Background(), captchaOpTimeout)
	defer cancel()
	key := Key("captcha", id)
	var (
		val string
		err error
	)
	if clear {
		val, err = s.client.GetDel(ctx, key).Result()
	} else {
		val, err = s.client.Get(ctx, key).Result()
	}
	if err != nil {
		if err != redis.Nil {
			logger.Warnw("captcha_store_get_failed", "captcha_id", id, "error", err)
		}
		return ""
	}
	return val
}

// Verify 校验验证码答案（忽略大小写）
func (s *CaptchaStore) Verify(id, answer string, clear bool) bool {
	stored := s.Get(id, clear)
	if stored == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(stored), strings.TrimSpace(answer))
}
