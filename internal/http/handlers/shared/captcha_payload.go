package shared

import "strings"

// CaptchaPayload 表单与 JSON 共用的验证码字段。
type CaptchaPayload struct {
	CaptchaID   string `form:"captcha_id" json:"captcha_id"`
	CaptchaCode string `form:"captcha_code" json:"captcha_code"`
}

// Normalize 去除首尾空白。
func (p CaptchaPayload) Normalize() CaptchaPayload {
	return CaptchaPayload{
		CaptchaID:   strings.TrimSpace(p.CaptchaID),
		CaptchaCode: strings.TrimSpace(p.CaptchaCode),
	}
}
