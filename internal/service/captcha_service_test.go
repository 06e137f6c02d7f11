package service

import (
	"errors"
	"testing"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/constants"

	"github.com/mojocn/base64Captcha"
)

func TestCaptchaVerifyByScene(t *testing.T) {
	store := base64Captcha.NewMemoryStore(16, time.Minute)
	svc := NewCaptchaService(config.CaptchaConfig{
		Scenes: config.CaptchaSceneConfig{Register: true},
	}, store)

	if err := svc.Verify(constants.CaptchaSceneLogin, "", ""); err != nil {
		t.Fatalf("disabled scene should pass, got %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneRegister, "", ""); !errors.Is(err, ErrCaptchaRequired) {
		t.Fatalf("missing captcha should be required, got %v", err)
	}

	challenge, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	if challenge.CaptchaID == "" || challenge.ImageBase64 == "" {
		t.Fatalf("unexpected challenge: %+v", challenge)
	}
	answer := store.Get(challenge.CaptchaID, false)
	if err := svc.Verify(constants.CaptchaSceneRegister, challenge.CaptchaID, "00000"); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("wrong answer should be invalid, got %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneRegister, challenge.CaptchaID, answer); !errors.Is(err, ErrCaptchaInvalid) {
		t.Fatalf("challenge should be consumed by the failed attempt, got %v", err)
	}

	second, err := svc.GenerateImageChallenge()
	if err != nil {
		t.Fatalf("generate challenge failed: %v", err)
	}
	if err := svc.Verify(constants.CaptchaSceneRegister, second.CaptchaID, store.Get(second.CaptchaID, false)); err != nil {
		t.Fatalf("correct answer should pass, got %v", err)
	}
}

func TestCaptchaNilServiceDisabled(t *testing.T) {
	var svc *CaptchaService
	if svc.SceneEnabled(constants.CaptchaSceneLogin) {
		t.Fatalf("nil service should disable captcha")
	}
}
