package service

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/blogicum-next/internal/config"
	"github.com/blogicum-next/internal/logger"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/google/uuid"
	_ "golang.org/x/image/webp"
)

// UploadScenePost 文章配图目录
const UploadScenePost = "posts"

var allowedUploadScenes = map[string]struct{}{
	UploadScenePost: {},
	"common":        {},
}

// UploadService 图片上传服务
type UploadService struct {
	cfg config.UploadConfig
	now func() time.Time
}

// NewUploadService 创建上传服务实例
func NewUploadService(cfg config.UploadConfig) *UploadService {
	return &UploadService{cfg: cfg, now: time.Now}
}

// SaveFile 校验并保存上传文件，返回对外访问路径
func (s *UploadService) SaveFile(file *multipart.FileHeader, scene string) (string, error) {
	if s == nil {
		return "", ErrUploadImageInvalid
	}
	if file == nil {
		return "", fmt.Errorf("%w: empty file", ErrUploadImageInvalid)
	}
	if s.cfg.MaxSize > 0 && file.Size > s.cfg.MaxSize {
		return "", ErrUploadTooLarge
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if len(s.cfg.AllowedExtensions) > 0 {
		if ext == "" || !isAllowedExtension(ext, s.cfg.AllowedExtensions) {
			return "", fmt.Errorf("%w: %s", ErrUploadExtension, ext)
		}
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// 读取文件头部识别 MIME 类型
	buffer := make([]byte, 512)
	n, err := src.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(buffer[:n])
	if len(s.cfg.AllowedTypes) > 0 && !containsFold(s.cfg.AllowedTypes, contentType) {
		return "", fmt.Errorf("%w: %s", ErrUploadContentType, contentType)
	}

	if strings.HasPrefix(contentType, "image/") {
		if _, err := src.Seek(0, io.SeekStart); err != nil {
			return "", err
		}
		imgCfg, _, err := image.DecodeConfig(src)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUploadImageInvalid, err)
		}
		if (s.cfg.MaxWidth > 0 && imgCfg.Width > s.cfg.MaxWidth) || (s.cfg.MaxHeight > 0 && imgCfg.Height > s.cfg.MaxHeight) {
			return "", ErrUploadImageDimension
		}
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	normalizedScene := normalizeUploadScene(scene)
	now := s.now()
	year, month := now.Format("2006"), now.Format("01")
	filename := uuid.New().String() + ext
	savePath := filepath.Join(s.RootDir(), normalizedScene, year, month, filename)

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return "", err
	}
	dst, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(savePath)
		return "", err
	}
	return path.Join(s.URLPrefix(), normalizedScene, year, month, filename), nil
}

// Remove 删除之前保存的文件，非本服务管理的路径直接忽略
func (s *UploadService) Remove(publicURL string) {
	if s == nil {
		return
	}
	prefix := s.URLPrefix() + "/"
	publicURL = strings.TrimSpace(publicURL)
	if !strings.HasPrefix(publicURL, prefix) {
		return
	}
	rel := path.Clean(strings.TrimPrefix(publicURL, prefix))
	if rel == "." || strings.HasPrefix(rel, "..") {
		return
	}
	target := filepath.Join(s.RootDir(), filepath.FromSlash(rel))
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		logger.Warnw("upload_remove_failed", "path", target, "error", err)
	}
}

// URLPrefix 对外访问前缀，不带结尾斜杠
func (s *UploadService) URLPrefix() string {
	prefix := "/" + strings.Trim(strings.TrimSpace(s.cfg.URLPrefix), "/")
	if prefix == "/" {
		return "/media"
	}
	return prefix
}

// RootDir 存储根目录
func (s *UploadService) RootDir() string {
	dir := strings.TrimSpace(s.cfg.Dir)
	if dir == "" {
		return "media"
	}
	return dir
}

func normalizeUploadScene(raw string) string {
	value := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := allowedUploadScenes[value]; ok {
		return value
	}
	return "common"
}

func isAllowedExtension(ext string, allowed []string) bool {
	for _, allowedExt := range allowed {
		normalized := strings.ToLower(strings.TrimSpace(allowedExt))
		if normalized == "" {
			continue
		}
		if !strings.HasPrefix(normalized, ".") {
			normalized = "." + normalized
		}
		if ext == normalized {
			return true
		}
	}
	return false
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(strings.TrimSpace(v), target) {
			return true
		}
	}
	return false
}
