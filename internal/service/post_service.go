package service

import (
	"errors"
	"mime/multipart"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/blogicum-next/internal/logger"
	"github.com/blogicum-next/internal/models"
	"github.com/blogicum-next/internal/repository"
)

const postTitleMaxLength = 256

// PostService 文章业务服务
type PostService struct {
	postRepo     repository.PostRepository
	categoryRepo repository.CategoryRepository
	locationRepo repository.LocationRepository
	userRepo     repository.UserRepository
	commentRepo  repository.CommentRepository
	uploads      *UploadService
	now          func() time.Time
}

// NewPostService 创建文章服务
func NewPostService(
	postRepo repository.PostRepository,
	categoryRepo repository.CategoryRepository,
	locationRepo repository.LocationRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	uploads *UploadService,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		userRepo:     userRepo,
		commentRepo:  commentRepo,
		uploads:      uploads,
		now:          time.Now,
	}
}

// PostInput 文章表单
type PostInput struct {
	Title       string
	Text        string
	PubDate     time.Time
	LocationID  uint
	CategoryID  uint
	IsPublished bool
	Image       *multipart.FileHeader
	ClearImage  bool
}

// FormOptions 文章表单下拉选项
func (s *PostService) FormOptions() ([]models.Category, []models.Location, error) {
	categories, err := s.categoryRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	locations, err := s.locationRepo.ListAll()
	if err != nil {
		return nil, nil, err
	}
	return categories, locations, nil
}

// Validate 校验文章表单并追加到 verr
func (s *PostService) Validate(input PostInput, verr *ValidationError) error {
	title := strings.TrimSpace(input.Title)
	switch {
	case title == "":
		verr.Add("title", "form.required")
	case utf8.RuneCountInString(title) > postTitleMaxLength:
		verr.Add("title", "form.too_long")
	}
	if strings.TrimSpace(input.Text) == "" {
		verr.Add("text", "form.required")
	}
	if input.PubDate.IsZero() {
		verr.Add("pub_date", "form.required")
	}
	if input.CategoryID == 0 {
		verr.Add("category", "form.required")
	} else {
		category, err := s.categoryRepo.GetByID(input.CategoryID)
		if err != nil {
			return err
		}
		if category == nil {
			verr.Add("category", "form.invalid_choice")
		}
	}
	if input.LocationID != 0 {
		location, err := s.locationRepo.GetByID(input.LocationID)
		if err != nil {
			return err
		}
		if location == nil {
			verr.Add("location", "form.invalid_choice")
		}
	}
	return nil
}

// Create 创建文章，作者为当前用户
func (s *PostService) Create(authorID uint, input PostInput) (*models.Post, error) {
	if authorID == 0 {
		return nil, ErrUnauthenticated
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}
	imageURL, err := s.saveImage(input.Image)
	if err != nil {
		return nil, err
	}

	post := &models.Post{AuthorID: authorID}
	applyPostInput(post, input)
	post.Image = imageURL
	if err := s.postRepo.Create(post); err != nil {
		s.uploads.Remove(imageURL)
		return nil, err
	}
	return post, nil
}

// GetOwned 获取当前用户本人的文章（编辑/删除页），非作者返回 ErrForbidden
func (s *PostService) GetOwned(id, userID uint) (*models.Post, error) {
	post, err := s.postRepo.FindOne(repository.PostQuery{
		ID:            id,
		WithRelations: true,
		Visibility:    repository.VisibilityAll,
	})
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !IsAuthor(post.AuthorID, userID) {
		return nil, ErrForbidden
	}
	return post, nil
}

// Update 作者编辑文章
func (s *PostService) Update(id, userID uint, input PostInput) (*models.Post, error) {
	post, err := s.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}
	newImage, err := s.saveImage(input.Image)
	if err != nil {
		return nil, err
	}

	oldImage := post.Image
	applyPostInput(post, input)
	switch {
	case newImage != "":
		post.Image = newImage
	case input.ClearImage:
		post.Image = ""
	}
	if err := s.postRepo.Update(post); err != nil {
		s.uploads.Remove(newImage)
		return nil, err
	}
	if oldImage != "" && oldImage != post.Image {
		s.uploads.Remove(oldImage)
	}
	return post, nil
}

// Delete 作者删除文章及其评论
func (s *PostService) Delete(id, userID uint) error {
	post, err := s.GetOwned(id, userID)
	if err != nil {
		return err
	}
	return s.remove(post)
}

// AdminList 后台文章列表，不做可见性过滤
func (s *PostService) AdminList(search string, authorID, categoryID uint, page, pageSize int) ([]models.Post, int64, error) {
	q := repository.PostQuery{
		WithRelations:    true,
		Visibility:       repository.VisibilityAll,
		WithCommentCount: true,
		Search:           search,
		AuthorID:         authorID,
		CategoryID:       categoryID,
	}
	total, err := s.postRepo.Count(q)
	if err != nil {
		return nil, 0, err
	}
	q.Page, q.PageSize = page, pageSize
	posts, err := s.postRepo.Find(q)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// AdminGet 后台文章详情，附带全部评论
func (s *PostService) AdminGet(id uint) (*models.Post, []models.Comment, error) {
	post, err := s.postRepo.FindOne(repository.PostQuery{
		ID:               id,
		WithRelations:    true,
		Visibility:       repository.VisibilityAll,
		WithCommentCount: true,
	})
	if err != nil {
		return nil, nil, err
	}
	if post == nil {
		return nil, nil, ErrNotFound
	}
	comments, err := s.commentRepo.ListByPost(post.ID)
	if err != nil {
		return nil, nil, err
	}
	return post, comments, nil
}

// SetPublished 后台切换发布状态
func (s *PostService) SetPublished(id uint, published bool) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if err := s.postRepo.UpdatePublished(id, published); err != nil {
		return nil, err
	}
	post.IsPublished = published
	return post, nil
}

// AdminDelete 后台删除文章
func (s *PostService) AdminDelete(id uint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	return s.remove(post)
}

func (s *PostService) remove(post *models.Post) error {
	if err := s.postRepo.Delete(post.ID); err != nil {
		return err
	}
	if post.Image != "" {
		s.uploads.Remove(post.Image)
	}
	logger.Infow("post_deleted", "post_id", post.ID, "author_id", post.AuthorID)
	return nil
}

func (s *PostService) validate(input PostInput) error {
	verr := &ValidationError{}
	if err := s.Validate(input, verr); err != nil {
		return err
	}
	return verr.OrNil()
}

func (s *PostService) saveImage(file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", nil
	}
	url, err := s.uploads.SaveFile(file, UploadScenePost)
	if err != nil {
		if key := uploadErrorKey(err); key != "" {
			return "", NewValidationError("image", key)
		}
		return "", err
	}
	return url, nil
}

func applyPostInput(post *models.Post, input PostInput) {
	post.Title = strings.TrimSpace(input.Title)
	post.Text = input.Text
	post.PubDate = input.PubDate.UTC()
	post.IsPublished = input.IsPublished
	categoryID := input.CategoryID
	post.CategoryID = &categoryID
	post.LocationID = nil
	if input.LocationID != 0 {
		locationID := input.LocationID
		post.LocationID = &locationID
	}
	post.Author, post.Category, post.Location = nil, nil, nil
}

func uploadErrorKey(err error) string {
	switch {
	case errors.Is(err, ErrUploadTooLarge):
		return "form.image_too_large"
	case errors.Is(err, ErrUploadExtension), errors.Is(err, ErrUploadContentType):
		return "form.image_type"
	case errors.Is(err, ErrUploadImageDimension):
		return "form.image_dimension"
	case errors.Is(err, ErrUploadImageInvalid):
		return "form.image_invalid"
	}
	return ""
}
