package repository

import "time"

// VisibilityMode 文章可见性过滤方式，三者互斥
type VisibilityMode int

const (
	// VisibilityPublic 仅公开可见：已发布、分类已发布且发布时间已到
	VisibilityPublic VisibilityMode = iota
	// VisibilityPublicOrAuthor 公开可见，或作者为 ViewerID
	VisibilityPublicOrAuthor
	// VisibilityAll 不做过滤
	VisibilityAll
)

// String 返回可读名称，用于日志
func (m VisibilityMode) String() string {
	switch m {
	case VisibilityPublicOrAuthor:
		return "public_or_author"
	case VisibilityAll:
		return "all"
	default:
		return "public"
	}
}

// PostQuery 文章查询组合参数，各开关相互独立
type PostQuery struct {
	WithRelations    bool // 预加载作者/地点/分类
	Visibility       VisibilityMode
	ViewerID         uint // VisibilityPublicOrAuthor 时放宽到该作者
	WithCommentCount bool
	ID               uint
	AuthorID         uint
	CategoryID       uint
	Search           string
	Now              time.Time // 为零值时使用当前时间
	Page             int
	PageSize         int
}

// CategoryListFilter 查询分类列表的过滤条件
type CategoryListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
}

// LocationListFilter 查询地点列表的过滤条件
type LocationListFilter struct {
	Page          int
	PageSize      int
	Search        string
	OnlyPublished bool
}

// CommentListFilter 查询评论列表的过滤条件
type CommentListFilter struct {
	Page     int
	PageSize int
	PostID   uint
	AuthorID uint
}

// UserListFilter 查询用户列表的过滤条件
type UserListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	IsActive *bool
}
