package repository

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/blog"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"gorm.io/gorm"
)

type BlogFilter struct {
	PublishedOnly bool
	AuthorID      *uint
}

type BlogRepo interface {
	GetBlogs(ctx context.Context, filter BlogFilter) ([]blog.Blog, error)
	GetBlog(ctx context.Context, id uint) (*blog.Blog, error)
	CreateBlog(ctx context.Context, b *blog.Blog) error
	UpdateBlog(ctx context.Context, id uint, changes map[string]any) (*blog.Blog, error)
	DeleteBlog(ctx context.Context, id uint) error
	WithTx(tx *gorm.DB) BlogRepo
}

type DBBlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *DBBlogRepo {
	return &DBBlogRepo{
		db: db,
	}
}

// GetBlogs lists posts newest first with the author joined in the same query.
func (r *DBBlogRepo) GetBlogs(ctx context.Context, filter BlogFilter) ([]blog.Blog, error) {
	q := r.db.WithContext(ctx).Joins("Author")
	if filter.PublishedOnly {
		q = q.Where("blogs.published = ?", true)
	}
	if filter.AuthorID != nil {
		q = q.Where("blogs.author_id = ?", *filter.AuthorID)
	}

	var blogs []blog.Blog
	if err := q.Order("blogs.created_at DESC").Order("blogs.id DESC").Find(&blogs).Error; err != nil {
		return nil, translate("list blogs", err)
	}
	return blogs, nil
}

func (r *DBBlogRepo) GetBlog(ctx context.Context, id uint) (*blog.Blog, error) {
	return first[blog.Blog]("get blog", r.db.WithContext(ctx).Joins("Author").Where("blogs.id = ?", id))
}

func (r *DBBlogRepo) CreateBlog(ctx context.Context, b *blog.Blog) error {
	return translate("create blog", r.db.WithContext(ctx).Omit("Author").Create(b).Error)
}

func (r *DBBlogRepo) UpdateBlog(ctx context.Context, id uint, changes map[string]any) (*blog.Blog, error) {
	if len(changes) > 0 {
		res := r.db.WithContext(ctx).Model(&blog.Blog{}).Where("id = ?", id).Updates(changes)
		if res.Error != nil {
			return nil, translate("update blog", res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, apperrors.NotFound("Blog", id)
		}
	}
	b, err := r.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NotFound("Blog", id)
	}
	return b, nil
}

func (r *DBBlogRepo) DeleteBlog(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&blog.Blog{}, id)
	if res.Error != nil {
		return translate("delete blog", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Blog", id)
	}
	return nil
}

func (r *DBBlogRepo) WithTx(tx *gorm.DB) BlogRepo {
	if tx == nil {
		return r
	}
	return &DBBlogRepo{
		db: tx,
	}
}
