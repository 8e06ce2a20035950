package application

import (
	"context"

	"github.com/linskybing/property-portal/internal/domain/audit"
	"github.com/linskybing/property-portal/internal/domain/blog"
	"github.com/linskybing/property-portal/internal/domain/validate"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/linskybing/property-portal/pkg/auth"
)

type BlogService struct {
	Repos *repository.Repos
	audit *AuditService
}

func NewBlogService(repos *repository.Repos, audit *AuditService) *BlogService {
	return &BlogService{
		Repos: repos,
		audit: audit,
	}
}

// BlogQuery is the caller-facing listing filter. Published is honoured only
// for staff; everyone else sees published posts.
type BlogQuery struct {
	Published *bool
	AuthorID  *uint
}

func (s *BlogService) FetchBlogs(ctx context.Context, sess *auth.Session, q BlogQuery) ([]blog.Blog, error) {
	filter := repository.BlogFilter{AuthorID: q.AuthorID, PublishedOnly: true}
	if sess.IsStaff() {
		filter.PublishedOnly = q.Published != nil && *q.Published
	}
	return s.Repos.Blog.GetBlogs(ctx, filter)
}

// GetBlog returns a post with its author attached. Drafts are visible to
// staff and to their author only.
func (s *BlogService) GetBlog(ctx context.Context, sess *auth.Session, id uint) (*blog.Blog, error) {
	b, err := s.Repos.Blog.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apperrors.NotFound("Blog", id)
	}
	if !b.Published && !sess.IsStaff() && (sess == nil || sess.UserID != b.AuthorID) {
		return nil, apperrors.NotFound("Blog", id)
	}
	return b, nil
}

func (s *BlogService) CreateBlog(ctx context.Context, sess *auth.Session, in blog.CreateBlogInput) (*blog.Blog, error) {
	if !sess.IsStaff() {
		return nil, apperrors.Forbidden("only admins and agents may write blogs")
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	authorID := sess.UserID
	if in.AuthorID != nil && sess.IsAdmin() {
		authorID = *in.AuthorID
	}

	b := in.Normalize(authorID)
	if err := s.Repos.Blog.CreateBlog(ctx, b); err != nil {
		return nil, err
	}

	created, err := s.Repos.Blog.GetBlog(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		created = b
	}
	s.audit.Record(ctx, audit.ActionCreate, "blog", idString(b.ID), nil, created, "blog created")
	return created, nil
}

func (s *BlogService) UpdateBlog(ctx context.Context, sess *auth.Session, id uint, in blog.UpdateBlogInput) (*blog.Blog, error) {
	if !sess.IsStaff() {
		return nil, apperrors.Forbidden("only admins and agents may edit blogs")
	}
	if err := validate.Struct(in); err != nil {
		return nil, err
	}

	before, err := s.Repos.Blog.GetBlog(ctx, id)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, apperrors.NotFound("Blog", id)
	}

	changes := in.Changes()
	if len(changes) == 0 {
		return before, nil
	}

	after, err := s.Repos.Blog.UpdateBlog(ctx, id, changes)
	if err != nil {
		return nil, err
	}
	s.audit.Record(ctx, audit.ActionUpdate, "blog", idString(id), before, after, "blog updated")
	return after, nil
}

func (s *BlogService) DeleteBlog(ctx context.Context, sess *auth.Session, id uint) error {
	if !sess.IsStaff() {
		return apperrors.Forbidden("only admins and agents may delete blogs")
	}
	before, err := s.Repos.Blog.GetBlog(ctx, id)
	if err != nil {
		return err
	}
	if before == nil {
		return apperrors.NotFound("Blog", id)
	}
	if err := s.Repos.Blog.DeleteBlog(ctx, id); err != nil {
		return err
	}
	s.audit.Record(ctx, audit.ActionDelete, "blog", idString(id), before, nil, "blog deleted")
	return nil
}
