package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/property-portal/internal/domain/blog"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/internal/repository"
	"github.com/linskybing/property-portal/pkg/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupBlogServiceMocks(t *testing.T) (*BlogService, serviceMocks) {
	repos, m := setupMockRepos(t)
	return NewBlogService(repos, NewAuditService(repos, zap.NewNop())), m
}

func TestFetchBlogs_AnonymousSeesPublishedOnly(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	m.blog.EXPECT().GetBlogs(gomock.Any(), repository.BlogFilter{PublishedOnly: true}).Return(nil, nil)

	_, err := svc.FetchBlogs(context.Background(), nil, BlogQuery{Published: ptr(false)})
	assert.NoError(t, err)
}

func TestFetchBlogs_StaffSeesDrafts(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	m.blog.EXPECT().GetBlogs(gomock.Any(), repository.BlogFilter{}).Return([]blog.Blog{{ID: 1}, {ID: 2}}, nil)

	blogs, err := svc.FetchBlogs(context.Background(), session(1, user.RoleAgent), BlogQuery{})
	require.NoError(t, err)
	assert.Len(t, blogs, 2)
}

func TestGetBlog_DraftHiddenFromPublic(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	m.blog.EXPECT().GetBlog(gomock.Any(), uint(2)).Return(&blog.Blog{ID: 2, AuthorID: 5, Published: false}, nil).Times(3)

	_, err := svc.GetBlog(context.Background(), nil, 2)
	assert.Equal(t, "Blog not found", err.Error())

	_, err = svc.GetBlog(context.Background(), session(9, user.RoleTenant), 2)
	assert.True(t, apperrors.IsNotFound(err))

	b, err := svc.GetBlog(context.Background(), session(1, user.RoleAdmin), 2)
	require.NoError(t, err)
	assert.Equal(t, uint(2), b.ID)
}

func TestGetBlog_MissingAuthorIsNotAnError(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	m.blog.EXPECT().GetBlog(gomock.Any(), uint(3)).Return(&blog.Blog{ID: 3, Published: true}, nil)

	b, err := svc.GetBlog(context.Background(), nil, 3)
	require.NoError(t, err)
	assert.Nil(t, b.Author)
}

func TestCreateBlog_DerivesSummary(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	content := strings.Repeat("a", 200)

	var inserted *blog.Blog
	m.blog.EXPECT().CreateBlog(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, b *blog.Blog) error {
		b.ID = 7
		inserted = b
		return nil
	})
	m.blog.EXPECT().GetBlog(gomock.Any(), uint(7)).DoAndReturn(func(_ context.Context, _ uint) (*blog.Blog, error) {
		out := *inserted
		out.Author = &user.User{ID: 2, Name: "Agent"}
		return &out, nil
	})

	b, err := svc.CreateBlog(context.Background(), session(2, user.RoleAgent), blog.CreateBlogInput{Title: "Hello", Content: content})
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("a", 150)+"...", b.Summary)
	assert.Equal(t, uint(2), b.AuthorID)
	assert.False(t, b.Published)
	require.NotNil(t, b.Author)
}

func TestCreateBlog_MissingTitle(t *testing.T) {
	svc, _ := setupBlogServiceMocks(t)

	_, err := svc.CreateBlog(context.Background(), session(1, user.RoleAdmin), blog.CreateBlogInput{Content: "x"})
	var verr *apperrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "title", verr.Issues[0].Field)
}

func TestCreateBlog_TenantForbidden(t *testing.T) {
	svc, _ := setupBlogServiceMocks(t)

	_, err := svc.CreateBlog(context.Background(), session(3, user.RoleTenant), blog.CreateBlogInput{Title: "t", Content: "c"})
	var ferr *apperrors.ForbiddenError
	assert.True(t, errors.As(err, &ferr))
}

func TestUpdateBlog_ContentRederivesSummary(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	m.blog.EXPECT().GetBlog(gomock.Any(), uint(4)).Return(&blog.Blog{ID: 4, Summary: "old"}, nil)
	m.blog.EXPECT().UpdateBlog(gomock.Any(), uint(4), map[string]any{"content": "fresh", "summary": "fresh..."}).
		Return(&blog.Blog{ID: 4, Content: "fresh", Summary: "fresh..."}, nil)

	b, err := svc.UpdateBlog(context.Background(), session(1, user.RoleAdmin), 4, blog.UpdateBlogInput{Content: ptr("fresh")})
	require.NoError(t, err)
	assert.Equal(t, "fresh...", b.Summary)
}

func TestUpdateBlog_NotFound(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	m.blog.EXPECT().GetBlog(gomock.Any(), uint(4)).Return(nil, nil)

	_, err := svc.UpdateBlog(context.Background(), session(1, user.RoleAdmin), 4, blog.UpdateBlogInput{Title: ptr("t")})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteBlog(t *testing.T) {
	svc, m := setupBlogServiceMocks(t)
	m.blog.EXPECT().GetBlog(gomock.Any(), uint(4)).Return(&blog.Blog{ID: 4}, nil)
	m.blog.EXPECT().DeleteBlog(gomock.Any(), uint(4)).Return(nil)

	assert.NoError(t, svc.DeleteBlog(context.Background(), session(2, user.RoleAgent), 4))
}
