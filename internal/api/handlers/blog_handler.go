package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/application"
	"github.com/linskybing/property-portal/internal/domain/blog"
)

type BlogHandler struct {
	base
	svc *application.BlogService
}

func NewBlogHandler(b base, svc *application.BlogService) *BlogHandler {
	return &BlogHandler{base: b, svc: svc}
}

// ListBlogs godoc
// @Summary List blog posts, newest first
// @Tags blogs
// @Produce json
// @Param published query bool false "Published only (staff)"
// @Param authorId query int false "Author user ID"
// @Success 200 {array} blog.Blog
// @Router /api/blogs [get]
func (h *BlogHandler) ListBlogs(c *gin.Context) {
	q := application.BlogQuery{
		Published: queryBool(c, "published"),
		AuthorID:  queryUint(c, "authorId"),
	}
	blogs, err := h.svc.FetchBlogs(c.Request.Context(), middleware.SessionFrom(c), q)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, blogs)
}

// GetBlog godoc
// @Summary Get a blog post with its author
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} blog.Blog
// @Failure 404 {object} response.ErrorResponse "Blog not found"
// @Router /api/blogs/{id} [get]
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	b, err := h.svc.GetBlog(c.Request.Context(), middleware.SessionFrom(c), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBlog godoc
// @Summary Publish a blog post
// @Tags blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body blog.CreateBlogInput true "Post"
// @Success 201 {object} blog.Blog
// @Failure 400 {object} response.ValidationErrorResponse
// @Router /api/blogs [post]
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var in blog.CreateBlogInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	b, err := h.svc.CreateBlog(c.Request.Context(), middleware.SessionFrom(c), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBlog godoc
// @Summary Partially update a blog post
// @Tags blogs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Param input body blog.UpdateBlogInput true "Fields to change"
// @Success 200 {object} blog.Blog
// @Failure 404 {object} response.ErrorResponse "Blog not found"
// @Router /api/blogs/{id} [patch]
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	var in blog.UpdateBlogInput
	if err := bind(c, &in); err != nil {
		h.fail(c, err)
		return
	}
	b, err := h.svc.UpdateBlog(c.Request.Context(), middleware.SessionFrom(c), id, in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Tags blogs
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 204
// @Failure 404 {object} response.ErrorResponse "Blog not found"
// @Router /api/blogs/{id} [delete]
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.fail(c, err)
		return
	}
	if err := h.svc.DeleteBlog(c.Request.Context(), middleware.SessionFrom(c), id); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
