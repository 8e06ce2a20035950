package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/property-portal/internal/api/handlers"
	"github.com/linskybing/property-portal/internal/api/middleware"
	"github.com/linskybing/property-portal/internal/domain/user"
	"github.com/linskybing/property-portal/pkg/logger"
	"github.com/linskybing/property-portal/pkg/ratelimit"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Options struct {
	Handlers *handlers.Handlers
	Verifier middleware.TokenVerifier
	// Limiter may be nil to disable rate limiting.
	Limiter ratelimit.Limiter
	// TrustedProxies may forward the client address. Nil trusts no proxy.
	TrustedProxies []string
	Logger         *zap.Logger
}

// NewRouter builds the engine with the global middleware chain and every
// route registered.
func NewRouter(opts Options) *gin.Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		opts.Logger.Error("invalid trusted proxies, trusting none", zap.Error(err))
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(
		middleware.Recovery(),
		logger.GinMiddleware(opts.Logger),
		middleware.Metrics(),
		middleware.CORSMiddleware(),
	)
	if opts.Limiter != nil {
		r.Use(middleware.RateLimit(opts.Limiter, opts.Logger))
	}
	r.NoRoute(middleware.NotFound())
	r.NoMethod(middleware.MethodNotAllowed())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	RegisterRoutes(r, opts.Handlers, middleware.Session(opts.Verifier, opts.Logger))
	return r
}

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers, session gin.HandlerFunc) {
	api := r.Group("/api")
	api.Use(session)

	api.GET("/test", h.Health.Test)
	api.GET("/health", h.Health.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/me", middleware.RequireSession(), h.Auth.Me)
	}

	users := api.Group("/users")
	{
		users.GET("", middleware.Admin(), h.User.ListUsers)
		users.GET("/:id", h.User.GetUser)
		users.PATCH("/:id", middleware.RequireSession(), h.User.UpdateUser)
	}

	properties := api.Group("/properties")
	{
		properties.GET("", h.Property.ListProperties)
		properties.GET("/:id", h.Property.GetProperty)
		properties.POST("", middleware.RequireSession(), h.Property.CreateProperty)
		properties.PATCH("/:id", middleware.RequireSession(), h.Property.UpdateProperty)
		properties.DELETE("/:id", middleware.Admin(), h.Property.DeleteProperty)
	}

	blogs := api.Group("/blogs")
	{
		blogs.GET("", h.Blog.ListBlogs)
		blogs.GET("/:id", h.Blog.GetBlog)
		blogs.POST("", middleware.RequireSession(), h.Blog.CreateBlog)
		blogs.PATCH("/:id", middleware.RequireSession(), h.Blog.UpdateBlog)
		blogs.DELETE("/:id", middleware.RequireRoles(user.RoleAdmin, user.RoleAgent), h.Blog.DeleteBlog)
	}

	tickets := api.Group("/tickets", middleware.RequireSession())
	{
		tickets.GET("", h.Ticket.ListTickets)
		tickets.POST("", h.Ticket.CreateTicket)
		tickets.GET("/:id", h.Ticket.GetTicket)
		tickets.PATCH("/:id/status", h.Ticket.UpdateStatus)
		tickets.POST("/:id/comments", h.Ticket.AddComment)
		tickets.GET("/:id/stream", h.Ticket.StreamTicket)
	}

	contact := api.Group("/contact")
	{
		contact.POST("", h.Contact.SubmitMessage)
		contact.GET("", middleware.Admin(), h.Contact.ListMessages)
	}

	api.POST("/uploads", middleware.RequireSession(), h.Upload.UploadImage)

	admin := api.Group("/admin", middleware.Admin())
	{
		admin.GET("/audit-logs", h.Audit.GetAuditLogs)
	}
}
