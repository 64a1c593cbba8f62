package httpserver

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/handler"
	"github.com/connersimmonsmayne/weddingplanner-sub000/internal/repository"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/metrics"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/mq"
	"github.com/connersimmonsmayne/weddingplanner-sub000/pkg/rbac"
)

type Router struct {
	Engine *gin.Engine
}

type Handlers struct {
	Auth      *handler.AuthHandler
	Wedding   *handler.WeddingHandler
	Guest     *handler.GuestHandler
	Vendor    *handler.VendorHandler
	Task      *handler.TaskHandler
	Event     *handler.EventHandler
	Budget    *handler.BudgetHandler
	Milestone *handler.MilestoneHandler
	Import    *handler.ImportHandler
	Map       *handler.MapHandler
}

func NewRouter(
	h Handlers,
	weddingRepo *repository.WeddingRepository,
	jwtSecret string,
	logger *zap.Logger,
	db *pgxpool.Pool,
	publisher *mq.Publisher,
) *Router {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(logger))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})

	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", h.Auth.Register)
	r.POST("/login", h.Auth.Login)

	// Authenticated
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.POST("/weddings", h.Wedding.Create)
		auth.GET("/weddings", h.Wedding.List)
	}

	// Tenant-scoped: membership resolves the role, permissions gate writes.
	wedding := auth.Group("/weddings/:id")
	wedding.Use(MembershipMiddleware(weddingRepo))
	{
		wedding.GET("", h.Wedding.Get)
		wedding.PUT("", RequirePermission(rbac.PermissionUpdateWedding), h.Wedding.Update)
		wedding.GET("/members", h.Wedding.ListMembers)
		wedding.POST("/members", RequirePermission(rbac.PermissionManageMembers), h.Wedding.AddMember)

		wedding.GET("/guests", h.Guest.List)
		wedding.POST("/guests", RequirePermission(rbac.PermissionWriteGuests), h.Guest.Create)
		wedding.PUT("/guests/:guestID", RequirePermission(rbac.PermissionWriteGuests), h.Guest.Update)
		wedding.DELETE("/guests/:guestID", RequirePermission(rbac.PermissionWriteGuests), h.Guest.Delete)
		wedding.POST("/guests/import/preview", RequirePermission(rbac.PermissionImportGuests), h.Import.Preview)
		wedding.POST("/guests/import", RequirePermission(rbac.PermissionImportGuests), h.Import.Commit)
		wedding.GET("/guests/map", h.Map.Clusters)

		wedding.GET("/vendors", h.Vendor.List)
		wedding.POST("/vendors", RequirePermission(rbac.PermissionWriteVendors), h.Vendor.Create)
		wedding.PUT("/vendors/:vendorID", RequirePermission(rbac.PermissionWriteVendors), h.Vendor.Update)
		wedding.DELETE("/vendors/:vendorID", RequirePermission(rbac.PermissionWriteVendors), h.Vendor.Delete)

		wedding.GET("/tasks", h.Task.List)
		wedding.POST("/tasks", RequirePermission(rbac.PermissionWriteTasks), h.Task.Create)
		wedding.PUT("/tasks/:taskID", RequirePermission(rbac.PermissionWriteTasks), h.Task.Update)
		wedding.DELETE("/tasks/:taskID", RequirePermission(rbac.PermissionWriteTasks), h.Task.Delete)

		wedding.GET("/events", h.Event.List)
		wedding.POST("/events", RequirePermission(rbac.PermissionWriteEvents), h.Event.Create)
		wedding.PUT("/events/:eventID", RequirePermission(rbac.PermissionWriteEvents), h.Event.Update)
		wedding.DELETE("/events/:eventID", RequirePermission(rbac.PermissionWriteEvents), h.Event.Delete)

		wedding.GET("/budget", h.Budget.List)
		wedding.GET("/budget/summary", h.Budget.Summary)
		wedding.POST("/budget", RequirePermission(rbac.PermissionWriteBudget), h.Budget.Create)
		wedding.PUT("/budget/:itemID", RequirePermission(rbac.PermissionWriteBudget), h.Budget.Update)
		wedding.DELETE("/budget/:itemID", RequirePermission(rbac.PermissionWriteBudget), h.Budget.Delete)

		wedding.GET("/milestones", h.Milestone.Get)
	}

	return &Router{Engine: r}
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		logger.Info("HTTP Request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)

		// label by route template, not raw path, to bound cardinality
		routePath := c.FullPath()
		if routePath == "" {
			routePath = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(c.Request.Method, routePath, strconv.Itoa(status), latency)
	}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
