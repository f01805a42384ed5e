package main

import (
	"log"
	"net/http"
	"os"

	"firmsite/captcha"
	"firmsite/config"
	"firmsite/db"
	"firmsite/handlers"
	"firmsite/logger"
	"firmsite/mailer"
	"firmsite/middleware"
	"firmsite/repositories"
	"firmsite/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	configPath := os.Getenv("FIRMSITE_CONFIG")
	envOnly := configPath == ""
	if envOnly {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath, envOnly)
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer zlog.Sync()

	// Initialize database
	gdb, err := db.Open(cfg.DB)
	if err != nil {
		zlog.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close(gdb)

	if err := db.Migrate(gdb); err != nil {
		zlog.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(gdb)
	postRepo := repositories.NewPostRepository(gdb)
	tagRepo := repositories.NewTagRepository(gdb)
	testimonialRepo := repositories.NewTestimonialRepository(gdb)
	contactRepo := repositories.NewContactRepository(gdb)
	newsletterRepo := repositories.NewNewsletterRepository(gdb)

	// External collaborators
	var mail mailer.Mailer = mailer.Noop{}
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTP(cfg.SMTP)
	}
	var verifier captcha.Verifier = captcha.Disabled{}
	if cfg.Captcha.Secret != "" {
		verifier = captcha.NewHTTP(cfg.Captcha)
	}

	// Initialize services
	authService := services.NewAuthService(userRepo)
	blogService := services.NewBlogService(postRepo, tagRepo, zlog)
	tagService := services.NewTagService(tagRepo, postRepo, zlog)
	testimonialService := services.NewTestimonialService(testimonialRepo)
	contactService := services.NewContactService(contactRepo, mail, verifier, cfg.SMTP.NotifyTo, cfg.SMTP.SendTimeout, zlog)
	newsletterService := services.NewNewsletterService(newsletterRepo, verifier)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	blogHandler := handlers.NewBlogHandler(blogService)
	tagHandler := handlers.NewTagHandler(tagService)
	testimonialHandler := handlers.NewTestimonialHandler(testimonialService)
	contactHandler := handlers.NewContactHandler(contactService, newsletterService)
	publicHandler := handlers.NewPublicHandler(blogService, testimonialService, "Firm Site", cfg.App.BaseURL)

	// Tag stats refresh on a schedule
	if cfg.Cron.Enabled {
		c := cron.New()
		if _, err := c.AddFunc(cfg.Cron.TagStats, func() {
			if err := tagService.RefreshTagStats(); err != nil {
				zlog.Error("tag stats refresh failed", zap.Error(err))
			}
		}); err != nil {
			zlog.Fatal("invalid tag stats schedule", zap.Error(err))
		}
		c.Start()
		defer c.Stop()
	}

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Profile
			protected.GET("/profile", authHandler.GetProfile)

			// Posts (admin/editor)
			posts := protected.Group("/posts")
			posts.Use(middleware.RequireRole("admin", "editor"))
			{
				posts.POST("", blogHandler.CreatePost)
				posts.GET("", blogHandler.GetPosts)
				posts.GET("/:id", blogHandler.GetPost)
				posts.PUT("/:id", blogHandler.UpdatePost)
				posts.DELETE("/:id", blogHandler.DeletePost)
			}

			// Tags
			tags := protected.Group("/tags")
			{
				tags.GET("", tagHandler.GetTags)
				tags.GET("/:id", tagHandler.GetTag)
			}

			// Testimonials (admin)
			testimonials := protected.Group("/testimonials")
			testimonials.Use(middleware.RequireRole("admin"))
			{
				testimonials.POST("", testimonialHandler.CreateTestimonial)
				testimonials.GET("", testimonialHandler.GetTestimonials)
				testimonials.PUT("/:id", testimonialHandler.UpdateTestimonial)
				testimonials.DELETE("/:id", testimonialHandler.DeleteTestimonial)
			}

			// Admin inbox and users
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/messages", contactHandler.GetMessages)
				admin.GET("/subscribers", contactHandler.GetSubscribers)
				admin.GET("/users", authHandler.GetUsers)
				admin.DELETE("/users/:id", authHandler.DeleteUser)
			}
		}

		// Public routes
		public := v1.Group("/public")
		{
			public.GET("/posts", publicHandler.GetPosts)
			public.GET("/posts/:slug", publicHandler.GetPostBySlug)
			public.GET("/testimonials", publicHandler.GetTestimonials)
			public.POST("/contact", contactHandler.SubmitContact)
			public.POST("/appointments", contactHandler.SubmitAppointment)
			public.POST("/newsletter", contactHandler.Subscribe)
			public.GET("/newsletter/unsubscribe/:token", contactHandler.Unsubscribe)
		}
	}

	// Feeds
	router.GET("/rss.xml", publicHandler.RSS)
	router.GET("/sitemap.xml", publicHandler.Sitemap)

	// Start server
	zlog.Info("server starting", zap.String("addr", cfg.Server.HTTPAddr))
	if err := http.ListenAndServe(cfg.Server.HTTPAddr, router); err != nil {
		zlog.Error("server stopped", zap.Error(err))
	}
}
