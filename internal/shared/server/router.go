package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"screening-backend/internal/analyses"
	authhandlers "screening-backend/internal/auth"
	"screening-backend/internal/candidates"
	"screening-backend/internal/gencv"
	"screening-backend/internal/jobs"
	sharedauth "screening-backend/internal/shared/auth"
	"screening-backend/internal/shared/config"
	"screening-backend/internal/shared/server/middleware"
	"screening-backend/internal/shared/server/respond"
	"screening-backend/internal/shared/storage/db"
	"screening-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(),
		middleware.RateLimit(uploadRateLimit()),
	)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn.Close()
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var userRepo users.Repo
	var jobRepo jobs.Repo
	var candidateRepo candidates.Repo
	var analysisRepo analyses.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
		jobRepo = &jobs.PGRepo{DB: sqlDB}
		candidateRepo = &candidates.PGRepo{DB: sqlDB}
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
		jobRepo = jobs.NewMemoryRepo()
		candidateRepo = candidates.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
	}

	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)
	loginHandler := authhandlers.NewLoginHandler(userSvc)
	googleAuthSvc := authhandlers.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	jobHandler := jobs.NewHandler(jobRepo)
	candidateHandler := candidates.NewHandler(candidates.NewService(candidateRepo))

	analysisClient := analyses.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)
	analysisSvc := analyses.NewService(analysisRepo, candidateRepo, analysisClient)
	analysisHandler := analyses.NewHandler(analysisSvc, jobRepo)

	gencvHandler := gencv.NewHandler(gencv.NewClient(cfg.UpstreamBaseURL, cfg.GenerateTimeout))

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})

	authGroup := api.Group("/auth")
	loginHandler.RegisterRoutes(authGroup)
	googleAuthSvc.RegisterRoutes(authGroup)

	userHandler.RegisterRoutes(api)

	hr := api.Group("/hr", middleware.RequireRoles(sharedauth.RoleHR, sharedauth.RoleAdmin))
	jobHandler.RegisterRoutes(hr)
	candidateHandler.RegisterRoutes(hr)
	analysisHandler.RegisterHRRoutes(hr)

	seeker := api.Group("/jobseeker", middleware.RequireRoles(sharedauth.RoleUser, sharedauth.RoleAdmin))
	analysisHandler.RegisterJobSeekerRoutes(seeker)
	gencvHandler.RegisterRoutes(seeker)

	return r
}

// uploadRateLimit throttles the routes that fan out to the upstream
// analyzer. Those calls are slow and expensive, so each principal gets a
// small burst and a sustained rate of one upload per two seconds. All other
// routes pass unthrottled.
func uploadRateLimit() middleware.RateLimitConfig {
	uploadRoutes := map[string]bool{
		"/api/jobseeker/analyze":     true,
		"/api/jobseeker/generate-cv": true,
		"/api/hr/jobs/:id/upload":    true,
	}
	return middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"UPLOAD": {PerSecond: 0.5, Burst: 3},
		},
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && uploadRoutes[c.FullPath()] {
				return "UPLOAD"
			}
			return ""
		},
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
