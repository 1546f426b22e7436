package main

import (
	"context"
	"net/http"

	"NeoNestAdminAPI/internal/config"
	"NeoNestAdminAPI/internal/db"
	"NeoNestAdminAPI/internal/kv"
	"NeoNestAdminAPI/internal/middleware"
	"NeoNestAdminAPI/internal/repository"
	"NeoNestAdminAPI/internal/services"
	"NeoNestAdminAPI/internal/token"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(lvl)
	}
	if cfg.JWTSecret == "" {
		// protected routes will answer 500 until it is set
		logrus.Warn("JWT_SECRET is not set")
	}

	ctx := context.Background()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	var cache services.StatsCache
	if cfg.RedisURL != "" {
		rc, err := kv.NewFromURL(ctx, cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("redis unavailable, dashboard caching disabled")
		} else {
			defer rc.Close()
			cache = rc
		}
	}

	// ======================
	// REPOSITORIES
	// ======================
	adminRepo := repository.NewAdminRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	caregiverRepo := repository.NewCaregiverRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(adminRepo, cfg.JWTSecret, token.ParseTTL(cfg.JWTExpiresIn))
	bookingSvc := services.NewBookingService(bookingRepo)
	verSvc := services.NewVerificationService(caregiverRepo)
	dashSvc := services.NewDashboardService(bookingRepo, caregiverRepo, cache)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowCredentials: true,
	}))

	api := e.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Server is running",
		})
	})

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	authmw := middleware.Authenticate(cfg.JWTSecret, adminRepo)
	registerAuthRoutes(api, authSvc, authmw)
	registerBookingRoutes(api, bookingSvc, authmw)
	registerVerificationRoutes(api, verSvc, authmw)
	registerDashboardRoutes(api, dashSvc, authmw)

	// ======================
	// SERVER
	// ======================
	logrus.WithField("port", cfg.Port).Info("starting server")
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
