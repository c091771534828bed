package main

import (
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"todayproje/server/config"
	"todayproje/server/internal/api"
	"todayproje/server/internal/database"
	"todayproje/server/internal/pricing"
	"todayproje/server/internal/session"
	"todayproje/server/internal/uploads"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Make sure the database directory exists before opening the file
	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.WithError(err).Fatal("Failed to create database directory")
		}
	}
	logger.Infof("Using database at: %s", cfg.DatabasePath)

	db, err := database.NewDatabase(cfg.DatabasePath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	logger.Info("Running database migrations...")
	if err := db.RunMigrations(); err != nil {
		logger.WithError(err).Fatal("Failed to run database migrations")
	}

	uploadManager := uploads.NewManager(cfg.UploadDir, logger)
	if err := uploadManager.EnsureDir(); err != nil {
		logger.WithError(err).Fatal("Failed to create upload directory")
	}

	sessions := session.NewCodec(cfg.SessionSecret, time.Duration(cfg.SessionTTLHours)*time.Hour)

	handler := api.NewHandler(db, cfg, sessions, uploadManager, logger)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadBytes
	// Hard cap on request bodies; MaxMultipartMemory alone only bounds buffering
	router.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, cfg.MaxUploadBytes)
		c.Next()
	})
	router.SetFuncMap(template.FuncMap{
		"format_price": pricing.Format,
		"add":          func(a, b int) int { return a + b },
		"sub":          func(a, b int) int { return a - b },
	})
	router.LoadHTMLGlob(cfg.TemplateGlob)
	api.SetupRoutes(router, handler)

	logger.Infof("Starting server on %s", cfg.ListenAddr)
	if err := router.Run(cfg.ListenAddr); err != nil {
		logger.WithError(err).Fatal("Server failed to start")
	}
}
