package main

import (
	"os"

	"fintrack/logging"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var (
	cfg       *Config
	jwtSecret []byte
)

func main() {
	// Load ./.env if present before reading any vars
	_ = godotenv.Load()

	cfg = loadConfig()
	logging.Init(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		logging.Logger.Fatalf("%v", err)
	}
	jwtSecret = []byte(cfg.JWTSecret)

	// Support a lightweight migrate command: `./fintrack migrate`
	// It runs AutoMigrate then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		logging.Logger.Info("migration completed")
		return
	}

	initDB()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	setupRoutes(r)

	if err := r.Run(":" + cfg.Port); err != nil {
		logging.Logger.Fatalf("server exited: %v", err)
	}
}
