package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/fcurti/falegnameria-backend/dao"
	"github.com/fcurti/falegnameria-backend/internal"
	"github.com/fcurti/falegnameria-backend/pkg/config"
	"github.com/fcurti/falegnameria-backend/pkg/logutils"
)

func main() {
	// set global timezone
	time.Local = time.UTC

	backendConfig := config.GetConfig()
	// variable changes in local development
	if config.IsDebugMode() {
		_ = godotenv.Load(".debug.env")
		if be := os.Getenv("CURTI_BE_PORT"); be != "" {
			backendConfig.ServerAddr = ":" + be
		}
	}

	// 1. open database, migrate, seed
	db := dao.GetDB()
	if err := dao.Migrate(db); err != nil {
		logutils.Log.Fatalf("unable to migrate database: %v", err)
	}
	if err := dao.Seed(db); err != nil {
		logutils.Log.Fatalf("unable to seed database: %v", err)
	}

	// 2. start server
	logutils.Log.Infof("starting server on %s", backendConfig.ServerAddr)
	backend := internal.Register()
	if err := backend.R.Run(backendConfig.ServerAddr); err != nil {
		logutils.Log.Fatalf("problem running server: %v", err)
	}
}
