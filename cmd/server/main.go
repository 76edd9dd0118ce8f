package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/qanoonlab/qanoon/internal/logger"
	"github.com/qanoonlab/qanoon/internal/server"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	zlog, err := logger.New(os.Getenv("LOG_LEVEL"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	srv, err := server.NewServer(zlog)
	if err != nil {
		zlog.Fatal("failed to initialize server", zap.Error(err))
	}

	r := srv.SetupRouter()

	port := srv.Config.Server.Port
	zlog.Info("starting server", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
