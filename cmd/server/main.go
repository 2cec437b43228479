package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/saransh1220/html-drop/internal/gateway"
	"github.com/saransh1220/html-drop/internal/gateway/middleware"
	"github.com/saransh1220/html-drop/internal/modules/files"
	"github.com/saransh1220/html-drop/internal/shared/infrastructure/config"
)

func main() {
	// .env is optional; real deployments inject the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	cfg := config.Load()
	ctx := context.Background()

	filesModule, err := files.NewModule(ctx, cfg.Storage, cfg.Upload.ScriptKey)
	if err != nil {
		log.Fatalf("Failed to initialize files module: %v", err)
	}
	log.Printf("Storage driver %q ready, folder %q", cfg.Storage.Driver, cfg.Storage.FolderID)

	mux := gateway.SetupRoutes(gateway.RouterConfig{
		FileHandler: filesModule.Handler(),
	})

	var handler http.Handler = mux
	handler = middleware.PrometheusMiddleware(handler)
	handler = middleware.CORSMiddleware(handler, cfg.Server.AllowedOrigins)

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
