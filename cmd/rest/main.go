package main

import (
	"context"
	"log"

	"github.com/DeDsEC-7/NoteNest-Api/internal/bootstrap"
	"github.com/DeDsEC-7/NoteNest-Api/internal/config"
	"github.com/DeDsEC-7/NoteNest-Api/internal/server"
	"github.com/DeDsEC-7/NoteNest-Api/internal/tracer"
	"github.com/DeDsEC-7/NoteNest-Api/pkg/database"
)

func main() {
	// 1. Load configuration
	cfg := config.Load()

	// 2. Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 3. Database
	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 4. Dependency container
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 5. Activity consumer
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 6. HTTP server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
