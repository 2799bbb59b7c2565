package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/swaraj-shubh/notebook/internal/config"
	"github.com/swaraj-shubh/notebook/internal/controller"
	"github.com/swaraj-shubh/notebook/internal/pkg/logger"
	"github.com/swaraj-shubh/notebook/internal/repository"
	"github.com/swaraj-shubh/notebook/internal/server"
	"github.com/swaraj-shubh/notebook/internal/service"
	"github.com/swaraj-shubh/notebook/pkg/database"
)

func main() {
	cfg := config.Load()

	log := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	defer log.Sync()

	client, db, err := database.NewMongoDB(database.MongoConfig{
		URI:      cfg.Database.URI,
		Database: cfg.Database.Name,
	})
	if err != nil {
		log.Error("main", "mongodb connection failed", map[string]interface{}{"error": err.Error()})
		os.Exit(1)
	}
	log.Info("main", "mongodb client initialized", map[string]interface{}{"database": cfg.Database.Name})

	notebookRepository := repository.NewNotebookRepository(db)

	notebookService := service.NewNotebookService(notebookRepository)
	noteService := service.NewNoteService(notebookRepository)

	notebookController := controller.NewNotebookController(notebookService)
	noteController := controller.NewNoteController(noteService)

	srv := server.New(cfg, log, notebookController, noteController)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("main", "shutdown signal received", nil)
		if err := srv.Shutdown(); err != nil {
			log.Error("main", "server shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}()

	log.Info("main", "server starting", map[string]interface{}{"port": cfg.App.Port})
	if err := srv.Run(); err != nil {
		log.Error("main", "server stopped with error", map[string]interface{}{"error": err.Error()})
	}

	if err := database.Disconnect(client); err != nil {
		log.Error("main", "mongodb disconnect failed", map[string]interface{}{"error": err.Error()})
	}
	log.Info("main", "mongodb client closed", nil)
}
