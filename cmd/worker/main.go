package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"craftmarket-backend/pkg/container"
	"craftmarket-backend/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appContainer, err := container.NewContainer()
	if err != nil {
		log.Fatalf("[Worker] Failed to initialize container: %v", err)
	}
	defer appContainer.Cleanup()

	logger.Init(appContainer.Config.App.Environment)

	srv := setupAsynqServer(appContainer)
	scheduler := setupScheduler(appContainer)

	waitForShutdown(srv, scheduler)
}

func waitForShutdown(srv *asynqServer, scheduler *asynqScheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("[Shutdown] Gracefully stopping...")
	scheduler.Shutdown()
	srv.Shutdown()
	log.Println("[Shutdown] Stopped")
}
