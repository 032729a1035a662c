package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"KasfoMonitor/internal/appmanager"
	"KasfoMonitor/internal/config"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env for local dev; a missing file is fine
	_ = godotenv.Load()

	servicesFile := os.Getenv("SERVICES_FILE")
	if servicesFile == "" {
		servicesFile = config.DefaultServicesFile
	}

	manager := appmanager.NewAppManager()

	servicesCfg, err := appmanager.LoadServiceSequence(servicesFile)
	if err != nil {
		log.Fatal("failed to load service sequence:", err)
	}

	if unknown := manager.AutoRegisterServices(servicesCfg); len(unknown) > 0 {
		log.Println("ignoring unknown services:", unknown)
	}

	if err := manager.StartAll(); err != nil {
		log.Fatal("failed to start:", err)
	}

	// Graceful shutdown handling
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs

	if err := manager.StopAll(); err != nil {
		log.Fatal("failed to stop:", err)
	}
}
