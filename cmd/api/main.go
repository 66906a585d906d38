package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"k8s.io/klog/v2"

	"myapp/internal/config"
)

type application struct {
	config config.Config
	// instanceID tells replicas apart in logs.
	instanceID string
}

func main() {
	app := &application{
		config:     config.FromEnv(),
		instanceID: uuid.New().String(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.run(ctx); err != nil {
		klog.Errorf("Server failed: %v", err)
		klog.FlushAndExit(klog.ExitFlushTimeout, 1)
	}
	klog.Flush()
}
