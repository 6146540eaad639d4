package main

import (
	"context"
	"fmt"
	"os"

	"campusgig/internal/app"
	"campusgig/internal/config"
	"campusgig/internal/logger"
)

func main() {
	if err := config.LoadConfig(); err != nil {
		logger.Fatal("startup failed", "error", err.Error())
	}
	cfg := config.GetConfig()
	logger.Init(cfg.Client.Env)

	application, err := app.New(cfg)
	if err != nil {
		logger.Fatal("startup failed", "error", err.Error())
	}

	if err := application.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
