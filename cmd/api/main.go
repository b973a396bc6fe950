package main

import (
	"fmt"

	"marketplace-backend/internal/app"
	"marketplace-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("config load: " + err.Error())
	}

	fiberApp, client := app.CreateApp(cfg)
	if client != nil {
		fmt.Println("MongoDB Connected")
	}
	fmt.Printf("Server running on port %s\n", cfg.Port)

	if err := fiberApp.Listen(":" + cfg.Port); err != nil {
		panic(err)
	}
}
