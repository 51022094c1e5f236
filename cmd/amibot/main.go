package main

import (
	"context"
	"log"

	"github.com/Blonteractor/discord-amibot/internal/bot"
	"github.com/Blonteractor/discord-amibot/internal/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := bot.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
