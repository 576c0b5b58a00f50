package main

import (
	"github.com/karolisstonys/PROJECT-CA23/internal/app"
	"github.com/karolisstonys/PROJECT-CA23/internal/logger"
)

func main() {
	if err := app.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}
