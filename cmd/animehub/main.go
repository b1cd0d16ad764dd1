// filepath: cmd/animehub/main.go
package main

import (
	"animehub/internal/cli"

	// Import docs for Swagger
	_ "animehub/docs"
)

// @title AnimeHub API
// @version 1.0.0
// @description Backend for the AnimeHub media catalog: login, media entries, broadcast schedules and visitor counters.
// @BasePath /api
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
