package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/titaska/bitukai-client/internal/devserver"
	"github.com/titaska/bitukai-client/pkg/utils"
)

func main() {
	utils.InitLogger()

	store := devserver.NewStore()
	if err := devserver.Seed(store); err != nil {
		utils.LogError(err, "Failed to seed dev server store")
		os.Exit(1)
	}
	utils.LogInfo("Dev server store seeded", map[string]interface{}{"businesses": 2})

	var allowedOrigins []string
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		allowedOrigins = strings.Split(raw, ",")
	}

	engine := devserver.NewEngine(store, allowedOrigins)

	port := utils.Getenv("PORT", "5089")
	utils.LogInfo("Dev server starting", map[string]interface{}{"port": port, "api_base": "http://localhost:" + port + "/api"})

	if err := engine.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start dev server")
	}
}
