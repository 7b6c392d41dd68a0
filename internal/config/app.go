package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name      string
	Env       string
	Port      string
	BaseURL   string
	TurnLimit int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		turnLimit := 3
		if v := os.Getenv("INTERVIEW_TURN_LIMIT"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				log.Printf("Warning: invalid INTERVIEW_TURN_LIMIT %q, defaulting to %d", v, turnLimit)
			} else {
				turnLimit = n
			}
		}
		appConfig = &AppConfig{
			Name:      os.Getenv("APP_NAME"),
			Env:       env,
			Port:      os.Getenv("APP_PORT"),
			BaseURL:   os.Getenv("APP_URL"),
			TurnLimit: turnLimit,
		}
	})
	return appConfig
}
