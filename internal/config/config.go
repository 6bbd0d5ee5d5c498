// Package config reads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the game's configuration values.
type Config struct {
	GridUnit     int    // Cell size in pixels
	WindowWidth  int    // Initial window width
	WindowHeight int    // Initial window height
	ScoreFile    string // High score file (ignored in the browser)
	Sound        bool   // Play eat and game-over tones
	LogEvents    bool   // Echo engine events to the standard logger
	Seed         int64  // Food RNG seed; 0 seeds from the clock
}

// Defaults returns the configuration used when no variables are set.
func Defaults() Config {
	return Config{
		GridUnit:     20,
		WindowWidth:  800,
		WindowHeight: 640,
		ScoreFile:    "snake_highscore.json",
		Sound:        true,
	}
}

// Load reads an optional .env file (or the given files) and then the
// SNAKE_* environment variables. Invalid values are logged and replaced by
// their defaults.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the current process environment.
func FromEnv() Config {
	d := Defaults()
	c := Config{
		GridUnit:     getEnvAsInt("SNAKE_GRID_UNIT", d.GridUnit),
		WindowWidth:  getEnvAsInt("SNAKE_WINDOW_WIDTH", d.WindowWidth),
		WindowHeight: getEnvAsInt("SNAKE_WINDOW_HEIGHT", d.WindowHeight),
		ScoreFile:    getEnv("SNAKE_SCORE_FILE", d.ScoreFile),
		Sound:        getEnvAsBool("SNAKE_SOUND", d.Sound),
		LogEvents:    getEnvAsBool("SNAKE_LOG_EVENTS", d.LogEvents),
		Seed:         int64(getEnvAsInt("SNAKE_SEED", int(d.Seed))),
	}
	if c.GridUnit < 4 {
		log.Printf("[APP] [WARN] SNAKE_GRID_UNIT=%d too small, using %d", c.GridUnit, d.GridUnit)
		c.GridUnit = d.GridUnit
	}
	if c.WindowWidth < 5*c.GridUnit || c.WindowHeight < 5*c.GridUnit {
		log.Printf("[APP] [WARN] window %dx%d smaller than 5 cells, using %dx%d",
			c.WindowWidth, c.WindowHeight, d.WindowWidth, d.WindowHeight)
		c.WindowWidth, c.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	return c
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return fallback
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be an integer: %v", key, err)
		return fallback
	}
	return value
}

func getEnvAsBool(key string, fallback bool) bool {
	valueStr, ok := os.LookupEnv(key)
	if !ok || valueStr == "" {
		return fallback
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [WARN] Environment variable %s must be a boolean: %v", key, err)
		return fallback
	}
	return value
}
