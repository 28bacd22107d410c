package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Settings holds everything the API and the processor read from the
// environment.
type Settings struct {
	Port string

	SupabaseURL        string
	SupabaseServiceKey string
	AudioBucket        string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	FrameRate           int
	DefaultSceneSeconds float64
	TimelineCacheTTL    time.Duration

	Workers   int
	QueueSize int

	LogLevel string
}

// LoadSettings reads a .env file if present, then the environment.
func LoadSettings() (*Settings, error) {
	if err := godotenv.Load(); err != nil {
		Log.Warn("No .env file found, using system environment variables")
	}
	return settingsFromEnv(os.Getenv)
}

func settingsFromEnv(getenv func(string) string) (*Settings, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	s := &Settings{
		Port:               env("PORT", "8080"),
		SupabaseURL:        getenv("SUPABASE_URL"),
		SupabaseServiceKey: getenv("SUPABASE_SERVICE_KEY"),
		AudioBucket:        env("VIDSPARK_AUDIO_BUCKET", "scene-audio"),
		RedisAddr:          env("REDIS_ADDR", "localhost:6379"),
		RedisPassword:      getenv("REDIS_PASSWORD"),
		LogLevel:           env("VIDSPARK_LOG_LEVEL", "info"),
	}

	var err error
	if s.RedisDB, err = strconv.Atoi(env("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}
	if s.FrameRate, err = strconv.Atoi(env("VIDSPARK_FRAME_RATE", "30")); err != nil {
		return nil, fmt.Errorf("VIDSPARK_FRAME_RATE: %w", err)
	}
	if s.FrameRate <= 0 {
		return nil, fmt.Errorf("VIDSPARK_FRAME_RATE must be positive, got %d", s.FrameRate)
	}
	if s.DefaultSceneSeconds, err = strconv.ParseFloat(env("VIDSPARK_DEFAULT_SCENE_SECONDS", "5"), 64); err != nil {
		return nil, fmt.Errorf("VIDSPARK_DEFAULT_SCENE_SECONDS: %w", err)
	}
	if s.DefaultSceneSeconds <= 0 {
		return nil, fmt.Errorf("VIDSPARK_DEFAULT_SCENE_SECONDS must be positive, got %v", s.DefaultSceneSeconds)
	}
	if s.TimelineCacheTTL, err = time.ParseDuration(env("VIDSPARK_TIMELINE_CACHE_TTL", "10m")); err != nil {
		return nil, fmt.Errorf("VIDSPARK_TIMELINE_CACHE_TTL: %w", err)
	}
	if s.Workers, err = strconv.Atoi(env("VIDSPARK_WORKERS", "5")); err != nil {
		return nil, fmt.Errorf("VIDSPARK_WORKERS: %w", err)
	}
	if s.QueueSize, err = strconv.Atoi(env("VIDSPARK_QUEUE_SIZE", "100")); err != nil {
		return nil, fmt.Errorf("VIDSPARK_QUEUE_SIZE: %w", err)
	}

	return s, nil
}
