package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestSettingsFromEnv_Defaults(t *testing.T) {
	s, err := settingsFromEnv(fakeEnv(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "scene-audio", s.AudioBucket)
	assert.Equal(t, "localhost:6379", s.RedisAddr)
	assert.Equal(t, 30, s.FrameRate)
	assert.Equal(t, 5.0, s.DefaultSceneSeconds)
	assert.Equal(t, 10*time.Minute, s.TimelineCacheTTL)
	assert.Equal(t, 5, s.Workers)
	assert.Equal(t, 100, s.QueueSize)
	assert.Equal(t, "info", s.LogLevel)
}

func TestSettingsFromEnv_Overrides(t *testing.T) {
	s, err := settingsFromEnv(fakeEnv(map[string]string{
		"PORT":                           "9000",
		"SUPABASE_URL":                   "https://example.supabase.co",
		"SUPABASE_SERVICE_KEY":           "secret",
		"REDIS_DB":                       "2",
		"VIDSPARK_FRAME_RATE":            "60",
		"VIDSPARK_DEFAULT_SCENE_SECONDS": "3.5",
		"VIDSPARK_TIMELINE_CACHE_TTL":    "30s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, "https://example.supabase.co", s.SupabaseURL)
	assert.Equal(t, 2, s.RedisDB)
	assert.Equal(t, 60, s.FrameRate)
	assert.Equal(t, 3.5, s.DefaultSceneSeconds)
	assert.Equal(t, 30*time.Second, s.TimelineCacheTTL)
}

func TestSettingsFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		"REDIS_DB":                       "one",
		"VIDSPARK_FRAME_RATE":            "-30",
		"VIDSPARK_DEFAULT_SCENE_SECONDS": "0",
		"VIDSPARK_TIMELINE_CACHE_TTL":    "ten minutes",
		"VIDSPARK_WORKERS":               "many",
	}

	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			_, err := settingsFromEnv(fakeEnv(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestNewRestClient_RequiresCredentials(t *testing.T) {
	_, err := NewRestClient(&Settings{})
	assert.Error(t, err)
}
