package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("JWT_SECRET", "0123456789abcdef")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.Port)
		require.Equal(t, NotesBackendSQL, cfg.NotesBackend)
		require.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
		require.Equal(t, 12*time.Hour, cfg.JWTTTL)
		require.Equal(t, []string{"*"}, cfg.AllowedOrigins())
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "postgres")
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", "0123456789abcdef")

		_, err := Load()
		require.Error(t, err)
	})

	t.Run("short secret", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("JWT_SECRET", "short")

		_, err := Load()
		require.ErrorContains(t, err, "JWT_SECRET")
	})

	t.Run("unknown notes backend", func(t *testing.T) {
		t.Setenv("DATABASE_DRIVER", "sqlite")
		t.Setenv("JWT_SECRET", "0123456789abcdef")
		t.Setenv("NOTES_BACKEND", "redis")

		_, err := Load()
		require.ErrorContains(t, err, "NOTES_BACKEND")
	})
}

func TestAllowedOrigins(t *testing.T) {
	cfg := Config{CORSAllowedOrigins: " http://a.com, ,http://b.com "}
	require.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.AllowedOrigins())
}
