package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docusign-oauth/pkg/config"
	"github.com/dmitrymomot/docusign-oauth/pkg/docusign"
)

func TestLoadFile(t *testing.T) {
	t.Parallel()

	t.Run("docusign config", func(t *testing.T) {
		t.Parallel()

		var cfg docusign.Config
		require.NoError(t, config.LoadFile("testdata/docusign.yaml", &cfg))

		assert.Equal(t, "ABC123", cfg.ClientID)
		assert.Equal(t, "secret", cfg.ClientSecret)
		assert.Equal(t, "https://app.example.com/auth/docusign/callback", cfg.CallbackURL)
		assert.Equal(t, docusign.ProductionHost, cfg.Host)
		assert.Equal(t, []string{"signature", "extended"}, cfg.Scopes)
		assert.Equal(t, 5*time.Minute, cfg.StateTTL)
	})

	t.Run("validation failure", func(t *testing.T) {
		t.Parallel()

		var cfg docusign.Config
		err := config.LoadFile("testdata/invalid.yaml", &cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidConfig)
		assert.ErrorIs(t, err, docusign.ErrMissingClientSecret)
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		var cfg docusign.Config
		err := config.LoadFile("testdata/unknown.yaml", &cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfigFile)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		var cfg docusign.Config
		err := config.LoadFile("testdata/missing.yaml", &cfg)
		assert.ErrorIs(t, err, config.ErrReadingConfigFile)
	})

	t.Run("nil pointer", func(t *testing.T) {
		t.Parallel()

		var cfg *docusign.Config
		assert.ErrorIs(t, config.LoadFile("testdata/docusign.yaml", cfg), config.ErrNilPointer)
	})
}
