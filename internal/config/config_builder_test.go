package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func validPortal() Portal {
	return Portal{
		PoolConfigDir: "/etc/multipool/pools",
		CoinConfigDir: "/etc/multipool/coins",
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_MergePriority verifies that earlier sources win for non-zero
// fields, matching the env → flags → json priority order.
func TestBuild_MergePriority(t *testing.T) {
	// Arrange
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&PortalConfig{
			Portal:  Portal{PoolConfigDir: "/from-env/pools", CoinConfigDir: "/from-env/coins"},
			Website: Website{Address: "0.0.0.0:8117"},
		},
		&PortalConfig{
			Portal: Portal{PoolConfigDir: "/from-file/pools", DefaultPoolConfigPath: "/from-file/defaults.json"},
			CLI:    CLI{Address: "127.0.0.1:17117"},
		},
	)

	// Act
	cfg, err := b.build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "/from-env/pools", cfg.Portal.PoolConfigDir, "non-zero field from the earlier source wins")
	assert.Equal(t, "/from-env/coins", cfg.Portal.CoinConfigDir)
	assert.Equal(t, "/from-file/defaults.json", cfg.Portal.DefaultPoolConfigPath, "zero field is filled from the later source")
	assert.Equal(t, "0.0.0.0:8117", cfg.Website.Address)
	assert.Equal(t, "127.0.0.1:17117", cfg.CLI.Address)
}

func TestBuild_ValidationFailure(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &PortalConfig{
		Portal: Portal{PoolConfigDir: "/etc/multipool/pools"}, // coin dir missing
	})

	_, err := b.build()

	require.ErrorIs(t, err, ErrInvalidPortalConfigs)
}

func TestBuild_CarriedErrorShortCircuits(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error occured during building config")
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_PathFromEarlierSource(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	body := `{"cli": {"address": "127.0.0.1:17117"}, // admin socket
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs, &PortalConfig{
		Portal:       validPortal(),
		JSONFilePath: p,
	})

	// Act
	cfg, err := b.withJSON().build()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:17117", cfg.CLI.Address)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &PortalConfig{Portal: validPortal()})

	cfg, err := b.withJSON().build()

	require.NoError(t, err)
	assert.Len(t, b.configs, 1)
	assert.Empty(t, cfg.CLI.Address)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate_ExchangeURLRequiresTimeout(t *testing.T) {
	cfg := &PortalConfig{
		Portal:   validPortal(),
		Exchange: Exchange{BaseURL: "https://api.exchange.example.com"},
	}

	require.ErrorIs(t, cfg.validate(), ErrInvalidExchangeConfigs)
}

// ── LoadDefaults ──────────────────────────────────────────────────────────────

func TestLoadDefaults_Success(t *testing.T) {
	// Arrange
	p := filepath.Join(t.TempDir(), "pool_defaults.json")
	body := `{
		/* shared across all pools */
		"redis": {"host": "127.0.0.1", "port": 6379},
		"blockRefresh": 400,
	}`
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	// Act
	defaults, err := LoadDefaults(p)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, float64(400), defaults["blockRefresh"])
	assert.Equal(t, map[string]any{"host": "127.0.0.1", "port": float64(6379)}, defaults["redis"])
}

func TestLoadDefaults_EmptyPath(t *testing.T) {
	defaults, err := LoadDefaults("")

	require.NoError(t, err)
	assert.NotNil(t, defaults)
	assert.Empty(t, defaults)
}

func TestLoadDefaults_MissingFile(t *testing.T) {
	_, err := LoadDefaults(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error loading default pool config")
}
