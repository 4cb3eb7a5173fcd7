package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MoulikGL/basiccrudapp-admin/internal/common"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "auth.json", cfg.SessionFile)
}

func TestValidate_MissingBaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	err := cfg.Validate()
	require.ErrorIs(t, err, common.ErrMissingBaseURL)

	cfg.APIBaseURL = "http://localhost:3000"
	require.NoError(t, cfg.Validate())
}
