package initializer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/amirasaad/banking/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Format: "json", Level: 0, Prefix: "[banking]"})

	logger.Info("deposit successful", "account_id", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "deposit successful", entry["msg"])
	assert.EqualValues(t, 3, entry["account_id"])
	assert.Contains(t, fmt.Sprint(entry["prefix"]), "banking")
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	// 4 is charmbracelet's warn level
	logger := newLogger(&buf, &config.Log{Format: "text", Level: 4})

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
