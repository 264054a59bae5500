package logx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	lg := New()
	lg.SetOutput(&buf)
	lg.SetLevel(WarnLevel)

	lg.Info("hidden %d", 1)
	lg.Warn("shown %d", 2)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown 2")
	assert.False(t, lg.IsLevelEnabled(DebugLevel))
}

func TestLevelFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	lg := New()
	assert.True(t, lg.IsLevelEnabled(DebugLevel))
	assert.False(t, lg.IsLevelEnabled(TraceLevel))
}

func TestJSONFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	var buf bytes.Buffer
	lg := New()
	lg.SetOutput(&buf)

	lg.WithFields(Fields{"field": "Name"}).Warn("mismatch")

	assert.Contains(t, buf.String(), `"field":"Name"`)
	assert.Contains(t, buf.String(), `"msg":"mismatch"`)
}
