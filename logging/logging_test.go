package logging

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", DebugLevel.String())
	assert.Equal(t, "INFO", InfoLevel.String())
	assert.Equal(t, "WARN", WarnLevel.String())
	assert.Equal(t, "ERROR", ErrorLevel.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestFormatMessage(t *testing.T) {
	d := NewDefaultLogger()

	msg := d.formatMessage(WarnLevel, nil, "unknown key")
	assert.Equal(t, "[WARN] unknown key", msg)

	msg = d.formatMessage(ErrorLevel, errors.New("boom"), "lookup failed")
	assert.Equal(t, "[ERROR] lookup failed: boom", msg)

	msg = d.formatMessage(WarnLevel, nil, "unknown key", Fields{"key": "z"})
	assert.True(t, strings.HasPrefix(msg, "[WARN] unknown key "))
	assert.Contains(t, msg, "key:z")
}

func TestWithFieldsMerges(t *testing.T) {
	d := NewDefaultLogger()
	child, ok := d.WithFields(Fields{"pkg": "keysignature"}).(*DefaultLogger)
	assert.True(t, ok)

	msg := child.formatMessage(WarnLevel, nil, "unknown mode", Fields{"mode": "mud"})
	assert.Contains(t, msg, "pkg:keysignature")
	assert.Contains(t, msg, "mode:mud")
}

func TestSetGlobalLogger(t *testing.T) {
	orig := GetGlobalLogger()
	defer SetGlobalLogger(orig)

	noop := &NoOpLogger{}
	SetGlobalLogger(noop)
	assert.Same(t, noop, GetGlobalLogger())

	// A nil logger installs the no-op logger rather than panicking.
	SetGlobalLogger(nil)
	Warn("still safe", Fields{"n": 1})
}