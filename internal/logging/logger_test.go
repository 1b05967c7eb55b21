package logging

import (
	"bytes"
	"context"
	"errors"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut, prevFlags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	log.SetFlags(0)
	t.Cleanup(func() {
		log.SetOutput(prevOut)
		log.SetFlags(prevFlags)
		SetLevel("info")
	})
	return &buf
}

func TestLogger_RequestID(t *testing.T) {
	buf := captureLog(t)

	ctx := WithRequestID(context.Background(), "rid-1")
	New(ctx).LogInfo("charters.create", "ok")
	New(context.Background()).LogError("charters.list", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "[info] request_id=rid-1 operation=charters.create message=ok")
	assert.Contains(t, out, "[error] request_id=unknown operation=charters.list error=boom")
}

func TestLogger_Level(t *testing.T) {
	buf := captureLog(t)

	SetLevel("warn")
	l := New(context.Background())
	l.LogInfo("op", "hidden")
	l.LogDebugf("op", "n=%d", 1)
	l.LogWarnf("op", "n=%d", 2)
	l.LogErrorf("op", "n=%d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.NotContains(t, out, "n=1")
	assert.Contains(t, out, "[warn] request_id=unknown operation=op n=2")
	assert.Contains(t, out, "[error] request_id=unknown operation=op n=3")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
}
