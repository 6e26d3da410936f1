package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"sysmayal-backend/internal/auth"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter := std.Out, std.Formatter
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
	})
	return buf
}

func TestWithContext(t *testing.T) {
	buf := captureOutput(t)

	ctx := auth.ContextWithUser(context.Background(), "jadams", "")
	WithContext(ctx).Info("organization saved")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "jadams", entry["user"])
	assert.Equal(t, "organization saved", entry["msg"])
}

func TestWithContextDefaultsToSystem(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Warn("no user")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, auth.SystemUser, entry["user"])
}

func TestWithFields(t *testing.T) {
	buf := captureOutput(t)

	ForComponent("scheduler").WithFields(map[string]interface{}{"job": "archive_old_documents"}).Info("done")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "scheduler", entry["component"])
	assert.Equal(t, "archive_old_documents", entry["job"])
}
