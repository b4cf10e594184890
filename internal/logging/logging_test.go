package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLevel(t *testing.T) {
	defer Log.SetLevel(logrus.InfoLevel)

	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"debug", logrus.DebugLevel},
		{"INFO", logrus.InfoLevel},
		{"", logrus.InfoLevel},
		{"warn", logrus.WarnLevel},
		{"warning", logrus.WarnLevel},
		{"error", logrus.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.NoError(t, SetLevel(tt.in))
			assert.Equal(t, tt.want, Log.GetLevel())
		})
	}

	assert.Error(t, SetLevel("loud"))
}

func TestComponent(t *testing.T) {
	entry := Component("dummyjson")
	assert.Equal(t, "dummyjson", entry.Data["component"])
}
