package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewWithOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("warn", &buf)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())

	log.Info("hidden")
	log.WithField("tour_id", "t1").Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "tour_id=t1")
}

func TestUnknownLevelFallsBackToInfo(t *testing.T) {
	log := NewWithOutput("chatty", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}
