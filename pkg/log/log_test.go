package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestIsRelevantField(t *testing.T) {
	assert.True(t, isRelevantField("correlation_id"))
	assert.True(t, isRelevantField("user_id"))
	assert.True(t, isRelevantField("entry_id"))
	assert.True(t, isRelevantField("granularity"))
	assert.False(t, isRelevantField("payload"))
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Configure("warn")
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	Configure("nivel-invalido")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
