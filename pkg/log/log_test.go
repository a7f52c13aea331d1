package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func newBufferLogger() (*bytes.Buffer, Logger) {
	buf := &bytes.Buffer{}
	base := logrus.New()
	base.SetOutput(buf)
	base.SetFormatter(&logrus.JSONFormatter{})
	return buf, &logger{entry: logrus.NewEntry(base)}
}

func TestWithFields_Desenvolvimento(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	buf, l := newBufferLogger()

	l.WithFields(Fields{
		"tenant_id":       "t1",
		"cache_namespace": "revenue_calc",
		"table":           "clients",
		"query":           "SELECT 1",
	}).Info("teste")

	out := buf.String()
	assert.Contains(t, out, `"tenant_id":"t1"`)
	assert.Contains(t, out, `"cache_namespace":"revenue_calc"`)
	assert.Contains(t, out, `"table":"clients"`)
	assert.NotContains(t, out, "SELECT 1")
}

func TestWithFields_Producao(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	buf, l := newBufferLogger()

	l.WithField("query", "SELECT 1").Info("teste")
	assert.Contains(t, buf.String(), "SELECT 1")
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())
	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestForContext_CamposDeRastreio(t *testing.T) {
	tests := []struct {
		name     string
		ctx      func() context.Context
		validate func(t *testing.T, out string)
	}{
		{
			name: "correlação e tenant",
			ctx: func() context.Context {
				ctx, _ := WithCorrelationID(context.Background())
				return WithTenant(ctx, "t1")
			},
			validate: func(t *testing.T, out string) {
				assert.Contains(t, out, `"tenant_id":"t1"`)
				assert.Contains(t, out, `"correlation_id":`)
			},
		},
		{
			name: "contexto sem campos",
			ctx:  context.Background,
			validate: func(t *testing.T, out string) {
				assert.NotContains(t, out, "tenant_id")
				assert.NotContains(t, out, "correlation_id")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", "development")
			buf, l := newBufferLogger()

			l.WithContext(tt.ctx()).Info("teste")
			tt.validate(t, buf.String())
		})
	}
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	level, err := Configure("debug")
	assert.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	level, err = Configure("verboso")
	assert.Error(t, err)
	assert.Equal(t, logrus.InfoLevel, level)
}
