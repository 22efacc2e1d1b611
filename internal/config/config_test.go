package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("POSTGRES_USER", "store")
	t.Setenv("POSTGRES_PASSWORD", "store")
	t.Setenv("KNET_MERCHANT_ID", "M-100")
	t.Setenv("KNET_SECRET", "0123456789abcdef")
}

func TestNew_Defaults(t *testing.T) {
	setRequired(t)

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "development", conf.Env)
	assert.Equal(t, 15*time.Second, conf.Catalog.HTTPTimeout)
	assert.Equal(t, "3", conf.Delivery.DefaultFee.String())
	assert.True(t, conf.Delivery.FreeThreshold.IsZero())
	assert.Equal(t, 24*time.Hour, conf.Redis.IdempotencyTTL)
	assert.Equal(t, []string{"localhost:9092"}, conf.Kafka.Brokers)
}

func TestNew_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DELIVERY_FREE_THRESHOLD", "500")
	t.Setenv("CATALOG_HTTP_TIMEOUT", "5s")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CACHE_CAPACITY", "not-a-number")

	conf := New()
	require.NoError(t, conf.Validate())

	assert.Equal(t, "500", conf.Delivery.FreeThreshold.String())
	assert.Equal(t, 5*time.Second, conf.Catalog.HTTPTimeout)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 1000, conf.Cache.Capacity)
}

func TestValidate_Fails(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing merchant", env: map[string]string{"KNET_MERCHANT_ID": ""}},
		{name: "short secret", env: map[string]string{"KNET_SECRET": "short"}},
		{name: "bad env", env: map[string]string{"ENV": "dev"}},
		{name: "bad gateway", env: map[string]string{"KNET_GATEWAY_URL": "not a url"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			assert.Error(t, New().Validate())
		})
	}
}
