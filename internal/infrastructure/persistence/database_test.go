package persistence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolSettingsFallBackToDefaults(t *testing.T) {
	assert.Equal(t, 10, poolSize(10, defaultMaxOpenConns))
	assert.Equal(t, defaultMaxOpenConns, poolSize(0, defaultMaxOpenConns))

	assert.Equal(t, 5*time.Minute, poolMinutes(5, defaultConnMaxLifetime))
	assert.Equal(t, defaultConnMaxLifetime, poolMinutes(0, defaultConnMaxLifetime))
	assert.Equal(t, defaultConnMaxIdleTime, poolMinutes(-1, defaultConnMaxIdleTime))
}
