package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	tenantID := uuid.New()

	t.Run("creates service with default category", func(t *testing.T) {
		service, err := NewService(tenantID, ServiceFields{
			Name:  "Consulting",
			Price: decimal.NewFromInt(150),
		})
		require.NoError(t, err)

		assert.Equal(t, "Consulting", service.Name)
		assert.Equal(t, "service", service.Category)
		assert.True(t, service.Price.Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewService(tenantID, ServiceFields{Price: decimal.NewFromInt(10)})
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewService(tenantID, ServiceFields{Name: "X", Price: decimal.NewFromInt(-1)})
		assert.Error(t, err)
	})
}

func TestService_Update(t *testing.T) {
	service, err := NewService(uuid.New(), ServiceFields{Name: "Consulting", Price: decimal.NewFromInt(150)})
	require.NoError(t, err)

	err = service.Update(ServiceFields{Name: "Audit", Price: decimal.NewFromInt(200), Category: "forfait"})
	require.NoError(t, err)

	assert.Equal(t, "Audit", service.Name)
	assert.Equal(t, "forfait", service.Category)
	assert.Equal(t, 2, service.Version)
}
