package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAudienceSpec(t *testing.T) {
	t.Run("valid spec", func(t *testing.T) {
		spec, err := ParseAudienceSpec([]byte(`{"residence":{"owner":true},"shop":{"staff":false}}`))
		require.NoError(t, err)
		assert.True(t, spec.Residence["owner"])
		assert.False(t, spec.Shop["staff"])
		assert.Nil(t, spec.Carpark)
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := ParseAudienceSpec(nil)
		assert.ErrorIs(t, err, ErrInvalidAudienceSpec)
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := ParseAudienceSpec([]byte(`{"residence":`))
		assert.Error(t, err)
	})
}

func TestAudienceSpecMatches(t *testing.T) {
	spec := &AudienceSpec{
		Residence: map[string]bool{"owner": true},
	}

	t.Run("category and role flagged", func(t *testing.T) {
		tenant := &Tenant{Category: TenantCategoryResidence, Role: "owner", DeviceToken: "T1"}
		assert.True(t, spec.Matches(tenant))
	})

	t.Run("role flag absent", func(t *testing.T) {
		tenant := &Tenant{Category: TenantCategoryResidence, Role: "tenant", DeviceToken: "T2"}
		assert.False(t, spec.Matches(tenant))
	})

	t.Run("category absent from spec", func(t *testing.T) {
		tenant := &Tenant{Category: TenantCategoryCarpark, Role: "owner", DeviceToken: "T3"}
		assert.False(t, spec.Matches(tenant))
	})

	t.Run("role flag explicitly false", func(t *testing.T) {
		spec := &AudienceSpec{Shop: map[string]bool{"staff": false}}
		tenant := &Tenant{Category: TenantCategoryShop, Role: "staff"}
		assert.False(t, spec.Matches(tenant))
	})

	t.Run("multiple categories", func(t *testing.T) {
		spec := &AudienceSpec{
			Residence: map[string]bool{"owner": true},
			Carpark:   map[string]bool{"owner": true},
		}
		assert.True(t, spec.Matches(&Tenant{Category: TenantCategoryCarpark, Role: "owner"}))
		assert.False(t, spec.Matches(&Tenant{Category: TenantCategoryShop, Role: "owner"}))
	})
}
