package models

import (
	"encoding/json"
	"errors"
)

var ErrInvalidAudienceSpec = errors.New("invalid audience spec")

// AudienceSpec maps each tenant category to the roles that should receive
// a notice. An absent category targets no tenants of that category.
type AudienceSpec struct {
	Residence map[string]bool `json:"residence,omitempty"`
	Carpark   map[string]bool `json:"carpark,omitempty"`
	Shop      map[string]bool `json:"shop,omitempty"`
}

// ParseAudienceSpec decodes the stored audiences JSON.
func ParseAudienceSpec(raw []byte) (*AudienceSpec, error) {
	if len(raw) == 0 {
		return nil, ErrInvalidAudienceSpec
	}
	var spec AudienceSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Matches reports whether the tenant should be notified. Categories are
// checked in fixed order (residence, carpark, shop) and evaluation stops
// at the first category that applies to the tenant.
func (s *AudienceSpec) Matches(tenant *Tenant) bool {
	if s.Residence != nil && tenant.Category == TenantCategoryResidence {
		if s.Residence[tenant.Role] {
			return true
		}
	}
	if s.Carpark != nil && tenant.Category == TenantCategoryCarpark {
		if s.Carpark[tenant.Role] {
			return true
		}
	}
	if s.Shop != nil && tenant.Category == TenantCategoryShop {
		if s.Shop[tenant.Role] {
			return true
		}
	}
	return false
}
