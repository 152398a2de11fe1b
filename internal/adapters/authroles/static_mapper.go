package authroles

import (
	domainauth "github.com/landsight/prospect-api/internal/domain/auth"
)

// StaticRoleMapper maps IdP groups to application roles by exact membership.
// Admins outrank brokers when a user carries both groups; anyone else lands
// on the read-only guest role.
type StaticRoleMapper struct {
	AdminGroup  string
	BrokerGroup string
}

func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	for _, g := range groups {
		if m.AdminGroup != "" && g == m.AdminGroup {
			return domainauth.RoleAdmin
		}
	}
	for _, g := range groups {
		if m.BrokerGroup != "" && g == m.BrokerGroup {
			return domainauth.RoleBroker
		}
	}
	return domainauth.RoleGuest
}
