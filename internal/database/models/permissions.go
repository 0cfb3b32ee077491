package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Capability is a single enumerated team permission
type Capability string

const (
	CapCreateConversation       Capability = "create_conversation"
	CapDeleteConversation       Capability = "delete_conversation"
	CapAddTeamMember            Capability = "add_team_member"
	CapRemoveTeamMember         Capability = "remove_team_member"
	CapAddConversationMember    Capability = "add_conversation_member"
	CapRemoveConversationMember Capability = "remove_conversation_member"
	CapGetBilling               Capability = "get_billing"
	CapSetBilling               Capability = "set_billing"
	CapSetTeamData              Capability = "set_team_data"
	CapGetMemberPermissions     Capability = "get_member_permissions"
	CapSetMemberPermissions     Capability = "set_member_permissions"
	CapGetTeamConversations     Capability = "get_team_conversations"
	CapDeleteTeam               Capability = "delete_team"
)

// AllCapabilities lists every known capability in a stable order
var AllCapabilities = []Capability{
	CapCreateConversation,
	CapDeleteConversation,
	CapAddTeamMember,
	CapRemoveTeamMember,
	CapAddConversationMember,
	CapRemoveConversationMember,
	CapGetBilling,
	CapSetBilling,
	CapSetTeamData,
	CapGetMemberPermissions,
	CapSetMemberPermissions,
	CapGetTeamConversations,
	CapDeleteTeam,
}

// IsKnown reports whether the capability is part of the closed enumeration
func (c Capability) IsKnown() bool {
	for _, known := range AllCapabilities {
		if c == known {
			return true
		}
	}
	return false
}

// PermissionSet is a set-valued capability collection. Subset comparison is the
// core primitive: a member may only grant capabilities from their own set.
// Stored as a jsonb column.
type PermissionSet []Capability

// FullPermissions returns a set holding every capability (the owner grant)
func FullPermissions() PermissionSet {
	set := make(PermissionSet, len(AllCapabilities))
	copy(set, AllCapabilities)
	return set
}

// Contains reports whether the set holds the given capability
func (p PermissionSet) Contains(c Capability) bool {
	for _, have := range p {
		if have == c {
			return true
		}
	}
	return false
}

// IsSubsetOf reports whether every capability in p is also in other
func (p PermissionSet) IsSubsetOf(other PermissionSet) bool {
	for _, c := range p {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Normalize returns a copy with duplicates removed, preserving first-seen order
func (p PermissionSet) Normalize() PermissionSet {
	seen := make(map[Capability]struct{}, len(p))
	out := make(PermissionSet, 0, len(p))
	for _, c := range p {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

// Validate checks that every capability in the set is known
func (p PermissionSet) Validate() error {
	for _, c := range p {
		if !c.IsKnown() {
			return fmt.Errorf("unknown capability: %q", c)
		}
	}
	return nil
}

// Value implements driver.Valuer for jsonb storage
func (p PermissionSet) Value() (driver.Value, error) {
	if p == nil {
		p = PermissionSet{}
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for jsonb storage
func (p *PermissionSet) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionSet{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PermissionSet", value)
	}
	return json.Unmarshal(data, p)
}
