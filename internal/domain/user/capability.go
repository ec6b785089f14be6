package user

import "fmt"

// Capability is a single permission grant attached to a user account.
type Capability string

const (
	// CapManageUsers allows account lifecycle administration.
	CapManageUsers Capability = "manage_users"
	// CapTriageTickets allows mutating status, priority and assignment of any ticket.
	CapTriageTickets Capability = "triage_tickets"
	// CapAssignableTechnician marks the user as a valid ticket assignee.
	CapAssignableTechnician Capability = "assignable_technician"
)

var validCapabilities = map[Capability]bool{
	CapManageUsers:          true,
	CapTriageTickets:        true,
	CapAssignableTechnician: true,
}

func (c Capability) String() string {
	return string(c)
}

func (c Capability) IsValid() bool {
	return validCapabilities[c]
}

// Capabilities is the closed permission set of a user.
type Capabilities []Capability

// NewCapabilities builds a capability set from raw strings, rejecting unknown values.
func NewCapabilities(raw []string) (Capabilities, error) {
	caps := make(Capabilities, 0, len(raw))
	for _, s := range raw {
		c := Capability(s)
		if !c.IsValid() {
			return nil, fmt.Errorf("invalid capability: %s", s)
		}
		if !caps.Has(c) {
			caps = append(caps, c)
		}
	}
	return caps, nil
}

// AdminCapabilities returns the full grant used for provisioned administrators.
func AdminCapabilities() Capabilities {
	return Capabilities{CapManageUsers, CapTriageTickets}
}

// TechnicianCapabilities returns the grant for support technicians.
func TechnicianCapabilities() Capabilities {
	return Capabilities{CapAssignableTechnician}
}

func (cs Capabilities) Has(c Capability) bool {
	for _, existing := range cs {
		if existing == c {
			return true
		}
	}
	return false
}

func (cs Capabilities) Strings() []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// RoleLabel derives the display role from the capability set.
func (cs Capabilities) RoleLabel() string {
	if cs.Has(CapManageUsers) {
		return "Administrador"
	}
	if cs.Has(CapAssignableTechnician) {
		return "Técnico"
	}
	return "Usuário"
}
