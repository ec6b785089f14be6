package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "helpdesk/internal/domain/ticket/valueobjects"
	"helpdesk/internal/domain/user"
)

func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket("Impressora não funciona", "A impressora do setor parou de imprimir", vo.PriorityMedium, 1, "Sala 101", "HP LaserJet")
	require.NoError(t, err)
	return tk
}

func reconstructedTicket(t *testing.T, status vo.Status, technicianID *uint) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	tk, err := ReconstructTicket(
		1,
		"Persisted ticket", "desc",
		status, vo.PriorityHigh,
		10,
		technicianID,
		"", "", "",
		now, now,
		nil,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket_ValidInput(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		desc      string
		pri       vo.Priority
		creator   uint
		location  string
		equipment string
	}{
		{
			name:  "all fields",
			title: "Monitor piscando", desc: "Tela pisca intermitentemente",
			pri: vo.PriorityLow, creator: 1,
			location: "Recepção", equipment: "Dell P2419H",
		},
		{
			name:  "optional fields empty",
			title: "Sem acesso à rede", desc: "Cabo de rede sem conexão",
			pri: vo.PriorityUrgent, creator: 42,
		},
		{
			name:  "boundary title length 200",
			title: strings.Repeat("a", 200), desc: "desc",
			pri: vo.PriorityMedium, creator: 5,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.title, tc.desc, tc.pri, tc.creator, tc.location, tc.equipment)
			require.NoError(t, err)
			require.NotNil(t, tk)

			assert.Equal(t, tc.title, tk.Title())
			assert.Equal(t, tc.desc, tk.Description())
			assert.Equal(t, tc.pri, tk.Priority())
			assert.Equal(t, tc.creator, tk.CreatorID())
			assert.Equal(t, tc.location, tk.Location())
			assert.Equal(t, tc.equipment, tk.Equipment())
			assert.Equal(t, vo.StatusOpen, tk.Status(), "new ticket must start aberto")
			assert.Nil(t, tk.TechnicianID())
			assert.Nil(t, tk.ResolvedAt())
		})
	}
}

func TestNewTicket_InvalidInput(t *testing.T) {
	tests := []struct {
		name      string
		title     string
		desc      string
		pri       vo.Priority
		creator   uint
		location  string
		equipment string
	}{
		{name: "empty title", title: "", desc: "desc", pri: vo.PriorityLow, creator: 1},
		{name: "title too long", title: strings.Repeat("a", 201), desc: "desc", pri: vo.PriorityLow, creator: 1},
		{name: "empty description", title: "Title", desc: "", pri: vo.PriorityLow, creator: 1},
		{name: "invalid priority", title: "Title", desc: "desc", pri: vo.Priority("critical"), creator: 1},
		{name: "zero creator", title: "Title", desc: "desc", pri: vo.PriorityLow, creator: 0},
		{name: "location too long", title: "Title", desc: "desc", pri: vo.PriorityLow, creator: 1, location: strings.Repeat("l", 201)},
		{name: "equipment too long", title: "Title", desc: "desc", pri: vo.PriorityLow, creator: 1, equipment: strings.Repeat("e", 101)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.title, tc.desc, tc.pri, tc.creator, tc.location, tc.equipment)
			assert.Error(t, err)
			assert.Nil(t, tk)
		})
	}
}

func TestTicket_ChangeStatus(t *testing.T) {
	t.Run("entering resolvido stamps resolution time", func(t *testing.T) {
		tk := newValidTicket(t)
		require.Nil(t, tk.ResolvedAt())

		err := tk.ChangeStatus(vo.StatusResolved)
		require.NoError(t, err)

		assert.Equal(t, vo.StatusResolved, tk.Status())
		require.NotNil(t, tk.ResolvedAt())
		assert.WithinDuration(t, time.Now().UTC(), *tk.ResolvedAt(), time.Second)
	})

	t.Run("leaving resolvido keeps the stamp", func(t *testing.T) {
		tk := newValidTicket(t)
		require.NoError(t, tk.ChangeStatus(vo.StatusResolved))
		resolvedAt := tk.ResolvedAt()
		require.NotNil(t, resolvedAt)

		require.NoError(t, tk.ChangeStatus(vo.StatusOpen))
		assert.Equal(t, vo.StatusOpen, tk.Status())
		require.NotNil(t, tk.ResolvedAt())
		assert.Equal(t, *resolvedAt, *tk.ResolvedAt())
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		tk := newValidTicket(t)
		before := tk.UpdatedAt()

		err := tk.ChangeStatus(vo.StatusOpen)
		require.NoError(t, err)
		assert.Equal(t, before, tk.UpdatedAt())
	})

	t.Run("invalid status rejected", func(t *testing.T) {
		tk := newValidTicket(t)
		err := tk.ChangeStatus(vo.Status("cancelado"))
		assert.Error(t, err)
		assert.Equal(t, vo.StatusOpen, tk.Status())
	})
}

func TestTicket_AssignAndUnassign(t *testing.T) {
	tk := newValidTicket(t)

	err := tk.AssignTo(7)
	require.NoError(t, err)
	require.NotNil(t, tk.TechnicianID())
	assert.Equal(t, uint(7), *tk.TechnicianID())

	err = tk.AssignTo(0)
	assert.Error(t, err, "zero technician ID must be rejected")

	tk.Unassign()
	assert.Nil(t, tk.TechnicianID())
}

func TestTicket_ForceReopen(t *testing.T) {
	techID := uint(7)
	tk := reconstructedTicket(t, vo.StatusInProgress, &techID)

	tk.ForceReopen()

	assert.Equal(t, vo.StatusOpen, tk.Status())
	assert.Nil(t, tk.TechnicianID())
}

func TestTicket_CanBeViewedBy(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusOpen, nil) // creator is user 10

	tests := []struct {
		name     string
		userID   uint
		caps     user.Capabilities
		expected bool
	}{
		{name: "creator sees own ticket", userID: 10, caps: nil, expected: true},
		{name: "other regular user denied", userID: 11, caps: nil, expected: false},
		{name: "triager sees any ticket", userID: 11, caps: user.Capabilities{user.CapTriageTickets}, expected: true},
		{name: "user manager sees any ticket", userID: 11, caps: user.Capabilities{user.CapManageUsers}, expected: true},
		{name: "assignable technician without triage denied", userID: 11, caps: user.Capabilities{user.CapAssignableTechnician}, expected: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tk.CanBeViewedBy(tc.userID, tc.caps))
		})
	}
}

func TestTicket_SetID(t *testing.T) {
	tk := newValidTicket(t)

	require.NoError(t, tk.SetID(5))
	assert.Equal(t, uint(5), tk.ID())

	assert.Error(t, tk.SetID(6), "ID can only be set once")
	assert.Equal(t, uint(5), tk.ID())
}

func TestNewHistoryEntry(t *testing.T) {
	t.Run("valid entry", func(t *testing.T) {
		entry, err := NewHistoryEntry(1, 2, ActionCreation, "Chamado criado")
		require.NoError(t, err)
		assert.Equal(t, uint(1), entry.TicketID())
		assert.Equal(t, uint(2), entry.ActorID())
		assert.Equal(t, ActionCreation, entry.Action())
		assert.Equal(t, "Chamado criado", entry.Description())
	})

	t.Run("zero ticket ID rejected", func(t *testing.T) {
		_, err := NewHistoryEntry(0, 2, ActionUpdate, "x")
		assert.Error(t, err)
	})

	t.Run("zero actor ID rejected", func(t *testing.T) {
		_, err := NewHistoryEntry(1, 0, ActionUpdate, "x")
		assert.Error(t, err)
	})

	t.Run("unknown action rejected", func(t *testing.T) {
		_, err := NewHistoryEntry(1, 2, Action("comentario"), "x")
		assert.Error(t, err)
	})
}
