package services

import (
	"testing"

	"coopeasy/internal/core/domain"
)

func newClient(id string, userID uint, role string) *StreamClient {
	return &StreamClient{
		ID:      id,
		UserID:  userID,
		Role:    role,
		Channel: make(chan Event, 8),
	}
}

func TestStreamPublishRouting(t *testing.T) {
	hub := NewStreamService()

	owner := newClient("c1", 7, string(domain.RoleMember))
	otherMember := newClient("c2", 8, string(domain.RoleMember))
	accountant := newClient("c3", 42, string(domain.RoleAccountant))
	president := newClient("c4", 99, string(domain.RolePresident))

	for _, c := range []*StreamClient{owner, otherMember, accountant, president} {
		hub.Register(c)
	}
	if hub.ClientCount() != 4 {
		t.Fatalf("ClientCount() = %d, want 4", hub.ClientCount())
	}

	hub.Publish(Event{
		Type:   "loan.approved",
		UserID: 7,
		Roles:  []string{string(domain.RoleAccountant)},
	})

	if len(owner.Channel) != 1 {
		t.Errorf("owner received %d events, want 1", len(owner.Channel))
	}
	if len(otherMember.Channel) != 0 {
		t.Errorf("unrelated member received %d events, want 0", len(otherMember.Channel))
	}
	if len(accountant.Channel) != 1 {
		t.Errorf("accountant received %d events, want 1", len(accountant.Channel))
	}
	if len(president.Channel) != 0 {
		t.Errorf("president received %d events, want 0", len(president.Channel))
	}
}

func TestStreamPublishDeliversOneCopy(t *testing.T) {
	hub := NewStreamService()

	// A member client that is both the owner and (hypothetically) role
	// targeted must still get exactly one copy.
	owner := newClient("c1", 7, string(domain.RoleMember))
	hub.Register(owner)

	hub.Publish(Event{
		Type:   "deposit.completed",
		UserID: 7,
		Roles:  []string{string(domain.RoleMember)},
	})

	if len(owner.Channel) != 1 {
		t.Errorf("owner received %d events, want exactly 1", len(owner.Channel))
	}
}

func TestStreamUnregisterClosesChannel(t *testing.T) {
	hub := NewStreamService()
	client := newClient("c1", 7, string(domain.RoleMember))
	hub.Register(client)

	hub.Unregister("c1")
	if hub.ClientCount() != 0 {
		t.Errorf("ClientCount() = %d after unregister, want 0", hub.ClientCount())
	}

	if _, open := <-client.Channel; open {
		t.Error("channel still open after unregister")
	}

	// Second unregister for the same ID is a no-op, not a double close.
	hub.Unregister("c1")

	// Publishing after unregister must not panic or deliver.
	hub.Publish(Event{Type: "loan.submitted", UserID: 7})
}

func TestStreamPublishSkipsFullChannel(t *testing.T) {
	hub := NewStreamService()
	slow := &StreamClient{ID: "c1", UserID: 7, Role: string(domain.RoleMember), Channel: make(chan Event, 1)}
	hub.Register(slow)

	hub.Publish(Event{Type: "a", UserID: 7})
	hub.Publish(Event{Type: "b", UserID: 7}) // dropped, channel full

	if len(slow.Channel) != 1 {
		t.Errorf("channel depth = %d, want 1 (second event dropped)", len(slow.Channel))
	}
}
