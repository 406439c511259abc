package repository

import (
	"context"
	"testing"
	"time"

	"bizlist/internal/domain/conversation"
)

func seedMessage(t *testing.T, repo ConversationRepository, user, msg, sender string, ts time.Time) {
	t.Helper()
	c := &conversation.Conversation{UserEmail: user, Message: msg, Sender: sender, Timestamp: ts}
	if err := repo.Store(context.Background(), c); err != nil {
		t.Fatalf("Store: %v", err)
	}
}

func TestRecentByUserWindowAndOrder(t *testing.T) {
	repo := NewConversationRepository(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	seedMessage(t, repo, "alice", "old", "user", now.Add(-8*24*time.Hour))
	seedMessage(t, repo, "alice", "second", "Admin", now.Add(-1*time.Hour))
	seedMessage(t, repo, "alice", "first", "user", now.Add(-2*time.Hour))
	seedMessage(t, repo, "bob", "other user", "user", now)

	got, err := repo.RecentByUser(ctx, "alice", now.Add(-7*24*time.Hour))
	if err != nil {
		t.Fatalf("RecentByUser: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (8-day-old and bob's excluded)", len(got))
	}
	if got[0].Message != "first" || got[1].Message != "second" {
		t.Errorf("order = [%s, %s], want ascending timestamps", got[0].Message, got[1].Message)
	}
}

func TestRecentByUserEmpty(t *testing.T) {
	repo := NewConversationRepository(openTestDB(t))
	got, err := repo.RecentByUser(context.Background(), "nobody", time.Now().Add(-time.Hour))
	if err != nil {
		t.Fatalf("RecentByUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestActiveUsersOrderedByRecency(t *testing.T) {
	repo := NewConversationRepository(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	seedMessage(t, repo, "alice", "a1", "user", now.Add(-3*time.Hour))
	seedMessage(t, repo, "bob", "b1", "user", now.Add(-2*time.Hour))
	seedMessage(t, repo, "alice", "a2", "user", now.Add(-1*time.Hour))
	seedMessage(t, repo, "carol", "c1", "user", now.Add(-5*time.Hour))

	users, err := repo.ActiveUsers(ctx, 2)
	if err != nil {
		t.Fatalf("ActiveUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("len = %d, want 2", len(users))
	}
	if users[0] != "alice" || users[1] != "bob" {
		t.Errorf("users = %v, want [alice bob]", users)
	}
}

func TestLatestByUserNewestFirstCapped(t *testing.T) {
	repo := NewConversationRepository(openTestDB(t))
	ctx := context.Background()
	now := time.Now().UTC()

	for i := 0; i < 7; i++ {
		seedMessage(t, repo, "alice", string(rune('a'+i)), "user", now.Add(time.Duration(i)*time.Minute))
	}

	got, err := repo.LatestByUser(ctx, "alice", 5)
	if err != nil {
		t.Fatalf("LatestByUser: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	if got[0].Message != "g" || got[4].Message != "c" {
		t.Errorf("got [%s..%s], want newest first g..c", got[0].Message, got[4].Message)
	}
}
