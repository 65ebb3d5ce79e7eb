package repository

import (
	"testing"
	"time"

	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/kvstore"
)

func newTestRepo(t *testing.T, store kvstore.Store) ConversationRepository {
	t.Helper()
	repo, err := NewKVConversationRepository(store)
	if err != nil {
		t.Fatalf("NewKVConversationRepository: %v", err)
	}
	return repo
}

func conv(id string) *convdomain.EmailConversation {
	now := time.Now()
	return &convdomain.EmailConversation{
		ID:        id,
		Subject:   convdomain.DefaultSubject,
		Messages:  []convdomain.EmailMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestInsertPlacesAtHead(t *testing.T) {
	repo := newTestRepo(t, kvstore.NewMemory())

	if err := repo.Insert(conv("first")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Insert(conv("second")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	convs, err := repo.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(convs) != 2 {
		t.Fatalf("List returned %d conversations, want 2", len(convs))
	}
	if convs[0].ID != "second" || convs[1].ID != "first" {
		t.Errorf("storage order = [%s %s], want [second first]", convs[0].ID, convs[1].ID)
	}
}

func TestSnapshotSurvivesReload(t *testing.T) {
	store := kvstore.NewMemory()
	repo := newTestRepo(t, store)

	c := conv("c1")
	c.Messages = append(c.Messages, convdomain.EmailMessage{
		ID: "m1", Role: convdomain.RoleUser, Content: "hello", Timestamp: time.Now(),
	})
	if err := repo.Insert(c); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	// A second repository over the same store sees the flushed state.
	reloaded := newTestRepo(t, store)
	got, err := reloaded.FindByID("c1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got == nil {
		t.Fatal("FindByID returned nil after reload")
	}
	if len(got.Messages) != 1 || got.Messages[0].Content != "hello" {
		t.Errorf("reloaded messages = %+v", got.Messages)
	}
}

func TestUpdateUnknownIDIsNoOp(t *testing.T) {
	repo := newTestRepo(t, kvstore.NewMemory())

	if err := repo.Update(conv("ghost")); err != nil {
		t.Fatalf("Update(unknown) = %v, want nil", err)
	}
	convs, _ := repo.List()
	if len(convs) != 0 {
		t.Errorf("Update(unknown) inserted a conversation: %d stored", len(convs))
	}
}

func TestDeleteRemovesConversation(t *testing.T) {
	repo := newTestRepo(t, kvstore.NewMemory())

	if err := repo.Insert(conv("c1")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Delete("c1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	got, err := repo.FindByID("c1")
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got != nil {
		t.Errorf("FindByID after delete = %+v, want nil", got)
	}

	// Deleting again is still a no-op.
	if err := repo.Delete("c1"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
}

func TestReturnedConversationsAreCopies(t *testing.T) {
	repo := newTestRepo(t, kvstore.NewMemory())

	if err := repo.Insert(conv("c1")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	got, _ := repo.FindByID("c1")
	got.Subject = "mutated by caller"

	again, _ := repo.FindByID("c1")
	if again.Subject != convdomain.DefaultSubject {
		t.Errorf("caller mutation leaked into stored state: %q", again.Subject)
	}
}
