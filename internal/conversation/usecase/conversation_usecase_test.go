package usecase

import (
	"testing"
	"time"

	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
	convrepo "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/repository"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/kvstore"
)

func newTestUsecase(t *testing.T) ConversationUsecase {
	t.Helper()
	repo, err := convrepo.NewKVConversationRepository(kvstore.NewMemory())
	if err != nil {
		t.Fatalf("NewKVConversationRepository: %v", err)
	}
	return NewConversationUsecase(repo)
}

func TestCreateAllocatesUniqueEmptyConversations(t *testing.T) {
	uc := newTestUsecase(t)

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		conv, err := uc.Create()
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[conv.ID] {
			t.Fatalf("duplicate conversation id %s", conv.ID)
		}
		seen[conv.ID] = true
		if len(conv.Messages) != 0 {
			t.Errorf("new conversation has %d messages, want 0", len(conv.Messages))
		}
		if conv.Subject != convdomain.DefaultSubject {
			t.Errorf("new conversation subject = %q, want %q", conv.Subject, convdomain.DefaultSubject)
		}
		if conv.UpdatedAt.Before(conv.CreatedAt) {
			t.Errorf("UpdatedAt %v before CreatedAt %v", conv.UpdatedAt, conv.CreatedAt)
		}
	}
}

func TestCreateMarksActive(t *testing.T) {
	uc := newTestUsecase(t)

	conv, err := uc.Create()
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	active, err := uc.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if active == nil || active.ID != conv.ID {
		t.Errorf("Active = %+v, want conversation %s", active, conv.ID)
	}
}

func TestAppendMessageAtTailRefreshesUpdatedAt(t *testing.T) {
	uc := newTestUsecase(t)

	conv, _ := uc.Create()
	before := conv.UpdatedAt

	if _, err := uc.AppendMessage(conv.ID, convdomain.RoleUser, "first"); err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	got, err := uc.AppendMessage(conv.ID, convdomain.RoleUser, "second")
	if err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}

	if len(got.Messages) != 2 {
		t.Fatalf("thread has %d messages, want 2", len(got.Messages))
	}
	tail := got.Messages[len(got.Messages)-1]
	if tail.Content != "second" {
		t.Errorf("tail message = %q, want %q", tail.Content, "second")
	}
	if tail.ID == "" || tail.Timestamp.IsZero() {
		t.Errorf("tail message missing id or timestamp: %+v", tail)
	}
	if got.UpdatedAt.Before(before) {
		t.Errorf("UpdatedAt went backwards: %v -> %v", before, got.UpdatedAt)
	}

	// Messages are also visible through Get.
	stored, err := uc.Get(conv.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stored.Messages) != 2 || stored.Messages[1].Content != "second" {
		t.Errorf("Get after append = %+v", stored.Messages)
	}
}

func TestAppendMessageUnknownIDIsSilentNoOp(t *testing.T) {
	uc := newTestUsecase(t)

	got, err := uc.AppendMessage("missing", convdomain.RoleUser, "hello")
	if err != nil {
		t.Fatalf("AppendMessage(unknown) = %v, want nil error", err)
	}
	if got != nil {
		t.Errorf("AppendMessage(unknown) = %+v, want nil", got)
	}
}

func TestAppendAIDerivesSubjectOnlyWhileDefault(t *testing.T) {
	uc := newTestUsecase(t)

	conv, _ := uc.Create()
	got, err := uc.AppendMessage(conv.ID, convdomain.RoleAI, "Subject: Budget Approval\nDear team,")
	if err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if got.Subject != "Budget Approval" {
		t.Errorf("derived subject = %q, want %q", got.Subject, "Budget Approval")
	}

	// An explicit subject is never overwritten by later AI output.
	if _, err := uc.Rename(conv.ID, "My subject"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, err = uc.AppendMessage(conv.ID, convdomain.RoleAI, "Subject: Something Else\nHi,")
	if err != nil {
		t.Fatalf("AppendMessage: %v", err)
	}
	if got.Subject != "My subject" {
		t.Errorf("subject overwritten: %q", got.Subject)
	}
}

func TestUpdateIgnoresCallerTimestamps(t *testing.T) {
	uc := newTestUsecase(t)

	conv, _ := uc.Create()
	stale := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

	edited := conv.Clone()
	edited.Subject = "edited"
	edited.CreatedAt = stale
	edited.UpdatedAt = stale

	got, err := uc.Update(edited)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.Subject != "edited" {
		t.Errorf("subject = %q, want %q", got.Subject, "edited")
	}
	if got.CreatedAt.Equal(stale) {
		t.Error("caller overwrote CreatedAt")
	}
	if got.UpdatedAt.Equal(stale) {
		t.Error("caller-supplied UpdatedAt was stored")
	}
	if got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("UpdatedAt %v before CreatedAt %v", got.UpdatedAt, got.CreatedAt)
	}
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	uc := newTestUsecase(t)

	got, err := uc.Update(&convdomain.EmailConversation{ID: "missing", Subject: "x"})
	if err != nil {
		t.Fatalf("Update(unknown) = %v, want nil error", err)
	}
	if got != nil {
		t.Errorf("Update(unknown) = %+v, want nil", got)
	}
}

func TestDeleteActiveClearsPointerWithoutPromotion(t *testing.T) {
	uc := newTestUsecase(t)

	first, _ := uc.Create()
	second, _ := uc.Create() // active now

	if err := uc.Delete(second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	active, err := uc.Active()
	if err != nil {
		t.Fatalf("Active: %v", err)
	}
	if active != nil {
		t.Errorf("Active after deleting active conversation = %+v, want nil", active)
	}

	// The other conversation is untouched.
	if got, _ := uc.Get(first.ID); got == nil {
		t.Error("unrelated conversation was deleted")
	}
}

func TestDeleteInactiveKeepsPointer(t *testing.T) {
	uc := newTestUsecase(t)

	first, _ := uc.Create()
	second, _ := uc.Create() // active now

	if err := uc.Delete(first.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	active, _ := uc.Active()
	if active == nil || active.ID != second.ID {
		t.Errorf("Active = %+v, want %s", active, second.ID)
	}
}

func TestTogglePinnedAffectsDisplayOrder(t *testing.T) {
	uc := newTestUsecase(t)

	older, _ := uc.Create()
	newer, _ := uc.Create()

	if _, err := uc.TogglePinned(older.ID); err != nil {
		t.Fatalf("TogglePinned: %v", err)
	}

	convs, err := uc.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if convs[0].ID != older.ID {
		t.Errorf("pinned conversation not first: got %s", convs[0].ID)
	}
	if convs[1].ID != newer.ID {
		t.Errorf("unpinned conversation misplaced: got %s", convs[1].ID)
	}

	// Toggling back restores updatedAt-descending order.
	if _, err := uc.TogglePinned(older.ID); err != nil {
		t.Fatalf("TogglePinned: %v", err)
	}
	convs, _ = uc.List()
	if convs[0].ID != older.ID {
		// Unpinning refreshed updatedAt, so the older conversation is
		// now the most recently touched one.
		t.Errorf("most recently updated conversation not first: got %s", convs[0].ID)
	}
}

func TestEnsureActivePicksFirstOrCreates(t *testing.T) {
	uc := newTestUsecase(t)

	// Empty store: EnsureActive creates a conversation.
	conv, err := uc.EnsureActive()
	if err != nil {
		t.Fatalf("EnsureActive: %v", err)
	}
	if conv == nil || conv.Subject != convdomain.DefaultSubject {
		t.Fatalf("EnsureActive on empty store = %+v", conv)
	}
	if conv.CurrentDraft() != "" {
		t.Errorf("fresh conversation draft = %q, want empty", conv.CurrentDraft())
	}

	// Deleting it clears the pointer; EnsureActive then reuses the
	// remaining head conversation instead of creating another.
	other, _ := uc.Create()
	if err := uc.Delete(other.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	got, err := uc.EnsureActive()
	if err != nil {
		t.Fatalf("EnsureActive: %v", err)
	}
	if got.ID != conv.ID {
		t.Errorf("EnsureActive = %s, want existing %s", got.ID, conv.ID)
	}
}

func TestSetActiveUnknownID(t *testing.T) {
	uc := newTestUsecase(t)

	got, err := uc.SetActive("missing")
	if err != nil {
		t.Fatalf("SetActive(unknown) = %v, want nil error", err)
	}
	if got != nil {
		t.Errorf("SetActive(unknown) = %+v, want nil", got)
	}
	if active, _ := uc.Active(); active != nil {
		t.Errorf("Active = %+v, want nil", active)
	}
}
