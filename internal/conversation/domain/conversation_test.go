package domain

import (
	"testing"
	"time"
)

func TestCurrentDraft(t *testing.T) {
	tests := []struct {
		name     string
		messages []EmailMessage
		want     string
	}{
		{
			name: "last ai message wins over later user message",
			messages: []EmailMessage{
				{Role: RoleUser, Content: "a"},
				{Role: RoleAI, Content: "b"},
				{Role: RoleUser, Content: "c"},
			},
			want: "b",
		},
		{
			name: "latest of several ai messages",
			messages: []EmailMessage{
				{Role: RoleAI, Content: "first"},
				{Role: RoleUser, Content: "again"},
				{Role: RoleAI, Content: "second"},
			},
			want: "second",
		},
		{
			name: "no ai message",
			messages: []EmailMessage{
				{Role: RoleUser, Content: "a"},
			},
			want: "",
		},
		{
			name:     "empty thread",
			messages: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := &EmailConversation{Messages: tt.messages}
			if got := conv.CurrentDraft(); got != tt.want {
				t.Errorf("CurrentDraft() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSortForDisplay(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	convs := []*EmailConversation{
		{ID: "old-unpinned", UpdatedAt: base},
		{ID: "new-unpinned", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "old-pinned", Pinned: true, UpdatedAt: base.Add(-time.Hour)},
		{ID: "new-pinned", Pinned: true, UpdatedAt: base.Add(time.Hour)},
	}

	SortForDisplay(convs)

	want := []string{"new-pinned", "old-pinned", "new-unpinned", "old-unpinned"}
	for i, id := range want {
		if convs[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, convs[i].ID, id)
		}
	}
}

func TestSortForDisplayStable(t *testing.T) {
	ts := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	convs := []*EmailConversation{
		{ID: "first", UpdatedAt: ts},
		{ID: "second", UpdatedAt: ts},
	}

	SortForDisplay(convs)

	if convs[0].ID != "first" || convs[1].ID != "second" {
		t.Errorf("equal timestamps reordered: got [%s %s]", convs[0].ID, convs[1].ID)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	conv := &EmailConversation{
		ID:       "c1",
		Subject:  "original",
		Messages: []EmailMessage{{ID: "m1", Role: RoleUser, Content: "hi"}},
	}

	clone := conv.Clone()
	clone.Subject = "changed"
	clone.Messages[0].Content = "changed"
	clone.Messages = append(clone.Messages, EmailMessage{ID: "m2"})

	if conv.Subject != "original" {
		t.Errorf("clone mutation leaked into subject: %q", conv.Subject)
	}
	if conv.Messages[0].Content != "hi" {
		t.Errorf("clone mutation leaked into messages: %q", conv.Messages[0].Content)
	}
	if len(conv.Messages) != 1 {
		t.Errorf("clone append leaked: %d messages", len(conv.Messages))
	}
}
