package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/repository"
)

type conversationUsecase struct {
	repo repository.ConversationRepository

	mu       sync.Mutex
	activeID string
}

// NewConversationUsecase creates a ConversationUsecase over repo.
func NewConversationUsecase(repo repository.ConversationRepository) ConversationUsecase {
	return &conversationUsecase{repo: repo}
}

func (u *conversationUsecase) List() ([]*convdomain.EmailConversation, error) {
	convs, err := u.repo.List()
	if err != nil {
		return nil, err
	}
	convdomain.SortForDisplay(convs)
	return convs, nil
}

func (u *conversationUsecase) Create() (*convdomain.EmailConversation, error) {
	now := time.Now()
	conv := &convdomain.EmailConversation{
		ID:        uuid.New().String(),
		Subject:   convdomain.DefaultSubject,
		Messages:  []convdomain.EmailMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.repo.Insert(conv); err != nil {
		return nil, err
	}
	u.setActiveID(conv.ID)
	return conv, nil
}

func (u *conversationUsecase) Get(id string) (*convdomain.EmailConversation, error) {
	return u.repo.FindByID(id)
}

func (u *conversationUsecase) Update(conv *convdomain.EmailConversation) (*convdomain.EmailConversation, error) {
	stored, err := u.repo.FindByID(conv.ID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, nil
	}
	updated := conv.Clone()
	updated.CreatedAt = stored.CreatedAt
	updated.UpdatedAt = time.Now()
	if err := u.repo.Update(updated); err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *conversationUsecase) AppendMessage(conversationID string, role convdomain.Role, content string) (*convdomain.EmailConversation, error) {
	conv, err := u.repo.FindByID(conversationID)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}
	now := time.Now()
	conv.Messages = append(conv.Messages, convdomain.EmailMessage{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: now,
	})
	conv.UpdatedAt = now
	if role == convdomain.RoleAI && conv.Subject == convdomain.DefaultSubject {
		conv.Subject = convdomain.DeriveSubject(content)
	}
	if err := u.repo.Update(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (u *conversationUsecase) Delete(id string) error {
	if err := u.repo.Delete(id); err != nil {
		return err
	}
	u.mu.Lock()
	if u.activeID == id {
		u.activeID = ""
	}
	u.mu.Unlock()
	return nil
}

func (u *conversationUsecase) Rename(id, subject string) (*convdomain.EmailConversation, error) {
	return u.mutate(id, func(conv *convdomain.EmailConversation) {
		conv.Subject = subject
	})
}

func (u *conversationUsecase) TogglePinned(id string) (*convdomain.EmailConversation, error) {
	return u.mutate(id, func(conv *convdomain.EmailConversation) {
		conv.Pinned = !conv.Pinned
	})
}

func (u *conversationUsecase) SetActive(id string) (*convdomain.EmailConversation, error) {
	conv, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}
	u.setActiveID(id)
	return conv, nil
}

func (u *conversationUsecase) Active() (*convdomain.EmailConversation, error) {
	u.mu.Lock()
	id := u.activeID
	u.mu.Unlock()
	if id == "" {
		return nil, nil
	}
	return u.repo.FindByID(id)
}

func (u *conversationUsecase) EnsureActive() (*convdomain.EmailConversation, error) {
	conv, err := u.Active()
	if err != nil {
		return nil, err
	}
	if conv != nil {
		return conv, nil
	}
	convs, err := u.repo.List()
	if err != nil {
		return nil, err
	}
	if len(convs) > 0 {
		u.setActiveID(convs[0].ID)
		return convs[0], nil
	}
	return u.Create()
}

// mutate applies fn to the stored conversation and refreshes UpdatedAt.
func (u *conversationUsecase) mutate(id string, fn func(*convdomain.EmailConversation)) (*convdomain.EmailConversation, error) {
	conv, err := u.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if conv == nil {
		return nil, nil
	}
	fn(conv)
	conv.UpdatedAt = time.Now()
	if err := u.repo.Update(conv); err != nil {
		return nil, err
	}
	return conv, nil
}

func (u *conversationUsecase) setActiveID(id string) {
	u.mu.Lock()
	u.activeID = id
	u.mu.Unlock()
}
