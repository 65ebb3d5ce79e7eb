package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	histdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/domain"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/repository"
)

// HistoryUsecase manages the capped request log and the one-shot
// composer handoff slot.
type HistoryUsecase interface {
	// Append prepends the item, filling in ID and timestamp when
	// absent, and truncates the log to the newest MaxEntries.
	// Persistence failures are swallowed: history is a convenience, not
	// correctness-critical. The stored item is returned.
	Append(item histdomain.APIHistoryItem) histdomain.APIHistoryItem

	// List returns entries newest first.
	List() ([]histdomain.APIHistoryItem, error)

	// SetHandoff writes the payload, overwriting any unread one.
	SetHandoff(payload histdomain.HandoffPayload) error

	// ConsumeHandoff returns the pending payload and clears the slot.
	// A second call returns (nil, nil).
	ConsumeHandoff() (*histdomain.HandoffPayload, error)
}

type historyUsecase struct {
	mu   sync.Mutex
	repo repository.HistoryRepository
}

// NewHistoryUsecase creates a HistoryUsecase over repo.
func NewHistoryUsecase(repo repository.HistoryRepository) HistoryUsecase {
	return &historyUsecase{repo: repo}
}

func (u *historyUsecase) Append(item histdomain.APIHistoryItem) histdomain.APIHistoryItem {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.Timestamp.IsZero() {
		item.Timestamp = time.Now()
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	items, err := u.repo.List()
	if err != nil {
		log.Warn().Err(err).Msg("history load failed, starting a fresh log")
		items = nil
	}
	items = append([]histdomain.APIHistoryItem{item}, items...)
	if len(items) > histdomain.MaxEntries {
		items = items[:histdomain.MaxEntries]
	}
	if err := u.repo.Save(items); err != nil {
		log.Warn().Err(err).Msg("history append not persisted")
	}
	return item
}

func (u *historyUsecase) List() ([]histdomain.APIHistoryItem, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.repo.List()
}

func (u *historyUsecase) SetHandoff(payload histdomain.HandoffPayload) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.repo.SaveHandoff(&payload)
}

func (u *historyUsecase) ConsumeHandoff() (*histdomain.HandoffPayload, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	payload, err := u.repo.LoadHandoff()
	if err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, nil
	}
	if err := u.repo.ClearHandoff(); err != nil {
		return nil, err
	}
	return payload, nil
}
