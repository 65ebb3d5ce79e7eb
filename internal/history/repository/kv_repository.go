package repository

import (
	"encoding/json"

	histdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/domain"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/kvstore"
)

const (
	historyKey = "api-history"
	handoffKey = "composer-handoff"
)

// kvHistoryRepository implements HistoryRepository over a kvstore.Store.
type kvHistoryRepository struct {
	store kvstore.Store
}

// NewKVHistoryRepository creates a repository persisting through store.
func NewKVHistoryRepository(store kvstore.Store) HistoryRepository {
	return &kvHistoryRepository{store: store}
}

func (r *kvHistoryRepository) List() ([]histdomain.APIHistoryItem, error) {
	raw, err := r.store.Get(historyKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var items []histdomain.APIHistoryItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *kvHistoryRepository) Save(items []histdomain.APIHistoryItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Put(historyKey, raw)
}

func (r *kvHistoryRepository) LoadHandoff() (*histdomain.HandoffPayload, error) {
	raw, err := r.store.Get(handoffKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}
	var payload histdomain.HandoffPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (r *kvHistoryRepository) SaveHandoff(payload *histdomain.HandoffPayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return r.store.Put(handoffKey, raw)
}

func (r *kvHistoryRepository) ClearHandoff() error {
	return r.store.Delete(handoffKey)
}
