package repository

import (
	"encoding/json"
	"sync"

	convdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/conversation/domain"
	"github.com/ULLASCHANDERR/v0-professional-email-composer/pkg/kvstore"
)

const conversationsKey = "conversations"

// kvConversationRepository implements ConversationRepository over a
// kvstore.Store. The collection is read once at construction and held
// in memory; every mutation rewrites the full snapshot.
type kvConversationRepository struct {
	mu    sync.Mutex
	store kvstore.Store
	convs []*convdomain.EmailConversation
}

// NewKVConversationRepository loads the stored snapshot and returns a
// repository flushing to store on every mutation.
func NewKVConversationRepository(store kvstore.Store) (ConversationRepository, error) {
	raw, err := store.Get(conversationsKey)
	if err != nil {
		return nil, err
	}
	var convs []*convdomain.EmailConversation
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &convs); err != nil {
			return nil, err
		}
	}
	return &kvConversationRepository{store: store, convs: convs}, nil
}

func (r *kvConversationRepository) List() ([]*convdomain.EmailConversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*convdomain.EmailConversation, len(r.convs))
	for i, conv := range r.convs {
		out[i] = conv.Clone()
	}
	return out, nil
}

func (r *kvConversationRepository) FindByID(id string) (*convdomain.EmailConversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, conv := range r.convs {
		if conv.ID == id {
			return conv.Clone(), nil
		}
	}
	return nil, nil
}

func (r *kvConversationRepository) Insert(conv *convdomain.EmailConversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.convs = append([]*convdomain.EmailConversation{conv.Clone()}, r.convs...)
	return r.flush()
}

func (r *kvConversationRepository) Update(conv *convdomain.EmailConversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.convs {
		if stored.ID == conv.ID {
			r.convs[i] = conv.Clone()
			return r.flush()
		}
	}
	return nil
}

func (r *kvConversationRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, stored := range r.convs {
		if stored.ID == id {
			r.convs = append(r.convs[:i], r.convs[i+1:]...)
			return r.flush()
		}
	}
	return nil
}

// flush writes the whole collection; callers hold r.mu.
func (r *kvConversationRepository) flush() error {
	raw, err := json.Marshal(r.convs)
	if err != nil {
		return err
	}
	return r.store.Put(conversationsKey, raw)
}
