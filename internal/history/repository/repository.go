package repository

import (
	histdomain "github.com/ULLASCHANDERR/v0-professional-email-composer/internal/history/domain"
)

// HistoryRepository defines the interface for history persistence. The
// log and the handoff slot are stored as independent snapshots.
type HistoryRepository interface {
	// List returns the stored log, newest first.
	List() ([]histdomain.APIHistoryItem, error)

	// Save replaces the stored log.
	Save(items []histdomain.APIHistoryItem) error

	// LoadHandoff returns the pending payload or (nil, nil) when the
	// slot is empty.
	LoadHandoff() (*histdomain.HandoffPayload, error)

	// SaveHandoff writes the payload, overwriting any previous one.
	SaveHandoff(payload *histdomain.HandoffPayload) error

	// ClearHandoff empties the slot.
	ClearHandoff() error
}
