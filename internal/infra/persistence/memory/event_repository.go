package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"eventdesk/internal/domain/entity"
	"eventdesk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// eventRepository implements the repository.EventRepository interface.
// Events are appended per owner; byID is a secondary index over the same records.
type eventRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]*entity.Event
	byID    map[string]*entity.Event
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository() repository.EventRepository {
	return &eventRepository{
		byOwner: make(map[string][]*entity.Event),
		byID:    make(map[string]*entity.Event),
	}
}

// Create appends an event to its owner's sequence, assigning its ID and creation time
// when they are unset.
func (repo *eventRepository) Create(_ context.Context, event *entity.Event) error {
	if event == nil {
		return errors.New("event is nil")
	}
	if event.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate event id")
		}
		event.ID = id.String()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	stored := *event

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, exists := repo.byID[stored.ID]; exists {
		return errors.Errorf("event %s already recorded", stored.ID)
	}
	repo.byOwner[stored.UserID] = append(repo.byOwner[stored.UserID], &stored)
	repo.byID[stored.ID] = &stored

	return nil
}

// FindByOwner returns copies of the owner's events sorted by CreatedAt, newest first.
// Events created at the same instant are listed latest insert first.
func (repo *eventRepository) FindByOwner(_ context.Context, userID string) ([]*entity.Event, error) {
	repo.mu.RLock()
	owned := repo.byOwner[userID]
	events := make([]*entity.Event, 0, len(owned))
	for _, event := range slices.Backward(owned) {
		clone := *event
		events = append(events, &clone)
	}
	repo.mu.RUnlock()

	slices.SortStableFunc(events, func(a, b *entity.Event) int {
		return cmp.Compare(b.CreatedAt.UnixNano(), a.CreatedAt.UnixNano())
	})

	return events, nil
}

// FindByID retrieves a copy of the event with the given ID.
func (repo *eventRepository) FindByID(_ context.Context, id string) (*entity.Event, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	event, ok := repo.byID[id]
	if !ok {
		return nil, repository.ErrEventNotFound
	}
	clone := *event

	return &clone, nil
}
