package memory

import (
	"context"
	"slices"
	"sync"

	"mergingtonactivities/internal/domain"
)

type activityRepository struct {
	mu         sync.RWMutex
	activities map[string]*domain.Activity
}

// NewActivityRepository returns an in-memory ActivityRepository holding the given
// activities. The registry lives for the process lifetime; activities are never added
// or removed after construction, only their rosters change.
func NewActivityRepository(seed map[string]*domain.Activity) domain.ActivityRepository {
	activities := make(map[string]*domain.Activity, len(seed))
	for name, a := range seed {
		activities[name] = domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants)
	}
	return &activityRepository{activities: activities}
}

// NewSeededActivityRepository returns the registry preloaded with the school's
// extracurricular offerings.
func NewSeededActivityRepository() domain.ActivityRepository {
	return NewActivityRepository(map[string]*domain.Activity{
		"Chess Club": {
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
		},
		"Programming Class": {
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
		},
		"Gym Class": {
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
		},
	})
}

func (r *activityRepository) List(ctx context.Context) (map[string]*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]*domain.Activity, len(r.activities))
	for name, a := range r.activities {
		snapshot[name] = domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants)
	}
	return snapshot, nil
}

func (r *activityRepository) GetByName(ctx context.Context, name string) (*domain.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.activities[name]
	if !ok {
		return nil, domain.ErrActivityNotFound
	}
	return domain.NewActivity(a.Description, a.Schedule, a.MaxParticipants, a.Participants), nil
}

// AddParticipant appends email to the activity's roster. There is no capacity check
// against MaxParticipants; the roster may grow past it.
func (r *activityRepository) AddParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	if slices.Contains(a.Participants, email) {
		return domain.ErrAlreadySignedUp
	}
	a.Participants = append(a.Participants, email)
	return nil
}

func (r *activityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.activities[name]
	if !ok {
		return domain.ErrActivityNotFound
	}
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return domain.ErrParticipantNotFound
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}
