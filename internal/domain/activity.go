package domain

import (
	"context"
	"errors"
)

// Sentinel errors for activity operations.
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrParticipantNotFound = errors.New("participant not found in this activity")
	ErrAlreadySignedUp     = errors.New("student already signed up")
)

// Activity represents an extracurricular offering with a schedule, capacity, and roster.
// Participants are student email addresses in signup order, unique within one activity.
// swagger:model Activity
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// NewActivity returns a new Activity with the given fields and a copy of participants.
func NewActivity(description, schedule string, maxParticipants int, participants []string) *Activity {
	p := make([]string, len(participants))
	copy(p, participants)
	return &Activity{
		Description:     description,
		Schedule:        schedule,
		MaxParticipants: maxParticipants,
		Participants:    p,
	}
}

// ActivityRepository defines storage operations for the activity registry.
// Keys are activity names, case- and space-sensitive.
type ActivityRepository interface {
	// List returns a snapshot of the full registry. Callers may mutate the result freely.
	List(ctx context.Context) (map[string]*Activity, error)
	// GetByName returns a snapshot of one activity, or ErrActivityNotFound.
	GetByName(ctx context.Context, name string) (*Activity, error)
	// AddParticipant appends email to the activity's roster. Returns ErrActivityNotFound
	// if the activity does not exist and ErrAlreadySignedUp if email is already on it.
	AddParticipant(ctx context.Context, name, email string) error
	// RemoveParticipant removes email from the activity's roster. Returns
	// ErrActivityNotFound or ErrParticipantNotFound as appropriate.
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService defines the operations exposed over HTTP.
type ActivityService interface {
	ListActivities(ctx context.Context) (map[string]*Activity, error)
	// Signup registers email for the named activity and returns the confirmation message.
	Signup(ctx context.Context, activityName, email string) (string, error)
	// RemoveParticipant removes email from the named activity and returns the confirmation message.
	RemoveParticipant(ctx context.Context, activityName, email string) (string, error)
}
