package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mergingtonactivities/internal/domain"
)

func newTestRepo() domain.ActivityRepository {
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
	})
}

func TestList_ReturnsSeededActivities(t *testing.T) {
	repo := newTestRepo()

	activities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, activities, 2)

	chess := activities["Chess Club"]
	require.NotNil(t, chess)
	assert.Equal(t, "Learn strategies and compete in chess tournaments", chess.Description)
	assert.Equal(t, "Fridays, 3:30 PM - 5:00 PM", chess.Schedule)
	assert.Equal(t, 12, chess.MaxParticipants)
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu"}, chess.Participants)
}

func TestList_SnapshotDoesNotAliasRegistry(t *testing.T) {
	repo := newTestRepo()

	first, err := repo.List(context.Background())
	require.NoError(t, err)
	first["Chess Club"].Participants[0] = "tampered@mergington.edu"
	delete(first, "Programming Class")

	second, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "michael@mergington.edu", second["Chess Club"].Participants[0])
}

func TestList_NoDuplicateParticipants(t *testing.T) {
	repo := newTestRepo()
	require.NoError(t, repo.AddParticipant(context.Background(), "Chess Club", "new@mergington.edu"))

	activities, err := repo.List(context.Background())
	require.NoError(t, err)
	for name, a := range activities {
		seen := make(map[string]bool, len(a.Participants))
		for _, email := range a.Participants {
			assert.False(t, seen[email], "duplicate %s in %s", email, name)
			seen[email] = true
		}
	}
}

func TestGetByName(t *testing.T) {
	repo := newTestRepo()

	a, err := repo.GetByName(context.Background(), "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, 12, a.MaxParticipants)

	_, err = repo.GetByName(context.Background(), "Ghost Club")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)

	// Keys are case- and space-sensitive.
	_, err = repo.GetByName(context.Background(), "chess club")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)
}

func TestAddParticipant(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.AddParticipant(ctx, "Chess Club", "new@mergington.edu"))

	a, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	// Appended in insertion order.
	assert.Equal(t, []string{"michael@mergington.edu", "daniel@mergington.edu", "new@mergington.edu"}, a.Participants)
}

func TestAddParticipant_Duplicate(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	err := repo.AddParticipant(ctx, "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrAlreadySignedUp)

	a, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 2)
}

func TestAddParticipant_ActivityNotFound(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	err := repo.AddParticipant(ctx, "Ghost Club", "a@x.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)

	activities, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, activities, 2)
}

func TestAddParticipant_NoCapacityCheck(t *testing.T) {
	repo := NewActivityRepository(map[string]*domain.Activity{
		"Tiny Club": {Description: "d", Schedule: "s", MaxParticipants: 1, Participants: []string{"a@x.edu"}},
	})
	ctx := context.Background()

	// The roster may grow past max_participants; signups are never rejected for capacity.
	require.NoError(t, repo.AddParticipant(ctx, "Tiny Club", "b@x.edu"))
	require.NoError(t, repo.AddParticipant(ctx, "Tiny Club", "c@x.edu"))

	a, err := repo.GetByName(ctx, "Tiny Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 3)
}

func TestRemoveParticipant(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	require.NoError(t, repo.RemoveParticipant(ctx, "Chess Club", "michael@mergington.edu"))

	a, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu"}, a.Participants)
}

func TestRemoveParticipant_NotFound(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	err := repo.RemoveParticipant(ctx, "Chess Club", "notregistered@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrParticipantNotFound)

	err = repo.RemoveParticipant(ctx, "Ghost Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, domain.ErrActivityNotFound)

	a, err := repo.GetByName(ctx, "Chess Club")
	require.NoError(t, err)
	assert.Len(t, a.Participants, 2)
}

func TestAddThenRemove_RoundTrip(t *testing.T) {
	repo := newTestRepo()
	ctx := context.Background()

	before, err := repo.List(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.AddParticipant(ctx, "Chess Club", "roundtrip@mergington.edu"))
	require.NoError(t, repo.RemoveParticipant(ctx, "Chess Club", "roundtrip@mergington.edu"))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestNewSeededActivityRepository(t *testing.T) {
	repo := NewSeededActivityRepository()

	activities, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Contains(t, activities, "Chess Club")
	require.Contains(t, activities, "Programming Class")
	require.Contains(t, activities, "Gym Class")
	assert.Equal(t, 12, activities["Chess Club"].MaxParticipants)
}
