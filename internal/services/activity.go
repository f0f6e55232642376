package services

import (
	"context"
	"fmt"
	"log"

	"mergingtonactivities/internal/domain"
)

type activityService struct {
	repo     domain.ActivityRepository
	emailSvc domain.EmailService
}

// NewActivityService creates an ActivityService backed by the given registry.
// emailSvc may be nil when confirmation emails are not wanted.
func NewActivityService(repo domain.ActivityRepository, emailSvc domain.EmailService) domain.ActivityService {
	return &activityService{repo: repo, emailSvc: emailSvc}
}

func (s *activityService) ListActivities(ctx context.Context) (map[string]*domain.Activity, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *activityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	// The existence and duplicate checks happen under the registry's lock so two
	// concurrent signups cannot both append the same email.
	if err := s.repo.AddParticipant(ctx, activityName, email); err != nil {
		return "", err
	}

	if s.emailSvc != nil {
		activity, err := s.repo.GetByName(ctx, activityName)
		schedule := ""
		if err == nil {
			schedule = activity.Schedule
		}
		// Best effort: the signup already succeeded, so the response never waits on
		// (or fails because of) the mailer.
		go func() {
			data := &domain.SignupConfirmationEmailData{
				Email:    email,
				Activity: activityName,
				Schedule: schedule,
			}
			if err := s.emailSvc.SendSignupConfirmation(context.Background(), data); err != nil {
				log.Printf("[EMAIL] Signup confirmation to %s failed: %v", email, err)
			}
		}()
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

func (s *activityService) RemoveParticipant(ctx context.Context, activityName, email string) (string, error) {
	if err := s.repo.RemoveParticipant(ctx, activityName, email); err != nil {
		return "", err
	}
	return fmt.Sprintf("Removed %s from %s", email, activityName), nil
}
