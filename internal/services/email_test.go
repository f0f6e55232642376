package services

import (
	"context"
	"errors"
	"testing"

	"mergingtonactivities/internal/domain"
)

type fakeMailer struct {
	err         error
	lastTo      string
	lastSubject string
	lastHTML    string
	lastText    string
}

func (m *fakeMailer) Send(to, subject, html, text string) error {
	m.lastTo = to
	m.lastSubject = subject
	m.lastHTML = html
	m.lastText = text
	return m.err
}

type fakeRenderer struct {
	err error
}

func (r *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if r.err != nil {
		return "", "", "", r.err
	}
	return "subject:" + templateName, "<p>html</p>", "text", nil
}

func TestSendSignupConfirmation(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewEmailService(mailer, &fakeRenderer{})

	err := svc.SendSignupConfirmation(context.Background(), &domain.SignupConfirmationEmailData{
		Email:    "new@mergington.edu",
		Activity: "Chess Club",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mailer.lastTo != "new@mergington.edu" {
		t.Errorf("sent to %q", mailer.lastTo)
	}
	if mailer.lastSubject != "subject:signup_confirmation" {
		t.Errorf("subject %q", mailer.lastSubject)
	}
}

func TestSendSignupConfirmation_NilData(t *testing.T) {
	svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
	if err := svc.SendSignupConfirmation(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil data")
	}
}

func TestSendSignupConfirmation_RenderError(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewEmailService(mailer, &fakeRenderer{err: errors.New("bad template")})

	err := svc.SendSignupConfirmation(context.Background(), &domain.SignupConfirmationEmailData{Email: "a@x.edu"})
	if err == nil {
		t.Fatal("expected render error")
	}
	if mailer.lastTo != "" {
		t.Error("nothing should be sent when rendering fails")
	}
}

func TestSendSignupConfirmation_MailerError(t *testing.T) {
	svc := NewEmailService(&fakeMailer{err: errors.New("ses down")}, &fakeRenderer{})

	err := svc.SendSignupConfirmation(context.Background(), &domain.SignupConfirmationEmailData{Email: "a@x.edu"})
	if err == nil {
		t.Fatal("expected mailer error")
	}
}
