package service

import (
	"fmt"
	"time"

	"convite-premium-backend/internal/models"
	"convite-premium-backend/pkg/lang"
	"convite-premium-backend/pkg/logger"
	"convite-premium-backend/pkg/validator"
)

// Guest interaction entrypoints. These run on the public surface: input is
// untrusted, so every free-text field is sanitized and contact fields are
// validated before an event reaches the host.

// OpenInvitation records the guest opening the invitation past the splash
// screen.
func (s *LayoutService) OpenInvitation(layoutID string) error {
	if _, err := s.repo.GetByID(layoutID); err != nil {
		return err
	}
	s.emit(EventInvitationOpened, layoutID, nil)
	return nil
}

// RecordClick records a guest click on an interactive element.
func (s *LayoutService) RecordClick(layoutID, sectionID, target string) error {
	if _, err := s.repo.GetByID(layoutID); err != nil {
		return err
	}
	payload := map[string]interface{}{}
	if sectionID != "" {
		payload["section_id"] = sectionID
	}
	if target != "" {
		payload["target"] = target
	}
	s.emit(EventClick, layoutID, payload)
	return nil
}

// SubmitRSVP validates and forwards an RSVP submission. A failed validation
// returns a guest-facing message in the layout's language and no event is
// emitted.
func (s *LayoutService) SubmitRSVP(layoutID string, submission models.RSVPSubmission) error {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return err
	}

	name := validator.TrimSpaces(validator.SanitizeString(submission.Name))
	if name == "" {
		return fmt.Errorf("%s", lang.Translate(layout.Language, "error.name"))
	}
	if submission.Email != "" && !validator.ValidateEmail(submission.Email) {
		return fmt.Errorf("%s", lang.Translate(layout.Language, "error.email"))
	}
	if submission.Phone != "" && !validator.ValidatePhone(submission.Phone) {
		return fmt.Errorf("%s", lang.Translate(layout.Language, "error.phone"))
	}
	if submission.Guests < 0 {
		submission.Guests = 0
	}

	s.emit(EventRSVPSubmit, layoutID, map[string]interface{}{
		"name":      name,
		"email":     submission.Email,
		"phone":     submission.Phone,
		"attending": submission.Attending,
		"guests":    submission.Guests,
		"message":   validator.SanitizeString(submission.Message),
	})
	return nil
}

// SubmitGuestbook validates and forwards a guestbook entry.
func (s *LayoutService) SubmitGuestbook(layoutID string, submission models.GuestbookSubmission) error {
	layout, err := s.repo.GetByID(layoutID)
	if err != nil {
		return err
	}

	name := validator.TrimSpaces(validator.SanitizeString(submission.Name))
	message := validator.TrimSpaces(validator.SanitizeString(submission.Message))
	if name == "" {
		return fmt.Errorf("%s", lang.Translate(layout.Language, "error.name"))
	}
	if message == "" {
		return fmt.Errorf("%s", lang.Translate(layout.Language, "error.message"))
	}

	s.emit(EventGuestbookSubmit, layoutID, map[string]interface{}{
		"name":    name,
		"message": message,
	})
	return nil
}

func (s *LayoutService) emit(eventType, layoutID string, payload map[string]interface{}) {
	event := InteractionEvent{
		Type:      eventType,
		LayoutID:  layoutID,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
	logger.Debug("interaction event", map[string]interface{}{
		"type":      eventType,
		"layout_id": layoutID,
	})
	s.broadcaster.Interaction(event)
}
