// README: Booking service implements state transitions and persistence.
package booking

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"venueplus/internal/types"
)

var (
	ErrInvalidState = errors.New("invalid state transition")
	ErrNotFound     = errors.New("booking not found")
	ErrConflict     = errors.New("booking state conflict")
	ErrBadRequest   = errors.New("bad request")
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	UserID       types.ID
	ItineraryID  string
	ContactName  string
	ContactEmail string
	Travelers    int
	Total        types.Money
}

type ConfirmCommand struct {
	BookingID types.ID
}

type CompleteCommand struct {
	BookingID types.ID
}

type CancelCommand struct {
	BookingID types.ID
	ActorType string
	Reason    string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.UserID == "" || strings.TrimSpace(cmd.ItineraryID) == "" {
		return "", ErrBadRequest
	}
	if cmd.Travelers < 1 {
		return "", ErrBadRequest
	}

	id := newID()
	now := time.Now()
	b := &Booking{
		ID:            id,
		UserID:        cmd.UserID,
		ItineraryID:   cmd.ItineraryID,
		ContactName:   cmd.ContactName,
		ContactEmail:  cmd.ContactEmail,
		Travelers:     cmd.Travelers,
		Total:         cmd.Total,
		Status:        StatusDraft,
		StatusVersion: 0,
		CreatedAt:     now,
	}
	if err := s.store.Create(ctx, b); err != nil {
		return "", err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  id,
		FromStatus: StatusNone,
		ToStatus:   StatusDraft,
		ActorType:  "traveler",
		ActorID:    &cmd.UserID,
		CreatedAt:  now,
	})
	return id, nil
}

func (s *Service) Confirm(ctx context.Context, cmd ConfirmCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusConfirmed, "traveler", nil)
}

func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) error {
	return s.transition(ctx, cmd.BookingID, StatusCompleted, "system", nil)
}

func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	actorType := cmd.ActorType
	if actorType == "" {
		actorType = "traveler"
	}
	var reason *string
	if cmd.Reason != "" {
		reason = &cmd.Reason
	}
	return s.transition(ctx, cmd.BookingID, StatusCancelled, actorType, reason)
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Booking, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) transition(ctx context.Context, id types.ID, to Status, actorType string, reason *string) error {
	b, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, b.ID, b.Status, to, b.StatusVersion, reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	actorID := &b.UserID
	if actorType == "system" {
		actorID = nil
	}
	_ = s.store.AppendEvent(ctx, &Event{
		BookingID:  b.ID,
		FromStatus: b.Status,
		ToStatus:   to,
		ActorType:  actorType,
		ActorID:    actorID,
		CreatedAt:  time.Now(),
	})
	return nil
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
