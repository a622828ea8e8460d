package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"groupbook/internal/domain"
	"groupbook/internal/domain/dynamic"
	"groupbook/internal/domain/entities"
	"groupbook/internal/ports/input"
	"groupbook/internal/ports/output"
)

var _ input.BookingUseCase = (*BookingService)(nil)

type BookingService struct {
	userRepo      output.UserRepository
	eventTypeRepo output.EventTypeRepository
}

func NewBookingService(
	userRepo output.UserRepository,
	eventTypeRepo output.EventTypeRepository,
) *BookingService {
	return &BookingService{
		userRepo:      userRepo,
		eventTypeRepo: eventTypeRepo,
	}
}

// ResolveBookingPage resolves a link such as /alice+bob/s1-eg. A single user
// gets their own event type (or the default one when they have none); a group
// always gets a default event type titled after its members.
func (s *BookingService) ResolveBookingPage(ctx context.Context, usersSegment, slug string) (*entities.BookingPage, error) {
	if err := validateSlug(slug); err != nil {
		return nil, err
	}
	usernames := dynamic.ParseUsername(usersSegment)
	if len(usernames) == 0 {
		return nil, domain.ErrUserNotFound
	}
	users, err := s.findUsers(ctx, usernames)
	if err != nil {
		return nil, err
	}

	page := &entities.BookingPage{
		Usernames: usernames,
		Users:     users,
		IsDynamic: len(users) > 1,
	}
	if page.IsDynamic {
		err = s.resolveGroup(page, slug)
	} else {
		err = s.resolveSingle(ctx, page, slug)
	}
	if err != nil {
		return nil, err
	}

	page.Path, err = dynamic.UsernameSlugLink(users, page.EventType.Slug)
	if err != nil {
		return nil, err
	}
	return page, nil
}

func (s *BookingService) resolveGroup(page *entities.BookingPage, slug string) error {
	names := make([]string, len(page.Users))
	for i, u := range page.Users {
		if !u.AllowDynamicBooking {
			return fmt.Errorf("%s: %w", u.Username, domain.ErrDynamicBookingDisabled)
		}
		names[i] = u.DisplayName()
	}

	eventType := dynamic.DefaultEvent(slug)
	eventType.Users = page.Users
	title, err := dynamic.EventName(names, eventType.Title)
	if err != nil {
		return err
	}

	page.EventType = eventType
	page.GroupName = dynamic.GroupName(page.Usernames)
	page.Title = title
	page.Description = dynamic.EventDescription(page.Usernames, eventType.Title)
	return nil
}

func (s *BookingService) resolveSingle(ctx context.Context, page *entities.BookingPage, slug string) error {
	user := page.Users[0]
	eventType, err := s.eventTypeRepo.FindByUserIDAndSlug(ctx, user.ID, slug)
	switch {
	case errors.Is(err, domain.ErrEventTypeNotFound):
		fallback := dynamic.DefaultEvent(slug)
		eventType = &fallback
	case err != nil:
		return err
	}
	eventType.Users = []entities.User{user}

	page.EventType = *eventType
	page.GroupName = user.DisplayName()
	page.Title = eventType.Title
	page.Description = eventType.Description
	return nil
}

// ListEventTypes lists what can be booked from a profile link: the visible
// event types of a single user, or the default event types for a group or a
// user without any.
func (s *BookingService) ListEventTypes(ctx context.Context, usersSegment string) ([]entities.EventType, error) {
	usernames := dynamic.ParseUsername(usersSegment)
	if len(usernames) == 0 {
		return nil, domain.ErrUserNotFound
	}
	users, err := s.findUsers(ctx, usernames)
	if err != nil {
		return nil, err
	}
	if len(users) > 1 {
		return dynamic.DefaultEvents(), nil
	}

	eventTypes, err := s.eventTypeRepo.ListByUserID(ctx, users[0].ID)
	if err != nil {
		return nil, err
	}
	visible := make([]entities.EventType, 0, len(eventTypes))
	for _, e := range eventTypes {
		if !e.Hidden {
			visible = append(visible, e)
		}
	}
	if len(visible) == 0 {
		return dynamic.DefaultEvents(), nil
	}
	return visible, nil
}

// ShareLink returns the booking path for the given usernames and slug.
func (s *BookingService) ShareLink(ctx context.Context, usernames []string, slug string) (string, error) {
	if err := validateSlug(slug); err != nil {
		return "", err
	}
	usernames = dynamic.ParseUsernames(usernames)
	if len(usernames) == 0 {
		return "", domain.ErrEmptyUserList
	}
	users, err := s.findUsers(ctx, usernames)
	if err != nil {
		return "", err
	}
	return dynamic.UsernameSlugLink(users, slug)
}

func (s *BookingService) DefaultEventTypes() []entities.EventType {
	return dynamic.DefaultEvents()
}

func (s *BookingService) DefaultEventType(slug string) entities.EventType {
	return dynamic.DefaultEvent(slug)
}

// findUsers loads the users behind usernames, in order. A single username
// goes through the one-row lookup.
func (s *BookingService) findUsers(ctx context.Context, usernames []string) ([]entities.User, error) {
	if len(usernames) == 1 {
		user, err := s.userRepo.FindByUsername(ctx, usernames[0])
		if err != nil {
			return nil, err
		}
		return []entities.User{*user}, nil
	}
	return s.userRepo.FindByUsernames(ctx, usernames)
}

func validateSlug(slug string) error {
	if strings.TrimSpace(slug) == "" || strings.ContainsAny(slug, "/ ") {
		return domain.ErrInvalidSlug
	}
	return nil
}
