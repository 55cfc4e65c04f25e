package services

import (
	"context"
	"time"

	"github.com/gatherly/server/internal/apperr"
	"github.com/gatherly/server/internal/helpers"
	"github.com/gatherly/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type EventService struct {
	eventRepo models.EventRepo
	userRepo  models.UserRepo
}

func NewEventService(eventRepo models.EventRepo, userRepo models.UserRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		userRepo:  userRepo,
	}
}

type CreateEventInput struct {
	Title       string    `json:"title" validate:"required,max=200"`
	Description string    `json:"description" validate:"required,max=2000"`
	Date        time.Time `json:"date" validate:"required"`
	Location    string    `json:"location" validate:"required,max=200"`
	Capacity    int       `json:"capacity" validate:"required,min=1,max=10000"`
}

type ListEventsQuery struct {
	Page      int    `form:"page"`
	Limit     int    `form:"limit"`
	Location  string `form:"location"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	Search    string `form:"search"`
}

type EventPage struct {
	Events     []*models.EventView `json:"events"`
	Pagination models.Pagination   `json:"pagination"`
}

func (es *EventService) CreateEvent(ctx context.Context, in CreateEventInput, organizerId primitive.ObjectID) (*models.EventView, error) {
	if err := helpers.ValidateStruct(in); err != nil {
		return nil, err
	}
	if !in.Date.After(time.Now()) {
		return nil, apperr.Validation(apperr.FieldError{
			Field:   "date",
			Message: "Event date must be in the future",
		})
	}

	now := time.Now()
	event := &models.Event{
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		Capacity:    in.Capacity,
		Organizer:   organizerId,
		Attendees:   []primitive.ObjectID{},
		Status:      models.StatusPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := es.eventRepo.CreateEvent(ctx, event)
	if err != nil {
		return nil, err
	}

	summaries, err := es.userRepo.GetUserSummaries(ctx, []primitive.ObjectID{organizerId})
	if err != nil {
		return nil, err
	}

	return created.View(summaries[organizerId], nil), nil
}

// ListEvents resolves the query into a clamped filter, runs it, and expands
// each event's organizer into a name/email summary.
func (es *EventService) ListEvents(ctx context.Context, q ListEventsQuery) (*EventPage, error) {
	filter, err := buildFilter(q)
	if err != nil {
		return nil, err
	}

	events, total, err := es.eventRepo.ListEvents(ctx, filter)
	if err != nil {
		return nil, err
	}

	organizerIds := make([]primitive.ObjectID, 0, len(events))
	seen := make(map[primitive.ObjectID]bool, len(events))
	for _, e := range events {
		if !seen[e.Organizer] {
			seen[e.Organizer] = true
			organizerIds = append(organizerIds, e.Organizer)
		}
	}

	summaries, err := es.userRepo.GetUserSummaries(ctx, organizerIds)
	if err != nil {
		return nil, err
	}

	views := make([]*models.EventView, 0, len(events))
	for _, e := range events {
		views = append(views, e.View(summaries[e.Organizer], nil))
	}

	return &EventPage{
		Events:     views,
		Pagination: models.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}

func buildFilter(q ListEventsQuery) (models.EventFilter, error) {
	filter := models.EventFilter{
		Page:     q.Page,
		Limit:    q.Limit,
		Location: q.Location,
		Search:   q.Search,
	}

	// Out-of-range paging falls back to sane values instead of erroring
	if filter.Page < 1 {
		filter.Page = defaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}

	if q.StartDate != "" {
		start, err := parseDate(q.StartDate)
		if err != nil {
			return filter, apperr.Validation(apperr.FieldError{Field: "startDate", Message: "Invalid date format"})
		}
		filter.StartDate = &start
	}
	if q.EndDate != "" {
		end, err := parseDate(q.EndDate)
		if err != nil {
			return filter, apperr.Validation(apperr.FieldError{Field: "endDate", Message: "Invalid date format"})
		}
		filter.EndDate = &end
	}

	return filter, nil
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func (es *EventService) GetEventByID(ctx context.Context, rawId string) (*models.EventView, error) {
	id, err := primitive.ObjectIDFromHex(rawId)
	if err != nil {
		return nil, apperr.BadID()
	}

	event, err := es.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, apperr.NotFound("Event not found")
	}

	refs := append([]primitive.ObjectID{event.Organizer}, event.Attendees...)
	summaries, err := es.userRepo.GetUserSummaries(ctx, refs)
	if err != nil {
		return nil, err
	}

	attendees := make([]models.UserSummary, 0, len(event.Attendees))
	for _, id := range event.Attendees {
		if s, ok := summaries[id]; ok {
			attendees = append(attendees, s)
		}
	}

	return event.View(summaries[event.Organizer], attendees), nil
}

func (es *EventService) DeleteEvent(ctx context.Context, rawId string, userId primitive.ObjectID) error {
	id, err := primitive.ObjectIDFromHex(rawId)
	if err != nil {
		return apperr.BadID()
	}

	event, err := es.eventRepo.GetEventByID(ctx, id)
	if err != nil {
		return err
	}
	if event == nil {
		return apperr.NotFound("Event not found")
	}

	if event.Organizer != userId {
		return apperr.Forbidden("Not authorized to delete this event")
	}

	return es.eventRepo.DeleteEvent(ctx, id)
}

func (es *EventService) GetEventStats(ctx context.Context, organizerId primitive.ObjectID) (*models.EventStats, error) {
	return es.eventRepo.GetEventStats(ctx, organizerId)
}
