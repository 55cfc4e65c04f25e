package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventStatus string

const (
	StatusDraft     EventStatus = "draft"
	StatusPublished EventStatus = "published"
	StatusCancelled EventStatus = "cancelled"
)

type Event struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Title       string               `bson:"title" json:"title"`
	Description string               `bson:"description" json:"description"`
	Date        time.Time            `bson:"date" json:"date"`
	Location    string               `bson:"location" json:"location"`
	Capacity    int                  `bson:"capacity" json:"capacity"`
	Organizer   primitive.ObjectID   `bson:"organizer" json:"organizer"`
	Attendees   []primitive.ObjectID `bson:"attendees" json:"attendees"`
	Status      EventStatus          `bson:"status" json:"status"`
	CreatedAt   time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time            `bson:"updated_at" json:"updatedAt"`
}

func (e *Event) AvailableSpots() int {
	return e.Capacity - len(e.Attendees)
}

// EventView is the wire form of an event with user references expanded to
// summaries. Attendees are only populated on the single-event endpoint.
type EventView struct {
	ID             primitive.ObjectID `json:"id"`
	Title          string             `json:"title"`
	Description    string             `json:"description"`
	Date           time.Time          `json:"date"`
	Location       string             `json:"location"`
	Capacity       int                `json:"capacity"`
	Organizer      UserSummary        `json:"organizer"`
	Attendees      []UserSummary      `json:"attendees,omitempty"`
	Status         EventStatus        `json:"status"`
	AvailableSpots int                `json:"availableSpots"`
	CreatedAt      time.Time          `json:"createdAt"`
	UpdatedAt      time.Time          `json:"updatedAt"`
}

func (e *Event) View(organizer UserSummary, attendees []UserSummary) *EventView {
	return &EventView{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Date:           e.Date,
		Location:       e.Location,
		Capacity:       e.Capacity,
		Organizer:      organizer,
		Attendees:      attendees,
		Status:         e.Status,
		AvailableSpots: e.AvailableSpots(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// EventFilter describes one listing request. Page and Limit are expected to
// be clamped by the service before the repo runs them.
type EventFilter struct {
	Page      int
	Limit     int
	Location  string
	StartDate *time.Time
	EndDate   *time.Time
	Search    string
}

// Query builds the Mongo filter. The base predicate restricts the listing
// to published events; every other condition is additive.
func (f EventFilter) Query() bson.M {
	q := bson.M{"status": StatusPublished}

	if f.Location != "" {
		q["location"] = bson.M{"$regex": primitive.Regex{Pattern: f.Location, Options: "i"}}
	}

	if f.StartDate != nil || f.EndDate != nil {
		bounds := bson.M{}
		if f.StartDate != nil {
			bounds["$gte"] = *f.StartDate
		}
		if f.EndDate != nil {
			bounds["$lte"] = *f.EndDate
		}
		q["date"] = bounds
	}

	if f.Search != "" {
		q["$text"] = bson.M{"$search": f.Search}
	}

	return q
}

func (f EventFilter) Skip() int64 {
	return int64((f.Page - 1) * f.Limit)
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalEvents int64 `json:"totalEvents"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalEvents: total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

type StatsOverview struct {
	TotalEvents    int64 `bson:"totalEvents" json:"totalEvents"`
	TotalAttendees int64 `bson:"totalAttendees" json:"totalAttendees"`
	UpcomingEvents int64 `bson:"upcomingEvents" json:"upcomingEvents"`
	PastEvents     int64 `bson:"pastEvents" json:"pastEvents"`
}

type MonthCount struct {
	Year  int   `bson:"year" json:"year"`
	Month int   `bson:"month" json:"month"`
	Count int64 `bson:"count" json:"count"`
}

type EventStats struct {
	Overview      StatsOverview `json:"overview"`
	EventsByMonth []MonthCount  `json:"eventsByMonth"`
}
