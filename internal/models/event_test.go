package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEventFilterQueryBasePredicate(t *testing.T) {
	q := EventFilter{Page: 1, Limit: 10}.Query()
	assert.Equal(t, bson.M{"status": StatusPublished}, q)
}

func TestEventFilterQueryLocation(t *testing.T) {
	q := EventFilter{Location: "berlin"}.Query()

	loc, ok := q["location"].(bson.M)
	require.True(t, ok)
	re, ok := loc["$regex"].(primitive.Regex)
	require.True(t, ok)
	assert.Equal(t, "berlin", re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestEventFilterQueryDateBounds(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter EventFilter
		want   bson.M
	}{
		{"both bounds", EventFilter{StartDate: &start, EndDate: &end}, bson.M{"$gte": start, "$lte": end}},
		{"start only", EventFilter{StartDate: &start}, bson.M{"$gte": start}},
		{"end only", EventFilter{EndDate: &end}, bson.M{"$lte": end}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := tt.filter.Query()
			assert.Equal(t, tt.want, q["date"])
		})
	}
}

func TestEventFilterQueryNoDateKeyWithoutBounds(t *testing.T) {
	q := EventFilter{Search: "jazz"}.Query()
	_, hasDate := q["date"]
	assert.False(t, hasDate)
	assert.Equal(t, bson.M{"$search": "jazz"}, q["$text"])
}

func TestEventFilterQueryCombined(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q := EventFilter{Location: "Oslo", StartDate: &start, Search: "meetup"}.Query()

	assert.Equal(t, StatusPublished, q["status"])
	assert.Contains(t, q, "location")
	assert.Contains(t, q, "date")
	assert.Contains(t, q, "$text")
}

func TestEventFilterSkip(t *testing.T) {
	assert.Equal(t, int64(0), EventFilter{Page: 1, Limit: 10}.Skip())
	assert.Equal(t, int64(10), EventFilter{Page: 2, Limit: 10}.Skip())
	assert.Equal(t, int64(50), EventFilter{Page: 11, Limit: 5}.Skip())
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
		total       int64
		want        Pagination
	}{
		{
			"empty result", 1, 10, 0,
			Pagination{CurrentPage: 1, TotalPages: 0, TotalEvents: 0, HasNext: false, HasPrev: false},
		},
		{
			"single partial page", 1, 10, 3,
			Pagination{CurrentPage: 1, TotalPages: 1, TotalEvents: 3, HasNext: false, HasPrev: false},
		},
		{
			"exact page boundary", 1, 10, 20,
			Pagination{CurrentPage: 1, TotalPages: 2, TotalEvents: 20, HasNext: true, HasPrev: false},
		},
		{
			"middle page", 2, 10, 35,
			Pagination{CurrentPage: 2, TotalPages: 4, TotalEvents: 35, HasNext: true, HasPrev: true},
		},
		{
			"last page", 4, 10, 35,
			Pagination{CurrentPage: 4, TotalPages: 4, TotalEvents: 35, HasNext: false, HasPrev: true},
		},
		{
			"page past the end", 9, 10, 35,
			Pagination{CurrentPage: 9, TotalPages: 4, TotalEvents: 35, HasNext: false, HasPrev: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPagination(tt.page, tt.limit, tt.total))
		})
	}
}

func TestAvailableSpots(t *testing.T) {
	e := Event{Capacity: 100, Attendees: []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID()}}
	assert.Equal(t, 98, e.AvailableSpots())

	empty := Event{Capacity: 50}
	assert.Equal(t, 50, empty.AvailableSpots())
}

func TestEventView(t *testing.T) {
	organizer := User{ID: primitive.NewObjectID(), Name: "Ada", Email: "ada@example.com", Password: "hash"}
	e := Event{
		ID:       primitive.NewObjectID(),
		Title:    "Go meetup",
		Capacity: 30,
		Status:   StatusPublished,
	}

	view := e.View(organizer.Summary(), nil)
	assert.Equal(t, e.ID, view.ID)
	assert.Equal(t, "Ada", view.Organizer.Name)
	assert.Equal(t, "ada@example.com", view.Organizer.Email)
	assert.Equal(t, 30, view.AvailableSpots)
	assert.Nil(t, view.Attendees)
}
