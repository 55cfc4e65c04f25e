package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EventRepo interface {
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error)
	DeleteEvent(ctx context.Context, id primitive.ObjectID) error
	ListEvents(ctx context.Context, filter EventFilter) ([]*Event, int64, error)
	GetEventStats(ctx context.Context, organizerId primitive.ObjectID) (*EventStats, error)
}

func (mdb *MongodbRepo) CreateEvent(ctx context.Context, event *Event) (*Event, error) {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if event.Attendees == nil {
		event.Attendees = []primitive.ObjectID{}
	}

	_, err = col.InsertOne(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error inserting event: %v", err)
	}

	return event, nil
}

func (mdb *MongodbRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*Event, error) {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var event Event
	err = col.FindOne(ctx, bson.M{"_id": id}).Decode(&event)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error finding event by id: %v", err)
	}

	return &event, nil
}

// DeleteEvent removes a single event document. Ownership is checked by the
// service before this runs; the delete itself is atomic.
func (mdb *MongodbRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting event: %v", err)
	}

	return nil
}

// ListEvents runs the listing filter: one Find for the page, sorted by date
// ascending, plus a CountDocuments over the same predicate for the total.
func (mdb *MongodbRepo) ListEvents(ctx context.Context, filter EventFilter) ([]*Event, int64, error) {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return nil, 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := filter.Query()

	total, err := col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("error counting events: %v", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}}).
		SetSkip(filter.Skip()).
		SetLimit(int64(filter.Limit))

	cursor, err := col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("error finding events: %v", err)
	}
	defer cursor.Close(ctx)

	var events []*Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("error decoding events: %v", err)
	}

	return events, total, nil
}

// GetEventStats aggregates per-organizer statistics: an overview of totals
// and a sparse per-month event count. The two pipelines read independent
// snapshots; events landing exactly on the now boundary between them are
// tolerated.
func (mdb *MongodbRepo) GetEventStats(ctx context.Context, organizerId primitive.ObjectID) (*EventStats, error) {
	col, err := mdb.GetCollection(EventsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	stats := &EventStats{
		EventsByMonth: []MonthCount{},
	}
	now := time.Now()

	overviewPipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"organizer": organizerId}}},
		{{Key: "$group", Value: bson.M{
			"_id":         nil,
			"totalEvents": bson.M{"$sum": 1},
			"totalAttendees": bson.M{"$sum": bson.M{
				"$size": bson.M{"$ifNull": bson.A{"$attendees", bson.A{}}},
			}},
			"upcomingEvents": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$gt": bson.A{"$date", now}}, 1, 0},
			}},
			"pastEvents": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$lte": bson.A{"$date", now}}, 1, 0},
			}},
		}}},
	}

	overviewCursor, err := col.Aggregate(ctx, overviewPipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating event overview: %v", err)
	}
	defer overviewCursor.Close(ctx)

	var overviewResult []StatsOverview
	if err := overviewCursor.All(ctx, &overviewResult); err != nil {
		return nil, fmt.Errorf("error decoding event overview: %v", err)
	}
	// No owned events leaves the group empty; report zeros, not absence
	if len(overviewResult) > 0 {
		stats.Overview = overviewResult[0]
	}

	monthPipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"organizer": organizerId}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$date"},
				"month": bson.M{"$month": "$date"},
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
		{{Key: "$project", Value: bson.M{
			"_id":   0,
			"year":  "$_id.year",
			"month": "$_id.month",
			"count": 1,
		}}},
	}

	monthCursor, err := col.Aggregate(ctx, monthPipeline)
	if err != nil {
		return nil, fmt.Errorf("error aggregating events by month: %v", err)
	}
	defer monthCursor.Close(ctx)

	if err := monthCursor.All(ctx, &stats.EventsByMonth); err != nil {
		return nil, fmt.Errorf("error decoding events by month: %v", err)
	}
	if stats.EventsByMonth == nil {
		stats.EventsByMonth = []MonthCount{}
	}

	return stats, nil
}
