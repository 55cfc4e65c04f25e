package services

import (
	"context"

	"github.com/gatherly/server/internal/apperr"
	"github.com/gatherly/server/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserRepo keeps users in a map so service behavior can be tested
// without a running Mongo instance.
type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
}

func (f *fakeUserRepo) CreateUser(_ context.Context, user *models.User) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == user.Email {
			return nil, apperr.Duplicate("email")
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetUserByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) GetUserSummaries(_ context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	out := map[primitive.ObjectID]models.UserSummary{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			out[id] = u.Summary()
		}
	}
	return out, nil
}

// fakeEventRepo records the last filter it ran and serves canned events.
type fakeEventRepo struct {
	events     map[primitive.ObjectID]*models.Event
	lastFilter models.EventFilter
	listResult []*models.Event
	listTotal  int64
	stats      *models.EventStats
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: map[primitive.ObjectID]*models.Event{}}
}

func (f *fakeEventRepo) CreateEvent(_ context.Context, event *models.Event) (*models.Event, error) {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) GetEventByID(_ context.Context, id primitive.ObjectID) (*models.Event, error) {
	return f.events[id], nil
}

func (f *fakeEventRepo) DeleteEvent(_ context.Context, id primitive.ObjectID) error {
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) ListEvents(_ context.Context, filter models.EventFilter) ([]*models.Event, int64, error) {
	f.lastFilter = filter
	return f.listResult, f.listTotal, nil
}

func (f *fakeEventRepo) GetEventStats(_ context.Context, _ primitive.ObjectID) (*models.EventStats, error) {
	if f.stats != nil {
		return f.stats, nil
	}
	return &models.EventStats{EventsByMonth: []models.MonthCount{}}, nil
}
