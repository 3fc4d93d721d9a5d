package plan

import (
	"context"
	"sync"
	"time"

	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/model"
)

// PlanRepository stores one kind of plan record. Records are never updated.
type PlanRepository interface {
	Create(ctx context.Context, data *model.PlanRecord) (*model.PlanRecord, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]model.PlanRecord, error)
}

var collectionNames = map[constant.PlanKind]string{
	constant.PlanKindMeal:    "mealplanners",
	constant.PlanKindWorkout: "workoutplanners",
}

var tableNames = map[constant.PlanKind]string{
	constant.PlanKindMeal:    "meal_planner",
	constant.PlanKindWorkout: "workout_planner",
}

// CollectionName returns the Mongo collection holding kind.
func CollectionName(kind constant.PlanKind) string {
	return collectionNames[kind]
}

// TableName returns the SQL table holding kind.
func TableName(kind constant.PlanKind) string {
	return tableNames[kind]
}

// Clock hands out millisecond timestamps that strictly increase, so two inserts
// in the same millisecond still order deterministically.
type Clock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewClock(now func() time.Time) *Clock {
	return &Clock{now: now}
}

func (c *Clock) Next() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(time.Millisecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Millisecond)
	}
	c.last = t
	return t
}

// shared by every repository in the process, across kinds and engines
var defaultClock = NewClock(time.Now)
