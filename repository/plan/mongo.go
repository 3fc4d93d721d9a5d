package plan

import (
	"context"
	"time"

	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	coll  *mongo.Collection
	kind  constant.PlanKind
	clock *Clock
}

type planDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	UserID     primitive.ObjectID `bson:"userId"`
	AIResponse string             `bson:"aiResponse"`
	Timestamp  time.Time          `bson:"timestamp"`
}

func NewMongoRepository(db *mongo.Database, kind constant.PlanKind) PlanRepository {
	return &Mongo{coll: db.Collection(CollectionName(kind)), kind: kind, clock: defaultClock}
}

func (m *Mongo) Create(ctx context.Context, data *model.PlanRecord) (*model.PlanRecord, error) {
	userID, err := primitive.ObjectIDFromHex(data.UserID)
	if err != nil {
		return nil, model.ErrInvalidID
	}

	doc := planDocument{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		AIResponse: data.AIResponse,
		Timestamp:  m.clock.Next(),
	}
	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return m.toRecord(doc), nil
}

func (m *Mongo) ListByUser(ctx context.Context, userID string, limit int) ([]model.PlanRecord, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		// no record can reference a malformed id
		return []model.PlanRecord{}, nil
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := m.coll.Find(ctx, bson.M{"userId": oid}, opts)
	if err != nil {
		return nil, err
	}

	var docs []planDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	records := make([]model.PlanRecord, 0, len(docs))
	for _, doc := range docs {
		records = append(records, *m.toRecord(doc))
	}
	return records, nil
}

func (m *Mongo) toRecord(doc planDocument) *model.PlanRecord {
	return &model.PlanRecord{
		ID:         doc.ID.Hex(),
		UserID:     doc.UserID.Hex(),
		AIResponse: doc.AIResponse,
		Timestamp:  doc.Timestamp.UTC(),
		Kind:       m.kind,
	}
}
