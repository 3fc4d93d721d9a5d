package user

import (
	"context"
	"errors"
	"time"

	"github.com/muhammadheryan/echobody/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Mongo struct {
	coll *mongo.Collection
}

type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name,omitempty"`
	Gender       string             `bson:"gender,omitempty"`
	DateOfBirth  *time.Time         `bson:"dateOfBirth,omitempty"`
	Email        string             `bson:"email,omitempty"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
	AuthToken    string             `bson:"authToken,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	LastLogin    *time.Time         `bson:"lastLogin,omitempty"`
	Health       *model.Health      `bson:"health,omitempty"`
	Device       *model.Device      `bson:"device,omitempty"`
}

func NewMongoRepository(db *mongo.Database) UserRepository {
	return &Mongo{coll: db.Collection(CollectionName)}
}

func (m *Mongo) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	doc := fromEntity(data)
	doc.ID = primitive.NewObjectID()

	if _, err := m.coll.InsertOne(ctx, doc); err != nil {
		return nil, err
	}

	return doc.toEntity(), nil
}

func (m *Mongo) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	query := bson.M{}
	if filter.ID != "" {
		oid, err := primitive.ObjectIDFromHex(filter.ID)
		if err != nil {
			return nil, nil
		}
		query["_id"] = oid
	}
	if filter.Email != "" {
		query["email"] = filter.Email
	}

	var doc userDocument
	if err := m.coll.FindOne(ctx, query).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func (m *Mongo) Update(ctx context.Context, id string, set map[string]any) (*model.UserEntity, error) {
	if len(set) == 0 {
		return m.Get(ctx, &model.UserFilter{ID: id})
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDocument
	err = m.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return doc.toEntity(), nil
}

func fromEntity(e *model.UserEntity) userDocument {
	return userDocument{
		Name:         e.Name,
		Gender:       e.Gender,
		DateOfBirth:  e.DateOfBirth,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		AuthToken:    e.AuthToken,
		CreatedAt:    e.CreatedAt,
		LastLogin:    e.LastLogin,
		Health:       e.Health,
		Device:       e.Device,
	}
}

func (d userDocument) toEntity() *model.UserEntity {
	return &model.UserEntity{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Gender:       d.Gender,
		DateOfBirth:  d.DateOfBirth,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		AuthToken:    d.AuthToken,
		CreatedAt:    d.CreatedAt,
		LastLogin:    d.LastLogin,
		Health:       d.Health,
		Device:       d.Device,
	}
}
