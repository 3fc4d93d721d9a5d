package user

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/echobody/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func float(v float64) *float64 { return &v }

var selectByID = `SELECT (.+) FROM user WHERE id = \? LIMIT 1`

func TestSQL_Create(t *testing.T) {
	tests := []struct {
		name     string
		args     *model.UserEntity
		mockCall func(mock sqlmock.Sqlmock)
		wantErr  bool
	}{
		{
			name: "success",
			args: &model.UserEntity{
				Name:   "Ann",
				Email:  "ann@example.com",
				Health: &model.Health{Weight: float(60)},
			},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user")).
					WithArgs(sqlmock.AnyArg(), "Ann", sqlmock.AnyArg(), nil,
						sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(),
						sqlmock.AnyArg(), nil, `{"weight":60}`, nil).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "error: exec fails",
			args: &model.UserEntity{Name: "Ann"},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta("INSERT INTO user")).
					WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newSQLMock(t)
			tt.mockCall(mock)

			got, err := NewSQLRepository(conn).Create(context.Background(), tt.args)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, got.ID, 36)
				assert.Equal(t, tt.args.Name, got.Name)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_Get(t *testing.T) {
	created := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		filter   *model.UserFilter
		mockCall func(mock sqlmock.Sqlmock)
		want     *model.UserEntity
		wantErr  bool
	}{
		{
			name:   "found by email",
			filter: &model.UserFilter{Email: "ann@example.com"},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT (.+) FROM user WHERE email = \? LIMIT 1`).
					WithArgs("ann@example.com").
					WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
						"id1", "Ann", nil, nil, "ann@example.com", "hash", nil, created, nil,
						[]byte(`{"weight":60,"height":170}`), nil,
					))
			},
			want: &model.UserEntity{
				ID:           "id1",
				Name:         "Ann",
				Email:        "ann@example.com",
				PasswordHash: "hash",
				CreatedAt:    created,
				Health:       &model.Health{Weight: float(60), Height: float(170)},
			},
		},
		{
			name:   "not found",
			filter: &model.UserFilter{ID: "missing"},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectByID).WithArgs("missing").
					WillReturnRows(sqlmock.NewRows(userColumns))
			},
		},
		{
			name:   "error: query fails",
			filter: &model.UserFilter{ID: "id1"},
			mockCall: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectByID).WillReturnError(errors.New("db down"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, mock := newSQLMock(t)
			tt.mockCall(mock)

			got, err := NewSQLRepository(conn).Get(context.Background(), tt.filter)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSQL_UpdateNestedLeaf(t *testing.T) {
	conn, mock := newSQLMock(t)
	created := time.Date(2026, 1, 5, 7, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE user SET name = ?, health = JSON_SET(COALESCE(health, JSON_OBJECT()), ?, ?) WHERE id = ?",
	)).
		WithArgs("Bea", "$.weight", 80.0, "id1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectByID).WithArgs("id1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			"id1", "Bea", nil, nil, nil, nil, nil, created, nil,
			[]byte(`{"weight":80,"height":170}`), nil,
		))

	got, err := NewSQLRepository(conn).Update(context.Background(), "id1", map[string]any{
		"name":          "Bea",
		"health.weight": 80.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 80.0, *got.Health.Weight)
	assert.Equal(t, 170.0, *got.Health.Height)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_UpdateArrayLeafCastsJSON(t *testing.T) {
	conn, mock := newSQLMock(t)
	readings := []model.HeartRateReading{{Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), HeartRate: 72}}

	mock.ExpectExec(regexp.QuoteMeta(
		"UPDATE user SET health = JSON_SET(COALESCE(health, JSON_OBJECT()), ?, CAST(? AS JSON)) WHERE id = ?",
	)).
		WithArgs("$.heartRateReadings", `[{"timestamp":"2026-01-01T00:00:00Z","heartRate":72}]`, "id1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(selectByID).WithArgs("id1").WillReturnRows(sqlmock.NewRows(userColumns))

	got, err := NewSQLRepository(conn).Update(context.Background(), "id1", map[string]any{
		"health.heartRateReadings": readings,
	})
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQL_UpdateEmptySetReadsCurrent(t *testing.T) {
	conn, mock := newSQLMock(t)
	mock.ExpectQuery(selectByID).WithArgs("id1").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(
			"id1", "Ann", nil, nil, nil, nil, nil, time.Now(), nil, nil, nil,
		))

	got, err := NewSQLRepository(conn).Update(context.Background(), "id1", map[string]any{"unknown.path": 1})
	require.NoError(t, err)
	assert.Equal(t, "Ann", got.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMongo_Users(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		got, err := NewMongoRepository(mt.DB).Create(context.Background(), &model.UserEntity{Name: "Ann"})
		require.NoError(mt, err)
		assert.Len(mt, got.ID, 24)
		assert.Equal(mt, "Ann", got.Name)
	})

	mt.Run("get by email", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "echobody.users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: id},
			{Key: "name", Value: "Ann"},
			{Key: "email", Value: "ann@example.com"},
			{Key: "passwordHash", Value: "hash"},
		}))

		got, err := NewMongoRepository(mt.DB).Get(context.Background(), &model.UserFilter{Email: "ann@example.com"})
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), got.ID)
		assert.Equal(mt, "hash", got.PasswordHash)
	})

	mt.Run("get missing returns nil", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "echobody.users", mtest.FirstBatch))

		got, err := NewMongoRepository(mt.DB).Get(context.Background(), &model.UserFilter{Email: "nobody@example.com"})
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("get malformed id returns nil", func(mt *mtest.T) {
		got, err := NewMongoRepository(mt.DB).Get(context.Background(), &model.UserFilter{ID: "u1"})
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})

	mt.Run("update returns document after set", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(bson.D{
			{Key: "ok", Value: 1},
			{Key: "value", Value: bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Ann"},
				{Key: "health", Value: bson.D{
					{Key: "weight", Value: 80.0},
					{Key: "height", Value: 170.0},
				}},
			}},
		})

		got, err := NewMongoRepository(mt.DB).Update(context.Background(), id.Hex(), map[string]any{"health.weight": 80.0})
		require.NoError(mt, err)
		assert.Equal(mt, 80.0, *got.Health.Weight)
		assert.Equal(mt, 170.0, *got.Health.Height)
	})

	mt.Run("update missing returns nil", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		got, err := NewMongoRepository(mt.DB).Update(context.Background(), primitive.NewObjectID().Hex(), map[string]any{"name": "x"})
		require.NoError(mt, err)
		assert.Nil(mt, got)
	})
}
