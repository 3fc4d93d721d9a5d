package user

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/echobody/model"
)

const TableName = "user"

type SQL struct {
	conn *sqlx.DB
}

type userRow struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Gender       sql.NullString `db:"gender"`
	DateOfBirth  sql.NullTime   `db:"date_of_birth"`
	Email        sql.NullString `db:"email"`
	PasswordHash sql.NullString `db:"password_hash"`
	AuthToken    sql.NullString `db:"auth_token"`
	CreatedAt    time.Time      `db:"created_at"`
	LastLogin    sql.NullTime   `db:"last_login"`
	Health       []byte         `db:"health"`
	Device       []byte         `db:"device"`
}

var userColumns = []string{
	"id", "name", "gender", "date_of_birth", "email", "password_hash",
	"auth_token", "created_at", "last_login", "health", "device",
}

// scalarColumns maps top-level update paths to their column.
var scalarColumns = map[string]string{
	"name":         "name",
	"gender":       "gender",
	"dateOfBirth":  "date_of_birth",
	"email":        "email",
	"passwordHash": "password_hash",
	"authToken":    "auth_token",
	"lastLogin":    "last_login",
}

// documentColumns hold embedded objects as JSON; their leaves update via JSON_SET.
var documentColumns = map[string]string{
	"health": "health",
	"device": "device",
}

func NewSQLRepository(conn *sqlx.DB) UserRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Create(ctx context.Context, data *model.UserEntity) (*model.UserEntity, error) {
	health, err := marshalNullable(data.Health)
	if err != nil {
		return nil, err
	}
	device, err := marshalNullable(data.Device)
	if err != nil {
		return nil, err
	}

	entity := *data
	entity.ID = uuid.NewString()

	query, args, err := sq.Insert(TableName).
		Columns(userColumns...).
		Values(
			entity.ID, entity.Name, nullString(entity.Gender), entity.DateOfBirth,
			nullString(entity.Email), nullString(entity.PasswordHash), nullString(entity.AuthToken),
			entity.CreatedAt, entity.LastLogin, health, device,
		).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.UserFilter) (*model.UserEntity, error) {
	builder := sq.Select(userColumns...).From(TableName).Limit(1)
	if filter.ID != "" {
		builder = builder.Where(sq.Eq{"id": filter.ID})
	}
	if filter.Email != "" {
		builder = builder.Where(sq.Eq{"email": filter.Email})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return row.toEntity()
}

func (s *SQL) Update(ctx context.Context, id string, set map[string]any) (*model.UserEntity, error) {
	builder := sq.Update(TableName).Where(sq.Eq{"id": id})

	paths := make([]string, 0, len(set))
	for path := range set {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	documents := map[string][]string{}
	assigned := 0
	for _, path := range paths {
		if col, ok := scalarColumns[path]; ok {
			builder = builder.Set(col, set[path])
			assigned++
			continue
		}
		root, leaf, found := strings.Cut(path, ".")
		if _, ok := documentColumns[root]; found && ok {
			documents[root] = append(documents[root], leaf)
		}
	}

	for _, root := range []string{"device", "health"} {
		leaves := documents[root]
		if len(leaves) == 0 {
			continue
		}
		expr, err := jsonSet(documentColumns[root], root, leaves, set)
		if err != nil {
			return nil, err
		}
		builder = builder.Set(documentColumns[root], expr)
		assigned++
	}

	if assigned > 0 {
		query, args, err := builder.ToSql()
		if err != nil {
			return nil, err
		}
		if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
			return nil, err
		}
	}

	return s.Get(ctx, &model.UserFilter{ID: id})
}

// jsonSet builds JSON_SET(COALESCE(col, JSON_OBJECT()), '$.leaf', value, ...).
func jsonSet(col, root string, leaves []string, set map[string]any) (sq.Sqlizer, error) {
	var sb strings.Builder
	sb.WriteString("JSON_SET(COALESCE(" + col + ", JSON_OBJECT())")
	args := make([]any, 0, len(leaves)*2)
	for _, leaf := range leaves {
		value := set[root+"."+leaf]
		switch value.(type) {
		case []any, []model.HeartRateReading, map[string]any:
			raw, err := json.Marshal(value)
			if err != nil {
				return nil, err
			}
			sb.WriteString(", ?, CAST(? AS JSON)")
			args = append(args, "$."+leaf, string(raw))
		default:
			sb.WriteString(", ?, ?")
			args = append(args, "$."+leaf, value)
		}
	}
	sb.WriteString(")")
	return sq.Expr(sb.String(), args...), nil
}

func marshalNullable(v any) (any, error) {
	switch val := v.(type) {
	case *model.Health:
		if val == nil {
			return nil, nil
		}
	case *model.Device:
		if val == nil {
			return nil, nil
		}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func (r userRow) toEntity() (*model.UserEntity, error) {
	entity := &model.UserEntity{
		ID:           r.ID,
		Name:         r.Name,
		Gender:       r.Gender.String,
		Email:        r.Email.String,
		PasswordHash: r.PasswordHash.String,
		AuthToken:    r.AuthToken.String,
		CreatedAt:    r.CreatedAt.UTC(),
	}
	if r.DateOfBirth.Valid {
		dob := r.DateOfBirth.Time.UTC()
		entity.DateOfBirth = &dob
	}
	if r.LastLogin.Valid {
		last := r.LastLogin.Time.UTC()
		entity.LastLogin = &last
	}
	if len(r.Health) > 0 {
		entity.Health = &model.Health{}
		if err := json.Unmarshal(r.Health, entity.Health); err != nil {
			return nil, err
		}
	}
	if len(r.Device) > 0 {
		entity.Device = &model.Device{}
		if err := json.Unmarshal(r.Device, entity.Device); err != nil {
			return nil, err
		}
	}
	return entity, nil
}
