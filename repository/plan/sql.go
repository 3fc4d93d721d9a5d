package plan

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/echobody/constant"
	"github.com/muhammadheryan/echobody/model"
)

type SQL struct {
	conn  *sqlx.DB
	table string
	kind  constant.PlanKind
	clock *Clock
}

type planRow struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	AIResponse string    `db:"ai_response"`
	Timestamp  time.Time `db:"timestamp"`
}

func NewSQLRepository(conn *sqlx.DB, kind constant.PlanKind) PlanRepository {
	return &SQL{conn: conn, table: TableName(kind), kind: kind, clock: defaultClock}
}

func (s *SQL) Create(ctx context.Context, data *model.PlanRecord) (*model.PlanRecord, error) {
	row := planRow{
		ID:         uuid.NewString(),
		UserID:     data.UserID,
		AIResponse: data.AIResponse,
		Timestamp:  s.clock.Next(),
	}

	query, args, err := sq.Insert(s.table).
		Columns("id", "user_id", "ai_response", "timestamp").
		Values(row.ID, row.UserID, row.AIResponse, row.Timestamp).
		ToSql()
	if err != nil {
		return nil, err
	}

	if _, err := s.conn.ExecContext(ctx, query, args...); err != nil {
		return nil, err
	}

	return s.toRecord(row), nil
}

func (s *SQL) ListByUser(ctx context.Context, userID string, limit int) ([]model.PlanRecord, error) {
	query, args, err := sq.Select("id", "user_id", "ai_response", "timestamp").
		From(s.table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("timestamp ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []planRow
	if err := s.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	records := make([]model.PlanRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, *s.toRecord(row))
	}
	return records, nil
}

func (s *SQL) toRecord(row planRow) *model.PlanRecord {
	return &model.PlanRecord{
		ID:         row.ID,
		UserID:     row.UserID,
		AIResponse: row.AIResponse,
		Timestamp:  row.Timestamp.UTC(),
		Kind:       s.kind,
	}
}
