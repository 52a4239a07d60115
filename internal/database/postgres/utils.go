package postgres

import (
	"context"
	"time"

	"github.com/golang-sql/civil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// execer is satisfied by both the pool and a transaction
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// pgDate converts a civil date to a pgtype.Date
func pgDate(d civil.Date) pgtype.Date {
	return pgtype.Date{Time: d.In(time.UTC), Valid: true}
}

// pgDatePtr converts an optional civil date; nil becomes NULL
func pgDatePtr(d *civil.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}
	return pgDate(*d)
}

// civilDate converts a pgtype.Date to *civil.Date.
// Returns nil if the date is not valid.
func civilDate(d pgtype.Date) *civil.Date {
	if !d.Valid {
		return nil
	}
	c := civil.DateOf(d.Time)
	return &c
}

// ptrTime converts a pgtype.Timestamptz to *time.Time.
// Returns nil if the timestamp is not valid.
func ptrTime(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	return &t.Time
}

// ptrInt converts a pgtype.Int4 to *int.
// Returns nil if the int is not valid.
func ptrInt(i pgtype.Int4) *int {
	if !i.Valid {
		return nil
	}
	v := int(i.Int32)
	return &v
}

// ptrFloat converts a pgtype.Float8 to *float64.
// Returns nil if the float is not valid.
func ptrFloat(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
