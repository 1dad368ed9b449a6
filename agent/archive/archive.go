package archive

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/harz05/onestBack/agent/contract"
)

// InterviewRecord is the terminal row written once a practice interview
// completes. The live profile itself is never persisted here; only this
// summary survives the session.
type InterviewRecord struct {
	bun.BaseModel `bun:"table:interview_sessions,alias:is"`

	ID             int64     `bun:"id,pk,autoincrement"`
	SessionID      string    `bun:"session_id,notnull"`
	Name           string    `bun:"name"`
	TargetJob      string    `bun:"target_job"`
	Score          int       `bun:"score"`
	FeedbackPoints []string  `bun:"feedback_points,array"`
	ElapsedMinutes float64   `bun:"elapsed_minutes"`
	CompletedAt    time.Time `bun:"completed_at,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

type Config struct {
	DSN     string        `split_words:"true"`
	Timeout time.Duration `split_words:"true" default:"10s"`
}

// PostgresArchive stores completed-interview summaries in Postgres via bun.
type PostgresArchive struct {
	db      *bun.DB
	timeout time.Duration
}

var _ contractx.Archiver = (*PostgresArchive)(nil)

func NewPostgresArchive(cfg Config) (*PostgresArchive, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	if dsn == "" {
		return nil, errors.New("archive dsn is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())

	return &PostgresArchive{db: db, timeout: timeout}, nil
}

// EnsureSchema creates the archive table if it does not exist.
func (a *PostgresArchive) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	_, err := a.db.NewCreateTable().
		Model((*InterviewRecord)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

func (a *PostgresArchive) Record(ctx context.Context, summary contractx.InterviewSummary) error {
	if strings.TrimSpace(summary.SessionID) == "" {
		return errors.New("interview summary session id is empty")
	}

	completedAt := summary.CompletedAt
	if completedAt.IsZero() {
		completedAt = time.Now().UTC()
	}

	rec := &InterviewRecord{
		SessionID:      summary.SessionID,
		Name:           summary.Name,
		TargetJob:      summary.TargetJob,
		Score:          summary.Score,
		FeedbackPoints: summary.FeedbackPoints,
		ElapsedMinutes: summary.ElapsedMinutes,
		CompletedAt:    completedAt.UTC(),
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	_, err := a.db.NewInsert().Model(rec).Exec(ctx)
	return err
}

func (a *PostgresArchive) Close() error {
	return a.db.Close()
}
