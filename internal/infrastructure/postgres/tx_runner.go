package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/jhoicas/picking-api/internal/application/inventory"
	"github.com/jhoicas/picking-api/internal/domain/repository"
	"github.com/jhoicas/picking-api/pkg/backoff"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

var tracer = otel.Tracer("picking-api/postgres")

const (
	retryBaseDelay = 10 * time.Millisecond
	retryMaxDelay  = 500 * time.Millisecond
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
// Ante serialization_failure o deadlock_detected repite la transacción completa hasta maxAttempts veces.
type TxRunner struct {
	pool        *pgxpool.Pool
	maxAttempts int
	log         zerolog.Logger
}

// NewTxRunner construye el runner con el pool. maxAttempts < 1 equivale a 1.
func NewTxRunner(pool *pgxpool.Pool, maxAttempts int, log zerolog.Logger) *TxRunner {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &TxRunner{pool: pool, maxAttempts: maxAttempts, log: log}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	moveRepo repository.MoveRepository,
	stockRepo repository.StockRepository,
	auditRepo repository.AuditRepository,
) error) error {
	ctx, span := tracer.Start(ctx, "postgres.Tx")
	defer span.End()

	var err error
	attempts := 0
	defer func() {
		span.SetAttributes(attribute.Int("db.tx.attempts", attempts))
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
		}
	}()
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			delay := backoff.ExponentialWithJitter(retryBaseDelay, retryMaxDelay, attempt-1)
			r.log.Debug().Int("attempt", attempt+1).Dur("delay", delay).Err(err).Msg("reintentando transacción")
			if serr := backoff.Sleep(ctx, delay); serr != nil {
				err = fmt.Errorf("retry transaction: %w", serr)
				return err
			}
		}
		attempts++
		err = r.runOnce(ctx, fn)
		if err == nil || !isRetryableTx(err) {
			return err
		}
	}
	return err
}

func (r *TxRunner) runOnce(ctx context.Context, fn func(
	moveRepo repository.MoveRepository,
	stockRepo repository.StockRepository,
	auditRepo repository.AuditRepository,
) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMoveRepository(tx), NewStockRepository(tx), NewAuditRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
