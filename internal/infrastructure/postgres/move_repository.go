package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/picking-api/internal/domain"
	"github.com/jhoicas/picking-api/internal/domain/entity"
	"github.com/jhoicas/picking-api/internal/domain/repository"
)

var _ repository.MoveRepository = (*MoveRepo)(nil)

// MoveRepo implementación de MoveRepository sobre PostgreSQL (tablas moves y move_lines).
type MoveRepo struct {
	q Querier
}

// NewMoveRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMoveRepository(q Querier) *MoveRepo {
	return &MoveRepo{q: q}
}

const moveColumns = `id, doc_type, move_type, doc_number, status, created_by, approved_by, created_at, updated_at`

// Create inserta la cabecera y sus líneas. Debe llamarse dentro de una tx.
func (r *MoveRepo) Create(ctx context.Context, move *entity.Move) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO moves (`+moveColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		move.ID, move.DocType, move.Type, move.DocNumber, move.Status,
		move.CreatedBy, move.ApprovedBy, move.CreatedAt, move.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.Conflict("DUPLICATE_MOVE", "movimiento %s ya existe", move.ID)
		}
		return fmt.Errorf("insert move: %w", err)
	}
	for _, l := range move.Lines {
		_, err := r.q.Exec(ctx, `
			INSERT INTO move_lines (id, move_id, position, item_code, qty, qty_confirmed, location_from, location_to)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, move.ID, l.Position, l.ItemCode, l.Qty, l.QtyConfirmed, l.LocationFrom, l.LocationTo,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.Validation(domain.CodeDuplicateLineKey,
					"línea duplicada para %s (%s → %s)", l.ItemCode, l.LocationFrom, l.LocationTo)
			}
			return fmt.Errorf("insert move line: %w", err)
		}
	}
	return nil
}

// GetByID obtiene el movimiento con sus líneas. (nil, nil) si no existe.
func (r *MoveRepo) GetByID(ctx context.Context, id string) (*entity.Move, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate igual que GetByID pero bloquea la cabecera; las confirmaciones sobre el mismo
// movimiento quedan serializadas.
func (r *MoveRepo) GetForUpdate(ctx context.Context, id string) (*entity.Move, error) {
	return r.get(ctx, id, true)
}

func (r *MoveRepo) get(ctx context.Context, id string, forUpdate bool) (*entity.Move, error) {
	query := `SELECT ` + moveColumns + ` FROM moves WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	m, err := scanMove(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get move: %w", err)
	}
	lines, err := r.lines(ctx, []string{m.ID})
	if err != nil {
		return nil, err
	}
	m.Lines = lines[m.ID]
	return m, nil
}

// UpdateLineConfirmed persiste qty_confirmed de una línea.
func (r *MoveRepo) UpdateLineConfirmed(ctx context.Context, line *entity.MoveLine) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE move_lines SET qty_confirmed = $3 WHERE id = $1 AND move_id = $2`,
		line.ID, line.MoveID, line.QtyConfirmed,
	)
	if err != nil {
		return fmt.Errorf("update move line: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update move line: línea %s no existe", line.ID)
	}
	return nil
}

// UpdateStatus persiste status, approved_by y updated_at.
func (r *MoveRepo) UpdateStatus(ctx context.Context, move *entity.Move) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE moves SET status = $2, approved_by = $3, updated_at = $4 WHERE id = $1`,
		move.ID, move.Status, move.ApprovedBy, move.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update move status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("update move status: movimiento %s no existe", move.ID)
	}
	return nil
}

// List lista movimientos con filtros opcionales, más recientes primero.
func (r *MoveRepo) List(ctx context.Context, filter repository.MoveFilter) ([]*entity.Move, error) {
	var (
		where []string
		args  []any
	)
	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	if filter.DocType != "" {
		args = append(args, filter.DocType)
		where = append(where, fmt.Sprintf("doc_type = $%d", len(args)))
	}
	query := `SELECT ` + moveColumns + ` FROM moves`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	args = append(args, filter.Limit, filter.Offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	var (
		list []*entity.Move
		ids  []string
	)
	for rows.Next() {
		m, err := scanMove(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan move: %w", err)
		}
		list = append(list, m)
		ids = append(ids, m.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list moves: %w", err)
	}
	if len(ids) == 0 {
		return list, nil
	}

	lines, err := r.lines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, m := range list {
		m.Lines = lines[m.ID]
	}
	return list, nil
}

func (r *MoveRepo) lines(ctx context.Context, moveIDs []string) (map[string][]entity.MoveLine, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, move_id, position, item_code, qty, qty_confirmed, location_from, location_to
		FROM move_lines WHERE move_id = ANY($1) ORDER BY move_id, position`, moveIDs)
	if err != nil {
		return nil, fmt.Errorf("list move lines: %w", err)
	}
	defer rows.Close()
	out := make(map[string][]entity.MoveLine, len(moveIDs))
	for rows.Next() {
		var l entity.MoveLine
		if err := rows.Scan(&l.ID, &l.MoveID, &l.Position, &l.ItemCode, &l.Qty, &l.QtyConfirmed,
			&l.LocationFrom, &l.LocationTo); err != nil {
			return nil, fmt.Errorf("scan move line: %w", err)
		}
		out[l.MoveID] = append(out[l.MoveID], l)
	}
	return out, rows.Err()
}

func scanMove(row pgx.Row) (*entity.Move, error) {
	var m entity.Move
	if err := row.Scan(&m.ID, &m.DocType, &m.Type, &m.DocNumber, &m.Status,
		&m.CreatedBy, &m.ApprovedBy, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, err
	}
	return &m, nil
}
