package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"learnpath/internal/domain"
	"learnpath/internal/repository/models"
	"learnpath/internal/util"

	"github.com/jmoiron/sqlx"
)

const selectElearnings = `SELECT
		id "id",
		titel "titel",
		niveau "niveau",
		onderwerp "onderwerp",
		item_type "item_type",
		tijdsinvestering "tijdsinvestering",
		taal "taal",
		organisatie "organisatie",
		beschrijving "beschrijving",
		link "link",
		status "status",
		created_at "created_at",
		updated_at "updated_at"
	FROM elearnings`

const insertElearning = `INSERT INTO elearnings (
		id, titel, niveau, onderwerp, item_type, tijdsinvestering,
		taal, organisatie, beschrijving, link, status, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// ElearningDatabaseAdapter implements domain.ElearningRepository using sqlx.DB
type ElearningDatabaseAdapter struct {
	db *sqlx.DB
}

// NewElearningDatabaseAdapter creates a new instance of ElearningDatabaseAdapter
func NewElearningDatabaseAdapter(db *sqlx.DB) domain.ElearningRepository {
	return &ElearningDatabaseAdapter{db: db}
}

// Find implements domain.ElearningRepository. Only active entries are
// returned, in catalog (import) order.
func (a *ElearningDatabaseAdapter) Find(ctx context.Context, q domain.ElearningQuery) ([]*domain.Elearning, error) {
	query, args, err := buildFindQuery(q)
	if err != nil {
		return nil, fmt.Errorf("failed to build elearning query: %w", err)
	}

	var rows []models.Elearning
	if err := a.db.SelectContext(ctx, &rows, a.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("failed to find elearnings: %w", err)
	}
	return toDomainElearnings(rows), nil
}

// ListActive implements domain.ElearningRepository
func (a *ElearningDatabaseAdapter) ListActive(ctx context.Context) ([]*domain.Elearning, error) {
	return a.Find(ctx, domain.ElearningQuery{})
}

// ListAll implements domain.ElearningRepository. Inactive entries are
// included.
func (a *ElearningDatabaseAdapter) ListAll(ctx context.Context) ([]*domain.Elearning, error) {
	var rows []models.Elearning
	if err := a.db.SelectContext(ctx, &rows, selectElearnings+" ORDER BY id"); err != nil {
		return nil, fmt.Errorf("failed to list elearnings: %w", err)
	}
	return toDomainElearnings(rows), nil
}

// ReplaceAll implements domain.ElearningRepository. The catalog is swapped
// atomically; readers see either the old or the new set.
func (a *ElearningDatabaseAdapter) ReplaceAll(ctx context.Context, items []*domain.Elearning) error {
	insert := insertElearning

	return withTransaction(ctx, a.db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM elearnings`); err != nil {
			return fmt.Errorf("failed to clear elearnings: %w", err)
		}
		stmt := tx.Rebind(insert)
		now := time.Now()
		for _, item := range items {
			if err := item.Validate(); err != nil {
				return err
			}
			m := toModelElearning(item)
			if m.ID == "" {
				m.ID = util.NewULID()
			}
			if m.Status == "" {
				m.Status = domain.StatusActive
			}
			m.CreatedAt, m.UpdatedAt = now, now

			if _, err := tx.ExecContext(ctx, stmt,
				m.ID, m.Titel, m.Niveau, m.Onderwerp, m.ItemType, m.Tijdsinvestering,
				m.Taal, m.Organisatie, m.Beschrijving, m.Link, m.Status, m.CreatedAt, m.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to insert elearning %q: %w", item.Titel, err)
			}
			item.ID, item.Status = m.ID, m.Status
			item.CreatedAt, item.UpdatedAt = now, now
		}
		return nil
	})
}

// Save implements domain.ElearningRepository. An update rewrites every
// column except id and created_at.
func (a *ElearningDatabaseAdapter) Save(ctx context.Context, item *domain.Elearning) error {
	if err := item.Validate(); err != nil {
		return err
	}
	m := toModelElearning(item)
	if m.Status == "" {
		m.Status = domain.StatusActive
	}
	now := time.Now()
	m.UpdatedAt = now

	if m.ID == "" {
		m.ID = util.NewULID()
		m.CreatedAt = now
		if _, err := a.db.ExecContext(ctx, a.db.Rebind(insertElearning),
			m.ID, m.Titel, m.Niveau, m.Onderwerp, m.ItemType, m.Tijdsinvestering,
			m.Taal, m.Organisatie, m.Beschrijving, m.Link, m.Status, m.CreatedAt, m.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert elearning %q: %w", item.Titel, err)
		}
		item.CreatedAt = now
	} else {
		update := `UPDATE elearnings SET
			titel = ?, niveau = ?, onderwerp = ?, item_type = ?, tijdsinvestering = ?,
			taal = ?, organisatie = ?, beschrijving = ?, link = ?, status = ?, updated_at = ?
		WHERE id = ?`
		res, err := a.db.ExecContext(ctx, a.db.Rebind(update),
			m.Titel, m.Niveau, m.Onderwerp, m.ItemType, m.Tijdsinvestering,
			m.Taal, m.Organisatie, m.Beschrijving, m.Link, m.Status, m.UpdatedAt, m.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update elearning %s: %w", m.ID, err)
		}
		if err := requireOneRow(res, m.ID); err != nil {
			return err
		}
	}

	item.ID, item.Status, item.UpdatedAt = m.ID, m.Status, now
	return nil
}

// SetStatus implements domain.ElearningRepository
func (a *ElearningDatabaseAdapter) SetStatus(ctx context.Context, id, status string) error {
	if !domain.ValidStatus(status) {
		return domain.NewInvalidInputError("status must be active or inactive")
	}
	res, err := a.db.ExecContext(ctx, a.db.Rebind(`UPDATE elearnings SET status = ?, updated_at = ? WHERE id = ?`),
		status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to set status of elearning %s: %w", id, err)
	}
	return requireOneRow(res, id)
}

func requireOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return domain.NewNotFoundError(fmt.Sprintf("elearning %s not found", id))
	}
	return nil
}

func buildFindQuery(q domain.ElearningQuery) (string, []interface{}, error) {
	var b strings.Builder
	b.WriteString(selectElearnings)
	b.WriteString(" WHERE status = ?")
	args := []interface{}{domain.StatusActive}

	if q.Type != "" {
		b.WriteString(" AND item_type = ?")
		args = append(args, q.Type)
	}
	if len(q.Topics) > 0 {
		b.WriteString(" AND onderwerp IN (?)")
		args = append(args, q.Topics)
	}
	if q.MaxTime > 0 {
		b.WriteString(" AND tijdsinvestering <= ?")
		args = append(args, q.MaxTime)
	}
	if q.LimitLevel {
		b.WriteString(" AND niveau <= ?")
		args = append(args, q.MaxLevel)
	}
	b.WriteString(" ORDER BY id")

	return sqlx.In(b.String(), args...)
}

func toDomainElearnings(rows []models.Elearning) []*domain.Elearning {
	out := make([]*domain.Elearning, len(rows))
	for i := range rows {
		out[i] = toDomainElearning(&rows[i])
	}
	return out
}

func toDomainElearning(m *models.Elearning) *domain.Elearning {
	return &domain.Elearning{
		ID:               m.ID,
		Titel:            m.Titel,
		Niveau:           m.Niveau,
		Onderwerp:        m.Onderwerp.String,
		Type:             m.ItemType.String,
		Tijdsinvestering: m.Tijdsinvestering,
		Taal:             m.Taal.String,
		Organisatie:      m.Organisatie.String,
		Beschrijving:     m.Beschrijving.String,
		Link:             m.Link.String,
		Status:           m.Status,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func toModelElearning(e *domain.Elearning) *models.Elearning {
	return &models.Elearning{
		ID:               e.ID,
		Titel:            e.Titel,
		Niveau:           e.Niveau,
		Onderwerp:        util.StringToNullString(e.Onderwerp),
		ItemType:         util.StringToNullString(e.Type),
		Tijdsinvestering: e.Tijdsinvestering,
		Taal:             util.StringToNullString(e.Taal),
		Organisatie:      util.StringToNullString(e.Organisatie),
		Beschrijving:     util.StringToNullString(e.Beschrijving),
		Link:             util.StringToNullString(e.Link),
		Status:           e.Status,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}
