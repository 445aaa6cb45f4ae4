package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *domain.Match) (bool, error) {
	match.Dog1ID, match.Dog2ID = domain.CanonicalPair(match.Dog1ID, match.Dog2ID)

	query := `
		INSERT INTO matches (dog_1_id, dog_2_id, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, match.Dog1ID, match.Dog2ID, match.IsActive).
		Scan(&match.ID, &match.CreatedAt)
	if err != nil {
		// A concurrent reciprocal swipe already created the match;
		// match creation is idempotent.
		if isUniqueViolation(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	var match domain.Match
	query := `SELECT * FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetByDogs(ctx context.Context, dog1ID, dog2ID int) (*domain.Match, error) {
	dog1ID, dog2ID = domain.CanonicalPair(dog1ID, dog2ID)

	var match domain.Match
	query := `SELECT * FROM matches WHERE dog_1_id = $1 AND dog_2_id = $2`
	err := r.db.GetContext(ctx, &match, query, dog1ID, dog2ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return &match, nil
}

func (r *matchRepository) GetActiveByDogIDs(ctx context.Context, dogIDs []int) ([]*domain.Match, error) {
	if len(dogIDs) == 0 {
		return nil, nil
	}

	var matches []*domain.Match
	query := `
		SELECT * FROM matches
		WHERE is_active = true AND (dog_1_id = ANY($1) OR dog_2_id = ANY($1))
		ORDER BY created_at DESC
	`
	err := r.db.SelectContext(ctx, &matches, query, pq.Array(dogIDs))
	return matches, err
}

func (r *matchRepository) UpdateStatus(ctx context.Context, id int, isActive bool) error {
	query := `UPDATE matches SET is_active = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, isActive, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}
