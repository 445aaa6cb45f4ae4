package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/woofwoof-app/backend/internal/domain"
	"github.com/woofwoof-app/backend/internal/repository"
)

type dogRepository struct {
	db *sqlx.DB
}

func NewDogRepository(db *sqlx.DB) repository.DogRepository {
	return &dogRepository{db: db}
}

func (r *dogRepository) Create(ctx context.Context, dog *domain.Dog) error {
	query := `
		INSERT INTO dogs (
			owner_id, name, breed, age_years, age_months, weight_kg, sex,
			bio, temperament, intention, activity_level,
			good_with_kids, good_with_cats, good_with_dogs
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		dog.OwnerID, dog.Name, dog.Breed, dog.AgeYears, dog.AgeMonths,
		dog.WeightKg, dog.Sex, dog.Bio, dog.Temperament, dog.Intention,
		dog.ActivityLevel, dog.GoodWithKids, dog.GoodWithCats, dog.GoodWithDogs,
	).Scan(&dog.ID, &dog.CreatedAt)
}

func (r *dogRepository) GetByID(ctx context.Context, id int) (*domain.Dog, error) {
	var dog domain.Dog
	query := `SELECT * FROM dogs WHERE id = $1`
	err := r.db.GetContext(ctx, &dog, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDogNotFound
		}
		return nil, err
	}
	return &dog, nil
}

func (r *dogRepository) GetByOwnerID(ctx context.Context, ownerID int) ([]*domain.Dog, error) {
	var dogs []*domain.Dog
	query := `SELECT * FROM dogs WHERE owner_id = $1 ORDER BY created_at`
	err := r.db.SelectContext(ctx, &dogs, query, ownerID)
	return dogs, err
}

func (r *dogRepository) Update(ctx context.Context, dog *domain.Dog) error {
	query := `
		UPDATE dogs
		SET name = $1, breed = $2, age_years = $3, age_months = $4,
		    weight_kg = $5, sex = $6, bio = $7, temperament = $8,
		    intention = $9, activity_level = $10,
		    good_with_kids = $11, good_with_cats = $12, good_with_dogs = $13
		WHERE id = $14
	`
	result, err := r.db.ExecContext(
		ctx, query,
		dog.Name, dog.Breed, dog.AgeYears, dog.AgeMonths, dog.WeightKg,
		dog.Sex, dog.Bio, dog.Temperament, dog.Intention, dog.ActivityLevel,
		dog.GoodWithKids, dog.GoodWithCats, dog.GoodWithDogs, dog.ID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDogNotFound
	}
	return nil
}

func (r *dogRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM dogs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrDogNotFound
	}
	return nil
}

func (r *dogRepository) Discover(ctx context.Context, filter repository.DiscoverFilter) ([]*domain.Dog, error) {
	query := `SELECT * FROM dogs WHERE owner_id != $1`
	args := []interface{}{filter.ExcludeOwnerID}
	argCount := 2

	if len(filter.ExcludeDogIDs) > 0 {
		query += fmt.Sprintf(" AND id != ALL($%d)", argCount)
		args = append(args, pq.Array(filter.ExcludeDogIDs))
		argCount++
	}
	if filter.Breed != "" {
		query += fmt.Sprintf(" AND breed ILIKE $%d", argCount)
		args = append(args, "%"+filter.Breed+"%")
		argCount++
	}
	if filter.Intention != "" {
		query += fmt.Sprintf(" AND intention = $%d", argCount)
		args = append(args, filter.Intention)
		argCount++
	}
	if filter.Sex != "" {
		query += fmt.Sprintf(" AND sex = $%d", argCount)
		args = append(args, filter.Sex)
	}

	var dogs []*domain.Dog
	err := r.db.SelectContext(ctx, &dogs, query, args...)
	return dogs, err
}

func (r *dogRepository) Search(ctx context.Context, excludeOwnerID int, filter repository.SearchFilter) ([]*domain.Dog, error) {
	query := `SELECT * FROM dogs WHERE owner_id != $1`
	args := []interface{}{excludeOwnerID}
	argCount := 2

	addFilter := func(clause string, value interface{}) {
		query += fmt.Sprintf(" AND "+clause, argCount)
		args = append(args, value)
		argCount++
	}

	if filter.Breed != "" {
		addFilter("breed ILIKE $%d", "%"+filter.Breed+"%")
	}
	if filter.Sex != "" {
		addFilter("sex = $%d", filter.Sex)
	}
	if filter.Intention != "" {
		addFilter("intention = $%d", filter.Intention)
	}
	if filter.MinAgeYears != nil {
		addFilter("age_years >= $%d", *filter.MinAgeYears)
	}
	if filter.MaxAgeYears != nil {
		addFilter("age_years <= $%d", *filter.MaxAgeYears)
	}
	if filter.MinWeightKg != nil {
		addFilter("weight_kg >= $%d", *filter.MinWeightKg)
	}
	if filter.MaxWeightKg != nil {
		addFilter("weight_kg <= $%d", *filter.MaxWeightKg)
	}
	if filter.ActivityLevel != "" {
		addFilter("activity_level = $%d", filter.ActivityLevel)
	}
	if filter.GoodWithKids != nil {
		addFilter("good_with_kids = $%d", *filter.GoodWithKids)
	}
	if filter.GoodWithCats != nil {
		addFilter("good_with_cats = $%d", *filter.GoodWithCats)
	}
	if filter.GoodWithDogs != nil {
		addFilter("good_with_dogs = $%d", *filter.GoodWithDogs)
	}

	var dogs []*domain.Dog
	err := r.db.SelectContext(ctx, &dogs, query, args...)
	return dogs, err
}
