package repository

import (
	"context"
	"errors"
	"fmt"

	"app/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CourseRepository defines the interface for interacting with course records.
type CourseRepository interface {
	// CreateCourse inserts a new course, allocates its sequential identifier
	// and enqueues the course.created event in the same transaction.
	CreateCourse(ctx context.Context, c *model.Course, actorAddress string) error
	// GetCourseByID retrieves a course by its ID. Returns (nil, nil) when no
	// such course exists.
	GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error)
	// UpdateCoursePrice replaces the price in place and enqueues the
	// course.price_updated event in the same transaction.
	UpdateCoursePrice(ctx context.Context, courseID, priceCents int64) error
	// GetCoursesByProfileID lists all courses owned by a profile.
	GetCoursesByProfileID(ctx context.Context, profileID uint64) ([]model.Course, error)
}

type courseRepo struct {
	pool        *pgxpool.Pool
	eventsQueue string
}

// NewCourseRepo creates a new CourseRepository.
func NewCourseRepo(pool *pgxpool.Pool, eventsQueue string) CourseRepository {
	return &courseRepo{pool: pool, eventsQueue: eventsQueue}
}

func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course, actorAddress string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("starting transaction for course creation: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const q = `
		INSERT INTO courses (profile_id, price_cents, content_ref)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRow(ctx, q, c.ProfileID, c.PriceCents, c.ContentRef).
		Scan(&c.CourseID, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return fmt.Errorf("inserting course for profile %d: %w", c.ProfileID, err)
	}

	err = enqueueEvent(ctx, tx, r.eventsQueue, model.EventCourseCreated, model.CourseCreatedEvent{
		CourseID:     c.CourseID,
		ActorAddress: actorAddress,
		PriceCents:   c.PriceCents,
		ContentRef:   c.ContentRef,
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing course creation: %w", err)
	}
	return nil
}

func (r *courseRepo) GetCourseByID(ctx context.Context, courseID int64) (*model.Course, error) {
	const q = `
		SELECT id, profile_id, price_cents, content_ref, created_at, updated_at
		FROM courses
		WHERE id = $1
	`
	var c model.Course
	err := r.pool.QueryRow(ctx, q, courseID).Scan(
		&c.CourseID,
		&c.ProfileID,
		&c.PriceCents,
		&c.ContentRef,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch course %d: %w", courseID, err)
	}
	return &c, nil
}

func (r *courseRepo) UpdateCoursePrice(ctx context.Context, courseID, priceCents int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("starting transaction for price update: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	const q = `
		UPDATE courses
		SET price_cents = $1, updated_at = NOW()
		WHERE id = $2
	`
	tag, err := tx.Exec(ctx, q, priceCents, courseID)
	if err != nil {
		return fmt.Errorf("updating price for course %d: %w", courseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("updating price: course %d does not exist", courseID)
	}

	err = enqueueEvent(ctx, tx, r.eventsQueue, model.EventCoursePriceUpdated, model.CoursePriceUpdatedEvent{
		CourseID:   courseID,
		PriceCents: priceCents,
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing price update for course %d: %w", courseID, err)
	}
	return nil
}

func (r *courseRepo) GetCoursesByProfileID(ctx context.Context, profileID uint64) ([]model.Course, error) {
	const q = `
		SELECT id, profile_id, price_cents, content_ref, created_at, updated_at
		FROM courses
		WHERE profile_id = $1
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, q, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing courses for profile %d: %w", profileID, err)
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var c model.Course
		if err := rows.Scan(
			&c.CourseID,
			&c.ProfileID,
			&c.PriceCents,
			&c.ContentRef,
			&c.CreatedAt,
			&c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning course row: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating course rows: %w", err)
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}
	return courses, nil
}
