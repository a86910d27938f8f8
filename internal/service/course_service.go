package service

import (
	"context"
	"fmt"

	"app/internal/identity"
	"app/internal/model"
	"app/internal/repository"

	"github.com/rs/zerolog"
)

// CourseService is the course registry: creation, price governance and reads.
type CourseService interface {
	// CreateCourse lists a new course under profileID. The actor must
	// currently own the profile or be one of its delegates.
	CreateCourse(ctx context.Context, actorAddress string, profileID uint64, priceCents int64, contentRef string) (*model.Course, error)
	// UpdateCoursePrice replaces a course's price. The actor must be
	// authorized for profileID, and the course must belong to profileID.
	UpdateCoursePrice(ctx context.Context, actorAddress string, profileID uint64, courseID, newPriceCents int64) (*model.Course, error)
	// GetCourse retrieves a course by its ID.
	GetCourse(ctx context.Context, courseID int64) (*model.Course, error)
	// ListCoursesByProfile lists all courses owned by a profile.
	ListCoursesByProfile(ctx context.Context, profileID uint64) ([]model.Course, error)
}

type courseService struct {
	repo     repository.CourseRepository
	resolver identity.Resolver
	logger   zerolog.Logger
}

// NewCourseService creates a new CourseService with a scoped logger.
func NewCourseService(repo repository.CourseRepository, resolver identity.Resolver, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:     repo,
		resolver: resolver,
		logger:   logger.With().Str("service", "CourseService").Logger(),
	}
}

func (s *courseService) CreateCourse(ctx context.Context, actorAddress string, profileID uint64, priceCents int64, contentRef string) (*model.Course, error) {
	authorized, err := s.resolver.IsOwnerOrDelegate(ctx, profileID, actorAddress)
	if err != nil {
		s.logger.Error().Err(err).Uint64("profile_id", profileID).Msg("Identity resolver check failed")
		return nil, fmt.Errorf("resolving authorization: %w", err)
	}
	if !authorized {
		return nil, ErrUnauthorized
	}

	course := &model.Course{
		ProfileID:  profileID,
		PriceCents: priceCents,
		ContentRef: contentRef,
	}
	if err := s.repo.CreateCourse(ctx, course, actorAddress); err != nil {
		s.logger.Error().Err(err).Uint64("profile_id", profileID).Msg("Failed to create course")
		return nil, err
	}
	s.logger.Info().Int64("course_id", course.CourseID).Uint64("profile_id", profileID).Int64("price_cents", priceCents).Msg("Course created")
	return course, nil
}

func (s *courseService) UpdateCoursePrice(ctx context.Context, actorAddress string, profileID uint64, courseID, newPriceCents int64) (*model.Course, error) {
	authorized, err := s.resolver.IsOwnerOrDelegate(ctx, profileID, actorAddress)
	if err != nil {
		s.logger.Error().Err(err).Uint64("profile_id", profileID).Msg("Identity resolver check failed")
		return nil, fmt.Errorf("resolving authorization: %w", err)
	}
	if !authorized {
		return nil, ErrUnauthorized
	}

	course, err := s.repo.GetCourseByID(ctx, courseID)
	if err != nil {
		s.logger.Error().Err(err).Int64("course_id", courseID).Msg("Failed to fetch course")
		return nil, err
	}
	if course == nil {
		return nil, ErrCourseNotFound
	}
	// Being authorized for some profile is not enough; the course must
	// belong to that profile.
	if course.ProfileID != profileID {
		return nil, ErrNotCourseOwner
	}

	if err := s.repo.UpdateCoursePrice(ctx, courseID, newPriceCents); err != nil {
		s.logger.Error().Err(err).Int64("course_id", courseID).Msg("Failed to update course price")
		return nil, err
	}
	course.PriceCents = newPriceCents
	s.logger.Info().Int64("course_id", courseID).Int64("price_cents", newPriceCents).Msg("Course price updated")
	return course, nil
}

func (s *courseService) GetCourse(ctx context.Context, courseID int64) (*model.Course, error) {
	return s.repo.GetCourseByID(ctx, courseID)
}

func (s *courseService) ListCoursesByProfile(ctx context.Context, profileID uint64) ([]model.Course, error) {
	return s.repo.GetCoursesByProfileID(ctx, profileID)
}
