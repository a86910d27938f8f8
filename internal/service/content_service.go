package service

import (
	"context"
	"fmt"
	"time"

	"app/internal/repository"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// ContentService gates access to a course's off-chain content. The content
// itself lives in object storage under the course's content reference; only
// receipt holders (and nobody else) get a short-lived download URL.
type ContentService interface {
	GetContentURL(ctx context.Context, callerAddress string, courseID int64) (string, error)
}

// objectPresigner is the subset of the S3 presign client we use.
type objectPresigner interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type contentService struct {
	courses   repository.CourseRepository
	receipts  repository.ReceiptRepository
	presigner objectPresigner
	bucket    string
	ttl       time.Duration
	logger    zerolog.Logger
}

// NewContentService creates a new ContentService with a scoped logger.
func NewContentService(
	courses repository.CourseRepository,
	receipts repository.ReceiptRepository,
	presigner objectPresigner,
	bucket string,
	ttl time.Duration,
	logger zerolog.Logger,
) ContentService {
	return &contentService{
		courses:   courses,
		receipts:  receipts,
		presigner: presigner,
		bucket:    bucket,
		ttl:       ttl,
		logger:    logger.With().Str("service", "ContentService").Logger(),
	}
}

func (s *contentService) GetContentURL(ctx context.Context, callerAddress string, courseID int64) (string, error) {
	course, err := s.courses.GetCourseByID(ctx, courseID)
	if err != nil {
		s.logger.Error().Err(err).Int64("course_id", courseID).Msg("Failed to fetch course")
		return "", err
	}
	if course == nil {
		return "", ErrCourseNotFound
	}

	balance, err := s.receipts.BalanceOf(ctx, callerAddress, courseID)
	if err != nil {
		s.logger.Error().Err(err).Str("holder", callerAddress).Int64("course_id", courseID).Msg("Failed to fetch receipt balance")
		return "", err
	}
	if balance == 0 {
		return "", ErrUnauthorized
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(course.ContentRef),
	}, func(o *s3.PresignOptions) {
		o.Expires = s.ttl
	})
	if err != nil {
		s.logger.Error().Err(err).Str("content_ref", course.ContentRef).Msg("Failed to presign content URL")
		return "", fmt.Errorf("presigning content URL for course %d: %w", courseID, err)
	}
	return req.URL, nil
}
