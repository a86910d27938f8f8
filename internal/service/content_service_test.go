package service

import (
	"context"
	"errors"
	"testing"
	"time"

	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakePresigner struct {
	lastKey    string
	lastBucket string
}

func (f *fakePresigner) PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.lastBucket = *params.Bucket
	f.lastKey = *params.Key
	return &v4.PresignedHTTPRequest{URL: "https://storage.example/" + f.lastKey + "?signed"}, nil
}

func newContentFixture(t *testing.T) (ContentService, *fakeReceiptRepo, *fakePresigner) {
	t.Helper()
	courses := newFakeCourseRepo()
	resolver := newFakeResolver()
	resolver.allow(7, "0xowner")
	courseSvc := NewCourseService(courses, resolver, testLogger())
	if _, err := courseSvc.CreateCourse(context.Background(), "0xowner", 7, 10000, "objects/course-1.zip"); err != nil {
		t.Fatalf("seeding course: %v", err)
	}

	receipts := newFakeReceiptRepo()
	presigner := &fakePresigner{}
	svc := NewContentService(courses, receipts, presigner, "course-content", 15*time.Minute, testLogger())
	return svc, receipts, presigner
}

func TestGetContentURLRequiresReceipt(t *testing.T) {
	svc, _, _ := newContentFixture(t)

	if _, err := svc.GetContentURL(context.Background(), "0xnobody", 1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("GetContentURL error = %v, want ErrUnauthorized", err)
	}
}

func TestGetContentURLUnknownCourse(t *testing.T) {
	svc, _, _ := newContentFixture(t)

	if _, err := svc.GetContentURL(context.Background(), "0xbuyer", 99); !errors.Is(err, ErrCourseNotFound) {
		t.Fatalf("GetContentURL error = %v, want ErrCourseNotFound", err)
	}
}

func TestGetContentURLForReceiptHolder(t *testing.T) {
	svc, receipts, presigner := newContentFixture(t)
	receipts.balances[receiptKey("0xbuyer", 1)] = 1

	url, err := svc.GetContentURL(context.Background(), "0xbuyer", 1)
	if err != nil {
		t.Fatalf("GetContentURL returned error: %v", err)
	}
	if url == "" {
		t.Fatal("expected non-empty URL")
	}
	if presigner.lastBucket != "course-content" {
		t.Errorf("presigned bucket = %q, want course-content", presigner.lastBucket)
	}
	if presigner.lastKey != "objects/course-1.zip" {
		t.Errorf("presigned key = %q, want the course's content ref", presigner.lastKey)
	}
}
