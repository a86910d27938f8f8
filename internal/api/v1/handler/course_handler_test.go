package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"app/internal/middleware"
	"app/internal/model"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type stubCourseService struct {
	course *model.Course
}

func (s *stubCourseService) CreateCourse(ctx context.Context, actorAddress string, profileID uint64, priceCents int64, contentRef string) (*model.Course, error) {
	return s.course, nil
}

func (s *stubCourseService) UpdateCoursePrice(ctx context.Context, actorAddress string, profileID uint64, courseID, newPriceCents int64) (*model.Course, error) {
	c := *s.course
	c.PriceCents = newPriceCents
	return &c, nil
}

func (s *stubCourseService) GetCourse(ctx context.Context, courseID int64) (*model.Course, error) {
	if s.course != nil && s.course.CourseID == courseID {
		c := *s.course
		return &c, nil
	}
	return nil, nil
}

func (s *stubCourseService) ListCoursesByProfile(ctx context.Context, profileID uint64) ([]model.Course, error) {
	if s.course != nil && s.course.ProfileID == profileID {
		return []model.Course{*s.course}, nil
	}
	return []model.Course{}, nil
}

type stubContentService struct{}

func (s *stubContentService) GetContentURL(ctx context.Context, callerAddress string, courseID int64) (string, error) {
	return "https://cdn.example.com/signed", nil
}

// requireBearer stands in for AuthMiddleware in routing tests: requests
// without a bearer token are rejected, the token value becomes the actor.
func requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if token == "" || token == auth {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), middleware.ActorContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newCourseMux(t *testing.T) *http.ServeMux {
	t.Helper()
	svc := &stubCourseService{course: &model.Course{
		CourseID:   1,
		ProfileID:  7,
		PriceCents: 10000,
		ContentRef: "content/obj",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}}
	validate := validator.New(validator.WithRequiredStructEnabled())
	h := NewCourseHandler(svc, &stubContentService{}, validate, zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, requireBearer)
	return mux
}

func TestGetCourseNeedsNoToken(t *testing.T) {
	mux := newCourseMux(t)

	req := httptest.NewRequest(http.MethodGet, "/courses/1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for an unauthenticated read", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"price_cents":10000`) {
		t.Errorf("body = %q, want the listed price", rec.Body.String())
	}
}

func TestGetCourseUnknownReturnsNotFound(t *testing.T) {
	mux := newCourseMux(t)

	req := httptest.NewRequest(http.MethodGet, "/courses/99", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestListProfileCoursesNeedsNoToken(t *testing.T) {
	mux := newCourseMux(t)

	req := httptest.NewRequest(http.MethodGet, "/profiles/7/courses", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for an unauthenticated read", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"course_id":1`) {
		t.Errorf("body = %q, want the profile's course", rec.Body.String())
	}
}

func TestUpdatePriceRequiresToken(t *testing.T) {
	mux := newCourseMux(t)

	body := `{"profile_id": 7, "price_cents": 2500}`
	req := httptest.NewRequest(http.MethodPut, "/courses/1/price", strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/courses/1/price", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer 0xcreator")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with token = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"price_cents":2500`) {
		t.Errorf("body = %q, want the updated price", rec.Body.String())
	}
}

func TestGetContentRequiresToken(t *testing.T) {
	mux := newCourseMux(t)

	req := httptest.NewRequest(http.MethodGet, "/courses/1/content", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/courses/1/content", nil)
	req.Header.Set("Authorization", "Bearer 0xbuyer")
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status with token = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "https://cdn.example.com/signed") {
		t.Errorf("body = %q, want the signed URL", rec.Body.String())
	}
}
