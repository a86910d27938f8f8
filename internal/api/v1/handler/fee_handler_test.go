package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/middleware"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

type stubFeeService struct {
	feeBps int32
	setErr error
}

func (s *stubFeeService) GetProtocolFee(ctx context.Context) (int32, error) {
	return s.feeBps, nil
}

func (s *stubFeeService) SetProtocolFee(ctx context.Context, actorAddress string, feeBps int32) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.feeBps = feeBps
	return nil
}

// asActor injects an authenticated caller the way AuthMiddleware would.
func asActor(actor string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), middleware.ActorContextKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newFeeMux(svc service.FeeService, actor string) *http.ServeMux {
	validate := validator.New(validator.WithRequiredStructEnabled())
	h := NewFeeHandler(svc, validate, zerolog.Nop())
	mux := http.NewServeMux()
	h.RegisterRoutes(mux, asActor(actor))
	return mux
}

func TestGetFee(t *testing.T) {
	mux := newFeeMux(&stubFeeService{feeBps: 500}, "0xanyone")

	req := httptest.NewRequest(http.MethodGet, "/protocol/fee", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"fee_bps":500`) {
		t.Errorf("body = %q, want fee_bps 500", rec.Body.String())
	}
}

func TestUpdateFee(t *testing.T) {
	svc := &stubFeeService{feeBps: 500}
	mux := newFeeMux(svc, "0xoperator")

	req := httptest.NewRequest(http.MethodPut, "/protocol/fee", strings.NewReader(`{"fee_bps": 250}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if svc.feeBps != 250 {
		t.Errorf("stored fee = %d, want 250", svc.feeBps)
	}
}

func TestUpdateFeeMapsServiceErrors(t *testing.T) {
	cases := []struct {
		name   string
		setErr error
		want   int
	}{
		{"unauthorized", service.ErrUnauthorized, http.StatusForbidden},
		{"invalid rate", service.ErrInvalidFeeRate, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mux := newFeeMux(&stubFeeService{feeBps: 500, setErr: tc.setErr}, "0xsomeone")

			req := httptest.NewRequest(http.MethodPut, "/protocol/fee", strings.NewReader(`{"fee_bps": 250}`))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
}

func TestUpdateFeeRejectsOutOfRangePayload(t *testing.T) {
	mux := newFeeMux(&stubFeeService{feeBps: 500}, "0xoperator")

	req := httptest.NewRequest(http.MethodPut, "/protocol/fee", strings.NewReader(`{"fee_bps": 10001}`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
