package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"app/internal/api/v1/dto"
	"app/internal/middleware"
	"app/internal/model"
	"app/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// CourseHandler handles course registry endpoints
type CourseHandler struct {
	courseService  service.CourseService
	contentService service.ContentService
	validate       *validator.Validate
	logger         zerolog.Logger
}

// NewCourseHandler creates a new CourseHandler
func NewCourseHandler(courseService service.CourseService, contentService service.ContentService, validate *validator.Validate, logger zerolog.Logger) *CourseHandler {
	return &CourseHandler{
		courseService:  courseService,
		contentService: contentService,
		validate:       validate,
		logger:         logger,
	}
}

// RegisterRoutes mounts course routes. Reading a course or a profile's
// listings requires no authorization; creation, price updates and content
// downloads go through the auth middleware.
func (h *CourseHandler) RegisterRoutes(mux *http.ServeMux, authMw func(http.Handler) http.Handler) {
	mux.Handle("/courses", authMw(http.HandlerFunc(h.createCourse)))
	mux.Handle("/courses/", h.courseRoutes(authMw))
	mux.Handle("/profiles/", http.HandlerFunc(h.listProfileCourses))
}

func courseToResponse(c *model.Course) dto.CourseResponseDTO {
	return dto.CourseResponseDTO{
		CourseID:   c.CourseID,
		ProfileID:  c.ProfileID,
		PriceCents: c.PriceCents,
		ContentRef: c.ContentRef,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// createCourse godoc
// @Summary List a new course
// @Description Creates a course under a profile the caller owns or is a delegate of.
// @Tags courses
// @Accept json
// @Produce json
// @Param course body dto.CourseCreateDTO true "Course creation request"
// @Success 201 {object} dto.CourseResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 403 {string} string "unauthorized"
// @Router /courses [post]
func (h *CourseHandler) createCourse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost || r.URL.Path != "/courses" {
		http.NotFound(w, r)
		return
	}
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.CourseCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	created, err := h.courseService.CreateCourse(r.Context(), actor, req.ProfileID, *req.PriceCents, req.ContentRef)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := courseToResponse(created)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}

// getCourse godoc
// @Summary Get a course
// @Description Retrieves a course by its ID. No ownership required.
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 404 {string} string "course_not_found"
// @Router /courses/{courseId} [get]
func (h *CourseHandler) getCourse(w http.ResponseWriter, r *http.Request, courseID int64) {
	course, err := h.courseService.GetCourse(r.Context(), courseID)
	if err != nil {
		http.Error(w, "Failed to retrieve course: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if course == nil {
		http.Error(w, service.ErrCourseNotFound.Error(), http.StatusNotFound)
		return
	}
	resp := courseToResponse(course)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// updatePrice godoc
// @Summary Update a course's price
// @Description Replaces the listed price. The caller must be authorized for the owning profile.
// @Tags courses
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param update body dto.CoursePriceUpdateDTO true "Price update request"
// @Success 200 {object} dto.CourseResponseDTO
// @Failure 403 {string} string "unauthorized or not_course_owner"
// @Failure 404 {string} string "course_not_found"
// @Router /courses/{courseId}/price [put]
func (h *CourseHandler) updatePrice(w http.ResponseWriter, r *http.Request, courseID int64) {
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	var req dto.CoursePriceUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}
	updated, err := h.courseService.UpdateCoursePrice(r.Context(), actor, req.ProfileID, courseID, *req.PriceCents)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	resp := courseToResponse(updated)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// getContent godoc
// @Summary Get a download URL for purchased course content
// @Description Returns a short-lived URL for the course's content. The caller must hold a receipt.
// @Tags courses
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} dto.ContentURLResponseDTO
// @Failure 403 {string} string "unauthorized"
// @Failure 404 {string} string "course_not_found"
// @Router /courses/{courseId}/content [get]
func (h *CourseHandler) getContent(w http.ResponseWriter, r *http.Request, courseID int64) {
	actor, ok := r.Context().Value(middleware.ActorContextKey).(string)
	if !ok || actor == "" {
		http.Error(w, "Unauthorized: actor not found in context", http.StatusUnauthorized)
		return
	}
	url, err := h.contentService.GetContentURL(r.Context(), actor, courseID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto.ContentURLResponseDTO{URL: url})
}

// parseCoursePath extracts the course ID and trailing path segments from
// /courses/{id}... requests, writing a 400 on a malformed ID.
func parseCoursePath(w http.ResponseWriter, r *http.Request) (int64, []string, bool) {
	rest := strings.TrimPrefix(r.URL.Path, "/courses/")
	parts := strings.Split(rest, "/")
	courseID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil || courseID < 1 {
		http.Error(w, "Invalid course ID", http.StatusBadRequest)
		return 0, nil, false
	}
	return courseID, parts, true
}

func (h *CourseHandler) courseRoutes(authMw func(http.Handler) http.Handler) http.Handler {
	authed := authMw(http.HandlerFunc(h.handleAuthedCourse))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		courseID, parts, ok := parseCoursePath(w, r)
		if !ok {
			return
		}
		if len(parts) == 1 && r.Method == http.MethodGet {
			h.getCourse(w, r, courseID)
			return
		}
		authed.ServeHTTP(w, r)
	})
}

func (h *CourseHandler) handleAuthedCourse(w http.ResponseWriter, r *http.Request) {
	courseID, parts, ok := parseCoursePath(w, r)
	if !ok {
		return
	}
	switch {
	case len(parts) == 2 && parts[1] == "price" && r.Method == http.MethodPut:
		h.updatePrice(w, r, courseID)
	case len(parts) == 2 && parts[1] == "content" && r.Method == http.MethodGet:
		h.getContent(w, r, courseID)
	default:
		http.NotFound(w, r)
	}
}

// listProfileCourses godoc
// @Summary List a profile's courses
// @Description Lists all courses owned by the given profile.
// @Tags courses
// @Produce json
// @Param profileId path int true "Profile ID"
// @Success 200 {array} dto.CourseResponseDTO
// @Router /profiles/{profileId}/courses [get]
func (h *CourseHandler) listProfileCourses(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/profiles/")
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[1] != "courses" || r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	profileID, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		http.Error(w, "Invalid profile ID", http.StatusBadRequest)
		return
	}
	courses, err := h.courseService.ListCoursesByProfile(r.Context(), profileID)
	if err != nil {
		h.logger.Error().Err(err).Uint64("profile_id", profileID).Msg("failed to list courses")
		http.Error(w, "Failed to list courses", http.StatusInternalServerError)
		return
	}
	resp := make([]dto.CourseResponseDTO, 0, len(courses))
	for i := range courses {
		resp = append(resp, courseToResponse(&courses[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
