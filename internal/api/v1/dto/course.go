package dto

import "time"

// CourseCreateDTO is used for incoming course listing requests
type CourseCreateDTO struct {
	ProfileID  uint64 `json:"profile_id" validate:"required"`
	PriceCents *int64 `json:"price_cents" validate:"required,min=0"`
	ContentRef string `json:"content_ref" validate:"required"`
}

// CoursePriceUpdateDTO is used for incoming price update requests
type CoursePriceUpdateDTO struct {
	ProfileID  uint64 `json:"profile_id" validate:"required"`
	PriceCents *int64 `json:"price_cents" validate:"required,min=0"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	CourseID   int64     `json:"course_id"`
	ProfileID  uint64    `json:"profile_id"`
	PriceCents int64     `json:"price_cents"`
	ContentRef string    `json:"content_ref"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ContentURLResponseDTO carries the short-lived download URL for a purchased
// course's content.
type ContentURLResponseDTO struct {
	URL string `json:"url"`
}
