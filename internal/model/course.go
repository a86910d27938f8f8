package model

import "time"

// Course represents a listed course in the marketplace ledger. The ID is a
// sequential integer allocated by the database and never reused; the price is
// in the smallest currency unit and mutable only through an explicit update
// by the owning profile.
type Course struct {
	CourseID   int64     `db:"id" json:"course_id"`
	ProfileID  uint64    `db:"profile_id" json:"profile_id"`
	PriceCents int64     `db:"price_cents" json:"price_cents"`
	ContentRef string    `db:"content_ref" json:"content_ref"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
