package course

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment records that a user has joined a course; it gates access to
// progress operations. The composite unique index is what enforces the
// one-enrollment-per-(user, course) invariant; handlers treat the resulting
// duplicate-key error as the already-enrolled conflict.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	CourseID   uint      `json:"course_id" gorm:"uniqueIndex:idx_enrollment_user_course;not null"`
	EnrolledAt time.Time `json:"enrolled_at" gorm:"autoCreateTime"`

	Course Course `json:"course" gorm:"constraint:OnDelete:CASCADE"`
}
