package course

import "gorm.io/gorm"

// Chapter is an ordered unit of instructional content within a course.
// Order is a display rank; one legacy endpoint family also addresses chapters
// by it (see controllers/course findChapterByOrder).
type Chapter struct {
	gorm.Model
	CourseID    uint   `json:"course_id" gorm:"index;not null"`
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"` // optional
	Order       uint   `json:"order" gorm:"column:order;default:0"`

	Course Course `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
