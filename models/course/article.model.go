package course

import "gorm.io/gorm"

// Article is freeform reading content attached to a course, independent of
// chapter progress
type Article struct {
	gorm.Model
	CourseID uint   `json:"course_id" gorm:"index;not null"`
	Title    string `json:"title"`
	Content  string `json:"content" gorm:"type:text"`
	Order    uint   `json:"order" gorm:"column:order;default:0"`

	Course Course `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
