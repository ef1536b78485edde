package course

import "gorm.io/gorm"

// Course represents a top-level learning unit containing chapters and articles
type Course struct {
	gorm.Model
	Title       string `json:"title"`
	Description string `json:"description" gorm:"type:text"`
	Category    string `json:"category"` // optional

	Chapters []Chapter `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Articles []Article `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
