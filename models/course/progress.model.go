package course

import (
	"time"

	"gorm.io/gorm"
)

// Progress is per-user, per-chapter completion state. Rows are created in bulk
// at enrollment time and lazily on first chapter access; they are never
// deleted. The composite unique index backs the get-or-create: a concurrent
// loser falls back to reading the winner's row.
type Progress struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"uniqueIndex:idx_progress_user_chapter;not null"`
	ChapterID   uint       `json:"chapter_id" gorm:"uniqueIndex:idx_progress_user_chapter;not null"`
	Completed   bool       `json:"completed" gorm:"default:false"`
	CompletedAt *time.Time `json:"completed_at"`

	Chapter Chapter `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
