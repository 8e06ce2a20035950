package blog

import (
	"time"

	"github.com/linskybing/property-portal/internal/domain/user"
)

type Blog struct {
	ID        uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	Summary   string     `gorm:"type:text;not null" json:"summary"`
	ImageURL  *string    `gorm:"column:image_url" json:"image_url"`
	AuthorID  uint       `gorm:"column:author_id;not null;index" json:"author_id"`
	Published bool       `gorm:"not null;default:false;index" json:"published"`
	Author    *user.User `gorm:"foreignKey:AuthorID;constraint:OnDelete:RESTRICT" json:"author"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Blog) TableName() string {
	return "blogs"
}
