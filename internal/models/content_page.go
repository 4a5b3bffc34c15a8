package models

import "time"

// ContentPage is an administrator-authored article addressed by slug.
type ContentPage struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Title     *string   `gorm:"size:255" json:"title"`
	Slug      string    `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Content   *string   `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

func (ContentPage) TableName() string { return "content_page" }

func (p ContentPage) TitleText() string {
	if p.Title == nil {
		return ""
	}
	return *p.Title
}

func (p ContentPage) Body() string {
	if p.Content == nil {
		return ""
	}
	return *p.Content
}
