package model

import (
	"net/url"
	"time"
)

// Blog represents a published article.
type Blog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:80"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	UserID    uint      `json:"id_user" gorm:"column:id_user;index"`

	// Relations
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:BlogID"`
	Tags     []Tag     `json:"tags,omitempty" gorm:"many2many:blog_tags;joinForeignKey:BlogID;joinReferences:TagID"`
}

// TableName specifies the table name.
func (Blog) TableName() string { return "blog" }

// SetValues overwrites every field from form data.
func (b *Blog) SetValues(form url.Values) error {
	content, err := requiredFormValue(form, "content")
	if err != nil {
		return err
	}
	createdAt, err := parseFormTime(form, "created_at")
	if err != nil {
		return err
	}
	updatedAt, err := parseFormTime(form, "updated_at")
	if err != nil {
		return err
	}
	userID, err := parseFormID(form, "id_user")
	if err != nil {
		return err
	}
	b.Title = formValue(form, "title")
	b.Content = content
	b.CreatedAt = createdAt
	b.UpdatedAt = updatedAt
	b.UserID = userID
	return nil
}
