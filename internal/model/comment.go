package model

import (
	"net/url"
	"time"
)

// Comment is a reader's remark on a blog.
type Comment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	AuthorID  uint      `json:"author_id" gorm:"column:author_id;index"`
	Timestamp time.Time `json:"timestamp" gorm:"autoCreateTime"`
	BlogID    uint      `json:"blog_id" gorm:"column:blog_id;index"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:AuthorID"`
}

// TableName specifies the table name.
func (Comment) TableName() string { return "comments" }

// SetValues overwrites every field from form data.
func (c *Comment) SetValues(form url.Values) error {
	text, err := requiredFormValue(form, "text")
	if err != nil {
		return err
	}
	authorID, err := parseFormID(form, "author_id")
	if err != nil {
		return err
	}
	timestamp, err := parseFormTime(form, "timestamp")
	if err != nil {
		return err
	}
	blogID, err := parseFormID(form, "blog_id")
	if err != nil {
		return err
	}
	c.Text = text
	c.AuthorID = authorID
	c.Timestamp = timestamp
	c.BlogID = blogID
	return nil
}
