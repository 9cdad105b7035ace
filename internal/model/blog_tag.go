package model

import "net/url"

// BlogTag is the join row linking a Blog to a Tag. Associations are made by
// inserting rows here, never by mutating a loaded tag collection.
type BlogTag struct {
	ID     uint `json:"id" gorm:"primaryKey"`
	BlogID uint `json:"blog_id" gorm:"column:blog_id;index"`
	TagID  uint `json:"tag_id" gorm:"column:tag_id;index"`
}

// TableName specifies the table name.
func (BlogTag) TableName() string { return "blog_tags" }

// SetValues overwrites every field from form data.
func (bt *BlogTag) SetValues(form url.Values) error {
	blogID, err := parseFormID(form, "blog_id")
	if err != nil {
		return err
	}
	tagID, err := parseFormID(form, "tag_id")
	if err != nil {
		return err
	}
	bt.BlogID = blogID
	bt.TagID = tagID
	return nil
}
