package model

import "net/url"

// Tag labels blogs; linked many-to-many through blog_tags.
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:255"`
}

// TableName specifies the table name.
func (Tag) TableName() string { return "tag" }

// SetValues overwrites every field from form data.
func (t *Tag) SetValues(form url.Values) error {
	name, err := requiredFormValue(form, "name")
	if err != nil {
		return err
	}
	t.Name = name
	return nil
}
