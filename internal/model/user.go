package model

import (
	"net/url"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor applied to every stored password hash.
const BcryptCost = 10

// User represents a registered account.
type User struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	Name         string `json:"name" gorm:"size:255"`
	Email        string `json:"email" gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	IsAdmin      bool   `json:"is_admin" gorm:"default:false"`

	// Relations
	Blogs    []Blog    `json:"-" gorm:"foreignKey:UserID"`
	Comments []Comment `json:"-" gorm:"foreignKey:AuthorID"`
}

// TableName specifies the table name.
func (User) TableName() string { return "users" }

// SetPassword hashes and stores the password. The raw value is never kept.
func (u *User) SetPassword(password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// CheckPassword verifies a candidate password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetValues overwrites every field from form data. The password_hash field
// carries the raw password and is hashed before storage.
func (u *User) SetValues(form url.Values) error {
	email, err := requiredFormValue(form, "email")
	if err != nil {
		return err
	}
	password, err := requiredFormValue(form, "password_hash")
	if err != nil {
		return err
	}
	u.Name = formValue(form, "name")
	u.Email = email
	return u.SetPassword(password)
}
