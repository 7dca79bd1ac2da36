package domain

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"job-portal-backend/pkg/auth"
)

const (
	RoleApplicant = "applicant"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID              string    `json:"id" bson:"_id"`
	Email           string    `json:"email" bson:"email"`
	PasswordHash    string    `json:"-" bson:"password"`
	FirstName       string    `json:"firstName" bson:"firstName"`
	LastName        string    `json:"lastName" bson:"lastName"`
	Title           string    `json:"title,omitempty" bson:"title,omitempty"`
	Location        string    `json:"location,omitempty" bson:"location,omitempty"`
	Description     string    `json:"description,omitempty" bson:"description,omitempty"`
	Skills          []string  `json:"skills" bson:"skills"`
	ProfileImage    *string   `json:"profileImage" bson:"profileImage,omitempty"`
	ProfileImageURL *string   `json:"profileImageUrl" bson:"-"`
	Role            string    `json:"role" bson:"role"`
	CreatedAt       time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt" bson:"updatedAt"`
}

// NormalizeEmail trims and lower-cases an address; uniqueness is checked on this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SetPassword always hashes and replaces the stored password hash.
func (u *User) SetPassword(password string) error {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

// CheckPassword reports whether password matches the stored hash.
func (u *User) CheckPassword(password string) bool {
	return auth.CheckPassword(password, u.PasswordHash)
}

// SyncProfileImageURL derives ProfileImageURL from ProfileImage.
func (u *User) SyncProfileImageURL() {
	if u.ProfileImage == nil || *u.ProfileImage == "" {
		u.ProfileImageURL = nil
		return
	}
	url := MediaURL(*u.ProfileImage)
	u.ProfileImageURL = &url
}

// CoerceSkills turns an arbitrary JSON value into a skill list. Anything that
// is not an array becomes an empty list; scalar elements are kept as strings.
func CoerceSkills(raw json.RawMessage) []string {
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}
	skills := make([]string, 0, len(items))
	for _, item := range items {
		switch v := item.(type) {
		case string:
			skills = append(skills, v)
		case float64, bool:
			skills = append(skills, fmt.Sprint(v))
		}
	}
	return skills
}

type RegisterInput struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"firstName" validate:"required,valid_name"`
	LastName  string `json:"lastName" validate:"required,valid_name"`
	Role      string `json:"role" validate:"omitempty,oneof=applicant recruiter"`
}

// ProfileUpdate holds the profile fields a client may overwrite; nil means keep.
type ProfileUpdate struct {
	FirstName   *string `json:"firstName" validate:"omitempty,min=1,valid_name"`
	LastName    *string `json:"lastName" validate:"omitempty,min=1,valid_name"`
	Title       *string `json:"title" validate:"omitempty,max=200"`
	Location    *string `json:"location" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=5000"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

type UserUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, update ProfileUpdate) (*User, error)
	UpdateSkills(ctx context.Context, id string, skills []string) ([]string, error)
	UpdateProfileImage(ctx context.Context, id string, upload Upload) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}
