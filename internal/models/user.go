package models

import (
	"strings"
)

// Role is the user's side of the marketplace. Empty means no role selected yet.
type Role string

const (
	RoleWorker   Role = "worker"
	RoleEmployer Role = "employer"
)

// Status is the account status shown in user management.
type Status string

const (
	StatusActive    Status = "active"
	StatusSuspended Status = "suspended"
)

// User is the only durable entity: one entry of the user directory.
// swagger:model User
type User struct {
	ID             int      `json:"id"`                                                        // Assigned by the directory, immutable
	Name           string   `json:"name"`                                                      // Display name
	Email          string   `json:"email"`                                                     // Lookup key, not unique
	Type           Role     `json:"type,omitempty" validate:"omitempty,oneof=worker employer"` // Absent until role selection
	Profession     string   `json:"profession,omitempty"`                                      // Workers only
	Location       string   `json:"location,omitempty"`
	Rating         *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	Verified       *bool    `json:"verified,omitempty"`
	Status         Status   `json:"status,omitempty" validate:"omitempty,oneof=active suspended"`
	JobsPosted     *int     `json:"jobsPosted,omitempty" validate:"omitempty,min=0"` // Employers only
	RegisteredDate Date     `json:"registeredDate"`                                  // Set once at creation
	LastActive     Date     `json:"lastActive"`                                      // Touched on every update
}

// IsWorker reports whether the user completed the worker role selection.
func (u User) IsWorker() bool { return u.Type == RoleWorker }

// IsEmployer reports whether the user completed the employer role selection.
func (u User) IsEmployer() bool { return u.Type == RoleEmployer }

// EffectiveStatus returns the status, treating an unset status as active.
func (u User) EffectiveStatus() Status {
	if u.Status == "" {
		return StatusActive
	}
	return u.Status
}

// Clone returns a deep copy so callers can't reach into stored pointers.
func (u User) Clone() User {
	c := u
	if u.Rating != nil {
		r := *u.Rating
		c.Rating = &r
	}
	if u.Verified != nil {
		v := *u.Verified
		c.Verified = &v
	}
	if u.JobsPosted != nil {
		j := *u.JobsPosted
		c.JobsPosted = &j
	}
	return c
}

// NameFromEmail derives a display name from the local part of an email address.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	return local
}

// NewUser is the caller-supplied part of a registration.
// swagger:model NewUser
type NewUser struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Type       Role     `json:"type,omitempty"`
	Profession string   `json:"profession,omitempty"`
	Location   string   `json:"location,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Verified   *bool    `json:"verified,omitempty"`
	Status     Status   `json:"status,omitempty"`
	JobsPosted *int     `json:"jobsPosted,omitempty"`
}

// User builds the record for the given id, with both dates set to today.
func (n NewUser) User(id int, today Date) User {
	return User{
		ID:             id,
		Name:           n.Name,
		Email:          n.Email,
		Type:           n.Type,
		Profession:     n.Profession,
		Location:       n.Location,
		Rating:         n.Rating,
		Verified:       n.Verified,
		Status:         n.Status,
		JobsPosted:     n.JobsPosted,
		RegisteredDate: today,
		LastActive:     today,
	}.Clone()
}

// UserPatch is a shallow partial update. Nil fields are left untouched.
// Id and registration date have no counterpart here; they can't change.
// swagger:model UserPatch
type UserPatch struct {
	Name       *string  `json:"name,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Type       *Role    `json:"type,omitempty"`
	Profession *string  `json:"profession,omitempty"`
	Location   *string  `json:"location,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Verified   *bool    `json:"verified,omitempty"`
	Status     *Status  `json:"status,omitempty"`
	JobsPosted *int     `json:"jobsPosted,omitempty"`
}

// Apply merges the patch into u and returns the result. u itself is not modified.
// Changing Type clears the fields of the previous role unless the patch sets them.
func (p UserPatch) Apply(u User) User {
	out := u.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Email != nil {
		out.Email = *p.Email
	}
	if p.Type != nil {
		if *p.Type != u.Type {
			// Leaving a role drops its fields.
			if *p.Type != RoleWorker {
				out.Profession = ""
			}
			if *p.Type != RoleEmployer {
				out.JobsPosted = nil
			}
		}
		out.Type = *p.Type
	}
	if p.Profession != nil {
		out.Profession = *p.Profession
	}
	if p.Location != nil {
		out.Location = *p.Location
	}
	if p.Rating != nil {
		r := *p.Rating
		out.Rating = &r
	}
	if p.Verified != nil {
		v := *p.Verified
		out.Verified = &v
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.JobsPosted != nil {
		j := *p.JobsPosted
		out.JobsPosted = &j
	}
	return out
}

// UserFilter selects users in the admin user list.
// Empty fields match everything.
type UserFilter struct {
	Query  string // Case-insensitive substring of name or email
	Type   Role
	Status Status
}

// Match reports whether u passes the filter.
func (f UserFilter) Match(u User) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(u.Name), q) && !strings.Contains(strings.ToLower(u.Email), q) {
			return false
		}
	}
	if f.Type != "" && u.Type != f.Type {
		return false
	}
	if f.Status != "" && u.EffectiveStatus() != f.Status {
		return false
	}
	return true
}

// UserStats summarizes the directory for the admin dashboard.
// swagger:model UserStats
type UserStats struct {
	TotalWorkers   int    `json:"total_workers"`
	TotalEmployers int    `json:"total_employers"`
	Recent         []User `json:"recent"`
}
