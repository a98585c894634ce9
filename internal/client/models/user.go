package models

import "strings"

// User is the authenticated account as reported by the backend. It is a
// cache of server truth, rebuilt from the "who am I" endpoint on every app
// start; the bearer token, not this struct, is the durable client state.
type User struct {
	ID             string `json:"_id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	DOB            string `json:"dob,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// FullName returns "First Last", falling back to the email when the name
// fields are empty.
func (u *User) FullName() string {
	s := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if s == "" {
		return u.Email
	}
	return s
}

// DateOfBirth returns the date part of the dob field, which the backend
// reports as an ISO timestamp.
func (u *User) DateOfBirth() string {
	if i := strings.IndexByte(u.DOB, 'T'); i >= 0 {
		return u.DOB[:i]
	}
	return u.DOB
}
