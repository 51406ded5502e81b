// CareerCanvas - Career Exploration and Personalized Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careercanvas

package models

import (
	"slices"
	"time"
)

// Roles understood by the authorization policy.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account. PasswordHash never leaves the server.
type User struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	Name          string    `json:"name,omitempty"`
	Email         string    `json:"email,omitempty"`
	Role          string    `json:"role"`
	SavedCareers  []int     `json:"savedCareers"`
	LikedCareers  []int     `json:"likedCareers"`
	QuizCompleted bool      `json:"quizCompleted"`
	CreatedAt     time.Time `json:"createdAt"`
}

// NewUser holds the fields accepted at registration.
type NewUser struct {
	Username     string
	PasswordHash string
	Name         string
	Email        string
	Role         string
}

// CareerList selects one of the per-user career id lists.
type CareerList int

const (
	SavedCareers CareerList = iota + 1
	LikedCareers
)

// String returns the list name used in URLs and log fields.
func (l CareerList) String() string {
	switch l {
	case SavedCareers:
		return "saved"
	case LikedCareers:
		return "liked"
	default:
		return "unknown"
	}
}

// List returns the ids for l.
func (u *User) List(l CareerList) []int {
	if l == LikedCareers {
		return u.LikedCareers
	}
	return u.SavedCareers
}

// AddToList appends careerID to list l unless already present. It reports
// whether the list changed.
func (u *User) AddToList(l CareerList, careerID int) bool {
	ids := u.List(l)
	if slices.Contains(ids, careerID) {
		return false
	}
	u.setList(l, append(ids, careerID))
	return true
}

// RemoveFromList removes careerID from list l. It reports whether the list
// changed.
func (u *User) RemoveFromList(l CareerList, careerID int) bool {
	ids := u.List(l)
	i := slices.Index(ids, careerID)
	if i < 0 {
		return false
	}
	u.setList(l, slices.Delete(slices.Clone(ids), i, i+1))
	return true
}

func (u *User) setList(l CareerList, ids []int) {
	if l == LikedCareers {
		u.LikedCareers = ids
		return
	}
	u.SavedCareers = ids
}

// Clone returns a deep copy so stores can hand out users without sharing
// slices.
func (u *User) Clone() *User {
	c := *u
	c.SavedCareers = slices.Clone(u.SavedCareers)
	c.LikedCareers = slices.Clone(u.LikedCareers)
	if c.SavedCareers == nil {
		c.SavedCareers = []int{}
	}
	if c.LikedCareers == nil {
		c.LikedCareers = []int{}
	}
	return &c
}
