// Package model defines the data structures used throughout the application.
package model

import "time"

// Repository is one public repository of an account, as published by the
// GitHub API and normalised for this application.
//
// Records are built fresh from every API response and never mutated
// afterwards. Optional upstream fields (description, language, homepage)
// are represented by the empty string.
//
// The JSON tags describe OUR API's shape (camelCase), not GitHub's.
// The GitHub wire format is decoded by go-github in the repository layer.
type Repository struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	FullName        string    `json:"fullName"`                  // "owner/name"
	Description     string    `json:"description,omitempty"`     // may be empty
	URL             string    `json:"url"`                       // html_url
	PrimaryLanguage string    `json:"primaryLanguage,omitempty"` // may be empty
	StarCount       int       `json:"starCount"`
	ForkCount       int       `json:"forkCount"`
	LastUpdatedAt   time.Time `json:"lastUpdatedAt"`
	Topics          []string  `json:"topics"` // order as returned by GitHub
	HomepageURL     string    `json:"homepageUrl,omitempty"`
}
