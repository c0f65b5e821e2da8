// Copyright (c) 2026 Linkhive. All rights reserved.
// Author: dev@linkhive.app

/*
Package bookmark implements Linkhive's core resource: per-user saved links.

# Architecture

Every bookmark belongs to exactly one owner and every operation is scoped to
the identity carried by the request's verified token. The ownership rules
are deliberately asymmetric:

  - Reading a bookmark you don't own yields NOT FOUND, so the API does not
    confirm that the ID exists at all.
  - Writing (update/delete) a bookmark you don't own yields FORBIDDEN.

Search runs over a pre-folded text column (accent-stripped, lowercased), so
"Café" and "cafe" match the same rows without per-query normalization cost.
*/
package bookmark

import "time"

// Bookmark represents a saved link owned by a single user.
type Bookmark struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation in the bookmark domain.
const (
	FieldTitle       = "title"
	FieldLink        = "link"
	FieldDescription = "description"
	FieldID          = "id"
	FieldQuery       = "q"
)

// # Content Constraints

const (
	// TitleMaxLength bounds the bookmark title.
	TitleMaxLength = 200

	// DescriptionMaxLength bounds the optional free-text description.
	DescriptionMaxLength = 1000
)
