// Package model holds the persisted row types and the view shapes the
// dashboard consumes.
//
// Rows mirror the database schema; view types are per-request
// aggregations built by the service layer and never stored.
package model

import "time"

// Habit is a single trackable to-do item owned by one user within
// one group. It maps 1:1 onto the habits table.
type Habit struct {
	ID        int64     `json:"id"`
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// GroupMembership is the join between a user and a group.
//
// A user is expected to have at most one membership; when several exist
// the earliest row wins and the tie-break is otherwise arbitrary.
type GroupMembership struct {
	GroupID   string    `json:"group_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
