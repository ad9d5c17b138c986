package models

import (
	"encoding/json"
	"fmt"
)

// Post represents a single post as served by the upstream API. Posts are
// decoded from the wire and never mutated afterwards.
type Post struct {
	UserID int    `json:"userId"`
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

// postWire mirrors Post with pointer fields so a missing key can be told
// apart from a present zero value.
type postWire struct {
	UserID *int    `json:"userId"`
	ID     *int    `json:"id"`
	Title  *string `json:"title"`
	Body   *string `json:"body"`
}

// UnmarshalJSON enforces the wire contract strictly: all four fields must be
// present and correctly typed, or the element is rejected. Rejecting one
// element fails the whole batch decode, so a response never yields partial
// results.
func (p *Post) UnmarshalJSON(data []byte) error {
	var w postWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch {
	case w.UserID == nil:
		return fmt.Errorf("post is missing required field %q", "userId")
	case w.ID == nil:
		return fmt.Errorf("post is missing required field %q", "id")
	case w.Title == nil:
		return fmt.Errorf("post is missing required field %q", "title")
	case w.Body == nil:
		return fmt.Errorf("post is missing required field %q", "body")
	}
	p.UserID = *w.UserID
	p.ID = *w.ID
	p.Title = *w.Title
	p.Body = *w.Body
	return nil
}
