package model

import "time"

// DemoRequest is a prospect's request for a product demo, created by the
// public site. The admin UI only reads, edits, or deletes these.
type DemoRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Hotel     string    `json:"hotel"`
	Rooms     int       `json:"rooms"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateDemoRequest is the public form payload.
type CreateDemoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Hotel string `json:"hotel"`
	Rooms int    `json:"rooms"`
}

// UpdateDemoRequest is a partial admin edit of a demo request.
type UpdateDemoRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Hotel *string `json:"hotel,omitempty"`
	Rooms *int    `json:"rooms,omitempty"`
}
