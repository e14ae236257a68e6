package models

import "time"

// Photo represents a user-uploaded photo. The image payload travels inline
// as a data URL in Src, so the client can render it without a second fetch.
type Photo struct {
	ID        int       `json:"id"`
	UserID    int       `json:"-"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mimeType"`
	Src       string    `json:"src"`
	CreatedAt time.Time `json:"createdAt"`
}
