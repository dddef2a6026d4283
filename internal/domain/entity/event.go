package entity

import "time"

// Event is a user-created event whose thumbnail lives in object storage.
// Records are immutable once created.
type Event struct {
	ID              string    `json:"id"`              // Time-ordered unique identifier.
	EventName       string    `json:"eventName"`       // Display name chosen by the owner.
	ThumbnailFileID string    `json:"thumbnailFileId"` // Storage object holding the thumbnail.
	ThumbnailURL    string    `json:"thumbnailUrl"`    // Proxy URL served by this system.
	UserID          string    `json:"userId"`          // Owning user.
	CreatedAt       time.Time `json:"createdAt"`
}

// GalleryImage is a photo attached to an event. EventID is a soft reference:
// it is stored but never checked against recorded events.
type GalleryImage struct {
	ID          string    `json:"id"`
	ImageFileID string    `json:"imageFileId"`
	ImageURL    string    `json:"imageUrl"`
	EventID     string    `json:"eventId"`
	UploadedAt  time.Time `json:"uploadedAt"`
}
