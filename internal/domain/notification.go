package domain

import "time"

const NotificationTypeBloodRequest = "blood_request"

// Notification is a directed message from one uid to another, usually
// referencing a BloodRequest. Only the recipient may flip IsRead, and it
// never resets to false.
type Notification struct {
	ID      int64  `json:"id"`
	ToUID   string `json:"toUid"`
	FromUID string `json:"fromUid,omitempty"`
	Type    string `json:"type"`

	Title   string `json:"title"`
	Message string `json:"message"`

	RequestID *int64        `json:"requestId,omitempty"`
	Request   *BloodRequest `json:"request,omitempty"`

	IsRead bool `json:"isRead"`

	CreatedAt time.Time `json:"createdAt"`
}
