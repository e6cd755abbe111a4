package model

const (
	EventNewNotification = "new_notification"

	TypeInquiry = "inquiry"
)

// Event is the payload broadcast to connected staff clients.
type Event struct {
	Event   string `json:"event"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func NewInquiryEvent(name, subject string) Event {
	return Event{
		Event:   EventNewNotification,
		Message: "New Inquiry from " + name + ": \"" + subject + "\"",
		Type:    TypeInquiry,
	}
}
