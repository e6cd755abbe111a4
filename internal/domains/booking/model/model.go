package model

import (
	"time"

	"lodge/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID           = "id"
	FieldUserID       = "user_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldGuests       = "guests"
	FieldTotalPrice   = "total_price"
	FieldStatus       = "status"
	FieldCreatedAt    = "created_at"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCancelled  = "cancelled"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
)

// transitions holds the allowed status moves. Absent targets are rejected.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

func IsTerminal(status string) bool {
	return len(transitions[status]) == 0
}

// BlockingStatuses are the states that hold a room for their date range.
// Pending bookings do not block: unconfirmed requests may race for the same
// room until one of them is confirmed.
func BlockingStatuses() []string {
	return []string{StatusConfirmed, StatusCheckedIn}
}

type Booking struct {
	ID           string    `db:"id"`
	UserID       string    `db:"user_id"`
	RoomID       string    `db:"room_id"`
	CheckInDate  time.Time `db:"check_in_date"`
	CheckOutDate time.Time `db:"check_out_date"`
	Guests       int       `db:"guests"`
	TotalPrice   float64   `db:"total_price"`
	Status       string    `db:"status"`
	RoomName     string    `db:"room_name"  table:"rooms" column:"name"`
	RoomType     string    `db:"room_type"  table:"rooms" column:"type"`
	RoomPrice    float64   `db:"room_price" table:"rooms" column:"price"`
	RoomImage    string    `db:"room_image" table:"rooms" column:"image"`
	UserName     string    `db:"user_name"  table:"users" column:"name"`
	UserEmail    string    `db:"user_email" table:"users" column:"email"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return `JOIN rooms ON rooms.id = room_bookings.room_id
		JOIN users ON users.id = room_bookings.user_id`
}
