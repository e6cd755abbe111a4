package model

import "lodge/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldType        = "type"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldImage       = "image"
	FieldStatus      = "status"
)

const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusBooked      = "Booked"
)

type Room struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Type        string  `db:"type"`
	Price       float64 `db:"price"`
	Description string  `db:"description"`
	Capacity    int     `db:"capacity"`
	Image       string  `db:"image"`
	Status      string  `db:"status"`
	model.Metadata
}
