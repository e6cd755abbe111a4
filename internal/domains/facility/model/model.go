package model

import "lodge/shared/model"

const (
	TableName  = "facilities"
	EntityName = "facility"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldTimings     = "timings"
	FieldCategory    = "category"
	FieldIsActive    = "is_active"
)

const (
	DefaultTimings  = "24/7"
	DefaultCategory = "Wellness"
)

type Facility struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Image       string `db:"image"`
	Timings     string `db:"timings"`
	Category    string `db:"category"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}
