package model

import "lodge/shared/model"

const (
	TableName  = "inquiries"
	EntityName = "inquiry"

	FieldID      = "id"
	FieldName    = "name"
	FieldEmail   = "email"
	FieldSubject = "subject"
	FieldMessage = "message"
	FieldStatus  = "status"
)

const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

type Inquiry struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Status  string `db:"status"`
	model.Metadata
}
