package model

import "lodge/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID      = "id"
	FieldUserID  = "user_id"
	FieldRoomID  = "room_id"
	FieldRating  = "rating"
	FieldComment = "comment"
)

type Review struct {
	ID       string `db:"id"`
	UserID   string `db:"user_id"`
	RoomID   string `db:"room_id"`
	Rating   int    `db:"rating"`
	Comment  string `db:"comment"`
	UserName string `db:"user_name" table:"users" column:"name"`
	RoomName string `db:"room_name" table:"rooms" column:"name"`
	model.Metadata
}

func (Review) GetJoinQuery() string {
	return `JOIN users ON users.id = reviews.user_id
		JOIN rooms ON rooms.id = reviews.room_id`
}
