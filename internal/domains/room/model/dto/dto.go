package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/room/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateRoomRequest struct {
	Name        string  `json:"name"        validate:"required,max=100"`
	Type        string  `json:"type"        validate:"required,max=50"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Description string  `json:"description" validate:"omitempty,max=1000"`
	Capacity    int     `json:"capacity"    validate:"required,min=1"`
	Image       string  `json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
	Status      string  `json:"status"      validate:"omitempty,oneof=Available Maintenance Booked"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Type:        c.Type,
		Price:       c.Price,
		Description: c.Description,
		Capacity:    c.Capacity,
		Image:       imageURL,
		Status:      status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string  `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Type        string  `db:"type"        json:"type"        validate:"omitempty,max=50"`
	Price       float64 `db:"price"       json:"price"       validate:"omitempty,gt=0"`
	Description string  `db:"description" json:"description" validate:"omitempty,max=1000"`
	Capacity    int     `db:"capacity"    json:"capacity"    validate:"omitempty,min=1"`
	Image       string  `json:"image"                        validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
	Status      string  `db:"status"      json:"status"      validate:"omitempty,oneof=Available Maintenance Booked"`
}

type RoomResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	Image       string  `json:"image"`
	Status      string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Price = model.Price
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.Image = model.Image
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
