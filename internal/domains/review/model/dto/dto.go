package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/review/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateReviewRequest struct {
	RoomID  string `json:"room_id" validate:"required,uuid4"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(userID, user string) model.Review {
	return model.Review{
		ID:      uuid.NewString(),
		UserID:  userID,
		RoomID:  c.RoomID,
		Rating:  c.Rating,
		Comment: c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ReviewResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	RoomID   string `json:"room_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	UserName string `json:"user_name"`
	RoomName string `json:"room_name"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(model model.Review) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.RoomID = model.RoomID
	r.Rating = model.Rating
	r.Comment = model.Comment
	r.UserName = model.UserName
	r.RoomName = model.RoomName
	r.Metadata.FromModel(model.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
