package dto

import (
	"github.com/google/uuid"

	"lodge/internal/domains/facility/model"
	"lodge/shared"
	gDto "lodge/shared/dto"
	gModel "lodge/shared/model"
	"lodge/shared/timezone"
)

type CreateFacilityRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=1000"`
	Image       string `json:"image"       validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
	Timings     string `json:"timings"     validate:"omitempty,max=100"`
	Category    string `json:"category"    validate:"omitempty,max=50"`
	IsActive    *bool  `json:"is_active"   validate:"omitempty"`
}

func (c *CreateFacilityRequest) ToModel(user, imageURL string) model.Facility {
	timings := c.Timings
	if timings == "" {
		timings = model.DefaultTimings
	}

	category := c.Category
	if category == "" {
		category = model.DefaultCategory
	}

	isActive := true
	if c.IsActive != nil {
		isActive = *c.IsActive
	}

	return model.Facility{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		Image:       imageURL,
		Timings:     timings,
		Category:    category,
		IsActive:    isActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFacilityRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty,max=1000"`
	Image       string `json:"image"                        validate:"omitempty,mimetypes=image/png image/jpeg image/webp,maxfilesize=5"`
	Timings     string `db:"timings"     json:"timings"     validate:"omitempty,max=100"`
	Category    string `db:"category"    json:"category"    validate:"omitempty,max=50"`
	IsActive    *bool  `db:"is_active"   json:"is_active"   validate:"omitempty"`
}

type FacilityResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Timings     string `json:"timings"`
	Category    string `json:"category"`
	IsActive    bool   `json:"is_active"`
	gDto.Metadata
}

func (r *FacilityResponse) FromModel(model model.Facility) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.Image = model.Image
	r.Timings = model.Timings
	r.Category = model.Category
	r.IsActive = model.IsActive
	r.Metadata.FromModel(model.Metadata)
}

type GetFacilitiesResponse struct {
	Facilities []FacilityResponse `json:"facilities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetFacilitiesResponse) FromModels(models []model.Facility, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Facilities = make([]FacilityResponse, len(models))
	for i, mod := range models {
		r.Facilities[i].FromModel(mod)
	}
}
