package dto

import "time"

type CreatePartnerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	LogoURL string `json:"logo_url" binding:"omitempty,url"`
	Website string `json:"website" binding:"omitempty,url"`
	Active  *bool  `json:"active"`
}

type UpdatePartnerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=200"`
	LogoURL *string `json:"logo_url" binding:"omitempty,url"`
	Website *string `json:"website" binding:"omitempty,url"`
	Active  *bool   `json:"active"`
}

type PartnerResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url,omitempty"`
	Website   string    `json:"website,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
