package dto

import (
	"encoding/json"
	"time"
)

type CreateActivityRequest struct {
	Title     string          `json:"title" binding:"required,min=2,max=200"`
	Summary   string          `json:"summary" binding:"omitempty,max=500"`
	Body      string          `json:"body"`
	Location  string          `json:"location" binding:"omitempty,max=200"`
	StartsAt  *time.Time      `json:"starts_at"`
	Published bool            `json:"published"`
	Gallery   json.RawMessage `json:"gallery"`
}

type UpdateActivityRequest struct {
	Title     *string         `json:"title" binding:"omitempty,min=2,max=200"`
	Summary   *string         `json:"summary" binding:"omitempty,max=500"`
	Body      *string         `json:"body"`
	Location  *string         `json:"location" binding:"omitempty,max=200"`
	StartsAt  *time.Time      `json:"starts_at"`
	Published *bool           `json:"published"`
	Gallery   json.RawMessage `json:"gallery"`
}

type ActivityResponse struct {
	ID            uint                           `json:"id"`
	Title         string                         `json:"title"`
	Summary       string                         `json:"summary,omitempty"`
	Body          string                         `json:"body,omitempty"`
	Location      string                         `json:"location,omitempty"`
	StartsAt      *time.Time                     `json:"starts_at,omitempty"`
	Published     bool                           `json:"published"`
	Gallery       json.RawMessage                `json:"gallery,omitempty"`
	Programs      []ActivityProgramResponse      `json:"programs,omitempty"`
	Organizations []ActivityOrganizationResponse `json:"organizations,omitempty"`
	CreatedAt     time.Time                      `json:"created_at"`
	UpdatedAt     time.Time                      `json:"updated_at"`
}

// ActivityProgramInput is one entry of a full-replacement write. Order
// is stored exactly as supplied.
type ActivityProgramInput struct {
	Order       int    `json:"order"`
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Description string `json:"description"`
	TimeLabel   string `json:"time_label" binding:"omitempty,max=50"`
}

type ReplaceProgramsRequest struct {
	// An empty list is a valid write: it clears the collection.
	Programs []ActivityProgramInput `json:"programs" binding:"dive"`
}

type ActivityProgramResponse struct {
	ID          uint   `json:"id"`
	Order       int    `json:"order"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	TimeLabel   string `json:"time_label,omitempty"`
}

type ActivityOrganizationInput struct {
	Order     int    `json:"order"`
	Name      string `json:"name" binding:"required,min=1,max=200"`
	RoleLabel string `json:"role_label" binding:"omitempty,max=100"`
	LogoURL   string `json:"logo_url" binding:"omitempty,url"`
	Website   string `json:"website" binding:"omitempty,url"`
}

type ReplaceOrganizationsRequest struct {
	Organizations []ActivityOrganizationInput `json:"organizations" binding:"dive"`
}

type ActivityOrganizationResponse struct {
	ID        uint   `json:"id"`
	Order     int    `json:"order"`
	Name      string `json:"name"`
	RoleLabel string `json:"role_label,omitempty"`
	LogoURL   string `json:"logo_url,omitempty"`
	Website   string `json:"website,omitempty"`
}
