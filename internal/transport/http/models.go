package http

// Транспортные модели ответов. Доменные типы (internal/models) JSON-тегов
// не несут; на границе они конвертируются в DTO с устойчивым контрактом.
// Поле id всегда составное ("provider|externalId") — тот же идентификатор,
// что принимают точечные и save/unsave-ручки.

import (
	"time"

	"github.com/steadypay/hustle-service/internal/models"
)

type hustleResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Company       string     `json:"company"`
	Description   string     `json:"description,omitempty"`
	City          string     `json:"city,omitempty"`
	State         string     `json:"state,omitempty"`
	AffiliateLink string     `json:"affiliate_link,omitempty"`
	Category      string     `json:"category,omitempty"`
	Provider      string     `json:"provider"`
	IsActive      bool       `json:"is_active"`
	PostedAt      *time.Time `json:"posted_at,omitempty"`
	LogoURL       string     `json:"logo_url,omitempty"`
}

type searchResponse struct {
	Page       int              `json:"page"`
	TotalPages int              `json:"total_pages"`
	Hustles    []hustleResponse `json:"hustles"`
	Message    string           `json:"message,omitempty"`
}

type categoryResponse struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	ImageURL string `json:"image_url,omitempty"`
	Priority int    `json:"priority"`
}

type jobPackResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	SearchTerms string `json:"search_terms"`
	SortOrder   int    `json:"sort_order"`
}

type savedHustlesResponse struct {
	Hustles []hustleResponse `json:"hustles"`
}

func hustleToResponse(h models.Hustle) hustleResponse {
	return hustleResponse{
		ID:            models.EncodeHustleID(h.Provider, h.ExternalID),
		Name:          h.Name,
		Company:       h.Company,
		Description:   h.Description,
		City:          h.City,
		State:         h.State,
		AffiliateLink: h.AffiliateLink,
		Category:      string(h.Category),
		Provider:      string(h.Provider),
		IsActive:      h.IsActive,
		PostedAt:      h.PostedAt,
		LogoURL:       h.LogoURL,
	}
}

func hustlesToResponse(hustles []models.Hustle) []hustleResponse {
	out := make([]hustleResponse, 0, len(hustles))
	for _, h := range hustles {
		out = append(out, hustleToResponse(h))
	}
	return out
}

func searchToResponse(result *models.SearchResult) searchResponse {
	return searchResponse{
		Page:       result.Page,
		TotalPages: result.TotalPages,
		Hustles:    hustlesToResponse(result.Hustles),
		Message:    result.Message,
	}
}

func categoriesToResponse(categories []models.CategoryInfo) []categoryResponse {
	out := make([]categoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, categoryResponse{
			Category: string(c.Category),
			Label:    c.Label,
			ImageURL: c.ImageURL,
			Priority: c.Priority,
		})
	}
	return out
}

func jobPacksToResponse(packs []models.JobPack) []jobPackResponse {
	out := make([]jobPackResponse, 0, len(packs))
	for _, p := range packs {
		out = append(out, jobPackResponse{
			ID:          p.ID.String(),
			Name:        p.Name,
			Description: p.Description,
			ImageURL:    p.ImageURL,
			SearchTerms: p.SearchTerms,
			SortOrder:   p.SortOrder,
		})
	}
	return out
}
