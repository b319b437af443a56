// appcast — клиент внешнего джоб-поискового API.
package appcast

import (
	"net/http"
	"time"
)

// Param — одна пара ключ/значение плоского строкового протокола Appcast.
// Параметры собираются транслятором как упорядоченный список; клиент
// кодирует их в query string как есть.
type Param struct {
	Key   string
	Value string
}

// Ключи протокола Appcast, используемые транслятором.
const (
	ParamFunction      = "function"
	ParamKeyword       = "keyword"
	ParamCoordinates   = "coordinates"
	ParamLocation      = "location"
	ParamSortBy        = "sort_by"
	ParamSortDirection = "sort_direction"
	ParamPage          = "page"
	ParamPageSize      = "limit"
	ParamJobID         = "job_id"
)

// Токены сортировки протокола Appcast.
const (
	SortByScore      = "_score"
	SortByLocation   = "location"
	SortByPostedDate = "posted_at"
	// Стоимостные колонки: для них осмысленный дефолт направления — DESC.
	SortByCPC = "cpc"
	SortByCPA = "cpa"
)

// Config — настройки клиента.
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// HTTPClient позволяет подменить транспорт в тестах; nil — дефолтный.
	HTTPClient *http.Client
}

// Client выполняет запросы к Appcast API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// SearchResult — страница выдачи провайдера.
type SearchResult struct {
	Page       int
	TotalPages int
	JobsCount  int
	Jobs       []Job
}

// Job — вакансия в терминах провайдера (до маппинга в models.Hustle).
type Job struct {
	ID          string
	Title       string
	Company     string
	Description string
	City        string
	State       string
	URL         string
	Category    string
	LogoURL     string
	// PostedAt нулевой, если провайдер не прислал дату.
	PostedAt time.Time
}

// Wire-типы ответов Appcast.

type searchResponse struct {
	Page       int           `json:"page"`
	TotalPages int           `json:"total_pages"`
	JobsCount  int           `json:"jobs_count"`
	Jobs       []jobPosting  `json:"jobs"`
}

type jobPosting struct {
	ID       string `json:"job_id"`
	Title    string `json:"title"`
	Employer struct {
		Name    string `json:"name"`
		LogoURL string `json:"logo_url"`
	} `json:"employer"`
	Body     string `json:"body"`
	City     string `json:"city"`
	State    string `json:"state"`
	URL      string `json:"url"`
	Function string `json:"function"`
	PostedAt string `json:"posted_at"`
}
