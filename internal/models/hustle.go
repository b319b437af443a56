// models содержит доменные сущности hustle-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Provider — источник вакансии: локальный каталог (dave)
// либо внешний джоб-агрегатор (appcast). Закрытое множество значений.
type Provider string

const (
	// ProviderDave — локально курируемый каталог подработок.
	ProviderDave Provider = "dave"
	// ProviderAppcast — внешний поисковый API.
	ProviderAppcast Provider = "appcast"
)

// ParseProvider возвращает Provider по строковому токену.
// Неизвестный токен -> ok == false.
func ParseProvider(raw string) (Provider, bool) {
	switch Provider(raw) {
	case ProviderDave:
		return ProviderDave, true
	case ProviderAppcast:
		return ProviderAppcast, true
	default:
		return "", false
	}
}

// Category — закрытый перечень категорий подработок.
type Category string

const (
	CategoryCleaning        Category = "Cleaning"
	CategoryCreative        Category = "Creative"
	CategoryCustomerService Category = "Customer Service"
	CategoryDataEntry       Category = "Data Entry"
	CategoryDelivery        Category = "Delivery"
	CategoryHandyman        Category = "Handyman"
	CategoryMoving          Category = "Moving"
	CategoryPetCare         Category = "Pet Care"
	CategoryRideshare       Category = "Rideshare"
	CategoryTutoring        Category = "Tutoring"
)

// Categories — канонический порядок категорий (используется каталогом).
var Categories = []Category{
	CategoryCleaning,
	CategoryCreative,
	CategoryCustomerService,
	CategoryDataEntry,
	CategoryDelivery,
	CategoryHandyman,
	CategoryMoving,
	CategoryPetCare,
	CategoryRideshare,
	CategoryTutoring,
}

// ParseCategory сопоставляет строку с канонической категорией.
// Матч строгий — по точному каноническому написанию.
func ParseCategory(raw string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == raw {
			return c, true
		}
	}
	return "", false
}

// SortDirection — направление сортировки.
type SortDirection int8

const (
	// SortUnset — сортировка не запрошена.
	SortUnset SortDirection = iota
	SortAsc
	SortDesc
)

// String возвращает токен направления для внешних протоколов.
func (d SortDirection) String() string {
	switch d {
	case SortAsc:
		return "asc"
	case SortDesc:
		return "desc"
	default:
		return ""
	}
}

// ParseSortDirection разбирает asc/desc без учёта регистра.
func ParseSortDirection(raw string) (SortDirection, bool) {
	switch strings.ToLower(raw) {
	case "asc":
		return SortAsc, true
	case "desc":
		return SortDesc, true
	default:
		return SortUnset, false
	}
}

// Hustle — провайдеро-независимая read-модель вакансии.
// Собирается заново на каждый запрос из локального хранилища либо
// из ответа внешнего провайдера; в таком виде никогда не персистится.
type Hustle struct {
	Name          string
	Company       string
	Description   string
	City          string
	State         string
	AffiliateLink string
	// Category может быть пустой — внешний провайдер категории не обязателен.
	Category   Category
	ExternalID string
	Provider   Provider
	IsActive   bool
	// PostedAt == nil — дата публикации неизвестна.
	PostedAt *time.Time
	LogoURL  string
}

// SearchCriteria — валидированные критерии поиска (время жизни — один запрос).
//
// Инварианты (гарантируются нормализатором):
//   - DistanceSort и PostedDateSort взаимоисключающие;
//   - Radius и DistanceSort осмысленны только вместе с Lat+Long;
//   - задано хотя бы одно из Keywords/Category/Partner/(Lat&&Long).
type SearchCriteria struct {
	Keywords []string
	Category Category
	// Lat/Long — десятичные строки, либо обе заданы, либо обе пусты.
	Lat  string
	Long string
	// Radius в милях; 0 — не задан.
	Radius  int
	Partner Provider
	PostedDateSort SortDirection
	DistanceSort   SortDirection
	// Page — номер страницы; 0 — валидный явный запрос первой страницы.
	// PageSet отличает «страница 0» от «страница не задана».
	Page    int
	PageSet bool
}

// HasLocation сообщает, заданы ли координаты.
func (c SearchCriteria) HasLocation() bool {
	return c.Lat != "" && c.Long != ""
}

// CallerLocation — известное местоположение пользователя (best-effort
// персонализация внешнего поиска; может быть пустым).
type CallerLocation struct {
	City  string
	State string
}

// SearchResult — страница агрегированной выдачи.
// Message непустой только при деградированном ответе (внешний провайдер
// недоступен, выдача собрана без его результатов).
type SearchResult struct {
	Page       int
	TotalPages int
	Hustles    []Hustle
	Message    string
}

// CategoryInfo — строка каталога категорий для витрины.
type CategoryInfo struct {
	Category Category
	Label    string
	ImageURL string
	Priority int
}

// JobPack — курируемая подборка подработок.
type JobPack struct {
	ID          uuid.UUID
	Name        string
	Description string
	ImageURL    string
	// SearchTerms — готовая строка ключевых слов для перехода в поиск.
	SearchTerms string
	SortOrder   int
}
