package service

import (
	"strconv"
	"strings"

	"github.com/steadypay/hustle-service/internal/clients/appcast"
	"github.com/steadypay/hustle-service/internal/config"
	"github.com/steadypay/hustle-service/internal/models"
)

// appcastSearchParams переводит типизированные критерии в плоский словарь
// Appcast. Чистая функция: дефолты приходят явным параметром, а не из
// глобального состояния, чтобы тесты подставляли фикстуру.
//
// Правила:
//   - category -> "function" (свободный текст, та же строка);
//   - keywords -> "keyword" через пробел;
//   - lat/long -> "coordinates" как "<lat>,<long>"; radius дописывается
//     как "<radius>miles";
//   - сортировки -> sort_by/sort_direction; при их отсутствии — дефолт
//     "_score" DESC (для стоимостных колонок cpc/cpa тоже DESC, для
//     остальных — ASC);
//   - page пробрасывается только если запрошен явно;
//   - незаданные не-локационные параметры добираются из defaults;
//   - при отсутствии локации в исходящих параметрах подставляется
//     city/state вызывающего (best-effort, явную локацию не перебивает).
//
// Финальный проход: все значения lower-case и trim; пустые после trim
// ключи молча выбрасываются.
func appcastSearchParams(c models.SearchCriteria, caller models.CallerLocation, defaults config.AppcastDefaults) []appcast.Param {
	var params []appcast.Param
	add := func(key, value string) {
		params = append(params, appcast.Param{Key: key, Value: value})
	}

	if c.Category != "" {
		add(appcast.ParamFunction, string(c.Category))
	} else {
		add(appcast.ParamFunction, defaults.Function)
	}

	if len(c.Keywords) > 0 {
		add(appcast.ParamKeyword, strings.Join(c.Keywords, " "))
	}

	hasLocation := c.HasLocation()
	if hasLocation {
		coordinates := c.Lat + "," + c.Long
		if c.Radius > 0 {
			coordinates += "," + strconv.Itoa(c.Radius) + "miles"
		}
		add(appcast.ParamCoordinates, coordinates)
	}

	sortBy, sortDirection := sortParams(c, defaults)
	add(appcast.ParamSortBy, sortBy)
	add(appcast.ParamSortDirection, sortDirection)

	if c.PageSet {
		add(appcast.ParamPage, strconv.Itoa(c.Page))
	}

	if defaults.PageSize > 0 {
		add(appcast.ParamPageSize, strconv.Itoa(defaults.PageSize))
	}

	if !hasLocation && caller.City != "" && caller.State != "" {
		add(appcast.ParamLocation, caller.City+", "+caller.State)
	}

	// Протокол регистронезависимый: всё в lower-case, пустые значения — вон.
	out := params[:0]
	for _, p := range params {
		value := strings.ToLower(strings.TrimSpace(p.Value))
		if value == "" {
			continue
		}
		out = append(out, appcast.Param{Key: p.Key, Value: value})
	}

	return out
}

// sortParams выбирает колонку и направление сортировки.
func sortParams(c models.SearchCriteria, defaults config.AppcastDefaults) (string, string) {
	switch {
	case c.DistanceSort != models.SortUnset:
		return appcast.SortByLocation, c.DistanceSort.String()
	case c.PostedDateSort != models.SortUnset:
		return appcast.SortByPostedDate, c.PostedDateSort.String()
	}

	sortBy := defaults.SortBy
	if sortBy == "" {
		sortBy = appcast.SortByScore
	}

	// Без явной сортировки: лучший скор — сверху; для стоимостных колонок
	// осмысленный дефолт направления тоже DESC, для прочих — ASC.
	switch sortBy {
	case appcast.SortByScore, appcast.SortByCPC, appcast.SortByCPA:
		return sortBy, models.SortDesc.String()
	default:
		return sortBy, models.SortAsc.String()
	}
}
