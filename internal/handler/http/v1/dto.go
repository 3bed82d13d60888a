package v1

// LegacyMonthQuery - параметры legacy-маршрутов с помесячной выборкой
// @Description Параметры legacy-маршрутов с помесячной выборкой
type LegacyMonthQuery struct {
	Year  int    `form:"year" validate:"required,min=1,max=9999"`
	Month string `form:"month" validate:"required"`
	Gun   string `form:"gun"`
}

// LegacyMonthCategoryQuery - помесячная выборка с JSON-списком категорий
type LegacyMonthCategoryQuery struct {
	Year  int    `form:"year" validate:"required,min=1,max=9999"`
	Month string `form:"month" validate:"required"`
	UCR   string `form:"ucr" validate:"required"`
	Gun   string `form:"gun"`
}

// LegacyRangeQuery - параметры /legacy/range и /legacy/trends
type LegacyRangeQuery struct {
	Start string `form:"start" validate:"required"`
	End   string `form:"end" validate:"required"`
	UCR   string `form:"ucr" validate:"required"`
	Gun   string `form:"gun"`
}

// CrimeQuery - параметры маршрутов /crime.
// Пустая или отсутствующая category дает пустой набор категорий и пустой ответ.
type CrimeQuery struct {
	Start    string `form:"start" validate:"required"`
	End      string `form:"end" validate:"required"`
	Category string `form:"category"`
}

// LatestResponse DTO для /latest
// @Description Дата последнего учитываемого инцидента
type LatestResponse struct {
	Latest *string `json:"latest"`
}

// LegacyLatestResponse DTO для /legacy/latest
// @Description Дата последнего обновления набора данных
type LegacyLatestResponse struct {
	CrimeLastUpdate *string `json:"crime_last_update"`
}

// DatasetResponse DTO описания набора данных
// @Description Набор данных и его временной охват
type DatasetResponse struct {
	Name      string  `json:"name"`
	First     *string `json:"first"`
	Last      *string `json:"last"`
	Incidents int64   `json:"incidents"`
}

// LegacyNeighborhoodResponse - строка /legacy/nbhood
// @Description Количество инцидентов категории в районе за месяц
type LegacyNeighborhoodResponse struct {
	Neighborhood *string `json:"neighborhood"`
	UCRCategory  string  `json:"ucr_category"`
	Incidents    *int64  `json:"Incidents"`
}

// LegacyDistrictResponse - строка /legacy/district
// @Description Количество инцидентов категории в округе за месяц
type LegacyDistrictResponse struct {
	District    *string `json:"district"`
	UCRCategory string  `json:"ucr_category"`
	Incidents   *int64  `json:"Incidents"`
}

// LegacyCategoryResponse - строка /legacy/catsum
// @Description Количество инцидентов категории за месяц
type LegacyCategoryResponse struct {
	UCRCategory string `json:"ucr_category"`
	Incidents   *int64 `json:"Incidents"`
}

// LegacyPointResponse - строка /legacy/range и /legacy/crime
// @Description Инцидент в legacy-формате
type LegacyPointResponse struct {
	DBID        int64    `json:"db_id"`
	UCRCategory string   `json:"ucr_category"`
	WGSX        *float64 `json:"wgs_x"`
	WGSY        *float64 `json:"wgs_y"`
}

// LegacyCoordResponse - строка /legacy/coords
// @Description Координаты инцидента в legacy-формате
type LegacyCoordResponse struct {
	DBID int64    `json:"db_id"`
	WGSX *float64 `json:"wgs_x"`
	WGSY *float64 `json:"wgs_y"`
}

// LegacyTrendResponse - строка /legacy/trends
// @Description Количество инцидентов категории за день
type LegacyTrendResponse struct {
	DateOccur string `json:"date_occur"`
	Category  string `json:"category"`
	Count     int64  `json:"count"`
}

// PointResponse - строка /crime/
// @Description Инцидент с округленными координатами
type PointResponse struct {
	ID  int64    `json:"id"`
	Lon *float64 `json:"lon"`
	Lat *float64 `json:"lat"`
}

// DetailedResponse - строка /crime/detailed
// @Description Инцидент с датой, временем и описанием
type DetailedResponse struct {
	ID          int64    `json:"id"`
	Date        string   `json:"date"`
	Time        *string  `json:"time"`
	Description *string  `json:"description"`
	Lon         *float64 `json:"lon"`
	Lat         *float64 `json:"lat"`
}

// RegionCountResponse - строка /crime/{geometry}
// @Description Количество учитываемых инцидентов в регионе
type RegionCountResponse struct {
	Region *int  `json:"region"`
	Count  int64 `json:"count"`
}
