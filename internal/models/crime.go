package models

import (
	"time"
)

// PointIncident - учитываемый инцидент с координатами на карте
type PointIncident struct {
	ID        int64    `json:"id"`
	Category  string   `json:"category"`
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

// DetailedIncident - учитываемый инцидент с датой, временем и описанием
type DetailedIncident struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Time        *string   `json:"time"`
	Description *string   `json:"description"`
	Longitude   *float64  `json:"longitude"`
	Latitude    *float64  `json:"latitude"`
}

// RegionCount - количество учитываемых инцидентов в районе (neighborhood) или округе (district)
type RegionCount struct {
	Region *int  `json:"region"`
	Count  int64 `json:"count"`
}

// RegionCategoryCount - количество инцидентов одной категории в одном регионе
type RegionCategoryCount struct {
	Region   *int   `json:"region"`
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// DailyCategoryCount - точка ряда для legacy /trends
type DailyCategoryCount struct {
	Date     time.Time `json:"date"`
	Category string    `json:"category"`
	Count    int64     `json:"count"`
}

// DatasetExtent описывает временной охват набора данных
type DatasetExtent struct {
	Name      string     `json:"name"`
	First     *time.Time `json:"first"`
	Last      *time.Time `json:"last"`
	Incidents int64      `json:"incidents"`
}
