package v1

import (
	"strconv"
	"time"

	"github.com/shenikar/mapstl_api/internal/models"
)

// formatDate форматирует дату как YYYY-MM-DD; nil остается nil
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.DateOnly)
	return &s
}

// regionLabel - legacy-клиент ждет номер региона строкой
func regionLabel(region *int) *string {
	if region == nil {
		return nil
	}
	s := strconv.Itoa(*region)
	return &s
}

func countOf(n int64) *int64 {
	return &n
}

// ModelsToDatasetResponses преобразует охваты наборов данных в DTO
func ModelsToDatasetResponses(extents []*models.DatasetExtent) []*DatasetResponse {
	responses := make([]*DatasetResponse, len(extents))
	for i, e := range extents {
		responses[i] = &DatasetResponse{
			Name:      e.Name,
			First:     formatDate(e.First),
			Last:      formatDate(e.Last),
			Incidents: e.Incidents,
		}
	}
	return responses
}

// ModelsToLegacyNeighborhoodResponses - сводка по районам в формате legacy-клиента
func ModelsToLegacyNeighborhoodResponses(rows []*models.RegionCategoryCount) []*LegacyNeighborhoodResponse {
	responses := make([]*LegacyNeighborhoodResponse, len(rows))
	for i, r := range rows {
		responses[i] = &LegacyNeighborhoodResponse{
			Neighborhood: regionLabel(r.Region),
			UCRCategory:  r.Category,
			Incidents:    countOf(r.Count),
		}
	}
	return responses
}

// ModelsToLegacyDistrictResponses - сводка по округам в формате legacy-клиента
func ModelsToLegacyDistrictResponses(rows []*models.RegionCategoryCount) []*LegacyDistrictResponse {
	responses := make([]*LegacyDistrictResponse, len(rows))
	for i, r := range rows {
		responses[i] = &LegacyDistrictResponse{
			District:    regionLabel(r.Region),
			UCRCategory: r.Category,
			Incidents:   countOf(r.Count),
		}
	}
	return responses
}

func ModelsToLegacyCategoryResponses(rows []*models.CategoryCount) []*LegacyCategoryResponse {
	responses := make([]*LegacyCategoryResponse, len(rows))
	for i, r := range rows {
		responses[i] = &LegacyCategoryResponse{
			UCRCategory: r.Category,
			Incidents:   countOf(r.Count),
		}
	}
	return responses
}

// ModelsToLegacyPointResponses преобразует точки в формат db_id/wgs_x/wgs_y
func ModelsToLegacyPointResponses(points []*models.PointIncident) []*LegacyPointResponse {
	responses := make([]*LegacyPointResponse, len(points))
	for i, p := range points {
		responses[i] = &LegacyPointResponse{
			DBID:        p.ID,
			UCRCategory: p.Category,
			WGSX:        p.Longitude,
			WGSY:        p.Latitude,
		}
	}
	return responses
}

func ModelsToLegacyCoordResponses(points []*models.PointIncident) []*LegacyCoordResponse {
	responses := make([]*LegacyCoordResponse, len(points))
	for i, p := range points {
		responses[i] = &LegacyCoordResponse{
			DBID: p.ID,
			WGSX: p.Longitude,
			WGSY: p.Latitude,
		}
	}
	return responses
}

func ModelsToLegacyTrendResponses(series []*models.DailyCategoryCount) []*LegacyTrendResponse {
	responses := make([]*LegacyTrendResponse, len(series))
	for i, s := range series {
		responses[i] = &LegacyTrendResponse{
			DateOccur: s.Date.Format(time.DateOnly),
			Category:  s.Category,
			Count:     s.Count,
		}
	}
	return responses
}

// ModelsToPointResponses преобразует точки в DTO /crime/
func ModelsToPointResponses(points []*models.PointIncident) []*PointResponse {
	responses := make([]*PointResponse, len(points))
	for i, p := range points {
		responses[i] = &PointResponse{
			ID:  p.ID,
			Lon: p.Longitude,
			Lat: p.Latitude,
		}
	}
	return responses
}

// ModelsToDetailedResponses преобразует инциденты в DTO /crime/detailed
func ModelsToDetailedResponses(incidents []*models.DetailedIncident) []*DetailedResponse {
	responses := make([]*DetailedResponse, len(incidents))
	for i, inc := range incidents {
		responses[i] = &DetailedResponse{
			ID:          inc.ID,
			Date:        inc.Date.Format(time.DateOnly),
			Time:        inc.Time,
			Description: inc.Description,
			Lon:         inc.Longitude,
			Lat:         inc.Latitude,
		}
	}
	return responses
}

func ModelsToRegionCountResponses(counts []*models.RegionCount) []*RegionCountResponse {
	responses := make([]*RegionCountResponse, len(counts))
	for i, c := range counts {
		responses[i] = &RegionCountResponse{
			Region: c.Region,
			Count:  c.Count,
		}
	}
	return responses
}
