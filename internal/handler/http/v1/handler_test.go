package v1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/mapstl_api/internal/models"
	"github.com/shenikar/mapstl_api/internal/query"
	"github.com/shenikar/mapstl_api/internal/service/mocks"
	"github.com/shenikar/mapstl_api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestHandler создает новый экземпляр Handler с мокированным сервисом
func newTestHandler(t *testing.T) (*Handler, *mocks.MockCrimeService, *gin.Engine) {
	ctrl := gomock.NewController(t)
	mockService := mocks.NewMockCrimeService(ctrl)

	handler := NewHandler(mockService, logger.NewNop())

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler.RegisterRoutes(&router.RouterGroup)

	return handler, mockService, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func withQuery(path string, params map[string]string) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	return path + "?" + values.Encode()
}

func ptr[T any](v T) *T {
	return &v
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

func TestGetCrimeByGeometry_UnsupportedGeometry(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().RegionCounts(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	for _, params := range []map[string]string{
		{"start": "2020-01-01", "end": "2020-01-31", "category": "all"},
		{"start": "not-a-date", "end": "2020-01-31", "category": "Robbery"},
		{},
	} {
		w := makeRequest(router, http.MethodGet, withQuery("/crime/county", params), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, models.UnsupportedGeometryMessage, decodeError(t, w))
	}
}

func TestGetCrimeByGeometry_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	dates, err := query.Inclusive("2020-01-01", "2020-01-31")
	require.NoError(t, err)

	mockService.EXPECT().
		RegionCounts(gomock.Any(), query.GeometryDistrict, dates, query.AllCategories()).
		Return([]*models.RegionCount{{Region: ptr(3), Count: 12}, {Region: nil, Count: 1}}, nil).
		Times(1)

	w := makeRequest(router, http.MethodGet,
		withQuery("/crime/District", map[string]string{"start": "2020-01-01", "end": "2020-01-31", "category": "ALL"}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"region":3,"count":12},{"region":null,"count":1}]`, w.Body.String())
}

func TestGetCrimePoints_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	dates, err := query.Inclusive("2020-05-01", "2020-05-31")
	require.NoError(t, err)

	mockService.EXPECT().
		Points(gomock.Any(), dates, query.Categories("larceny-theft")).
		Return([]*models.PointIncident{
			{ID: 11, Category: "larceny-theft", Longitude: ptr(-90.19940), Latitude: ptr(38.62700)},
			{ID: 12, Category: "larceny-theft"},
		}, nil)

	w := makeRequest(router, http.MethodGet,
		withQuery("/crime/", map[string]string{"start": "2020-05-01", "end": "2020-05-31", "category": "Larceny-Theft"}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":11,"lon":-90.1994,"lat":38.627},{"id":12,"lon":null,"lat":null}]`, w.Body.String())
}

func TestGetCrimePoints_EmptyResultIsArray(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Points(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*models.PointIncident{}, nil)

	w := makeRequest(router, http.MethodGet,
		withQuery("/crime/", map[string]string{"start": "2020-05-01", "end": "2020-05-01", "category": "arson"}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestCrimeRoutes_EmptyCategoryMatchesNothing(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	matchesNothing := gomock.Cond(func(x any) bool {
		f, ok := x.(query.CategoryFilter)
		return ok && f.MatchesNothing()
	})

	mockService.EXPECT().Points(gomock.Any(), gomock.Any(), matchesNothing).Return([]*models.PointIncident{}, nil)
	mockService.EXPECT().Detailed(gomock.Any(), gomock.Any(), matchesNothing).Return([]*models.DetailedIncident{}, nil)
	mockService.EXPECT().
		RegionCounts(gomock.Any(), query.GeometryNeighborhood, gomock.Any(), matchesNothing).
		Return([]*models.RegionCount{}, nil)

	for _, path := range []string{"/crime/", "/crime/detailed", "/crime/neighborhood"} {
		w := makeRequest(router, http.MethodGet, path+"?start=2020-05-01&end=2020-05-02&category=", nil)

		require.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, `[]`, w.Body.String(), path)
	}
}

func TestGetCrimePoints_ValidationError(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Points(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, withQuery("/crime/", map[string]string{"start": "2020-05-01"}), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "End")
}

func TestGetCrimeDetailed_ReversedRange(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Detailed(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet,
		withQuery("/crime/detailed", map[string]string{"start": "2020-05-31", "end": "2020-05-01", "category": "all"}), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "before start")
}

func TestGetCrimeDetailed_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	day := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)

	mockService.EXPECT().
		Detailed(gomock.Any(), gomock.Any(), query.AllCategories()).
		Return([]*models.DetailedIncident{
			{ID: 9, Date: day, Time: ptr("13:05:09"), Description: ptr("STEALING UNDER $500"), Longitude: ptr(-90.2), Latitude: ptr(38.6)},
			{ID: 10, Date: day},
		}, nil)

	w := makeRequest(router, http.MethodGet,
		withQuery("/crime/detailed", map[string]string{"start": "2020-05-01", "end": "2020-05-01", "category": "all"}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{"id":9,"date":"2020-05-01","time":"13:05:09","description":"STEALING UNDER $500","lon":-90.2,"lat":38.6},
		{"id":10,"date":"2020-05-01","time":null,"description":null,"lon":null,"lat":null}
	]`, w.Body.String())
}

func TestServiceErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "upstream unavailable is opaque",
			err:      fmt.Errorf("service: could not get points: %w: points: dial tcp 10.0.0.5:5432: connection refused", models.ErrUpstreamUnavailable),
			wantCode: http.StatusInternalServerError,
			wantBody: "internal server error",
		},
		{
			name:     "deadline",
			err:      fmt.Errorf("service: could not get points: %w", context.DeadlineExceeded),
			wantCode: http.StatusGatewayTimeout,
			wantBody: "request timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().Points(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			w := makeRequest(router, http.MethodGet,
				withQuery("/crime/", map[string]string{"start": "2020-05-01", "end": "2020-05-02", "category": "all"}), nil)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, w))
			assert.NotContains(t, w.Body.String(), "5432")
		})
	}
}

func TestGetLegacyRange_EndNA(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	day := time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC)
	expectedRange := query.DateRange{Start: day, End: day, EndInclusive: true}

	mockService.EXPECT().
		Points(gomock.Any(), expectedRange, query.Categories("burglary", "robbery")).
		Return([]*models.PointIncident{{ID: 1, Category: "burglary", Longitude: ptr(-90.2), Latitude: ptr(38.6)}}, nil)

	w := makeRequest(router, http.MethodGet, withQuery("/legacy/range", map[string]string{
		"start": "2020-05-01",
		"end":   "NA",
		"ucr":   `["Burglary","Robbery"]`,
		"gun":   "TRUE",
	}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"db_id":1,"ucr_category":"burglary","wgs_x":-90.2,"wgs_y":38.6}]`, w.Body.String())
}

func TestGetLegacyRange_MalformedUCR(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Points(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, http.MethodGet, withQuery("/legacy/range", map[string]string{
		"start": "2020-05-01",
		"end":   "2020-05-02",
		"ucr":   "[1,2",
	}), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w), "ucr")
}

func TestGetLegacyRange_EmptyUCRMatchesNothing(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Points(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ query.DateRange, categories query.CategoryFilter) ([]*models.PointIncident, error) {
			assert.True(t, categories.MatchesNothing())
			return []*models.PointIncident{}, nil
		})

	w := makeRequest(router, http.MethodGet, withQuery("/legacy/range", map[string]string{
		"start": "2020-05-01",
		"end":   "2020-05-02",
		"ucr":   "[]",
	}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetLegacyTrends(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	dates, err := query.LegacyRange("2020-05-01", "2020-05-02")
	require.NoError(t, err)

	mockService.EXPECT().
		Trends(gomock.Any(), dates, query.Categories("robbery")).
		Return([]*models.DailyCategoryCount{
			{Date: time.Date(2020, 5, 2, 0, 0, 0, 0, time.UTC), Category: "robbery", Count: 3},
		}, nil)

	w := makeRequest(router, http.MethodGet, withQuery("/legacy/trends", map[string]string{
		"start": "2020-05-01",
		"end":   "2020-05-02",
		"ucr":   `["robbery"]`,
	}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"date_occur":"2020-05-02","category":"robbery","count":3}]`, w.Body.String())
}

func TestGetLegacyNeighborhood_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	december, err := query.MonthYear(2021, "December")
	require.NoError(t, err)

	mockService.EXPECT().
		RegionCategorySummary(gomock.Any(), query.GeometryNeighborhood, december).
		Return([]*models.RegionCategoryCount{{Region: ptr(5), Category: "robbery", Count: 4}}, nil)

	w := makeRequest(router, http.MethodGet, "/legacy/nbhood?year=2021&month=December&gun=FALSE", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"neighborhood":"5","ucr_category":"robbery","Incidents":4}]`, w.Body.String())
}

func TestGetLegacyDistrict_Success(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		RegionCategorySummary(gomock.Any(), query.GeometryDistrict, gomock.Any()).
		Return([]*models.RegionCategoryCount{{Region: nil, Category: "arson", Count: 1}}, nil)

	w := makeRequest(router, http.MethodGet, "/legacy/district?year=2021&month=March", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"district":null,"ucr_category":"arson","Incidents":1}]`, w.Body.String())
}

func TestGetLegacyNeighborhood_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{name: "lower-case month", url: "/legacy/nbhood?year=2021&month=december"},
		{name: "unknown month", url: "/legacy/nbhood?year=2021&month=Smarch"},
		{name: "year is not a number", url: "/legacy/nbhood?year=abc&month=May"},
		{name: "missing month", url: "/legacy/nbhood?year=2021"},
		{name: "missing year", url: "/legacy/nbhood?month=May"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, router := newTestHandler(t)
			mockService.EXPECT().RegionCategorySummary(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			w := makeRequest(router, http.MethodGet, tt.url, nil)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetLegacyCategorySummary(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		CategorySummary(gomock.Any(), gomock.Any()).
		Return([]*models.CategoryCount{{Category: "burglary", Count: 40}}, nil)

	w := makeRequest(router, http.MethodGet, "/legacy/catsum?year=2020&month=May", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"ucr_category":"burglary","Incidents":40}]`, w.Body.String())
}

func TestGetLegacyCrime(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	may, err := query.MonthYear(2020, "May")
	require.NoError(t, err)

	mockService.EXPECT().
		Points(gomock.Any(), may, query.Categories("homicide")).
		Return([]*models.PointIncident{{ID: 3, Category: "homicide"}}, nil)

	w := makeRequest(router, http.MethodGet,
		withQuery("/legacy/crime", map[string]string{"year": "2020", "month": "May", "ucr": `["Homicide"]`}), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"db_id":3,"ucr_category":"homicide","wgs_x":null,"wgs_y":null}]`, w.Body.String())
}

func TestGetLegacyCoords_AllCategories(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().
		Points(gomock.Any(), gomock.Any(), query.AllCategories()).
		Return([]*models.PointIncident{{ID: 3, Category: "homicide", Longitude: ptr(-90.3), Latitude: ptr(38.7)}}, nil)

	w := makeRequest(router, http.MethodGet, "/legacy/coords?year=2020&month=May", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"db_id":3,"wgs_x":-90.3,"wgs_y":38.7}]`, w.Body.String())
}

func TestGetLatest(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	latest := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mockService.EXPECT().Latest(gomock.Any()).Return(&latest, nil)

	w := makeRequest(router, http.MethodGet, "/latest", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"latest":"2024-03-31"}`, w.Body.String())
}

func TestGetLatest_EmptyTable(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Latest(gomock.Any()).Return(nil, nil)

	w := makeRequest(router, http.MethodGet, "/latest", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"latest":null}`, w.Body.String())
}

func TestGetLegacyLatest(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	updated := time.Date(2024, 4, 2, 0, 0, 0, 0, time.UTC)

	mockService.EXPECT().LegacyLatest(gomock.Any()).Return(&updated, nil)

	w := makeRequest(router, http.MethodGet, "/legacy/latest", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"crime_last_update":"2024-04-02"}`, w.Body.String())
}

func TestListDatasets(t *testing.T) {
	_, mockService, router := newTestHandler(t)
	first := time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	mockService.EXPECT().Datasets(gomock.Any()).Return([]*models.DatasetExtent{
		{Name: "crime", First: &first, Last: &last, Incidents: 812345},
	}, nil)

	w := makeRequest(router, http.MethodGet, "/datasets", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name":"crime","first":"2008-01-01","last":"2024-03-31","incidents":812345}]`, w.Body.String())
}

func TestSavePermalink_NotImplemented(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodPost, "/save", nil)

	assert.Equal(t, http.StatusNotImplemented, w.Code)
}

func TestHealthCheck(t *testing.T) {
	_, mockService, router := newTestHandler(t)

	mockService.EXPECT().Health(gomock.Any()).Return(nil)
	w := makeRequest(router, http.MethodGet, "/system/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	mockService.EXPECT().Health(gomock.Any()).Return(models.ErrUpstreamUnavailable)
	w = makeRequest(router, http.MethodGet, "/system/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRoot(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, DocsPath, w.Header().Get("Location"))
}
