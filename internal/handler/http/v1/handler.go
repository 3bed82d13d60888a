package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/mapstl_api/internal/models"
	"github.com/shenikar/mapstl_api/internal/query"
	"github.com/shenikar/mapstl_api/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	crimeService service.CrimeService
	logger       *logrus.Logger
	validate     *validator.Validate
}

func NewHandler(crimeService service.CrimeService, logger *logrus.Logger) *Handler {
	return &Handler{
		crimeService: crimeService,
		logger:       logger,
		validate:     validator.New(),
	}
}

// bindQuery разбирает и валидирует query-параметры. При ошибке ответ уже отправлен.
func (h *Handler) bindQuery(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindQuery(input); err != nil {
		log.WithError(err).Warn("Failed to bind query")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return false
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// respondError переводит ошибку нормализации или сервиса в HTTP-ответ
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, models.ErrUnsupportedGeometry):
		log.WithError(err).Warn("Unsupported geometry")
		c.JSON(http.StatusBadRequest, gin.H{"error": models.UnsupportedGeometryMessage})
	case errors.Is(err, models.ErrInvalidParameter):
		log.WithError(err).Warn("Invalid parameter")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		log.WithError(err).Error("Request timed out")
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	case errors.Is(err, context.Canceled):
		// Клиент уже отключился, отвечать некому
		log.WithError(err).Debug("Request canceled by client")
		c.Abort()
	default:
		log.WithError(err).Error("Failed to get data from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// logGun фиксирует параметр gun: он принимается ради совместимости URL, но в таблице нет признака оружия
func logGun(log *logrus.Entry, gun string) {
	if gun != "" {
		log.WithField("gun", gun).Debug("Ignoring gun filter")
	}
}

// DocsPath - страница Swagger UI
const DocsPath = "/docs/index.html"

// @Summary Redirect to API documentation
// @Tags System
// @Success 302 "Found"
// @Router / [get]
func (h *Handler) root(c *gin.Context) {
	c.Redirect(http.StatusFound, DocsPath)
}

// @Summary Get latest incident date
// @Description Date of the most recent countable incident
// @Tags Crime
// @Produce json
// @Success 200 {object} LatestResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /latest [get]
func (h *Handler) getLatest(c *gin.Context) {
	log := h.logger.WithField("method", "getLatest")

	latest, err := h.crimeService.Latest(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LatestResponse{Latest: formatDate(latest)})
}

// @Summary List datasets
// @Description Available datasets with their temporal extent
// @Tags Crime
// @Produce json
// @Success 200 {array} DatasetResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /datasets [get]
func (h *Handler) listDatasets(c *gin.Context) {
	log := h.logger.WithField("method", "listDatasets")

	datasets, err := h.crimeService.Datasets(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDatasetResponses(datasets))
}

// @Summary Get dataset update date (legacy)
// @Tags Legacy
// @Produce json
// @Success 200 {object} LegacyLatestResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/latest [get]
func (h *Handler) getLegacyLatest(c *gin.Context) {
	log := h.logger.WithField("method", "getLegacyLatest")

	updated, err := h.crimeService.LegacyLatest(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LegacyLatestResponse{CrimeLastUpdate: formatDate(updated)})
}

// monthRange разбирает year/month legacy-маршрутов
func (h *Handler) monthRange(c *gin.Context, log *logrus.Entry, year int, month string) (query.DateRange, bool) {
	dates, err := query.MonthYear(year, month)
	if err != nil {
		h.respondError(c, log, err)
		return query.DateRange{}, false
	}
	return dates, true
}

// @Summary Monthly summary by neighborhood (legacy)
// @Description Countable incidents per neighborhood and UCR category for one month
// @Tags Legacy
// @Produce json
// @Param year query int true "Year"
// @Param month query string true "English month name, e.g. December"
// @Param gun query string false "Accepted for compatibility, ignored"
// @Success 200 {array} LegacyNeighborhoodResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/nbhood [get]
func (h *Handler) getLegacyNeighborhood(c *gin.Context) {
	h.legacyRegionSummary(c, "getLegacyNeighborhood", query.GeometryNeighborhood)
}

// @Summary Monthly summary by district (legacy)
// @Description Countable incidents per district and UCR category for one month
// @Tags Legacy
// @Produce json
// @Param year query int true "Year"
// @Param month query string true "English month name, e.g. December"
// @Param gun query string false "Accepted for compatibility, ignored"
// @Success 200 {array} LegacyDistrictResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/district [get]
func (h *Handler) getLegacyDistrict(c *gin.Context) {
	h.legacyRegionSummary(c, "getLegacyDistrict", query.GeometryDistrict)
}

func (h *Handler) legacyRegionSummary(c *gin.Context, method string, geometry query.Geometry) {
	log := h.logger.WithField("method", method)

	var input LegacyMonthQuery
	if !h.bindQuery(c, log, &input) {
		return
	}
	logGun(log, input.Gun)

	dates, ok := h.monthRange(c, log, input.Year, input.Month)
	if !ok {
		return
	}

	rows, err := h.crimeService.RegionCategorySummary(c.Request.Context(), geometry, dates)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	if geometry == query.GeometryDistrict {
		c.JSON(http.StatusOK, ModelsToLegacyDistrictResponses(rows))
		return
	}
	c.JSON(http.StatusOK, ModelsToLegacyNeighborhoodResponses(rows))
}

// @Summary Monthly summary by category (legacy)
// @Tags Legacy
// @Produce json
// @Param year query int true "Year"
// @Param month query string true "English month name, e.g. December"
// @Param gun query string false "Accepted for compatibility, ignored"
// @Success 200 {array} LegacyCategoryResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/catsum [get]
func (h *Handler) getLegacyCategorySummary(c *gin.Context) {
	log := h.logger.WithField("method", "getLegacyCategorySummary")

	var input LegacyMonthQuery
	if !h.bindQuery(c, log, &input) {
		return
	}
	logGun(log, input.Gun)

	dates, ok := h.monthRange(c, log, input.Year, input.Month)
	if !ok {
		return
	}

	rows, err := h.crimeService.CategorySummary(c.Request.Context(), dates)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLegacyCategoryResponses(rows))
}

// @Summary Monthly incident points (legacy)
// @Tags Legacy
// @Produce json
// @Param year query int true "Year"
// @Param month query string true "English month name, e.g. December"
// @Param ucr query string true "JSON array of UCR categories, e.g. [\"Robbery\"]"
// @Param gun query string false "Accepted for compatibility, ignored"
// @Success 200 {array} LegacyPointResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/crime [get]
func (h *Handler) getLegacyCrime(c *gin.Context) {
	log := h.logger.WithField("method", "getLegacyCrime")

	var input LegacyMonthCategoryQuery
	if !h.bindQuery(c, log, &input) {
		return
	}
	logGun(log, input.Gun)

	dates, ok := h.monthRange(c, log, input.Year, input.Month)
	if !ok {
		return
	}
	categories, err := query.ParseCategoryList(input.UCR)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	points, err := h.crimeService.Points(c.Request.Context(), dates, categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLegacyPointResponses(points))
}

// @Summary Monthly incident coordinates (legacy)
// @Description Coordinates of all countable incidents for one month
// @Tags Legacy
// @Produce json
// @Param year query int true "Year"
// @Param month query string true "English month name, e.g. December"
// @Param gun query string false "Accepted for compatibility, ignored"
// @Success 200 {array} LegacyCoordResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/coords [get]
func (h *Handler) getLegacyCoords(c *gin.Context) {
	log := h.logger.WithField("method", "getLegacyCoords")

	var input LegacyMonthQuery
	if !h.bindQuery(c, log, &input) {
		return
	}
	logGun(log, input.Gun)

	dates, ok := h.monthRange(c, log, input.Year, input.Month)
	if !ok {
		return
	}

	points, err := h.crimeService.Points(c.Request.Context(), dates, query.AllCategories())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLegacyCoordResponses(points))
}

// legacyRange разбирает start/end/ucr маршрутов /legacy/range и /legacy/trends
func (h *Handler) legacyRange(c *gin.Context, log *logrus.Entry) (query.DateRange, query.CategoryFilter, bool) {
	var input LegacyRangeQuery
	if !h.bindQuery(c, log, &input) {
		return query.DateRange{}, query.CategoryFilter{}, false
	}
	logGun(log, input.Gun)

	dates, err := query.LegacyRange(input.Start, input.End)
	if err != nil {
		h.respondError(c, log, err)
		return query.DateRange{}, query.CategoryFilter{}, false
	}
	categories, err := query.ParseCategoryList(input.UCR)
	if err != nil {
		h.respondError(c, log, err)
		return query.DateRange{}, query.CategoryFilter{}, false
	}
	return dates, categories, true
}

// @Summary Incident points for a date range (legacy)
// @Tags Legacy
// @Produce json
// @Param start query string true "Start date, YYYY-MM-DD"
// @Param end query string true "End date, YYYY-MM-DD, or NA for a single day"
// @Param ucr query string true "JSON array of UCR categories, e.g. [\"Robbery\"]"
// @Param gun query string false "Accepted for compatibility, ignored"
// @Success 200 {array} LegacyPointResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/range [get]
func (h *Handler) getLegacyRange(c *gin.Context) {
	log := h.logger.WithField("method", "getLegacyRange")

	dates, categories, ok := h.legacyRange(c, log)
	if !ok {
		return
	}

	points, err := h.crimeService.Points(c.Request.Context(), dates, categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLegacyPointResponses(points))
}

// @Summary Daily counts by category (legacy)
// @Tags Legacy
// @Produce json
// @Param start query string true "Start date, YYYY-MM-DD"
// @Param end query string true "End date, YYYY-MM-DD, or NA for a single day"
// @Param ucr query string true "JSON array of UCR categories, e.g. [\"Robbery\"]"
// @Param gun query string false "Accepted for compatibility, ignored"
// @Success 200 {array} LegacyTrendResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legacy/trends [get]
func (h *Handler) getLegacyTrends(c *gin.Context) {
	log := h.logger.WithField("method", "getLegacyTrends")

	dates, categories, ok := h.legacyRange(c, log)
	if !ok {
		return
	}

	series, err := h.crimeService.Trends(c.Request.Context(), dates, categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToLegacyTrendResponses(series))
}

// crimeFilter разбирает start/end/category маршрутов /crime
func (h *Handler) crimeFilter(c *gin.Context, log *logrus.Entry) (query.DateRange, query.CategoryFilter, bool) {
	var input CrimeQuery
	if !h.bindQuery(c, log, &input) {
		return query.DateRange{}, query.CategoryFilter{}, false
	}

	dates, err := query.Inclusive(input.Start, input.End)
	if err != nil {
		h.respondError(c, log, err)
		return query.DateRange{}, query.CategoryFilter{}, false
	}
	return dates, query.ParseCategory(input.Category), true
}

// @Summary Incident points
// @Description Countable incidents in [start, end] with coordinates rounded to 5 decimals
// @Tags Crime
// @Produce json
// @Param start query string true "Start date, YYYY-MM-DD"
// @Param end query string true "End date, YYYY-MM-DD (inclusive)"
// @Param category query string false "UCR category, case-insensitive, or 'all'"
// @Success 200 {array} PointResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crime/ [get]
func (h *Handler) getCrimePoints(c *gin.Context) {
	log := h.logger.WithField("method", "getCrimePoints")

	dates, categories, ok := h.crimeFilter(c, log)
	if !ok {
		return
	}

	points, err := h.crimeService.Points(c.Request.Context(), dates, categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToPointResponses(points))
}

// @Summary Detailed incidents
// @Description Countable incidents in [start, end] with date, time and description
// @Tags Crime
// @Produce json
// @Param start query string true "Start date, YYYY-MM-DD"
// @Param end query string true "End date, YYYY-MM-DD (inclusive)"
// @Param category query string false "UCR category, case-insensitive, or 'all'"
// @Success 200 {array} DetailedResponse
// @Failure 400 {object} map[string]string "Invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crime/detailed [get]
func (h *Handler) getCrimeDetailed(c *gin.Context) {
	log := h.logger.WithField("method", "getCrimeDetailed")

	dates, categories, ok := h.crimeFilter(c, log)
	if !ok {
		return
	}

	incidents, err := h.crimeService.Detailed(c.Request.Context(), dates, categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToDetailedResponses(incidents))
}

// @Summary Incident counts by region
// @Description Countable incidents aggregated by neighborhood or district. Regions without incidents are omitted.
// @Tags Crime
// @Produce json
// @Param geometry path string true "neighborhood or district"
// @Param start query string true "Start date, YYYY-MM-DD"
// @Param end query string true "End date, YYYY-MM-DD (inclusive)"
// @Param category query string false "UCR category, case-insensitive, or 'all'"
// @Success 200 {array} RegionCountResponse
// @Failure 400 {object} map[string]string "Unsupported geometry or invalid parameters"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /crime/{geometry} [get]
func (h *Handler) getCrimeByGeometry(c *gin.Context) {
	log := h.logger.WithField("method", "getCrimeByGeometry").WithField("geometry", c.Param("geometry"))

	geometry, err := query.ParseGeometry(c.Param("geometry"))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	dates, categories, ok := h.crimeFilter(c, log)
	if !ok {
		return
	}

	counts, err := h.crimeService.RegionCounts(c.Request.Context(), geometry, dates, categories)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToRegionCountResponses(counts))
}

// @Summary Save permalink
// @Description Permalinks are not implemented
// @Tags System
// @Produce json
// @Failure 501 {object} map[string]string "Not implemented"
// @Router /save [post]
func (h *Handler) savePermalink(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "permalinks are not implemented"})
}

// @Summary Get application health status
// @Description Checks database connectivity
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Failure 503 {object} map[string]string "Database unavailable"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	if err := h.crimeService.Health(c.Request.Context()); err != nil {
		h.logger.WithField("method", "healthCheck").WithError(err).Warn("Health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
