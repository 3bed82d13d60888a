package service

//go:generate mockgen -source=crime.go -destination=mocks/mock_crime.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/shenikar/mapstl_api/internal/models"
	"github.com/shenikar/mapstl_api/internal/query"
	"github.com/sirupsen/logrus"
)

// CrimeDataset - имя единственного набора данных, который отдает API
const CrimeDataset = "crime"

// CrimeRepository определяет контракт для чтения таблицы инцидентов.
// Каждый метод соответствует ровно одному фиксированному SQL-шаблону.
type CrimeRepository interface {
	LatestDate(ctx context.Context) (*time.Time, error)
	LastUpdate(ctx context.Context) (*time.Time, error)
	Extent(ctx context.Context) (*models.DatasetExtent, error)
	RegionCategorySummary(ctx context.Context, geometry query.Geometry, dates query.DateRange) ([]*models.RegionCategoryCount, error)
	CategorySummary(ctx context.Context, dates query.DateRange) ([]*models.CategoryCount, error)
	Points(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.PointIncident, error)
	Detailed(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DetailedIncident, error)
	RegionCounts(ctx context.Context, geometry query.Geometry, dates query.DateRange, categories query.CategoryFilter) ([]*models.RegionCount, error)
	Trends(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DailyCategoryCount, error)
	Ping(ctx context.Context) error
}

// Cache - хранилище готовых результатов запросов
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// CrimeService определяет контракт чтения данных об инцидентах
type CrimeService interface {
	Latest(ctx context.Context) (*time.Time, error)
	LegacyLatest(ctx context.Context) (*time.Time, error)
	Datasets(ctx context.Context) ([]*models.DatasetExtent, error)
	RegionCategorySummary(ctx context.Context, geometry query.Geometry, dates query.DateRange) ([]*models.RegionCategoryCount, error)
	CategorySummary(ctx context.Context, dates query.DateRange) ([]*models.CategoryCount, error)
	Points(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.PointIncident, error)
	Detailed(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DetailedIncident, error)
	RegionCounts(ctx context.Context, geometry query.Geometry, dates query.DateRange, categories query.CategoryFilter) ([]*models.RegionCount, error)
	Trends(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DailyCategoryCount, error)
	Health(ctx context.Context) error
}

type crimeService struct {
	repo   CrimeRepository
	cache  Cache
	logger *logrus.Logger
}

// NewCrimeService создает сервис. cache может быть nil - тогда результаты не кешируются.
func NewCrimeService(repo CrimeRepository, cache Cache, logger *logrus.Logger) CrimeService {
	if cache == nil {
		cache = nopCache{}
	}
	return &crimeService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *crimeService) log(method string, fields logrus.Fields) *logrus.Entry {
	entry := s.logger.WithFields(logrus.Fields{
		"service": "crime",
		"method":  method,
	})
	if len(fields) > 0 {
		entry = entry.WithFields(fields)
	}
	return entry
}

// Latest возвращает дату последнего учитываемого инцидента
func (s *crimeService) Latest(ctx context.Context) (*time.Time, error) {
	log := s.log("Latest", nil)

	latest, err := cached(ctx, s, log, "latest", "", func() (*time.Time, error) {
		return s.repo.LatestDate(ctx)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get latest incident date from repository")
		return nil, fmt.Errorf("service: could not get latest date: %w", err)
	}
	return latest, nil
}

// LegacyLatest возвращает отметку последнего обновления набора данных
func (s *crimeService) LegacyLatest(ctx context.Context) (*time.Time, error) {
	log := s.log("LegacyLatest", nil)

	updated, err := cached(ctx, s, log, "last_update", "", func() (*time.Time, error) {
		return s.repo.LastUpdate(ctx)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get update marker from repository")
		return nil, fmt.Errorf("service: could not get last update: %w", err)
	}
	return updated, nil
}

// Datasets возвращает список наборов данных с их временным охватом
func (s *crimeService) Datasets(ctx context.Context) ([]*models.DatasetExtent, error) {
	log := s.log("Datasets", nil)

	extent, err := cached(ctx, s, log, "extent", "", func() (*models.DatasetExtent, error) {
		return s.repo.Extent(ctx)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get dataset extent from repository")
		return nil, fmt.Errorf("service: could not list datasets: %w", err)
	}
	extent.Name = CrimeDataset
	return []*models.DatasetExtent{extent}, nil
}

// RegionCategorySummary - помесячная сводка legacy: (регион, категория) -> количество
func (s *crimeService) RegionCategorySummary(ctx context.Context, geometry query.Geometry, dates query.DateRange) ([]*models.RegionCategoryCount, error) {
	log := s.log("RegionCategorySummary", logrus.Fields{
		"geometry": geometry.String(),
		"dates":    dates.String(),
	})

	rows, err := cached(ctx, s, log, "region_category_summary", cacheKey(geometry, dates), func() ([]*models.RegionCategoryCount, error) {
		return s.repo.RegionCategorySummary(ctx, geometry, dates)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get region summary from repository")
		return nil, fmt.Errorf("service: could not summarize %s: %w", geometry, err)
	}

	log.WithField("count", len(rows)).Debug("Region summary built")
	return rows, nil
}

// CategorySummary - legacy-сводка по категориям за месяц
func (s *crimeService) CategorySummary(ctx context.Context, dates query.DateRange) ([]*models.CategoryCount, error) {
	log := s.log("CategorySummary", logrus.Fields{"dates": dates.String()})

	rows, err := cached(ctx, s, log, "category_summary", cacheKey(dates), func() ([]*models.CategoryCount, error) {
		return s.repo.CategorySummary(ctx, dates)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get category summary from repository")
		return nil, fmt.Errorf("service: could not summarize categories: %w", err)
	}
	return rows, nil
}

// Points возвращает точки инцидентов с округленными координатами
func (s *crimeService) Points(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.PointIncident, error) {
	log := s.log("Points", logrus.Fields{
		"dates":      dates.String(),
		"categories": categories.Key(),
	})

	points, err := cached(ctx, s, log, "points", cacheKey(dates, categories), func() ([]*models.PointIncident, error) {
		points, err := s.repo.Points(ctx, dates, categories)
		if err != nil {
			return nil, err
		}
		for _, p := range points {
			p.Longitude = RoundCoordinate(p.Longitude)
			p.Latitude = RoundCoordinate(p.Latitude)
		}
		return points, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to get points from repository")
		return nil, fmt.Errorf("service: could not get points: %w", err)
	}

	log.WithField("count", len(points)).Debug("Points fetched")
	return points, nil
}

// Detailed возвращает инциденты с датой, временем, описанием и округленными координатами
func (s *crimeService) Detailed(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DetailedIncident, error) {
	log := s.log("Detailed", logrus.Fields{
		"dates":      dates.String(),
		"categories": categories.Key(),
	})

	incidents, err := cached(ctx, s, log, "detailed", cacheKey(dates, categories), func() ([]*models.DetailedIncident, error) {
		incidents, err := s.repo.Detailed(ctx, dates, categories)
		if err != nil {
			return nil, err
		}
		for _, inc := range incidents {
			inc.Longitude = RoundCoordinate(inc.Longitude)
			inc.Latitude = RoundCoordinate(inc.Latitude)
		}
		return incidents, nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to get detailed incidents from repository")
		return nil, fmt.Errorf("service: could not get detailed incidents: %w", err)
	}

	log.WithField("count", len(incidents)).Debug("Detailed incidents fetched")
	return incidents, nil
}

// RegionCounts агрегирует учитываемые инциденты по районам или округам.
// Регионы без совпадений в ответ не попадают.
func (s *crimeService) RegionCounts(ctx context.Context, geometry query.Geometry, dates query.DateRange, categories query.CategoryFilter) ([]*models.RegionCount, error) {
	log := s.log("RegionCounts", logrus.Fields{
		"geometry":   geometry.String(),
		"dates":      dates.String(),
		"categories": categories.Key(),
	})

	counts, err := cached(ctx, s, log, "region_counts", cacheKey(geometry, dates, categories), func() ([]*models.RegionCount, error) {
		return s.repo.RegionCounts(ctx, geometry, dates, categories)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get region counts from repository")
		return nil, fmt.Errorf("service: could not aggregate by %s: %w", geometry, err)
	}

	log.WithField("count", len(counts)).Debug("Region counts fetched")
	return counts, nil
}

// Trends - legacy-ряд (дата, категория) -> количество
func (s *crimeService) Trends(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DailyCategoryCount, error) {
	log := s.log("Trends", logrus.Fields{
		"dates":      dates.String(),
		"categories": categories.Key(),
	})

	series, err := cached(ctx, s, log, "trends", cacheKey(dates, categories), func() ([]*models.DailyCategoryCount, error) {
		return s.repo.Trends(ctx, dates, categories)
	})
	if err != nil {
		log.WithError(err).Error("Failed to get trends from repository")
		return nil, fmt.Errorf("service: could not get trends: %w", err)
	}
	return series, nil
}

// Health проверяет доступность базы данных
func (s *crimeService) Health(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		s.log("Health", nil).WithError(err).Warn("Database ping failed")
		return fmt.Errorf("service: database unavailable: %w", err)
	}
	return nil
}
