package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shenikar/mapstl_api/internal/metrics"
	"github.com/shenikar/mapstl_api/internal/models"
	"github.com/shenikar/mapstl_api/internal/query"
	"github.com/shenikar/mapstl_api/internal/service"
	"github.com/sirupsen/logrus"
	gobreaker "github.com/sony/gobreaker/v2"
)

// DB - часть *pgxpool.Pool, которая нужна репозиторию
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

type CrimeRepository struct {
	db      DB
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewCrimeRepository(db DB, logger *logrus.Logger) service.CrimeRepository {
	return &CrimeRepository{
		db:      db,
		breaker: newBreaker(logger),
	}
}

// run выполняет шаблон через circuit breaker и передает каждую строку в scan.
// Любая ошибка оборачивается в models.ErrUpstreamUnavailable.
func (r *CrimeRepository) run(ctx context.Context, tpl template, args []any, scan func(pgx.Rows) error) error {
	start := time.Now()
	_, err := r.breaker.Execute(func() (struct{}, error) {
		rows, err := r.db.Query(ctx, tpl.sql, args...)
		if err != nil {
			return struct{}{}, err
		}
		defer rows.Close()

		for rows.Next() {
			if err := scan(rows); err != nil {
				return struct{}{}, fmt.Errorf("failed to scan row: %w", err)
			}
		}
		return struct{}{}, rows.Err()
	})
	metrics.RecordDBQuery(tpl.name, time.Since(start), err)

	if err != nil {
		return fmt.Errorf("%w: %s: %w", models.ErrUpstreamUnavailable, tpl.name, err)
	}
	return nil
}

// LatestDate возвращает дату последнего учитываемого инцидента (nil для пустой таблицы)
func (r *CrimeRepository) LatestDate(ctx context.Context) (*time.Time, error) {
	var latest pgtype.Date
	err := r.run(ctx, tplLatestDate, nil, func(rows pgx.Rows) error {
		return rows.Scan(&latest)
	})
	if err != nil {
		return nil, err
	}
	return dateOrNil(latest), nil
}

// LastUpdate читает отметку обновления, которую пишет внешний ETL
func (r *CrimeRepository) LastUpdate(ctx context.Context) (*time.Time, error) {
	var updated pgtype.Date
	err := r.run(ctx, tplLastUpdate, nil, func(rows pgx.Rows) error {
		return rows.Scan(&updated)
	})
	if err != nil {
		return nil, err
	}
	return dateOrNil(updated), nil
}

// Extent возвращает первую и последнюю даты и число учитываемых инцидентов
func (r *CrimeRepository) Extent(ctx context.Context) (*models.DatasetExtent, error) {
	var first, last pgtype.Date
	extent := &models.DatasetExtent{}
	err := r.run(ctx, tplExtent, nil, func(rows pgx.Rows) error {
		return rows.Scan(&first, &last, &extent.Incidents)
	})
	if err != nil {
		return nil, err
	}
	extent.First = dateOrNil(first)
	extent.Last = dateOrNil(last)
	return extent, nil
}

// RegionCategorySummary - количество по (регион, категория) за период
func (r *CrimeRepository) RegionCategorySummary(ctx context.Context, geometry query.Geometry, dates query.DateRange) ([]*models.RegionCategoryCount, error) {
	tpl, err := regionCategorySummaryTemplate(geometry)
	if err != nil {
		return nil, err
	}

	result := make([]*models.RegionCategoryCount, 0)
	err = r.run(ctx, tpl, dateArgs(dates), func(rows pgx.Rows) error {
		row := &models.RegionCategoryCount{}
		if err := rows.Scan(&row.Region, &row.Category, &row.Count); err != nil {
			return err
		}
		result = append(result, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// CategorySummary - количество по категориям за период
func (r *CrimeRepository) CategorySummary(ctx context.Context, dates query.DateRange) ([]*models.CategoryCount, error) {
	result := make([]*models.CategoryCount, 0)
	err := r.run(ctx, tplCategorySummary, dateArgs(dates), func(rows pgx.Rows) error {
		row := &models.CategoryCount{}
		if err := rows.Scan(&row.Category, &row.Count); err != nil {
			return err
		}
		result = append(result, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Points возвращает учитываемые инциденты: id, категория, координаты
func (r *CrimeRepository) Points(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.PointIncident, error) {
	result := make([]*models.PointIncident, 0)
	err := r.run(ctx, tplPoints, filterArgs(dates, categories), func(rows pgx.Rows) error {
		p := &models.PointIncident{}
		if err := rows.Scan(&p.ID, &p.Category, &p.Longitude, &p.Latitude); err != nil {
			return err
		}
		result = append(result, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Detailed возвращает учитываемые инциденты с датой, временем и описанием
func (r *CrimeRepository) Detailed(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DetailedIncident, error) {
	result := make([]*models.DetailedIncident, 0)
	err := r.run(ctx, tplDetailed, filterArgs(dates, categories), func(rows pgx.Rows) error {
		inc := &models.DetailedIncident{}
		var tod pgtype.Time
		if err := rows.Scan(&inc.ID, &inc.Date, &tod, &inc.Description, &inc.Longitude, &inc.Latitude); err != nil {
			return err
		}
		inc.Time = timeOfDay(tod)
		result = append(result, inc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RegionCounts - количество учитываемых инцидентов по регионам выбранной геометрии
func (r *CrimeRepository) RegionCounts(ctx context.Context, geometry query.Geometry, dates query.DateRange, categories query.CategoryFilter) ([]*models.RegionCount, error) {
	tpl, err := regionCountsTemplate(geometry)
	if err != nil {
		return nil, err
	}

	result := make([]*models.RegionCount, 0)
	err = r.run(ctx, tpl, filterArgs(dates, categories), func(rows pgx.Rows) error {
		row := &models.RegionCount{}
		if err := rows.Scan(&row.Region, &row.Count); err != nil {
			return err
		}
		result = append(result, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Trends - количество по (дата, категория) за период
func (r *CrimeRepository) Trends(ctx context.Context, dates query.DateRange, categories query.CategoryFilter) ([]*models.DailyCategoryCount, error) {
	result := make([]*models.DailyCategoryCount, 0)
	err := r.run(ctx, tplTrends, filterArgs(dates, categories), func(rows pgx.Rows) error {
		row := &models.DailyCategoryCount{}
		if err := rows.Scan(&row.Date, &row.Category, &row.Count); err != nil {
			return err
		}
		result = append(result, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Ping проверяет соединение с бд
func (r *CrimeRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return err
		}
		return fmt.Errorf("%w: ping: %w", models.ErrUpstreamUnavailable, err)
	}
	return nil
}

func dateOrNil(d pgtype.Date) *time.Time {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return nil
	}
	t := d.Time
	return &t
}

// timeOfDay форматирует TIME как HH:MM:SS
func timeOfDay(t pgtype.Time) *string {
	if !t.Valid {
		return nil
	}
	s := time.UnixMicro(t.Microseconds).UTC().Format(time.TimeOnly)
	return &s
}
