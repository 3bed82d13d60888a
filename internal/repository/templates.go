package repository

import (
	"fmt"

	"github.com/shenikar/mapstl_api/internal/models"
	"github.com/shenikar/mapstl_api/internal/query"
)

// template - фиксированный параметризованный SQL-запрос.
// Пользовательские значения передаются только через $n, текст запроса не собирается из входных данных.
type template struct {
	name string
	sql  string
}

// Общий фильтр: "count" = true, дата в [$1, $2).
// Фильтр категорий: $3 - явное "все категории", $4 - набор категорий в нижнем регистре.
var (
	tplLatestDate = template{
		name: "latest_date",
		sql: `
		SELECT max("date")
		FROM crime
		WHERE "count" = true;
	`,
	}

	tplLastUpdate = template{
		name: "last_update",
		sql: `
		SELECT last_update::date
		FROM crime_last_update
		ORDER BY last_update DESC
		LIMIT 1;
	`,
	}

	tplExtent = template{
		name: "extent",
		sql: `
		SELECT min("date"), max("date"), count(*)
		FROM crime
		WHERE "count" = true;
	`,
	}

	tplNeighborhoodCategorySummary = template{
		name: "neighborhood_category_summary",
		sql: `
		SELECT neighborhood, COALESCE(category, ''), count(*)
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
		GROUP BY 1, 2
		ORDER BY 1, 2;
	`,
	}

	tplDistrictCategorySummary = template{
		name: "district_category_summary",
		sql: `
		SELECT district, COALESCE(category, ''), count(*)
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
		GROUP BY 1, 2
		ORDER BY 1, 2;
	`,
	}

	tplCategorySummary = template{
		name: "category_summary",
		sql: `
		SELECT COALESCE(category, ''), count(*)
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
		GROUP BY 1
		ORDER BY 1;
	`,
	}

	tplPoints = template{
		name: "points",
		sql: `
		SELECT id, COALESCE(category, ''), lon, lat
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
			AND ($3::boolean OR lower(category) = ANY($4::text[]))
		ORDER BY id;
	`,
	}

	tplDetailed = template{
		name: "detailed",
		sql: `
		SELECT id, "date", "time", description, lon, lat
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
			AND ($3::boolean OR lower(category) = ANY($4::text[]))
		ORDER BY "date", "time", id;
	`,
	}

	tplNeighborhoodCounts = template{
		name: "neighborhood_counts",
		sql: `
		SELECT neighborhood, count(*)
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
			AND ($3::boolean OR lower(category) = ANY($4::text[]))
		GROUP BY 1
		ORDER BY 1;
	`,
	}

	tplDistrictCounts = template{
		name: "district_counts",
		sql: `
		SELECT district, count(*)
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
			AND ($3::boolean OR lower(category) = ANY($4::text[]))
		GROUP BY 1
		ORDER BY 1;
	`,
	}

	tplTrends = template{
		name: "trends",
		sql: `
		SELECT "date", COALESCE(category, ''), count(*)
		FROM crime
		WHERE "count" = true
			AND "date" >= $1::date AND "date" < $2::date
			AND ($3::boolean OR lower(category) = ANY($4::text[]))
		GROUP BY 1, 2
		ORDER BY 1, 2;
	`,
	}
)

// regionCategorySummaryTemplate выбирает шаблон помесячной сводки по геометрии
func regionCategorySummaryTemplate(g query.Geometry) (template, error) {
	switch g {
	case query.GeometryNeighborhood:
		return tplNeighborhoodCategorySummary, nil
	case query.GeometryDistrict:
		return tplDistrictCategorySummary, nil
	default:
		return template{}, fmt.Errorf("%w: %s", models.ErrUnsupportedGeometry, g)
	}
}

// regionCountsTemplate выбирает шаблон агрегации по геометрии
func regionCountsTemplate(g query.Geometry) (template, error) {
	switch g {
	case query.GeometryNeighborhood:
		return tplNeighborhoodCounts, nil
	case query.GeometryDistrict:
		return tplDistrictCounts, nil
	default:
		return template{}, fmt.Errorf("%w: %s", models.ErrUnsupportedGeometry, g)
	}
}

// dateArgs возвращает полуоткрытые границы [from, until)
func dateArgs(r query.DateRange) []any {
	return []any{r.Start, r.Until()}
}

// filterArgs возвращает $1..$4 для шаблонов с фильтром категорий
func filterArgs(r query.DateRange, f query.CategoryFilter) []any {
	return append(dateArgs(r), f.MatchAll(), f.Values())
}
