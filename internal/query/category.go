package query

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/shenikar/mapstl_api/internal/models"
)

// AllCategoriesToken - явное значение category для выборки по всем категориям
const AllCategoriesToken = "all"

// CategoryFilter - набор категорий UCR. Сравнение без учета регистра.
// Пустой набор не совпадает ни с одной записью; "все категории" задается только явно.
type CategoryFilter struct {
	all    bool
	values []string
}

// AllCategories возвращает фильтр, пропускающий любую категорию
func AllCategories() CategoryFilter {
	return CategoryFilter{all: true}
}

// Categories нормализует значения: обрезает пробелы, приводит к нижнему регистру,
// убирает пустые строки и дубликаты.
func Categories(values ...string) CategoryFilter {
	normalized := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		normalized = append(normalized, v)
	}
	slices.Sort(normalized)
	return CategoryFilter{values: slices.Compact(normalized)}
}

func (f CategoryFilter) MatchAll() bool {
	return f.all
}

// MatchesNothing - true для пустого набора без явного "all"
func (f CategoryFilter) MatchesNothing() bool {
	return !f.all && len(f.values) == 0
}

// Values возвращает копию нормализованных значений (никогда не nil)
func (f CategoryFilter) Values() []string {
	out := make([]string, len(f.values))
	copy(out, f.values)
	return out
}

// Key - стабильное текстовое представление фильтра (для ключей кеша и логов)
func (f CategoryFilter) Key() string {
	if f.all {
		return AllCategoriesToken
	}
	quoted := make([]string, len(f.values))
	for i, v := range f.values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ",") + "]"
}

// ParseCategoryList разбирает legacy-параметр ucr: JSON-массив строк
func ParseCategoryList(raw string) (CategoryFilter, error) {
	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return CategoryFilter{}, fmt.Errorf("%w: ucr must be a JSON array of strings: %v", models.ErrInvalidParameter, err)
	}
	return Categories(values...), nil
}

// ParseCategory разбирает параметр category маршрутов v2: одна категория или "all"
func ParseCategory(raw string) CategoryFilter {
	if strings.EqualFold(strings.TrimSpace(raw), AllCategoriesToken) {
		return AllCategories()
	}
	return Categories(raw)
}

func (f CategoryFilter) String() string {
	return f.Key()
}
