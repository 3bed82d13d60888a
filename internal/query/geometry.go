package query

import (
	"fmt"
	"strings"

	"github.com/shenikar/mapstl_api/internal/models"
)

// Geometry - единица пространственной агрегации
type Geometry int

const (
	GeometryNeighborhood Geometry = iota + 1
	GeometryDistrict
)

// Geometries - полный список допустимых значений
var Geometries = []Geometry{GeometryNeighborhood, GeometryDistrict}

// ParseGeometry приводит токен к нижнему регистру и проверяет его
func ParseGeometry(token string) (Geometry, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "neighborhood":
		return GeometryNeighborhood, nil
	case "district":
		return GeometryDistrict, nil
	default:
		return 0, fmt.Errorf("%w: %q", models.ErrUnsupportedGeometry, token)
	}
}

func (g Geometry) String() string {
	switch g {
	case GeometryNeighborhood:
		return "neighborhood"
	case GeometryDistrict:
		return "district"
	default:
		return fmt.Sprintf("Geometry(%d)", int(g))
	}
}
