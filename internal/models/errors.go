package models

import "errors"

// UnsupportedGeometryMessage отдается клиенту как есть
const UnsupportedGeometryMessage = "Unsupported Geometry. Try one of 'neighborhood' or 'district'"

var (
	// ErrInvalidParameter - некорректная дата, JSON или название месяца (ошибка клиента)
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedGeometry - геометрия не из {neighborhood, district} (ошибка клиента)
	ErrUnsupportedGeometry = errors.New("unsupported geometry")

	// ErrUpstreamUnavailable - ошибка соединения с бд или выполнения запроса (ошибка сервера)
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)
