package service

import "math"

// CoordinatePrecision - число знаков после запятой у координат в ответах (~1.1 м)
const CoordinatePrecision = 5

var coordinateScale = math.Pow10(CoordinatePrecision)

// RoundCoordinate округляет координату до CoordinatePrecision знаков.
// nil, NaN и бесконечности превращаются в nil.
func RoundCoordinate(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	rounded := math.Round(*v*coordinateScale) / coordinateScale
	return &rounded
}
