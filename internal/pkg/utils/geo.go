package utils

import (
	"math"
	"regexp"
)

const earthRadiusKm = 6371.0

// Приближение: один градус широты ~ 111 км
const kmPerDegree = 111.0

var (
	latitudePattern  = regexp.MustCompile(`^-?\d{1,2}(\.\d+)?$`)
	longitudePattern = regexp.MustCompile(`^-?\d{1,3}(\.\d+)?$`)
)

// HaversineDistance вычисляет расстояние между двумя точками в километрах
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// BoundingBox - прямоугольная область в градусах вокруг центральной точки
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// DegreeBoundingBox строит рамку вокруг центра для радиуса в километрах.
// Долгота масштабируется на cos широты центра; рамка шире истинного круга.
func DegreeBoundingBox(centerLat, centerLon, radiusKm float64) BoundingBox {
	dLat := radiusKm / kmPerDegree
	dLon := radiusKm / (kmPerDegree * math.Abs(math.Cos(centerLat*math.Pi/180.0)))
	return BoundingBox{
		MinLat: centerLat - dLat,
		MaxLat: centerLat + dLat,
		MinLon: centerLon - dLon,
		MaxLon: centerLon + dLon,
	}
}

// Contains проверяет попадание точки в рамку
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// ValidLatitude проверяет формат широты: не более двух цифр целой части
func ValidLatitude(s string) bool {
	return latitudePattern.MatchString(s)
}

// ValidLongitude проверяет формат долготы: не более трёх цифр целой части
func ValidLongitude(s string) bool {
	return longitudePattern.MatchString(s)
}
