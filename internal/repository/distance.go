package repository

import (
	"github.com/golang/geo/s2"
)

// Средний радиус Земли в километрах (сферическое приближение)
const earthRadiusKm = 6371.0

// distanceKm - расстояние по дуге большого круга между двумя точками
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	a := s2.LatLngFromDegrees(lat1, lon1)
	b := s2.LatLngFromDegrees(lat2, lon2)
	return a.Distance(b).Radians() * earthRadiusKm
}
