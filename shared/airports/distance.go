package airports

import "math"

// earthRadiusNm keeps distances in nautical miles end to end.
const earthRadiusNm = 3440.0

// DistanceNM computes the great-circle distance between two airports in whole
// nautical miles, rounded half-up. The second return is false when either
// ICAO code is not in the directory; no distance is ever fabricated.
func (d *Directory) DistanceNM(fromIcao, toIcao string) (int, bool) {
	from, ok := d.FindByICAO(fromIcao)
	if !ok {
		return 0, false
	}
	to, ok := d.FindByICAO(toIcao)
	if !ok {
		return 0, false
	}
	nm := haversineNm(from.Latitude, from.Longitude, to.Latitude, to.Longitude)
	return int(math.Round(nm)), true
}

func haversineNm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusNm * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
