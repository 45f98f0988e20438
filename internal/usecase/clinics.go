package usecase

import (
	"math"
	"sort"

	"wikoo-core/internal/domain/entity"
)

const earthRadiusKm = 6371.0

var defaultClinics = []entity.Clinic{
	{Name: "Medanta Psychiatry", Lat: 28.4266, Lon: 77.0386, Address: "Sector 38, Gurugram", Phone: "+91-124-4141414", Website: "medanta.org"},
	{Name: "Tulasi Healthcare", Lat: 28.4565, Lon: 77.0186, Address: "Sector 56, Gurugram", Phone: "+91-8800000255", Website: "tulasihealthcare.com"},
	{Name: "Jagruti Rehab Centre", Lat: 28.4595, Lon: 77.0266, Address: "Sector 45, Gurugram", Phone: "+91-9822209770", Website: "jagrutirehab.org"},
	{Name: "Sukoon Psychiatry Centre", Lat: 28.4685, Lon: 77.0385, Address: "Sector 51, Gurugram", Phone: "+91-8448156500", Website: "sukoonhealth.com"},
	{Name: "Max Hospital Psychiatry", Lat: 28.4340, Lon: 77.0530, Address: "Sushant Lok, Gurugram", Phone: "+91-124-6623000", Website: "maxhealthcare.in"},
	{Name: "Fortis Hospital Psychiatry", Lat: 28.5100, Lon: 77.0700, Address: "Sector 44, Gurugram", Phone: "+91-124-4921021", Website: "fortishealthcare.com"},
	{Name: "Park Hospital", Lat: 28.3922, Lon: 77.3122, Address: "Sector 16, Faridabad", Phone: "+91-1800-102-6767", Website: "parkhospital.in"},
	{Name: "Asian Institute of Medical Sciences", Lat: 28.4020, Lon: 77.3100, Address: "Sector 21A, Faridabad", Phone: "+91-129-4253000", Website: "aimsindia.com"},
}

// ClinicDirectory serves a static list of clinics. It is read-only.
type ClinicDirectory struct {
	clinics []entity.Clinic
}

// NewClinicDirectory uses the built-in directory when clinics is empty.
func NewClinicDirectory(clinics []entity.Clinic) *ClinicDirectory {
	if len(clinics) == 0 {
		clinics = defaultClinics
	}
	cp := make([]entity.Clinic, len(clinics))
	copy(cp, clinics)
	return &ClinicDirectory{clinics: cp}
}

// All returns the clinics in directory order.
func (d *ClinicDirectory) All(limit int) []entity.Clinic {
	out := make([]entity.Clinic, len(d.clinics))
	copy(out, d.clinics)
	return truncate(out, limit)
}

// Nearby returns the clinics ordered by distance from (lat, lon), each with
// DistanceKm set. limit <= 0 means no limit.
func (d *ClinicDirectory) Nearby(lat, lon float64, limit int) []entity.Clinic {
	out := make([]entity.Clinic, len(d.clinics))
	for i, c := range d.clinics {
		dist := math.Round(haversineKm(lat, lon, c.Lat, c.Lon)*100) / 100
		c.DistanceKm = &dist
		out[i] = c
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DistanceKm < *out[j].DistanceKm
	})
	return truncate(out, limit)
}

func truncate(clinics []entity.Clinic, limit int) []entity.Clinic {
	if limit > 0 && limit < len(clinics) {
		return clinics[:limit]
	}
	return clinics
}

func haversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(deg float64) float64 { return deg * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}
