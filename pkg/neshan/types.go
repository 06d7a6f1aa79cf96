package neshan

// Point is a geographic coordinate.
type Point struct {
	Longitude float64
	Latitude  float64
}

// VehicleType selects the vehicle profile used when computing directions.
type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
)

type Routes struct {
	Routes []Route `json:"routes"`
}

type Route struct {
	Legs []Leg `json:"legs"`
}

type Leg struct {
	Summary  string   `json:"summary"`
	Duration Duration `json:"duration"`
	Distance Distance `json:"distance"`
}

// Duration of a leg in seconds plus the service's local-language rendering.
type Duration struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// Distance of a leg in metres plus the service's local-language rendering.
type Distance struct {
	Value float64 `json:"value"`
	Text  string  `json:"text"`
}

// PostalAddress describes the address of a reverse-geocoded point. The
// pointer fields are omitted by the service when it has no data for them.
type PostalAddress struct {
	FormattedAddress string  `json:"formatted_address"`
	RouteName        string  `json:"route_name"`
	Neighbourhood    *string `json:"neighbourhood"`
	City             string  `json:"city"`
	State            string  `json:"state"`
	Place            *string `json:"place"`
	MunicipalityZone *string `json:"municipality_zone"`
	InTrafficZone    bool    `json:"in_traffic_zone"`
	InOddEvenZone    bool    `json:"in_odd_even_zone"`
}
