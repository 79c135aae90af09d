package models

// FlightLeg is one point-to-point segment extracted from an AMC IMI 170
// itinerary. Every field is always populated after extraction repair:
// unreadable text fields default to empty strings or sentinel values,
// unreadable ICAO codes to "UNKN", numerics to zero.
type FlightLeg struct {
	DepartureIcao   string  `json:"departureIcao"`
	DepartureName   string  `json:"departureName"`
	ArrivalIcao     string  `json:"arrivalIcao"`
	ArrivalName     string  `json:"arrivalName"`
	DepartureTime   string  `json:"departureTime"`
	ArrivalTime     string  `json:"arrivalTime"`
	Duration        string  `json:"duration"`
	MissionNumber   string  `json:"missionNumber"`
	AircraftType    string  `json:"aircraftType,omitempty"`
	TailNumber      string  `json:"tailNumber,omitempty"`
	Pax             int     `json:"pax"`
	CargoWeightLbs  float64 `json:"cargoWeightLbs"`
	CargoType       string  `json:"cargoType,omitempty"`
	SpecialHandling string  `json:"specialHandling,omitempty"`

	// DistanceNm is attached only after both airports resolve against the
	// directory; nil means one of them is unknown.
	DistanceNm *int `json:"distanceNm,omitempty"`
}

// ExtractionResult is the outcome of processing one document. Immutable once
// returned to the caller.
type ExtractionResult struct {
	Legs        []FlightLeg `json:"legs"`
	FormType    string      `json:"formType"`
	MissionType string      `json:"missionType,omitempty"`
	Confidence  float64     `json:"confidence"` // always in [0,1]
	NeedsReview bool        `json:"needsReview"`
}
