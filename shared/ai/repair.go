package ai

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"mission-scanner/internal/models"
)

// Defaults applied to any field the model omitted or could not read. The
// result fed downstream is always fully populated; persistence and rendering
// never see null.
const (
	defaultIcao          = "UNKN"
	defaultAirportName   = "Unknown Airport"
	defaultTime          = "0000L"
	defaultDuration      = "0:00"
	defaultMissionNumber = "UNKNOWN"
	defaultFormType      = "AMC IMI 170"
	defaultConfidence    = 0.8
)

// looseString tolerates the model answering a string field with a number,
// bool, or null.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = looseString(strings.TrimSpace(str))
		return nil
	}
	*s = looseString(strings.Trim(trimmed, `"`))
	return nil
}

// looseNumber tolerates numbers quoted as strings, and anything
// unparseable collapses to zero rather than failing the whole document.
type looseNumber float64

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*n = 0
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*n = looseNumber(f)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(str), 64); err == nil {
			*n = looseNumber(f)
			return nil
		}
	}
	*n = 0
	return nil
}

type rawLeg struct {
	DepartureIcao   looseString `json:"departureIcao"`
	DepartureName   looseString `json:"departureName"`
	ArrivalIcao     looseString `json:"arrivalIcao"`
	ArrivalName     looseString `json:"arrivalName"`
	DepartureTime   looseString `json:"departureTime"`
	ArrivalTime     looseString `json:"arrivalTime"`
	Duration        looseString `json:"duration"`
	MissionNumber   looseString `json:"missionNumber"`
	AircraftType    looseString `json:"aircraftType"`
	TailNumber      looseString `json:"tailNumber"`
	Pax             looseNumber `json:"pax"`
	CargoWeightLbs  looseNumber `json:"cargoWeightLbs"`
	CargoType       looseString `json:"cargoType"`
	SpecialHandling looseString `json:"specialHandling"`
}

type rawResult struct {
	Legs        json.RawMessage `json:"legs"`
	FormType    looseString     `json:"formType"`
	MissionType looseString     `json:"missionType"`
	Confidence  *looseNumber    `json:"confidence"`
}

var errNoLegs = errors.New("model response has no legs collection")

// parseExtraction turns the model's untrusted output into a fully defaulted
// ExtractionResult. Any structural problem fails the extraction outright; a
// leg is never invented.
func parseExtraction(response string) (*models.ExtractionResult, error) {
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end == -1 || end < start {
		return nil, errors.New("no JSON object found in model response")
	}

	var raw rawResult
	if err := json.Unmarshal([]byte(response[start:end+1]), &raw); err != nil {
		return nil, err
	}
	if len(raw.Legs) == 0 {
		return nil, errNoLegs
	}

	var rawLegs []rawLeg
	if err := json.Unmarshal(raw.Legs, &rawLegs); err != nil {
		return nil, errNoLegs
	}

	legs := make([]models.FlightLeg, 0, len(rawLegs))
	for _, l := range rawLegs {
		legs = append(legs, models.FlightLeg{
			DepartureIcao:   icaoOrDefault(string(l.DepartureIcao)),
			DepartureName:   stringOrDefault(string(l.DepartureName), defaultAirportName),
			ArrivalIcao:     icaoOrDefault(string(l.ArrivalIcao)),
			ArrivalName:     stringOrDefault(string(l.ArrivalName), defaultAirportName),
			DepartureTime:   stringOrDefault(string(l.DepartureTime), defaultTime),
			ArrivalTime:     stringOrDefault(string(l.ArrivalTime), defaultTime),
			Duration:        stringOrDefault(string(l.Duration), defaultDuration),
			MissionNumber:   stringOrDefault(string(l.MissionNumber), defaultMissionNumber),
			AircraftType:    string(l.AircraftType),
			TailNumber:      string(l.TailNumber),
			Pax:             nonNegativeInt(float64(l.Pax)),
			CargoWeightLbs:  nonNegative(float64(l.CargoWeightLbs)),
			CargoType:       string(l.CargoType),
			SpecialHandling: string(l.SpecialHandling),
		})
	}

	return &models.ExtractionResult{
		Legs:        legs,
		FormType:    stringOrDefault(string(raw.FormType), defaultFormType),
		MissionType: string(raw.MissionType),
		Confidence:  normalizeConfidence(raw.Confidence),
	}, nil
}

func stringOrDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func icaoOrDefault(s string) string {
	if s == "" {
		return defaultIcao
	}
	return strings.ToUpper(s)
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}

func nonNegativeInt(f float64) int {
	if f < 0 {
		return 0
	}
	return int(f)
}

// normalizeConfidence fixes the one fixed scale at the pipeline boundary:
// [0,1], with model-reported percentages divided down and an omitted score
// defaulting to 0.8.
func normalizeConfidence(c *looseNumber) float64 {
	if c == nil {
		return defaultConfidence
	}
	v := float64(*c)
	if v > 1 {
		v = v / 100
	}
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
