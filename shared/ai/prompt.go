package ai

// extractionPrompt is the core asset of the pipeline: it enumerates every
// output field by name and order for a fixed form layout, pins the defaults
// for unreadable fields, and explicitly forbids stopping after the first
// leg. Keep it in sync with the repair defaults in repair.go.
const extractionPrompt = `You are an expert at reading AMC IMI 170 (Individual Mission Itinerary) forms used by Air Mobility Command. Extract ALL flight legs from the document in the exact format specified.

CRITICAL: Extract EVERY flight leg visible in the document. AMC IMI 170 forms contain multiple flight legs arranged in rows/tables.

For each flight leg, extract exactly these fields in this order:
1. Departure ICAO code (4 letters like KTCM)
2. Arrival ICAO code (4 letters like KPSM)
3. Departure time (4 digits like 1720, may carry a day-offset suffix)
4. Arrival time (4 digits like 2215)
5. Tail number (like 08-8196)
6. Mission number (like PMZF1301C147)
7. Flying hours (decimal like 4.9)
8. Cargo weight in pounds (like 73900)
9. PAX count (number like 0)

If a field is unreadable, use an empty string for text fields and 0 for numeric fields. Never omit a field and never invent a value.

Respond with JSON in this exact format:
{
  "legs": [
    {
      "departureIcao": "extracted ICAO or empty string",
      "departureName": "extracted name or empty string",
      "arrivalIcao": "extracted ICAO or empty string",
      "arrivalName": "extracted name or empty string",
      "departureTime": "extracted time or empty string",
      "arrivalTime": "extracted time or empty string",
      "duration": "extracted duration or empty string",
      "missionNumber": "extracted mission number or empty string",
      "aircraftType": "extracted aircraft type or empty string",
      "tailNumber": "extracted tail number or empty string",
      "pax": 0,
      "cargoWeightLbs": 0,
      "cargoType": "extracted cargo type or empty string",
      "specialHandling": "extracted special handling or empty string"
    }
  ],
  "formType": "AMC IMI 170",
  "missionType": "extracted mission type or empty string",
  "confidence": 0.95
}

The confidence value must be your actual confidence in the extraction, between 0 and 1.

EXTRACT ALL LEGS - do not stop at the first one. Look for multiple rows of flight data in the document.`
