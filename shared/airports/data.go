package airports

import "mission-scanner/internal/models"

// airportData covers the major civil hubs plus the military airfields that
// show up on AMC itineraries. Coordinates are degrees, WGS84.
var airportData = []models.Airport{
	// US military
	{Icao: "KTCM", Name: "McChord Field", City: "Tacoma", Country: "United States", Latitude: 47.137681, Longitude: -122.476428},
	{Icao: "KOFF", Name: "Offutt Air Force Base", City: "Omaha", Country: "United States", Latitude: 41.118331, Longitude: -95.912511},
	{Icao: "PHIK", Name: "Hickam Air Force Base", City: "Honolulu", Country: "United States", Latitude: 21.318681, Longitude: -157.922428},
	{Icao: "PGUA", Name: "Andersen Air Force Base", City: "Yigo", Country: "Guam", Latitude: 13.584, Longitude: 144.93},

	// US civil
	{Icao: "KORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States", Latitude: 41.978603, Longitude: -87.904842},
	{Icao: "KJFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States", Latitude: 40.639751, Longitude: -73.778925},
	{Icao: "KLAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States", Latitude: 33.942536, Longitude: -118.408075},
	{Icao: "KIAH", Name: "George Bush Intercontinental Airport", City: "Houston", Country: "United States", Latitude: 29.984433, Longitude: -95.341442},
	{Icao: "KDEN", Name: "Denver International Airport", City: "Denver", Country: "United States", Latitude: 39.861656, Longitude: -104.673178},
	{Icao: "KATL", Name: "Hartsfield-Jackson Atlanta International Airport", City: "Atlanta", Country: "United States", Latitude: 33.636719, Longitude: -84.428067},
	{Icao: "KSEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "United States", Latitude: 47.449, Longitude: -122.309306},
	{Icao: "KPHX", Name: "Phoenix Sky Harbor International Airport", City: "Phoenix", Country: "United States", Latitude: 33.434278, Longitude: -112.011583},
	{Icao: "KLAS", Name: "McCarran International Airport", City: "Las Vegas", Country: "United States", Latitude: 36.080056, Longitude: -115.15225},
	{Icao: "KMIA", Name: "Miami International Airport", City: "Miami", Country: "United States", Latitude: 25.79325, Longitude: -80.290556},
	{Icao: "KBOS", Name: "Logan International Airport", City: "Boston", Country: "United States", Latitude: 42.364347, Longitude: -71.005181},
	{Icao: "KSFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States", Latitude: 37.621311, Longitude: -122.378967},
	{Icao: "KDCA", Name: "Ronald Reagan Washington National Airport", City: "Washington", Country: "United States", Latitude: 38.851242, Longitude: -77.037697},
	{Icao: "KIAD", Name: "Washington Dulles International Airport", City: "Washington", Country: "United States", Latitude: 38.944533, Longitude: -77.455811},
	{Icao: "KBWI", Name: "Baltimore/Washington International Thurgood Marshall Airport", City: "Baltimore", Country: "United States", Latitude: 39.175361, Longitude: -76.668333},
	{Icao: "KMDW", Name: "Midway International Airport", City: "Chicago", Country: "United States", Latitude: 41.785972, Longitude: -87.752417},
	{Icao: "KSTL", Name: "Lambert-St. Louis International Airport", City: "St. Louis", Country: "United States", Latitude: 38.748697, Longitude: -90.370028},
	{Icao: "KMSP", Name: "Minneapolis-Saint Paul International Airport", City: "Minneapolis", Country: "United States", Latitude: 44.881956, Longitude: -93.221767},
	{Icao: "KPHL", Name: "Philadelphia International Airport", City: "Philadelphia", Country: "United States", Latitude: 40.071946, Longitude: -75.072411},
	{Icao: "KCLV", Name: "Charlotte Douglas International Airport", City: "Charlotte", Country: "United States", Latitude: 35.214, Longitude: -80.943139},
	{Icao: "KSAN", Name: "San Diego International Airport", City: "San Diego", Country: "United States", Latitude: 32.733556, Longitude: -117.189667},
	{Icao: "KTPA", Name: "Tampa International Airport", City: "Tampa", Country: "United States", Latitude: 27.975472, Longitude: -82.533194},
	{Icao: "KPDX", Name: "Portland International Airport", City: "Portland", Country: "United States", Latitude: 45.588722, Longitude: -122.5975},
	{Icao: "KSAT", Name: "San Antonio International Airport", City: "San Antonio", Country: "United States", Latitude: 29.533694, Longitude: -98.469778},
	{Icao: "KCVG", Name: "Cincinnati/Northern Kentucky International Airport", City: "Cincinnati", Country: "United States", Latitude: 39.048836, Longitude: -84.667822},
	{Icao: "KPIT", Name: "Pittsburgh International Airport", City: "Pittsburgh", Country: "United States", Latitude: 40.491467, Longitude: -80.232872},

	// Europe
	{Icao: "EGLL", Name: "Heathrow Airport", City: "London", Country: "United Kingdom", Latitude: 51.4706, Longitude: -0.461941},
	{Icao: "LFPG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France", Latitude: 49.012779, Longitude: 2.55},
	{Icao: "EDDF", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany", Latitude: 50.026421, Longitude: 8.543125},
	{Icao: "LIRF", Name: "Leonardo da Vinci Airport", City: "Rome", Country: "Italy", Latitude: 41.804475, Longitude: 12.250797},
	{Icao: "LEMD", Name: "Adolfo Suárez Madrid-Barajas Airport", City: "Madrid", Country: "Spain", Latitude: 40.471926, Longitude: -3.56264},
	{Icao: "LOWW", Name: "Vienna International Airport", City: "Vienna", Country: "Austria", Latitude: 48.110278, Longitude: 16.569722},
	{Icao: "EHAM", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands", Latitude: 52.308056, Longitude: 4.764167},
	{Icao: "EKCH", Name: "Copenhagen Airport", City: "Copenhagen", Country: "Denmark", Latitude: 55.617917, Longitude: 12.656111},
	{Icao: "ESSA", Name: "Stockholm Arlanda Airport", City: "Stockholm", Country: "Sweden", Latitude: 59.651944, Longitude: 17.918611},
	{Icao: "ENGM", Name: "Oslo Airport", City: "Oslo", Country: "Norway", Latitude: 60.193917, Longitude: 11.100361},
	{Icao: "EFHK", Name: "Helsinki Airport", City: "Helsinki", Country: "Finland", Latitude: 60.317222, Longitude: 24.963333},

	// Middle East
	{Icao: "OMDB", Name: "Dubai International Airport", City: "Dubai", Country: "UAE", Latitude: 25.252778, Longitude: 55.364444},
	{Icao: "OTHH", Name: "Hamad International Airport", City: "Doha", Country: "Qatar", Latitude: 25.273056, Longitude: 51.608056},
	{Icao: "OTBH", Name: "Al Udeid Air Base", City: "Doha", Country: "Qatar", Latitude: 25.1173, Longitude: 51.314956},
	{Icao: "OERK", Name: "King Khalid International Airport", City: "Riyadh", Country: "Saudi Arabia", Latitude: 24.957222, Longitude: 46.698889},
	{Icao: "OJAI", Name: "Queen Alia International Airport", City: "Amman", Country: "Jordan", Latitude: 31.722556, Longitude: 35.993214},
	{Icao: "LTBA", Name: "Istanbul Airport", City: "Istanbul", Country: "Turkey", Latitude: 41.275278, Longitude: 28.751944},
	{Icao: "LTAC", Name: "Esenboga Airport", City: "Ankara", Country: "Turkey", Latitude: 40.128081, Longitude: 32.995083},
	{Icao: "OKBK", Name: "Ali Al Salem Air Base", City: "Kuwait", Country: "Kuwait", Latitude: 29.346758, Longitude: 47.678392},

	// Asia-Pacific
	{Icao: "RJTT", Name: "Tokyo Haneda Airport", City: "Tokyo", Country: "Japan", Latitude: 35.552222, Longitude: 139.779722},
	{Icao: "RKSI", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea", Latitude: 37.463333, Longitude: 126.440556},
	{Icao: "VHHH", Name: "Hong Kong International Airport", City: "Hong Kong", Country: "Hong Kong", Latitude: 22.308919, Longitude: 113.914603},
	{Icao: "WSSS", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore", Latitude: 1.350189, Longitude: 103.994433},
	{Icao: "YSSY", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia", Latitude: -33.946667, Longitude: 151.177222},
	{Icao: "YMML", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia", Latitude: -37.673333, Longitude: 144.843333},

	// Africa
	{Icao: "HECA", Name: "Cairo International Airport", City: "Cairo", Country: "Egypt", Latitude: 30.121944, Longitude: 31.405556},
	{Icao: "FAOR", Name: "O.R. Tambo International Airport", City: "Johannesburg", Country: "South Africa", Latitude: -26.139166, Longitude: 28.246},
	{Icao: "GMMN", Name: "Mohammed V International Airport", City: "Casablanca", Country: "Morocco", Latitude: 33.367222, Longitude: -7.589722},

	// South America
	{Icao: "SBGR", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil", Latitude: -23.435556, Longitude: -46.473056},
	{Icao: "SAEZ", Name: "Ezeiza International Airport", City: "Buenos Aires", Country: "Argentina", Latitude: -34.822222, Longitude: -58.535833},
	{Icao: "SCEL", Name: "Santiago International Airport", City: "Santiago", Country: "Chile", Latitude: -33.393056, Longitude: -70.785833},

	// Canada
	{Icao: "CYYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada", Latitude: 43.677222, Longitude: -79.630556},
	{Icao: "CYVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada", Latitude: 49.194722, Longitude: -123.183889},
	{Icao: "CYUL", Name: "Montréal-Pierre Elliott Trudeau International Airport", City: "Montreal", Country: "Canada", Latitude: 45.470556, Longitude: -73.740833},

	// Overseas military bases
	{Icao: "ETAR", Name: "Ramstein Air Base", City: "Ramstein", Country: "Germany", Latitude: 49.436928, Longitude: 7.600278},
	{Icao: "ETAD", Name: "Spangdahlem Air Base", City: "Spangdahlem", Country: "Germany", Latitude: 49.972778, Longitude: 6.6925},
	{Icao: "ETNT", Name: "Grafenwoehr Army Airfield", City: "Grafenwoehr", Country: "Germany", Latitude: 49.698611, Longitude: 11.940278},
	{Icao: "RJOI", Name: "Yokota Air Base", City: "Tokyo", Country: "Japan", Latitude: 35.748472, Longitude: 139.348389},
	{Icao: "OSAN", Name: "Osan Air Base", City: "Pyeongtaek", Country: "South Korea", Latitude: 37.090833, Longitude: 127.029444},
	{Icao: "LERT", Name: "Thule Air Base", City: "Thule", Country: "Greenland", Latitude: 76.531111, Longitude: -68.703056},
	{Icao: "LIPH", Name: "Aviano Air Base", City: "Aviano", Country: "Italy", Latitude: 46.031944, Longitude: 12.596389},
	{Icao: "EGVA", Name: "RAF Fairford", City: "Fairford", Country: "United Kingdom", Latitude: 51.682222, Longitude: -1.79},
	{Icao: "EGVN", Name: "RAF Brize Norton", City: "Carterton", Country: "United Kingdom", Latitude: 51.749722, Longitude: -1.583611},
	{Icao: "LICZ", Name: "Sigonella Naval Air Station", City: "Sigonella", Country: "Italy", Latitude: 37.401667, Longitude: 14.922222},
	{Icao: "LGSA", Name: "Souda Air Base", City: "Souda Bay", Country: "Greece", Latitude: 35.492222, Longitude: 24.063889},
	{Icao: "LTAG", Name: "Incirlik Air Base", City: "Adana", Country: "Turkey", Latitude: 37.002389, Longitude: 35.425833},
	{Icao: "OAIX", Name: "Prince Sultan Air Base", City: "Al Kharj", Country: "Saudi Arabia", Latitude: 24.362778, Longitude: 47.586111},
	{Icao: "OAKN", Name: "Kandahar Airfield", City: "Kandahar", Country: "Afghanistan", Latitude: 31.505556, Longitude: 65.847778},
	{Icao: "ORBI", Name: "Balad Air Base", City: "Balad", Country: "Iraq", Latitude: 33.940833, Longitude: 44.361944},
	{Icao: "ORSU", Name: "Sather Air Base", City: "Baghdad", Country: "Iraq", Latitude: 33.2625, Longitude: 44.235278},
}
