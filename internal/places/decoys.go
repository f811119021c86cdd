// internal/places/decoys.go
//
// Static decoy tables for hint generation and autocomplete.
//
// Every lookup is an explicit map with a fixed fallback slice for keys the
// tables don't know, and short rows (city-states like Singapore) are topped
// up from the same fallbacks, so a hint pool always holds a full option set
// even after the answer is removed. Pool entries share canonical casing
// with catalog answers.

package places

// continents is the fixed world list used for the continent stage.
var continents = []string{
	"Africa",
	"Antarctica",
	"Asia",
	"Europe",
	"North America",
	"Oceania",
	"South America",
}

// isContinent reports whether s is one of the seven continents.
func isContinent(s string) bool {
	for _, c := range continents {
		if c == s {
			return true
		}
	}
	return false
}

// countriesByContinent scopes country decoys to the continent the player
// has already solved.
var countriesByContinent = map[string][]string{
	"Africa":        {"Egypt", "South Africa", "Morocco", "Kenya", "Nigeria", "Ghana", "Tanzania", "Ethiopia"},
	"Asia":          {"Japan", "Singapore", "Thailand", "India", "China", "South Korea", "Vietnam", "Indonesia", "Malaysia"},
	"Europe":        {"United Kingdom", "France", "Germany", "Italy", "Spain", "Netherlands", "Portugal", "Greece", "Austria", "Switzerland"},
	"North America": {"United States", "Canada", "Mexico", "Cuba", "Costa Rica", "Panama", "Guatemala", "Jamaica"},
	"Oceania":       {"Australia", "New Zealand", "Fiji", "Papua New Guinea", "Samoa", "Tonga"},
	"South America": {"Brazil", "Argentina", "Peru", "Chile", "Colombia", "Ecuador", "Uruguay", "Bolivia"},
}

// regionsByCountry scopes region decoys to the solved country.
var regionsByCountry = map[string][]string{
	"United States": {
		"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado",
		"Connecticut", "Delaware", "Florida", "Georgia", "Hawaii", "Idaho",
		"Illinois", "Indiana", "Iowa", "Kansas", "Kentucky", "Louisiana",
		"Maine", "Maryland", "Massachusetts", "Michigan", "Minnesota",
		"Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
		"New Hampshire", "New Jersey", "New Mexico", "New York",
		"North Carolina", "North Dakota", "Ohio", "Oklahoma", "Oregon",
		"Pennsylvania", "Rhode Island", "South Carolina", "South Dakota",
		"Tennessee", "Texas", "Utah", "Vermont", "Virginia", "Washington",
		"West Virginia", "Wisconsin", "Wyoming",
	},
	"Canada":         {"Ontario", "Quebec", "British Columbia", "Alberta", "Manitoba", "Nova Scotia", "Saskatchewan"},
	"Mexico":         {"Mexico City", "Jalisco", "Yucatán", "Baja California", "Quintana Roo", "Oaxaca"},
	"United Kingdom": {"England", "Scotland", "Wales", "Northern Ireland", "Channel Islands", "Isle of Man"},
	"France": {
		"Île-de-France", "Provence-Alpes-Côte d'Azur", "Occitanie",
		"Nouvelle-Aquitaine", "Auvergne-Rhône-Alpes", "Bourgogne-Franche-Comté",
		"Centre-Val de Loire", "Corse", "Grand Est", "Hauts-de-France",
		"Normandie", "Pays de la Loire",
	},
	"Germany":     {"Berlin", "Bavaria", "Hamburg", "Hesse", "Saxony", "North Rhine-Westphalia", "Baden-Württemberg"},
	"Italy":       {"Lazio", "Lombardy", "Tuscany", "Veneto", "Sicily", "Campania", "Piedmont"},
	"Spain":       {"Community of Madrid", "Catalonia", "Andalusia", "Valencian Community", "Basque Country", "Galicia"},
	"Netherlands": {"North Holland", "South Holland", "Utrecht", "Gelderland", "North Brabant", "Friesland"},
	"Japan":       {"Tokyo", "Osaka", "Kyoto", "Hokkaido", "Fukuoka", "Aichi", "Kanagawa", "Saitama", "Chiba", "Hyogo"},
	"Singapore":   {"Singapore"},
	"Thailand":    {"Bangkok", "Chiang Mai", "Phuket", "Krabi", "Chonburi", "Surat Thani"},
	"India":       {"Maharashtra", "Delhi", "Karnataka", "Tamil Nadu", "West Bengal", "Rajasthan", "Kerala"},
	"Australia": {
		"New South Wales", "Victoria", "Queensland", "Western Australia",
		"South Australia", "Tasmania", "Australian Capital Territory", "Northern Territory",
	},
	"New Zealand":  {"Auckland", "Wellington", "Canterbury", "Otago", "Waikato", "Bay of Plenty"},
	"Brazil":       {"São Paulo", "Rio de Janeiro", "Minas Gerais", "Bahia", "Paraná", "Rio Grande do Sul", "Pernambuco", "Ceará", "Pará", "Santa Catarina"},
	"Argentina":    {"Buenos Aires", "Córdoba", "Santa Fe", "Mendoza", "Salta", "Tucumán"},
	"Peru":         {"Lima", "Cusco", "Arequipa", "La Libertad", "Piura", "Loreto"},
	"Egypt":        {"Cairo", "Alexandria", "Giza", "Luxor", "Aswan", "Red Sea", "South Sinai"},
	"South Africa": {"Western Cape", "Gauteng", "KwaZulu-Natal", "Eastern Cape", "Free State", "Limpopo"},
	"Morocco":      {"Marrakesh-Safi", "Casablanca-Settat", "Rabat-Salé-Kénitra", "Fès-Meknès", "Tangier-Tetouan-Al Hoceima", "Souss-Massa"},
}

// citiesByCountry scopes city decoys to the solved country.
var citiesByCountry = map[string][]string{
	"United States":  {"New York", "Los Angeles", "Chicago", "Seattle", "Austin", "Miami", "Denver", "New Orleans", "Boston", "San Francisco"},
	"Canada":         {"Toronto", "Vancouver", "Montreal", "Ottawa", "Calgary", "Quebec City"},
	"Mexico":         {"Mexico City", "Guadalajara", "Cancún", "Monterrey", "Mérida", "Oaxaca"},
	"United Kingdom": {"London", "Manchester", "Edinburgh", "Liverpool", "Glasgow", "Bristol", "Birmingham"},
	"France":         {"Paris", "Marseille", "Lyon", "Toulouse", "Nice", "Bordeaux", "Strasbourg"},
	"Germany":        {"Berlin", "Munich", "Hamburg", "Frankfurt", "Cologne", "Dresden", "Stuttgart"},
	"Italy":          {"Rome", "Milan", "Naples", "Florence", "Venice", "Turin", "Bologna"},
	"Spain":          {"Madrid", "Barcelona", "Seville", "Valencia", "Bilbao", "Granada"},
	"Netherlands":    {"Amsterdam", "Rotterdam", "The Hague", "Utrecht", "Eindhoven", "Groningen"},
	"Japan":          {"Tokyo", "Osaka", "Kyoto", "Sapporo", "Fukuoka", "Nagoya", "Yokohama", "Hiroshima"},
	"Singapore":      {"Singapore"},
	"Thailand":       {"Bangkok", "Chiang Mai", "Phuket", "Pattaya", "Krabi", "Ayutthaya"},
	"India":          {"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Jaipur", "Hyderabad"},
	"Australia":      {"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Canberra", "Hobart"},
	"New Zealand":    {"Auckland", "Wellington", "Christchurch", "Queenstown", "Dunedin", "Hamilton"},
	"Brazil":         {"Rio de Janeiro", "São Paulo", "Brasília", "Salvador", "Fortaleza", "Recife", "Manaus"},
	"Argentina":      {"Buenos Aires", "Córdoba", "Rosario", "Mendoza", "Salta", "Mar del Plata"},
	"Peru":           {"Lima", "Cusco", "Arequipa", "Trujillo", "Iquitos", "Piura"},
	"Egypt":          {"Cairo", "Alexandria", "Giza", "Luxor", "Aswan", "Sharm El Sheikh", "Hurghada"},
	"South Africa":   {"Cape Town", "Johannesburg", "Durban", "Pretoria", "Port Elizabeth", "Bloemfontein"},
	"Morocco":        {"Marrakesh", "Casablanca", "Rabat", "Fes", "Tangier", "Agadir"},
}

// Fallback pools for countries/continents the tables don't know.
// Lifted from the broadest rows above so an unmatched key still yields a
// plausible option set.
var (
	fallbackCountries = []string{"United States", "United Kingdom", "France", "Japan", "Australia", "Brazil", "Egypt", "Germany", "Italy", "Spain"}
	fallbackRegions   = []string{"California", "Texas", "Florida", "New York", "Illinois", "Pennsylvania", "Ohio", "Georgia", "North Carolina", "Michigan"}
	fallbackCities    = []string{"New York", "Los Angeles", "London", "Paris", "Tokyo", "Sydney", "Rio de Janeiro", "Cairo", "Berlin", "Rome"}
)

// minPool is the smallest slice the pool methods return: three decoys plus
// the answer, so removing the answer still leaves a full decoy set.
const minPool = 4

// topUp extends scoped with fallback entries it doesn't already hold until
// it reaches min names. The table rows are never mutated.
func topUp(scoped, fallback []string, min int) []string {
	if len(scoped) >= min {
		return scoped
	}
	out := make([]string, 0, min)
	out = append(out, scoped...)
	have := make(map[string]bool, len(scoped))
	for _, s := range scoped {
		have[s] = true
	}
	for _, f := range fallback {
		if len(out) >= min {
			break
		}
		if !have[f] {
			out = append(out, f)
			have[f] = true
		}
	}
	return out
}

// DecoyPool implements the engine's DecoySource over the static tables.
// It is stateless; the zero value is ready to use.
type DecoyPool struct{}

// Continents returns the fixed world continent list.
func (DecoyPool) Continents() []string { return continents }

// Countries returns countries on the given continent, or the fallback set
// when the continent is unknown.
func (DecoyPool) Countries(continent string) []string {
	if v, ok := countriesByContinent[continent]; ok {
		return topUp(v, fallbackCountries, minPool)
	}
	return fallbackCountries
}

// Regions returns regions of the given country, or the fallback set when
// the country is unknown. Single-region countries are topped up so the
// pool still yields decoys once the answer is dropped.
func (DecoyPool) Regions(country string) []string {
	if v, ok := regionsByCountry[country]; ok {
		return topUp(v, fallbackRegions, minPool)
	}
	return fallbackRegions
}

// Cities returns cities of the given country, or the fallback set when the
// country is unknown. Topped up the same way as Regions.
func (DecoyPool) Cities(country string) []string {
	if v, ok := citiesByCountry[country]; ok {
		return topUp(v, fallbackCities, minPool)
	}
	return fallbackCities
}

// ---------------------------------------------------------------------------
// Flat accessors for autocomplete.

// ContinentList returns the seven continents.
func ContinentList() []string { return continents }

// CountryList returns every country the tables know, across all continents.
func CountryList() []string {
	var out []string
	for _, c := range continents {
		out = append(out, countriesByContinent[c]...)
	}
	return out
}

// RegionList returns regions of country, or every known region when
// country is empty or unknown.
func RegionList(country string) []string {
	if v, ok := regionsByCountry[country]; ok {
		return v
	}
	var out []string
	for _, rs := range regionsByCountry {
		out = append(out, rs...)
	}
	return out
}

// CityList returns cities of country, or every known city when country is
// empty or unknown.
func CityList(country string) []string {
	if v, ok := citiesByCountry[country]; ok {
		return v
	}
	var out []string
	for _, cs := range citiesByCountry {
		out = append(out, cs...)
	}
	return out
}
