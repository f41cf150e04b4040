package geo

type cityEntry struct {
	name string // lowercase key
	code string // ISO 3166-1 alpha-2
}

// cityCountries maps known city names to country codes. Declaration
// order matters: the substring-containment fallback in Resolve returns
// the first entry that matches, so keep this a slice, not a map.
var cityCountries = []cityEntry{
	// South Africa
	{"cape town", "ZA"}, {"johannesburg", "ZA"}, {"durban", "ZA"}, {"pretoria", "ZA"},
	{"stellenbosch", "ZA"}, {"knysna", "ZA"}, {"port elizabeth", "ZA"}, {"gqeberha", "ZA"},
	{"franschhoek", "ZA"}, {"hermanus", "ZA"}, {"plettenberg bay", "ZA"}, {"george", "ZA"},
	{"bloemfontein", "ZA"}, {"east london", "ZA"}, {"polokwane", "ZA"}, {"nelspruit", "ZA"},
	{"mpumalanga", "ZA"}, {"kruger", "ZA"}, {"sun city", "ZA"}, {"sodwana", "ZA"},

	// United Kingdom
	{"london", "GB"}, {"manchester", "GB"}, {"birmingham", "GB"}, {"edinburgh", "GB"},
	{"glasgow", "GB"}, {"liverpool", "GB"}, {"bristol", "GB"}, {"leeds", "GB"},
	{"oxford", "GB"}, {"cambridge", "GB"}, {"bath", "GB"}, {"york", "GB"},
	{"brighton", "GB"}, {"cardiff", "GB"}, {"belfast", "GB"}, {"newcastle", "GB"},
	{"nottingham", "GB"}, {"sheffield", "GB"}, {"southampton", "GB"}, {"coventry", "GB"},

	// France
	{"paris", "FR"}, {"nice", "FR"}, {"lyon", "FR"}, {"marseille", "FR"},
	{"bordeaux", "FR"}, {"toulouse", "FR"}, {"strasbourg", "FR"}, {"cannes", "FR"},
	{"montpellier", "FR"}, {"nantes", "FR"}, {"lille", "FR"}, {"monaco", "MC"},

	// United States
	{"new york", "US"}, {"los angeles", "US"}, {"miami", "US"}, {"las vegas", "US"},
	{"san francisco", "US"}, {"chicago", "US"}, {"boston", "US"}, {"seattle", "US"},
	{"washington", "US"}, {"orlando", "US"}, {"san diego", "US"}, {"denver", "US"},
	{"atlanta", "US"}, {"dallas", "US"}, {"houston", "US"}, {"phoenix", "US"},
	{"new orleans", "US"}, {"nashville", "US"}, {"austin", "US"}, {"philadelphia", "US"},
	{"portland", "US"}, {"honolulu", "US"}, {"hawaii", "US"}, {"maui", "US"},
	{"waikiki", "US"}, {"fort lauderdale", "US"}, {"tampa", "US"}, {"savannah", "US"},

	// Canada
	{"toronto", "CA"}, {"vancouver", "CA"}, {"montreal", "CA"}, {"calgary", "CA"},
	{"ottawa", "CA"}, {"quebec city", "CA"}, {"victoria", "CA"}, {"whistler", "CA"},
	{"banff", "CA"}, {"niagara falls", "CA"}, {"halifax", "CA"}, {"edmonton", "CA"},

	// Australia
	{"sydney", "AU"}, {"melbourne", "AU"}, {"brisbane", "AU"}, {"perth", "AU"},
	{"gold coast", "AU"}, {"cairns", "AU"}, {"adelaide", "AU"}, {"hobart", "AU"},
	{"darwin", "AU"}, {"canberra", "AU"}, {"alice springs", "AU"}, {"uluru", "AU"},

	// New Zealand
	{"auckland", "NZ"}, {"queenstown", "NZ"}, {"wellington", "NZ"}, {"christchurch", "NZ"},
	{"rotorua", "NZ"}, {"dunedin", "NZ"}, {"napier", "NZ"}, {"taupo", "NZ"},

	// Germany
	{"berlin", "DE"}, {"munich", "DE"}, {"frankfurt", "DE"}, {"hamburg", "DE"},
	{"cologne", "DE"}, {"dusseldorf", "DE"}, {"stuttgart", "DE"}, {"dresden", "DE"},
	{"leipzig", "DE"}, {"nuremberg", "DE"}, {"hanover", "DE"}, {"bremen", "DE"},

	// Italy
	{"rome", "IT"}, {"milan", "IT"}, {"venice", "IT"}, {"florence", "IT"},
	{"naples", "IT"}, {"turin", "IT"}, {"bologna", "IT"}, {"amalfi", "IT"},
	{"positano", "IT"}, {"cinque terre", "IT"}, {"sorrento", "IT"}, {"sicily", "IT"},
	{"palermo", "IT"}, {"pisa", "IT"}, {"verona", "IT"}, {"siena", "IT"},

	// Spain
	{"barcelona", "ES"}, {"madrid", "ES"}, {"seville", "ES"}, {"valencia", "ES"},
	{"malaga", "ES"}, {"ibiza", "ES"}, {"majorca", "ES"}, {"mallorca", "ES"},
	{"granada", "ES"}, {"bilbao", "ES"}, {"san sebastian", "ES"}, {"tenerife", "ES"},
	{"marbella", "ES"}, {"costa brava", "ES"}, {"alicante", "ES"}, {"cordoba", "ES"},

	// Portugal
	{"lisbon", "PT"}, {"porto", "PT"}, {"faro", "PT"}, {"algarve", "PT"},
	{"madeira", "PT"}, {"funchal", "PT"}, {"sintra", "PT"}, {"cascais", "PT"},

	// Netherlands
	{"amsterdam", "NL"}, {"rotterdam", "NL"}, {"the hague", "NL"}, {"utrecht", "NL"},
	{"eindhoven", "NL"}, {"maastricht", "NL"}, {"delft", "NL"}, {"haarlem", "NL"},

	// Belgium
	{"brussels", "BE"}, {"bruges", "BE"}, {"antwerp", "BE"}, {"ghent", "BE"},

	// Switzerland
	{"zurich", "CH"}, {"geneva", "CH"}, {"bern", "CH"}, {"lucerne", "CH"},
	{"interlaken", "CH"}, {"zermatt", "CH"}, {"basel", "CH"}, {"lausanne", "CH"},

	// Austria
	{"vienna", "AT"}, {"salzburg", "AT"}, {"innsbruck", "AT"}, {"graz", "AT"},
	{"hallstatt", "AT"}, {"linz", "AT"}, {"kitzbuhel", "AT"},

	// Greece
	{"athens", "GR"}, {"santorini", "GR"}, {"mykonos", "GR"}, {"crete", "GR"},
	{"rhodes", "GR"}, {"corfu", "GR"}, {"thessaloniki", "GR"}, {"zakynthos", "GR"},
	{"paros", "GR"}, {"naxos", "GR"}, {"heraklion", "GR"}, {"kos", "GR"},

	// Turkey
	{"istanbul", "TR"}, {"antalya", "TR"}, {"bodrum", "TR"}, {"cappadocia", "TR"},
	{"izmir", "TR"}, {"ankara", "TR"}, {"fethiye", "TR"}, {"marmaris", "TR"},

	// Croatia
	{"dubrovnik", "HR"}, {"split", "HR"}, {"zagreb", "HR"}, {"hvar", "HR"},
	{"plitvice", "HR"}, {"zadar", "HR"}, {"rovinj", "HR"}, {"pula", "HR"},

	// Czech Republic
	{"prague", "CZ"}, {"brno", "CZ"}, {"karlovy vary", "CZ"}, {"cesky krumlov", "CZ"},

	// Hungary
	{"budapest", "HU"}, {"debrecen", "HU"}, {"szeged", "HU"},

	// Poland
	{"warsaw", "PL"}, {"krakow", "PL"}, {"gdansk", "PL"}, {"wroclaw", "PL"}, {"poznan", "PL"},

	// Scandinavia
	{"copenhagen", "DK"}, {"stockholm", "SE"}, {"oslo", "NO"}, {"helsinki", "FI"},
	{"reykjavik", "IS"}, {"bergen", "NO"}, {"gothenburg", "SE"}, {"malmo", "SE"},
	{"tromso", "NO"}, {"lapland", "FI"}, {"rovaniemi", "FI"}, {"aarhus", "DK"},

	// Russia
	{"moscow", "RU"}, {"st petersburg", "RU"}, {"saint petersburg", "RU"}, {"sochi", "RU"},

	// Japan
	{"tokyo", "JP"}, {"kyoto", "JP"}, {"osaka", "JP"}, {"hiroshima", "JP"},
	{"nara", "JP"}, {"hakone", "JP"}, {"yokohama", "JP"}, {"nagoya", "JP"},
	{"sapporo", "JP"}, {"fukuoka", "JP"}, {"okinawa", "JP"}, {"kobe", "JP"},

	// China
	{"beijing", "CN"}, {"shanghai", "CN"}, {"hong kong", "HK"}, {"guangzhou", "CN"},
	{"shenzhen", "CN"}, {"xian", "CN"}, {"chengdu", "CN"}, {"hangzhou", "CN"},
	{"suzhou", "CN"}, {"guilin", "CN"}, {"macau", "MO"}, {"taipei", "TW"},

	// Southeast Asia
	{"bangkok", "TH"}, {"phuket", "TH"}, {"chiang mai", "TH"}, {"pattaya", "TH"},
	{"krabi", "TH"}, {"koh samui", "TH"}, {"hua hin", "TH"}, {"phi phi", "TH"},
	{"singapore", "SG"}, {"kuala lumpur", "MY"}, {"penang", "MY"}, {"langkawi", "MY"},
	{"bali", "ID"}, {"jakarta", "ID"}, {"lombok", "ID"}, {"yogyakarta", "ID"},
	{"ubud", "ID"}, {"seminyak", "ID"}, {"kuta", "ID"}, {"nusa dua", "ID"},
	{"hanoi", "VN"}, {"ho chi minh", "VN"}, {"saigon", "VN"}, {"da nang", "VN"},
	{"hoi an", "VN"}, {"nha trang", "VN"}, {"phu quoc", "VN"}, {"halong bay", "VN"},
	{"manila", "PH"}, {"boracay", "PH"}, {"cebu", "PH"}, {"palawan", "PH"}, {"el nido", "PH"},
	{"phnom penh", "KH"}, {"siem reap", "KH"}, {"angkor wat", "KH"},
	{"vientiane", "LA"}, {"luang prabang", "LA"},
	{"yangon", "MM"}, {"bagan", "MM"},

	// South Asia
	{"mumbai", "IN"}, {"delhi", "IN"}, {"new delhi", "IN"}, {"goa", "IN"},
	{"jaipur", "IN"}, {"agra", "IN"}, {"kerala", "IN"}, {"bangalore", "IN"},
	{"chennai", "IN"}, {"kolkata", "IN"}, {"udaipur", "IN"}, {"varanasi", "IN"},
	{"hyderabad", "IN"}, {"pune", "IN"}, {"shimla", "IN"}, {"rishikesh", "IN"},
	{"colombo", "LK"}, {"kandy", "LK"}, {"galle", "LK"}, {"ella", "LK"},
	{"kathmandu", "NP"}, {"pokhara", "NP"},
	{"dhaka", "BD"}, {"karachi", "PK"}, {"lahore", "PK"}, {"islamabad", "PK"},

	// Korea
	{"seoul", "KR"}, {"busan", "KR"}, {"jeju", "KR"}, {"incheon", "KR"}, {"gyeongju", "KR"},

	// Middle East
	{"dubai", "AE"}, {"abu dhabi", "AE"}, {"sharjah", "AE"}, {"ras al khaimah", "AE"},
	{"doha", "QA"}, {"manama", "BH"}, {"muscat", "OM"}, {"kuwait city", "KW"},
	{"riyadh", "SA"}, {"jeddah", "SA"}, {"mecca", "SA"}, {"medina", "SA"},
	{"tel aviv", "IL"}, {"jerusalem", "IL"}, {"eilat", "IL"}, {"haifa", "IL"},
	{"amman", "JO"}, {"petra", "JO"}, {"dead sea", "JO"}, {"aqaba", "JO"},
	{"beirut", "LB"}, {"tehran", "IR"},

	// North Africa
	{"cairo", "EG"}, {"luxor", "EG"}, {"aswan", "EG"}, {"alexandria", "EG"},
	{"hurghada", "EG"}, {"sharm el sheikh", "EG"}, {"marrakech", "MA"}, {"marrakesh", "MA"},
	{"casablanca", "MA"}, {"fes", "MA"}, {"fez", "MA"}, {"tangier", "MA"}, {"agadir", "MA"},
	{"tunis", "TN"}, {"sousse", "TN"}, {"djerba", "TN"},

	// East Africa
	{"nairobi", "KE"}, {"mombasa", "KE"}, {"masai mara", "KE"}, {"diani", "KE"},
	{"dar es salaam", "TZ"}, {"zanzibar", "TZ"}, {"serengeti", "TZ"}, {"arusha", "TZ"},
	{"kilimanjaro", "TZ"}, {"addis ababa", "ET"}, {"kigali", "RW"},
	{"kampala", "UG"}, {"entebbe", "UG"}, {"seychelles", "SC"}, {"mahe", "SC"},
	{"mauritius", "MU"}, {"port louis", "MU"}, {"maldives", "MV"}, {"male", "MV"},
	{"reunion", "RE"}, {"madagascar", "MG"}, {"antananarivo", "MG"},

	// Southern Africa
	{"victoria falls", "ZW"}, {"harare", "ZW"}, {"lusaka", "ZM"}, {"livingstone", "ZM"},
	{"windhoek", "NA"}, {"swakopmund", "NA"}, {"etosha", "NA"}, {"sossusvlei", "NA"},
	{"gaborone", "BW"}, {"kasane", "BW"}, {"maun", "BW"}, {"okavango", "BW"},
	{"maputo", "MZ"}, {"tofo", "MZ"}, {"bazaruto", "MZ"},

	// West Africa
	{"accra", "GH"}, {"lagos", "NG"}, {"dakar", "SN"}, {"abidjan", "CI"},

	// Caribbean & Mexico
	{"cancun", "MX"}, {"playa del carmen", "MX"}, {"tulum", "MX"}, {"cozumel", "MX"},
	{"mexico city", "MX"}, {"cabo", "MX"}, {"los cabos", "MX"}, {"puerto vallarta", "MX"},
	{"havana", "CU"}, {"varadero", "CU"}, {"punta cana", "DO"}, {"santo domingo", "DO"},
	{"san juan", "PR"}, {"nassau", "BS"}, {"bahamas", "BS"}, {"jamaica", "JM"},
	{"montego bay", "JM"}, {"negril", "JM"}, {"ocho rios", "JM"},
	{"barbados", "BB"}, {"bridgetown", "BB"}, {"aruba", "AW"}, {"curacao", "CW"},
	{"st lucia", "LC"}, {"antigua", "AG"}, {"st maarten", "SX"}, {"turks and caicos", "TC"},
	{"cayman islands", "KY"}, {"grand cayman", "KY"}, {"virgin islands", "VI"},
	{"trinidad", "TT"}, {"grenada", "GD"}, {"st kitts", "KN"}, {"martinique", "MQ"},
	{"guadeloupe", "GP"}, {"bermuda", "BM"},

	// Central America
	{"panama city", "PA"}, {"san jose", "CR"}, {"costa rica", "CR"}, {"manuel antonio", "CR"},
	{"monteverde", "CR"}, {"la fortuna", "CR"}, {"tamarindo", "CR"},
	{"belize city", "BZ"}, {"san pedro", "BZ"}, {"placencia", "BZ"},
	{"guatemala city", "GT"}, {"antigua guatemala", "GT"}, {"tikal", "GT"},
	{"managua", "NI"}, {"granada nicaragua", "NI"}, {"tegucigalpa", "HN"}, {"roatan", "HN"},
	{"san salvador", "SV"},

	// South America
	{"rio de janeiro", "BR"}, {"sao paulo", "BR"}, {"salvador", "BR"}, {"florianopolis", "BR"},
	{"iguazu", "BR"}, {"buzios", "BR"}, {"fortaleza", "BR"}, {"recife", "BR"},
	{"buenos aires", "AR"}, {"mendoza", "AR"}, {"bariloche", "AR"}, {"ushuaia", "AR"},
	{"iguazu falls", "AR"}, {"el calafate", "AR"}, {"salta", "AR"}, {"cordoba argentina", "AR"},
	{"santiago", "CL"}, {"valparaiso", "CL"}, {"atacama", "CL"}, {"patagonia", "CL"},
	{"torres del paine", "CL"}, {"easter island", "CL"},
	{"lima", "PE"}, {"cusco", "PE"}, {"machu picchu", "PE"}, {"arequipa", "PE"},
	{"sacred valley", "PE"}, {"puno", "PE"}, {"lake titicaca", "PE"},
	{"bogota", "CO"}, {"cartagena", "CO"}, {"medellin", "CO"}, {"santa marta", "CO"},
	{"quito", "EC"}, {"galapagos", "EC"}, {"guayaquil", "EC"}, {"cuenca", "EC"},
	{"la paz", "BO"}, {"uyuni", "BO"}, {"sucre", "BO"},
	{"montevideo", "UY"}, {"punta del este", "UY"},
	{"asuncion", "PY"}, {"caracas", "VE"},

	// Pacific
	{"fiji", "FJ"}, {"suva", "FJ"}, {"nadi", "FJ"}, {"tahiti", "PF"}, {"bora bora", "PF"},
	{"moorea", "PF"}, {"samoa", "WS"}, {"tonga", "TO"}, {"vanuatu", "VU"},
	{"new caledonia", "NC"}, {"noumea", "NC"}, {"palau", "PW"}, {"guam", "GU"},
}

// cityIndex backs the exact-match path in Resolve.
var cityIndex = func() map[string]string {
	m := make(map[string]string, len(cityCountries))
	for _, e := range cityCountries {
		m[e.name] = e.code
	}
	return m
}()

// countryCodes handles country-level queries like "France" or "uk".
var countryCodes = map[string]string{
	"south africa": "ZA", "united kingdom": "GB", "uk": "GB", "england": "GB",
	"france": "FR", "united states": "US", "usa": "US", "america": "US",
	"canada": "CA", "australia": "AU", "new zealand": "NZ", "germany": "DE",
	"italy": "IT", "spain": "ES", "portugal": "PT", "netherlands": "NL",
	"belgium": "BE", "switzerland": "CH", "austria": "AT", "greece": "GR",
	"turkey": "TR", "croatia": "HR", "czech republic": "CZ", "czechia": "CZ",
	"hungary": "HU", "poland": "PL", "denmark": "DK", "sweden": "SE",
	"norway": "NO", "finland": "FI", "iceland": "IS", "russia": "RU",
	"japan": "JP", "china": "CN", "thailand": "TH", "indonesia": "ID",
	"malaysia": "MY", "vietnam": "VN", "philippines": "PH", "cambodia": "KH",
	"india": "IN", "sri lanka": "LK", "nepal": "NP", "south korea": "KR",
	"korea": "KR", "uae": "AE", "united arab emirates": "AE", "qatar": "QA",
	"saudi arabia": "SA", "israel": "IL", "jordan": "JO", "egypt": "EG",
	"morocco": "MA", "tunisia": "TN", "kenya": "KE", "tanzania": "TZ",
	"namibia": "NA", "botswana": "BW", "zimbabwe": "ZW", "zambia": "ZM",
	"mozambique": "MZ", "mexico": "MX", "cuba": "CU", "dominican republic": "DO",
	"jamaica": "JM", "costa rica": "CR", "panama": "PA", "belize": "BZ",
	"guatemala": "GT", "brazil": "BR", "argentina": "AR", "chile": "CL",
	"peru": "PE", "colombia": "CO", "ecuador": "EC", "bolivia": "BO",
	"uruguay": "UY", "fiji": "FJ", "french polynesia": "PF",
}

// Cities is the autocomplete gazetteer, popular destinations first.
// Order is preserved through scoring ties in SearchCities.
var Cities = []string{
	"London", "Paris", "New York", "Tokyo", "Dubai", "Singapore", "Barcelona",
	"Rome", "Amsterdam", "Bangkok", "Sydney", "Los Angeles", "Miami", "Istanbul",

	"Cape Town", "Johannesburg", "Durban", "Pretoria", "Stellenbosch", "Knysna",
	"Port Elizabeth", "Franschhoek", "Hermanus", "Plettenberg Bay", "George",
	"Bloemfontein", "Polokwane", "Nelspruit", "Kruger", "Sun City",

	"Manchester", "Birmingham", "Edinburgh", "Glasgow", "Liverpool", "Bristol",
	"Leeds", "Oxford", "Cambridge", "Bath", "York", "Brighton", "Cardiff",
	"Belfast", "Newcastle", "Nottingham", "Sheffield",

	"Nice", "Lyon", "Marseille", "Bordeaux", "Toulouse", "Strasbourg", "Cannes",
	"Montpellier", "Nantes", "Lille", "Monaco",

	"Las Vegas", "San Francisco", "Chicago", "Boston", "Seattle", "Washington",
	"Orlando", "San Diego", "Denver", "Atlanta", "Dallas", "Houston", "Phoenix",
	"New Orleans", "Nashville", "Austin", "Philadelphia", "Honolulu", "Hawaii",

	"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa", "Quebec City",
	"Victoria", "Whistler", "Banff", "Niagara Falls",

	"Melbourne", "Brisbane", "Perth", "Gold Coast", "Cairns", "Adelaide",
	"Auckland", "Queenstown", "Wellington", "Christchurch",

	"Berlin", "Munich", "Frankfurt", "Hamburg", "Milan", "Venice", "Florence",
	"Naples", "Madrid", "Seville", "Valencia", "Malaga", "Ibiza", "Lisbon",
	"Porto", "Brussels", "Bruges", "Zurich", "Geneva", "Vienna", "Salzburg",
	"Prague", "Budapest", "Warsaw", "Krakow", "Copenhagen", "Stockholm", "Oslo",
	"Helsinki", "Reykjavik", "Athens", "Santorini", "Mykonos", "Dublin",
	"Dubrovnik", "Split",

	"Kyoto", "Osaka", "Hong Kong", "Shanghai", "Beijing", "Seoul", "Busan",
	"Taipei", "Phuket", "Chiang Mai", "Bali", "Kuala Lumpur", "Hanoi",
	"Ho Chi Minh", "Manila", "Siem Reap", "Mumbai", "Delhi", "Goa", "Jaipur",

	"Abu Dhabi", "Doha", "Tel Aviv", "Jerusalem", "Amman", "Petra",

	"Cairo", "Marrakech", "Casablanca", "Nairobi", "Zanzibar", "Mauritius",
	"Maldives", "Seychelles", "Victoria Falls",

	"Cancun", "Mexico City", "Havana", "Punta Cana", "Jamaica", "Bahamas",
	"Barbados", "Aruba", "Rio de Janeiro", "Sao Paulo", "Buenos Aires",
	"Lima", "Cusco", "Machu Picchu", "Bogota", "Cartagena", "Fiji", "Bora Bora",
}
