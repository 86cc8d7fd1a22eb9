package locale

// Region week data taken from the CLDR supplemental weekData tables.
// Weekdays are 0 for Sunday through 6 for Saturday.

const (
	defaultFirstDay = 1
)

var defaultWeekend = []int{0, 6}

var firstDayByRegion = map[string]int{
	// Sunday
	"AG": 0, "AS": 0, "BD": 0, "BR": 0, "BS": 0, "BT": 0, "BW": 0, "BZ": 0,
	"CA": 0, "CN": 0, "CO": 0, "DM": 0, "DO": 0, "ET": 0, "GT": 0, "GU": 0,
	"HK": 0, "HN": 0, "ID": 0, "IL": 0, "IN": 0, "JM": 0, "JP": 0, "KE": 0,
	"KH": 0, "KR": 0, "LA": 0, "MH": 0, "MM": 0, "MO": 0, "MT": 0, "MX": 0,
	"MZ": 0, "NI": 0, "NP": 0, "PA": 0, "PE": 0, "PH": 0, "PK": 0, "PR": 0,
	"PT": 0, "PY": 0, "SA": 0, "SG": 0, "SV": 0, "TH": 0, "TT": 0, "TW": 0,
	"UM": 0, "US": 0, "VE": 0, "VI": 0, "WS": 0, "YE": 0, "ZA": 0, "ZW": 0,

	// Monday
	"AD": 1, "AI": 1, "AL": 1, "AM": 1, "AN": 1, "AR": 1, "AT": 1, "AU": 1,
	"AX": 1, "AZ": 1, "BA": 1, "BE": 1, "BG": 1, "BM": 1, "BN": 1, "BY": 1,
	"CH": 1, "CL": 1, "CM": 1, "CR": 1, "CY": 1, "CZ": 1, "DE": 1, "DK": 1,
	"EC": 1, "EE": 1, "ES": 1, "FI": 1, "FJ": 1, "FO": 1, "FR": 1, "GB": 1,
	"GE": 1, "GF": 1, "GP": 1, "GR": 1, "HR": 1, "HU": 1, "IE": 1, "IS": 1,
	"IT": 1, "KG": 1, "KZ": 1, "LB": 1, "LI": 1, "LK": 1, "LT": 1, "LU": 1,
	"LV": 1, "MC": 1, "MD": 1, "ME": 1, "MK": 1, "MN": 1, "MQ": 1, "MY": 1,
	"NL": 1, "NO": 1, "NZ": 1, "PL": 1, "RE": 1, "RO": 1, "RS": 1, "RU": 1,
	"SE": 1, "SI": 1, "SK": 1, "SM": 1, "TJ": 1, "TM": 1, "TR": 1, "UA": 1,
	"UY": 1, "UZ": 1, "VA": 1, "VN": 1, "XK": 1,

	// Friday
	"MV": 5,

	// Saturday
	"AE": 6, "AF": 6, "BH": 6, "DJ": 6, "DZ": 6, "EG": 6, "IQ": 6, "IR": 6,
	"JO": 6, "KW": 6, "LY": 6, "OM": 6, "QA": 6, "SD": 6, "SY": 6,
}

var weekendByRegion = map[string][]int{
	"AE": {5, 6}, "BH": {5, 6}, "DZ": {5, 6}, "EG": {5, 6}, "IL": {5, 6},
	"IQ": {5, 6}, "JO": {5, 6}, "KW": {5, 6}, "LY": {5, 6}, "OM": {5, 6},
	"QA": {5, 6}, "SA": {5, 6}, "SD": {5, 6}, "SY": {5, 6}, "YE": {5, 6},
	"AF": {4, 5},
	"IR": {5},
	"IN": {0},
	"UG": {0},
}

func lookupFirstDay(region string) (int, bool) {
	day, ok := firstDayByRegion[region]
	if !ok {
		return defaultFirstDay, false
	}
	return day, true
}

func lookupWeekend(region string) ([]int, bool) {
	if days, ok := weekendByRegion[region]; ok {
		return append([]int(nil), days...), true
	}
	_, known := firstDayByRegion[region]
	return append([]int(nil), defaultWeekend...), known
}
