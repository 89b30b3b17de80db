package currency

// currencies is the built-in ISO 4217 table, keyed by alphabetic code.
// The set covers the currencies commonly seen in payment traffic plus
// the zero, three and four minor-unit outliers that exercise the
// quantization rules.
var currencies = map[string]Currency{
	"AED": {code: "AED", numeric: "784", minorUnits: 2, symbol: "د.إ"},
	"ARS": {code: "ARS", numeric: "032", minorUnits: 2, symbol: "$"},
	"AUD": {code: "AUD", numeric: "036", minorUnits: 2, symbol: "$"},
	"BHD": {code: "BHD", numeric: "048", minorUnits: 3, symbol: ".د.ب"},
	"BRL": {code: "BRL", numeric: "986", minorUnits: 2, symbol: "R$"},
	"CAD": {code: "CAD", numeric: "124", minorUnits: 2, symbol: "$"},
	"CHF": {code: "CHF", numeric: "756", minorUnits: 2, symbol: "Fr"},
	"CLF": {code: "CLF", numeric: "990", minorUnits: 4, symbol: "UF"},
	"CLP": {code: "CLP", numeric: "152", minorUnits: 0, symbol: "$"},
	"CNY": {code: "CNY", numeric: "156", minorUnits: 2, symbol: "¥"},
	"COP": {code: "COP", numeric: "170", minorUnits: 2, symbol: "$"},
	"CZK": {code: "CZK", numeric: "203", minorUnits: 2, symbol: "Kč"},
	"DKK": {code: "DKK", numeric: "208", minorUnits: 2, symbol: "kr"},
	"EGP": {code: "EGP", numeric: "818", minorUnits: 2, symbol: "£"},
	"EUR": {code: "EUR", numeric: "978", minorUnits: 2, symbol: "€"},
	"GBP": {code: "GBP", numeric: "826", minorUnits: 2, symbol: "£"},
	"HKD": {code: "HKD", numeric: "344", minorUnits: 2, symbol: "$"},
	"HUF": {code: "HUF", numeric: "348", minorUnits: 2, symbol: "Ft"},
	"IDR": {code: "IDR", numeric: "360", minorUnits: 2, symbol: "Rp"},
	"ILS": {code: "ILS", numeric: "376", minorUnits: 2, symbol: "₪"},
	"INR": {code: "INR", numeric: "356", minorUnits: 2, symbol: "₹"},
	"ISK": {code: "ISK", numeric: "352", minorUnits: 0, symbol: "kr"},
	"JOD": {code: "JOD", numeric: "400", minorUnits: 3, symbol: "د.ا"},
	"JPY": {code: "JPY", numeric: "392", minorUnits: 0, symbol: "¥"},
	"KRW": {code: "KRW", numeric: "410", minorUnits: 0, symbol: "₩"},
	"KWD": {code: "KWD", numeric: "414", minorUnits: 3, symbol: "د.ك"},
	"MAD": {code: "MAD", numeric: "504", minorUnits: 2, symbol: "د.م."},
	"MXN": {code: "MXN", numeric: "484", minorUnits: 2, symbol: "$"},
	"MYR": {code: "MYR", numeric: "458", minorUnits: 2, symbol: "RM"},
	"NGN": {code: "NGN", numeric: "566", minorUnits: 2, symbol: "₦"},
	"NOK": {code: "NOK", numeric: "578", minorUnits: 2, symbol: "kr"},
	"NZD": {code: "NZD", numeric: "554", minorUnits: 2, symbol: "$"},
	"OMR": {code: "OMR", numeric: "512", minorUnits: 3, symbol: "ر.ع."},
	"PEN": {code: "PEN", numeric: "604", minorUnits: 2, symbol: "S/"},
	"PHP": {code: "PHP", numeric: "608", minorUnits: 2, symbol: "₱"},
	"PKR": {code: "PKR", numeric: "586", minorUnits: 2, symbol: "₨"},
	"PLN": {code: "PLN", numeric: "985", minorUnits: 2, symbol: "zł"},
	"RON": {code: "RON", numeric: "946", minorUnits: 2, symbol: "lei"},
	"RSD": {code: "RSD", numeric: "941", minorUnits: 2, symbol: "дин."},
	"RUB": {code: "RUB", numeric: "643", minorUnits: 2, symbol: "₽"},
	"SAR": {code: "SAR", numeric: "682", minorUnits: 2, symbol: "ر.س"},
	"SEK": {code: "SEK", numeric: "752", minorUnits: 2, symbol: "kr"},
	"SGD": {code: "SGD", numeric: "702", minorUnits: 2, symbol: "$"},
	"THB": {code: "THB", numeric: "764", minorUnits: 2, symbol: "฿"},
	"TND": {code: "TND", numeric: "788", minorUnits: 3, symbol: "د.ت"},
	"TRY": {code: "TRY", numeric: "949", minorUnits: 2, symbol: "₺"},
	"TWD": {code: "TWD", numeric: "901", minorUnits: 2, symbol: "NT$"},
	"UAH": {code: "UAH", numeric: "980", minorUnits: 2, symbol: "₴"},
	"USD": {code: "USD", numeric: "840", minorUnits: 2, symbol: "$"},
	"UYW": {code: "UYW", numeric: "927", minorUnits: 4, symbol: "UP"},
	"VND": {code: "VND", numeric: "704", minorUnits: 0, symbol: "₫"},
	"ZAR": {code: "ZAR", numeric: "710", minorUnits: 2, symbol: "R"},
}
