package watchlists

// NiftyNext50 is the NIFTY Next 50 index membership
var NiftyNext50 = []string{
	"ABB", "ADANIENSOL", "ADANIGREEN", "ADANIPOWER", "AMBUJACEM",
	"BAJAJHFL", "BAJAJHLDNG", "BANKBARODA", "BPCL", "BRITANNIA",
	"BOSCHLTD", "CANBK", "CGPOWER", "CHOLAFIN", "DIVISLAB",
	"DLF", "DMART", "ENRIN", "GAIL", "GODREJCP",
	"HAL", "HAVELLS", "HINDZINC", "HYUNDAI", "ICICIGI",
	"INDHOTEL", "IOC", "IRFC", "JINDALSTEL", "LICI",
	"LODHA", "LTIM", "MAZDOCK", "MOTHERSON", "NAUKRI",
	"PFC", "PIDILITIND", "PNB", "RECLTD", "SHREECEM",
	"SIEMENS", "SOLARINDS", "TATAPOWER", "TORNTPHARM", "TVSMOTOR",
	"UNITDSPR", "VBL", "VEDL", "ZYDUSLIFE",
}
