// Package watchlists holds the fixed NSE symbol universes served by the
// watch-list endpoints. Symbols are bare NSE codes without an exchange
// suffix.
package watchlists

// FNO is the NSE futures-and-options universe
var FNO = []string{
	"360ONE", "ABB", "ADANIENSOL", "ADANIENT", "ADANIGREEN", "ADANIPORTS",
	"ABCAPITAL", "ALKEM", "AMBER", "AMBUJACEM", "ANGELONE", "APLAPOLLO",
	"APOLLOHOSP", "ASHOKLEY", "ASIANPAINT", "ASTRAL", "AUBANK", "AUROPHARMA",
	"DMART", "AXISBANK", "BAJAJ-AUTO", "BAJFINANCE", "BAJAJFINSV", "BAJAJHLDNG",
	"BANDHANBNK", "BANKBARODA", "BANKINDIA", "BDL", "BEL", "BHARATFORG",
	"BHEL", "BPCL", "BHARTIARTL", "BIOCON", "BLUESTARCO", "BOSCHLTD",
	"BRITANNIA", "BSE", "CANBK", "CDSL", "CGPOWER", "CHOLAFIN",
	"CIPLA", "COALINDIA", "COFORGE", "COLPAL", "CAMS", "CONCOR",
	"CROMPTON", "CUMMINSIND", "DABUR", "DALBHARAT", "DELHIVERY", "DIVISLAB",
	"DIXON", "DLF", "DRREDDY", "EICHERMOT", "EXIDEIND", "FEDERALBNK",
	"FORTIS", "NYKAA", "GAIL", "GLENMARK", "GMRAIRPORT", "GODREJCP",
	"GODREJPROP", "GRASIM", "HAVELLS", "HCLTECH", "HDFCAMC",
	"HDFCBANK", "HDFCLIFE", "HEROMOTOCO", "HINDALCO", "HAL",
	"HINDPETRO", "HINDUNILVR", "HINDZINC", "POWERINDIA", "HUDCO",
	"ICICIBANK", "ICICIGI", "ICICIPRULI", "IDFCFIRSTB", "INDIANB",
	"IEX", "INDHOTEL", "IOC", "IRCTC", "IRFC", "IREDA",
	"INDUSTOWER", "INDUSINDBK", "NAUKRI", "INFY", "INOXWIND",
	"INDIGO", "ITC", "JINDALSTEL", "JIOFIN", "JSWENERGY", "JSWSTEEL",
	"JUBLFOOD", "KALYANKJIL", "KAYNES", "KEI", "KFINTECH",
	"KOTAKBANK", "KPITTECH", "LTF", "LT", "LAURUSLABS",
	"LICHSGFIN", "LICI", "LTIM", "LUPIN", "LODHA",
	"M&M", "MANAPPURAM", "MANKIND", "MARICO", "MARUTI",
	"MFSL", "MAXHEALTH", "MAZDOCK", "MPHASIS", "MCX",
	"MUTHOOTFIN", "NATIONALUM", "NBCC", "NESTLEIND", "NHPC",
	"NMDC", "NTPC", "NUVAMA", "OBEROIRLTY", "ONGC",
	"OIL", "PAYTM", "OFSS", "PIIND", "PAGEIND",
	"PATANJALI", "POLICYBZR", "PERSISTENT", "PETRONET", "PGEL",
	"PHOENIXLTD", "PIDILITIND", "PPLPHARMA", "PNBHOUSING", "POLYCAB",
	"PFC", "POWERGRID", "PREMIERENE", "PRESTIGE", "PNB",
	"RVNL", "RBLBANK", "RECLTD", "RELIANCE", "SAMMAANCAP",
	"MOTHERSON", "SBICARD", "SBILIFE", "SHREECEM", "SHRIRAMFIN",
	"SIEMENS", "SOLARINDS", "SONACOMS", "SRF", "SBIN",
	"SAIL", "SUNPHARMA", "SUPREMEIND", "SUZLON", "SWIGGY",
	"SYNGENE", "TCS", "TATACONSUM", "TATAELXSI", "TMPV", "TMCV",
	"TATAPOWER", "TATASTEEL", "TATATECH", "TECHM", "TITAN",
	"TORNTPHARM", "TORNTPOWER", "TRENT", "TIINDIA", "TVSMOTOR",
	"ULTRACEMCO", "UNIONBANK", "UNITDSPR", "UNOMINDA", "UPL",
	"VBL", "VEDL", "IDEA", "VOLTAS", "WAAREEENER",
	"WIPRO", "YESBANK", "ETERNAL", "ZYDUSLIFE",
}
