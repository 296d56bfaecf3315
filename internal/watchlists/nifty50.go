package watchlists

// Nifty50 is the NIFTY 50 index membership
var Nifty50 = []string{
	"ADANIENT", "ADANIPORTS", "APOLLOHOSP", "ASIANPAINT", "AXISBANK",
	"BAJAJ-AUTO", "BAJFINANCE", "BAJAJFINSV", "BEL", "BHARTIARTL",
	"CIPLA", "COALINDIA", "DRREDDY", "EICHERMOT", "ETERNAL",
	"GRASIM", "HCLTECH", "HDFCBANK", "HDFCLIFE", "HEROMOTOCO",
	"HINDALCO", "HINDUNILVR", "ICICIBANK", "INDIGO", "INFY",
	"ITC", "JIOFIN", "JSWSTEEL", "KOTAKBANK", "LT",
	"M&M", "MARUTI", "NESTLEIND", "NTPC", "ONGC",
	"POWERGRID", "RELIANCE", "SBILIFE", "SBIN", "SHRIRAMFIN",
	"SUNPHARMA", "TCS", "TATACONSUM", "TATASTEEL", "TECHM",
	"TITAN", "TMPV", "TRENT", "ULTRACEMCO", "WIPRO",
}
