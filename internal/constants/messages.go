package constants

// User facing messages. These are the only texts an end user ever sees for a query.
const (
	MessageInvalidAPIKey = "Invalid API key!"
	MessageNoSalesFound  = "No sales found over this timeframe."
	MessageNoSalesData   = "No sales data found!"
	MessageLoading       = "Loading..."
	MessagePrompt        = "Select a blockchain and timeframe to see most expensive transactions on that chain."

	// NotAvailable is shown in place of a missing field.
	NotAvailable = "N/A"
)
