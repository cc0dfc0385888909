package api

const (
	clientErrorMessage = "There was an error with the input information."

	// ServerErrorMessage is the fixed body sent on any unexpected
	// failure, including panics recovered in bootstrap.
	ServerErrorMessage = "An error occured on the server. Try again later"

	dateLayout = "2006-01-02"
)
