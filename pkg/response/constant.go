package response

const (
	// DefaultErrorMessage is returned when the real cause must stay internal.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error_code for unexpected failures.
	InternalServerErrorCode = 500
)
