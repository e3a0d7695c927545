package response

const (
	// MessageSuccess is the message returned on successful responses.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for 500 responses.
	InternalServerErrorCode = 500
)
