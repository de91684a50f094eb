package response

const (
	DefaultStackTraceDepth  = 32
	DefaultErrorMessage     = "Something went wrong"
	MessageSuccess          = "Success"
	ValidationErrorCode     = 400
	InternalServerErrorCode = 500
	DiscordMaxMessageLen    = 4000
)
