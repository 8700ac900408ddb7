package resputil

type ErrorCode int

const (
	OK ErrorCode = 0

	// Malformed request (bad uri parameter)
	InvalidRequest ErrorCode = 40001

	// Frontend will directly print the message without any translation
	NotSpecified ErrorCode = 99999
)
