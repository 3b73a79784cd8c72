package errno

const (
	StatusOK = 10000
)

const (
	TokenEmpty = 40000 + iota
	SessionTokenInvalid
	SessionExpired
)

const (
	InternalError = 50000 + iota
	InvalidParam
	SessionNotFound
)
