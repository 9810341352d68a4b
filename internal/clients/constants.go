package clients

const (
	MAX_RETRIES = 3
	USER_AGENT  = "positivizer/1.0 (+https://github.com/spacesedan/positivizer)"
)
