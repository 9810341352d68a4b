package kafka_client

import "time"

const KAFKA_TOPIC_ANALYSES = "positivizer.analyses" // completed analyses

const (
	MAX_RETRIES        = 3
	RETRY_DELAY        = 200 * time.Millisecond
	FLUSH_TIMEOUT      = 5 * time.Second
	PRODUCER_CLIENT_ID = "positivizer-producer"
)
