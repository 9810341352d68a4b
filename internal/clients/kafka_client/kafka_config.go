package kafka_client

type KafkaConfig struct {
	Broker string
	Topic  string
}

// withDefaults fills an empty topic with KAFKA_TOPIC_ANALYSES.
func (c KafkaConfig) withDefaults() KafkaConfig {
	if c.Topic == "" {
		c.Topic = KAFKA_TOPIC_ANALYSES
	}
	return c
}
