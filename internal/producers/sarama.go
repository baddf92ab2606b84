package producers

import (
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("cafedatasim")

type Header struct {
	Key   string
	Value string
}

type SaramaProducer struct {
	producer sarama.SyncProducer
}

// NewSaramaConfig returns the producer settings used for every broker.
// producerTimeoutMs bounds how long the broker may take to acknowledge a
// message; zero keeps 30 seconds.
func NewSaramaConfig(producerTimeoutMs int) *sarama.Config {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 5
	saramaConfig.Producer.Retry.Backoff = 100 * time.Millisecond
	saramaConfig.Producer.Return.Successes = true // Must be true for SyncProducer
	saramaConfig.Net.DialTimeout = 30 * time.Second
	saramaConfig.Net.ReadTimeout = 30 * time.Second
	saramaConfig.Net.WriteTimeout = 30 * time.Second

	saramaConfig.Producer.Timeout = 30 * time.Second
	if producerTimeoutMs > 0 {
		saramaConfig.Producer.Timeout = time.Duration(producerTimeoutMs) * time.Millisecond
	}
	return saramaConfig
}

func NewSaramaProducer(brokerList string, producerTimeoutMs int) (*SaramaProducer, error) {
	brokers := strings.Split(brokerList, ",")

	producer, err := sarama.NewSyncProducer(brokers, NewSaramaConfig(producerTimeoutMs))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sarama producer: %w", err)
	}

	log.Infof("Sarama producer created successfully with brokers %v", brokers)
	return &SaramaProducer{producer: producer}, nil
}

// NewSaramaProducerFrom wraps an existing producer, such as a mock.
func NewSaramaProducerFrom(producer sarama.SyncProducer) *SaramaProducer {
	return &SaramaProducer{producer: producer}
}

func (s *SaramaProducer) WriteMessage(topic string, key, msg []byte, headers ...Header) error {
	if s.producer == nil {
		return fmt.Errorf("Sarama producer is not initialized")
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	}
	if key != nil {
		message.Key = sarama.ByteEncoder(key)
	}
	for _, h := range headers {
		message.Headers = append(message.Headers, sarama.RecordHeader{Key: []byte(h.Key), Value: []byte(h.Value)})
	}

	if _, _, err := s.producer.SendMessage(message); err != nil {
		log.Errorf("Failed to send message to topic %s: %v", topic, err)
		return err
	}
	return nil
}

func (s *SaramaProducer) Close() error {
	if s.producer != nil {
		return s.producer.Close()
	}
	return nil
}
