package output

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/chrisdamba/cafedatasim/internal/models"
	"github.com/chrisdamba/cafedatasim/internal/producers"
)

type messageWriter interface {
	WriteMessage(topic string, key, msg []byte, headers ...producers.Header) error
	Close() error
}

// KafkaWriter publishes each order, with its tickets, and each inventory
// record as a JSON message keyed by id.
type KafkaWriter struct {
	producer       messageWriter
	ordersTopic    string
	inventoryTopic string
}

func NewKafkaWriter(config models.KafkaConfig) (*KafkaWriter, error) {
	producer, err := producers.NewSaramaProducer(config.BrokerList, config.ProducerTimeoutMs)
	if err != nil {
		return nil, err
	}
	return newKafkaWriter(producer, config.OrdersTopic, config.InventoryTopic), nil
}

func newKafkaWriter(producer messageWriter, ordersTopic, inventoryTopic string) *KafkaWriter {
	return &KafkaWriter{
		producer:       producer,
		ordersTopic:    ordersTopic,
		inventoryTopic: inventoryTopic,
	}
}

func (k *KafkaWriter) WriteDataset(ctx context.Context, ds *models.Dataset) error {
	runHeader := producers.Header{Key: "run_id", Value: ds.RunID}
	linesByOrder := ds.TicketsByOrder()

	for _, order := range ds.Orders {
		if err := ctx.Err(); err != nil {
			return err
		}
		lines := linesByOrder[order.ID]
		event := OrderEvent{
			OrderRecord: NewOrderRecord(order),
			RunID:       ds.RunID,
			Lines:       make([]TicketRecord, len(lines)),
		}
		for i, t := range lines {
			event.Lines[i] = NewTicketRecord(t)
		}
		if err := k.publish(k.ordersTopic, order.ID, event, runHeader); err != nil {
			return err
		}
	}

	for _, record := range ds.Inventory {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := k.publish(k.inventoryTopic, record.ID, NewInventoryRecord(record), runHeader); err != nil {
			return err
		}
	}

	log.Infof("Published %d orders to %s and %d inventory records to %s", len(ds.Orders), k.ordersTopic, len(ds.Inventory), k.inventoryTopic)
	return nil
}

func (k *KafkaWriter) publish(topic string, id int64, payload interface{}, headers ...producers.Header) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to serialize %s message %d: %w", topic, id, err)
	}
	if err := k.producer.WriteMessage(topic, []byte(strconv.FormatInt(id, 10)), data, headers...); err != nil {
		return fmt.Errorf("failed to publish %s message %d: %w", topic, id, err)
	}
	return nil
}

func (k *KafkaWriter) Close() error {
	return k.producer.Close()
}
