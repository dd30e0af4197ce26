package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/temperature-heatmap-service/internal/config"
	"github.com/couchcryptid/temperature-heatmap-service/internal/render"
	kafkago "github.com/segmentio/kafka-go"
)

// cellRecord is the JSON value of a published cell message.
type cellRecord struct {
	Year        int     `json:"year"`
	Month       int     `json:"month"` // 0-indexed
	Temperature float64 `json:"temperature"`
	Variance    float64 `json:"variance"`
	Bucket      int     `json:"bucket"`
	Color       string  `json:"color"`
}

// messageWriter is the subset of *kafkago.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// Writer publishes one message per chart cell to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer messageWriter
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

func (w *Writer) Name() string { return "kafka" }

// Publish serializes every cell of chart and writes them in a single
// WriteMessages call. Keys are "<year>-<MM>" so a cell always lands on the
// same partition.
func (w *Writer) Publish(ctx context.Context, chart *render.Chart) error {
	if len(chart.Cells) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(chart.Cells))
	for i := range chart.Cells {
		msg, err := serializeToMessage(chart, chart.Cells[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write cell messages: %w", err)
	}
	w.logger.Debug("cells published", "chart_id", chart.ID, "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals a cell into a Kafka message.
func serializeToMessage(chart *render.Chart, c render.Cell) (kafkago.Message, error) {
	data, err := json.Marshal(cellRecord{
		Year:        c.Year,
		Month:       c.Month,
		Temperature: c.Temperature,
		Variance:    c.Variance,
		Bucket:      c.Bucket,
		Color:       c.Color,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize cell %s: %w", c.Key(), err)
	}
	return kafkago.Message{
		Key:   []byte(c.Key()),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "render_id", Value: []byte(chart.ID)},
			{Key: "generated_at", Value: []byte(chart.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
