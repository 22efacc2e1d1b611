package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/config"
	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type PhoneImporter interface {
	ImportPhones(ctx context.Context, phones []entities.Phone) error
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler consumes the catalog feed. Each message is one phone record
// or an array of them; records that cannot be imported go to <topic>-dlq.
type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	importer PhoneImporter
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, importer PhoneImporter) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.CatalogTopic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, importer)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, importer PhoneImporter) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		importer: importer,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.process(ctx, m)

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) process(ctx context.Context, m kafka.Message) {
	feedInProgress.Inc()
	defer feedInProgress.Dec()
	start := time.Now()
	defer func() { feedProcessingDuration.Observe(time.Since(start).Seconds()) }()

	if err := h.handleImport(ctx, m); err != nil {
		feedFailed.Inc()
		h.logger.Error("failed to handle message", slog.Int64("offset", m.Offset), slog.Any("error", err))

		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		feedDLQ.Inc()
		return
	}
	feedProcessed.Inc()
}

func (h *kafkaHandler) handleImport(ctx context.Context, m kafka.Message) error {
	records, err := decodePhones(m.Value)
	if err != nil {
		return fmt.Errorf("failed to unmarshal phones: %w", err)
	}

	phones := make([]entities.Phone, 0, len(records))
	for _, rec := range records {
		if err := h.validate.Struct(rec); err != nil {
			return fmt.Errorf("invalid phone data: %w", err)
		}
		phone, err := PhoneJSONToEntity(rec)
		if err != nil {
			return fmt.Errorf("invalid phone data: %w", err)
		}
		phones = append(phones, phone)
	}

	return h.importer.ImportPhones(ctx, phones)
}

func decodePhones(data []byte) ([]Phone, error) {
	var many []Phone
	if err := json.Unmarshal(data, &many); err == nil {
		return many, nil
	}
	var one Phone
	if err := json.Unmarshal(data, &one); err != nil {
		return nil, err
	}
	return []Phone{one}, nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	dlqMsg := kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	}
	return h.dlq.WriteMessages(ctx, dlqMsg)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
