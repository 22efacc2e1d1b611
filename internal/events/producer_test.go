package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/knet-checkout/internal/entities"
	"github.com/SergeyBogomolovv/knet-checkout/pkg/money"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newPublisher(w)
	p.now = func() time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC) }

	err := p.Publish(context.Background(), entities.OrderEvent{
		Type:    entities.EventOrderCreated,
		OrderID: "order-1",
		Status:  entities.StatusPending,
		Total:   money.MustParse("402"),
	})
	require.NoError(t, err)
	require.Len(t, w.msgs, 1)

	msg := w.msgs[0]
	assert.Equal(t, "order-1", string(msg.Key))
	assert.Equal(t, "x-event-type", msg.Headers[0].Key)
	assert.Equal(t, "order.created", string(msg.Headers[0].Value))

	var evt OrderEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.NotEmpty(t, evt.EventID)
	assert.Equal(t, "402.000", evt.TotalAmount)
	assert.Equal(t, "KWD", evt.Currency)
	assert.Equal(t, "pending", evt.Status)
}

func TestKafkaPublisher_WriteError(t *testing.T) {
	brokerErr := errors.New("broker down")
	p := newPublisher(&fakeWriter{err: brokerErr})

	err := p.Publish(context.Background(), entities.OrderEvent{Type: entities.EventOrderPaid, OrderID: "1"})
	assert.ErrorIs(t, err, brokerErr)
}
