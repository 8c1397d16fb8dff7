package queue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"AlumniJobForm_Backend/internal/notify"
)

type fakeChannel struct {
	mu         sync.Mutex
	published  []amqp.Publishing
	keys       []string
	publishErr error
	deliveries chan amqp.Delivery
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, msg)
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeChannel) Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error) {
	return f.deliveries, nil
}

func (f *fakeChannel) Close() error { return nil }

type fakeAcknowledger struct {
	mu     sync.Mutex
	acked  []uint64
	ackErr error
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.acked = append(a.acked, tag)
	return a.ackErr
}
func (a *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error { return nil }
func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error         { return nil }

func (a *fakeAcknowledger) count() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.acked)
}

// syncBuffer collects log lines written from the consumer goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type recordingNotifier struct {
	mu   sync.Mutex
	acks []notify.Acknowledgement
	err  error
}

func (n *recordingNotifier) Notify(ctx context.Context, ack notify.Acknowledgement) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.acks = append(n.acks, ack)
	return n.err
}

func (n *recordingNotifier) tokens() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, a := range n.acks {
		out = append(out, a.TokenNo)
	}
	return out
}

func TestRabbitMQ_NotifyPublishes(t *testing.T) {
	ch := &fakeChannel{}
	r := &RabbitMQ{channel: ch, queue: "acknowledgement_queue", log: zerolog.Nop()}

	ack := notify.Acknowledgement{TokenNo: "001", Name: "A", Email: "a@x.com"}
	require.NoError(t, r.Notify(context.Background(), ack))

	require.Len(t, ch.published, 1)
	assert.Equal(t, "acknowledgement_queue", ch.keys[0])
	assert.Equal(t, amqp.Persistent, ch.published[0].DeliveryMode)

	var got notify.Acknowledgement
	require.NoError(t, json.Unmarshal(ch.published[0].Body, &got))
	assert.Equal(t, ack, got)
}

func TestRabbitMQ_NotifyPublishError(t *testing.T) {
	ch := &fakeChannel{publishErr: errors.New("channel closed")}
	r := &RabbitMQ{channel: ch, queue: "q", log: zerolog.Nop()}
	assert.Error(t, r.Notify(context.Background(), notify.Acknowledgement{TokenNo: "001"}))
}

func TestRabbitMQ_ConsumeDelivers(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 3)}
	r := &RabbitMQ{channel: ch, queue: "q", log: zerolog.Nop()}
	sender := &recordingNotifier{}
	acker := &fakeAcknowledger{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Consume(ctx, sender))

	body, _ := json.Marshal(notify.Acknowledgement{TokenNo: "001", Email: "a@x.com"})
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: body}
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 2, Body: []byte("not json")}
	body, _ = json.Marshal(notify.Acknowledgement{TokenNo: "002", Email: "b@x.com"})
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 3, Body: body}

	require.Eventually(t, func() bool { return acker.count() == 3 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"001", "002"}, sender.tokens())
}

func TestRabbitMQ_ConsumeSendFailureStillAcks(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 1)}
	r := &RabbitMQ{channel: ch, queue: "q", log: zerolog.Nop()}
	sender := &recordingNotifier{err: errors.New("smtp down")}
	acker := &fakeAcknowledger{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Consume(ctx, sender))

	body, _ := json.Marshal(notify.Acknowledgement{TokenNo: "001"})
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: body}

	require.Eventually(t, func() bool { return acker.count() == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{"001"}, sender.tokens())
}

func TestRabbitMQ_ConsumeLogsAckFailure(t *testing.T) {
	ch := &fakeChannel{deliveries: make(chan amqp.Delivery, 1)}
	logs := &syncBuffer{}
	r := &RabbitMQ{channel: ch, queue: "q", log: zerolog.New(logs)}
	acker := &fakeAcknowledger{ackErr: errors.New("channel closed")}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, r.Consume(ctx, &recordingNotifier{}))

	body, _ := json.Marshal(notify.Acknowledgement{TokenNo: "001"})
	ch.deliveries <- amqp.Delivery{Acknowledger: acker, DeliveryTag: 1, Body: body}

	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "failed to ack delivery")
	}, time.Second, 10*time.Millisecond)
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), "channel closed")
}
