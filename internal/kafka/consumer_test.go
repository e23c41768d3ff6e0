package kafka

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []string
}

func (f *scriptedReader) FetchMessage(context.Context) (kafka.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := f.msgs[0]
	f.msgs = f.msgs[1:]
	return m, nil
}

func (f *scriptedReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, string(m.Key))
	}
	return nil
}

func (f *scriptedReader) Close() error { return nil }

func (f *scriptedReader) committedKeys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.committed...)
}

func TestConsumerCommitsOnlyHandledMessages(t *testing.T) {
	r := &scriptedReader{msgs: []kafka.Message{
		{Key: []byte("evt-1")},
		{Key: []byte("evt-poison")},
		{Key: []byte("evt-2")},
	}}
	c := &Consumer{r: r, workers: 1}

	err := c.Start(context.Background(), func(_ context.Context, m kafka.Message) error {
		if string(m.Key) == "evt-poison" {
			return errors.New("handler failed")
		}
		return nil
	})
	require.ErrorIs(t, err, io.EOF, "exhausted reader surfaces its error")

	// workers drain asynchronously after the dispatch loop returns
	require.Eventually(t, func() bool {
		return len(r.committedKeys()) == 2
	}, time.Second, 10*time.Millisecond)
	assert.ElementsMatch(t, []string{"evt-1", "evt-2"}, r.committedKeys(),
		"a failed handler must leave its offset uncommitted for redelivery")
}

func TestConsumerStopsQuietlyOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &scriptedReader{msgs: []kafka.Message{{Key: []byte("evt-1")}}}
	c := &Consumer{r: r, workers: 1}

	err := c.Start(ctx, func(context.Context, kafka.Message) error { return nil })
	assert.NoError(t, err, "shutdown is not an error")
}
