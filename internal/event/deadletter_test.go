package event

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeadLetterWriter_AppendsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dl.jsonl")
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, typ := range []Type{GameSettled, ClickerUpgraded} {
		w, err := NewDeadLetterWriter(path)
		require.NoError(t, err)
		w.now = func() time.Time { return fixed }
		require.NoError(t, w.Write(Event{Type: typ, Version: EventSchemaVersion}, i+1, errors.New("nats down")))
		require.NoError(t, w.Close())
	}

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	entries, err := ReadDeadLetters(f)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, GameSettled, entries[0].Event.Type)
	assert.Equal(t, ClickerUpgraded, entries[1].Event.Type)
	assert.Equal(t, 2, entries[1].Attempts)
	assert.Equal(t, "nats down", entries[1].LastError)
	assert.True(t, fixed.Equal(entries[0].Timestamp))
}

func TestReadDeadLetters(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		errLine string
	}{
		{name: "empty", input: "", want: 0},
		{name: "skips blank lines", input: `{"event":{"type":"user.registered"}}` + "\n\n" + `{"event":{"type":"game.settled"}}` + "\n", want: 2},
		{name: "malformed", input: `{"event":{}}` + "\n" + `{not json`, want: 1, errLine: "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ReadDeadLetters(strings.NewReader(tt.input))

			assert.Len(t, entries, tt.want)
			if tt.errLine != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), ErrMsgDeadLetterParse)
				assert.Contains(t, err.Error(), tt.errLine)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestReplay(t *testing.T) {
	entries := []DeadLetterEntry{
		{Event: Event{Type: GameSettled}},
		{Event: Event{Type: UserRegistered}},
		{Event: Event{Type: ClickerUpgraded}},
	}

	t.Run("partial failure keeps going", func(t *testing.T) {
		bus := &mockBus{shouldFail: func(n int) bool { return n == 2 }}

		n, err := Replay(context.Background(), bus, entries)

		assert.Equal(t, 2, n)
		require.Error(t, err)
		assert.Contains(t, err.Error(), string(UserRegistered))
		assert.Equal(t, 3, bus.CallCount())
	})

	t.Run("cancelled context stops", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		bus := &mockBus{}

		n, err := Replay(ctx, bus, entries)

		assert.Zero(t, n)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, bus.CallCount())
	})
}
