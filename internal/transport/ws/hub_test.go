package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sybil/internal/model"
)

func waitForClients(t *testing.T, h *Hub, want int) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if h.ClientCount() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("hub never reached %d clients", want)
}

func TestHub_BroadcastVerdict(t *testing.T) {
	h := NewHub()
	conn := &Connection{Send: make(chan []byte, 4), Hub: h}
	h.Register(conn)
	waitForClients(t, h, 1)

	verdict := &model.Verdict{
		FinalScore: 4.0,
		Variance:   2.0,
		Status:     model.StatusScored,
		Citation:   "None",
	}
	h.BroadcastVerdict("sub-1", verdict)

	select {
	case data := <-conn.Send:
		var msg Message
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, MsgVerdictScored, msg.Type)

		var event VerdictEvent
		require.NoError(t, json.Unmarshal(msg.Payload, &event))
		assert.Equal(t, "sub-1", event.SubmissionID)
		assert.InDelta(t, 4.0, event.Verdict.FinalScore, 1e-9)
	case <-time.After(time.Second):
		t.Fatal("no message received on the feed")
	}

	h.Unregister(conn)
	waitForClients(t, h, 0)
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	h := NewHub()
	full := &Connection{Send: make(chan []byte), Hub: h} // unbuffered, never drained
	h.Register(full)
	waitForClients(t, h, 1)

	// Must not deadlock; the message is dropped for the slow client.
	h.BroadcastPolicyUpdated(1234)
	h.BroadcastPolicyUpdated(5678)

	waitForClients(t, h, 1)
}
