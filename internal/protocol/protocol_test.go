package protocol_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jest/internal/protocol"
)

func TestEnvelope(t *testing.T) {
	env, err := protocol.NewEnvelope(protocol.MsgChoose, protocol.ChooseMsg{PromptID: "p1", Choice: 2})
	require.NoError(t, err)
	raw, err := json.Marshal(env)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"choose","payload":{"prompt_id":"p1","choice":2}}`, string(raw))

	var back protocol.Envelope
	require.NoError(t, json.Unmarshal(raw, &back))
	var msg protocol.ChooseMsg
	require.NoError(t, json.Unmarshal(back.Payload, &msg))
	assert.Equal(t, 2, msg.Choice)
}

func TestMustEnvelopePanics(t *testing.T) {
	assert.Panics(t, func() { protocol.MustEnvelope(protocol.MsgEvent, make(chan int)) })
}

func TestDecode(t *testing.T) {
	var start protocol.StartGameMsg
	require.NoError(t, protocol.Envelope{Type: protocol.MsgStartGame}.Decode(&start))
	assert.Zero(t, start)

	env := protocol.MustEnvelope(protocol.MsgStartGame, protocol.StartGameMsg{Bots: 2, Resume: true})
	require.NoError(t, env.Decode(&start))
	assert.Equal(t, 2, start.Bots)
	assert.True(t, start.Resume)

	bad := protocol.Envelope{Type: protocol.MsgJoin, Payload: []byte(`[1]`)}
	var join protocol.JoinMsg
	assert.Error(t, bad.Decode(&join))
}
