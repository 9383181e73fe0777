package telnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeAll(t *testing.T, c *Codec, wire []byte) []Event {
	t.Helper()
	var events []Event
	buf := append([]byte(nil), wire...)
	for {
		ev, ok, err := c.Decode(&buf)
		require.NoError(t, err)
		if !ok {
			break
		}
		events = append(events, ev)
	}
	require.Empty(t, buf, "decode left unconsumed bytes: % x", buf)
	return events
}

func TestDecodeEndToEndScenarios(t *testing.T) {
	cases := []struct {
		name string
		wire []byte
		want Event
	}{
		{"will echo", []byte{IAC, WILL, OptEcho}, WillEvent(OptionEcho)},
		{"dont sga", []byte{IAC, DONT, OptSuppressGoAhead}, DontEvent(OptionSuppressGoAhead)},
		{"hi message", []byte("hi\r\n"), MessageEvent("hi")},
		{
			"window size",
			[]byte{IAC, SB, OptNAWS, 0x00, 0x50, 0x00, 0x50, IAC, SE},
			SubnegotiateEvent(WindowSize(80, 80)),
		},
		{
			"charset request",
			append([]byte{IAC, SB, OptCharset, CharsetRequestCmd, ' '}, append([]byte("UTF-8 US-ASCII"), IAC, SE)...),
			SubnegotiateEvent(CharsetRequest([][]byte{[]byte("UTF-8"), []byte("US-ASCII")})),
		},
		{
			"linemode edit",
			[]byte{IAC, SB, OptLinemode, LinemodeMode, LinemodeEdit, IAC, SE},
			SubnegotiateEvent(LineMode(LineModeModeOption(LinemodeEdit))),
		},
		{
			"linemode slc",
			[]byte{
				IAC, SB, OptLinemode, LinemodeSLC,
				SlcAbort, 0x00, '0',
				SlcSynch, 0x00, '1',
				SlcBrk, 0x00, '2',
				IAC, SE,
			},
			SubnegotiateEvent(LineMode(LineModeSLCOption([]SlcEntry{
				{Dispatch{SlcFunctionAbort, Modifiers{Level: LevelNoSupport}}, '0'},
				{Dispatch{SlcFunctionSynch, Modifiers{Level: LevelNoSupport}}, '1'},
				{Dispatch{SlcFunctionBrk, Modifiers{Level: LevelNoSupport}}, '2'},
			}))),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			codec := New(1024)
			events := decodeAll(t, codec, c.wire)
			require.Len(t, events, 1)
			require.True(t, c.want.Equal(events[0]), "got %+v want %+v", events[0], c.want)
		})
	}
}

func TestByteChunkInvariance(t *testing.T) {
	wire := []byte{IAC, WILL, OptEcho}
	wire = append(wire, []byte("hello\r\n")...)
	wire = append(wire, IAC, SB, OptNAWS, 0, 80, 0, 24, IAC, SE)

	whole := decodeAll(t, New(1024), wire)
	require.Len(t, whole, 3)

	for split := 1; split < len(wire); split++ {
		codec := New(1024)
		buf := append([]byte(nil), wire[:split]...)
		rest := wire[split:]

		var events []Event
		for {
			ev, ok, err := codec.Decode(&buf)
			require.NoError(t, err)
			if !ok {
				if len(rest) == 0 {
					break
				}
				buf = append(buf, rest[0])
				rest = rest[1:]
				continue
			}
			events = append(events, ev)
		}
		require.Len(t, events, len(whole), "split at %d", split)
		for i := range whole {
			require.True(t, whole[i].Equal(events[i]), "split at %d event %d", split, i)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	events := []Event{
		MessageEvent("hello"),
		RawMessageEvent("hello"),
		DoEvent(OptionEcho),
		DontEvent(OptionSuppressGoAhead),
		WillEvent(OptionNAWS),
		WontEvent(OptionCharset),
		SubnegotiateEvent(WindowSize(80, 24)),
		SubnegotiateEvent(CharsetAccepted([]byte("UTF-8"))),
		SubnegotiateEvent(LineMode(LineModeModeOption(LinemodeEdit))),
	}
	for _, ev := range events {
		codec := New(1024)
		var out []byte
		require.NoError(t, codec.Encode(ev, &out))

		decoded, ok, err := codec.Decode(&out)
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, ev.Equal(decoded), "encode/decode mismatch for %+v", ev)
	}

	// RawMessage is outbound-only: it encodes without a "\r\n" suffix,
	// so decoding its bytes yields no event yet.
	codec := New(1024)
	var out []byte
	require.NoError(t, codec.Encode(RawMessageEvent("hello"), &out))
	require.Equal(t, "hello", string(out))
	_, ok, err := codec.Decode(&out)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEncodeDropsSignalsAndCharacter(t *testing.T) {
	codec := New(1024)
	var out []byte
	require.NoError(t, codec.Encode(GoAheadEvent, &out))
	require.NoError(t, codec.Encode(NopEvent, &out))
	require.NoError(t, codec.Encode(CharacterEvent('x'), &out))
	require.Empty(t, out)
}

func TestIACEscapingInMessage(t *testing.T) {
	codec := New(1024)
	original := []byte("a\xffb")
	var out []byte
	require.NoError(t, codec.Encode(MessageEvent(string(original)), &out))
	require.Contains(t, string(out), "a\xff\xffb")

	decoded, ok, err := codec.Decode(&out)
	require.NoError(t, err)
	require.True(t, ok)
	// The accumulator decodes as lossy UTF-8, so the round trip is
	// compared against that same lossy transform of the original bytes
	// rather than the raw bytes themselves.
	require.Equal(t, decodeLossyUTF8(original), decoded.Message())
}

func TestMessageEncodeSkipsRedundantCRLF(t *testing.T) {
	codec := New(1024)
	var out []byte
	require.NoError(t, codec.Encode(MessageEvent("already\r\n"), &out))
	require.Equal(t, "already\r\n", string(out))
}

func TestNAWSWrongLengthProducesNoEvent(t *testing.T) {
	codec := New(1024)
	buf := []byte{IAC, SB, OptNAWS, 0x00, 0x50, 0x00, IAC, SE}
	ev, ok, err := codec.Decode(&buf)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Event{}, ev)
	require.Empty(t, buf)
}

func TestAccumulatorCap(t *testing.T) {
	codec := New(16)
	var buf []byte
	for i := 0; i < 20; i++ {
		buf = append(buf, 'a')
	}
	buf = append(buf, '\r', '\n')

	ev, ok, err := codec.Decode(&buf)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, ev.IsMessage())
	require.Len(t, ev.Message(), 16)
	require.Empty(t, buf)
}

func TestAccumulatorCapStrict(t *testing.T) {
	codec := New(4)
	codec.Strict = true
	buf := []byte("abcde")

	_, ok, err := codec.Decode(&buf)
	require.False(t, ok)
	require.Error(t, err)
	var terr *TelnetError
	require.ErrorAs(t, err, &terr)
	require.Equal(t, KindCodec, terr.Kind)
}

func TestCharacterMode(t *testing.T) {
	codec := New(1024)
	codec.MessageMode = false
	buf := []byte("ab")

	ev, ok, err := codec.Decode(&buf)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, ev.IsCharacter())
	require.Equal(t, rune('a'), ev.Character())
	require.Equal(t, []byte("b"), buf)
}

func TestUnicodeCharacterMode(t *testing.T) {
	codec := New(1024)
	codec.MessageMode = false
	codec.Unicode = true
	buf := []byte("é")

	ev, ok, err := codec.Decode(&buf)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, ev.IsCharacter())
	require.Equal(t, 'é', ev.Character())
	require.Empty(t, buf)
}

func TestSGAMode(t *testing.T) {
	codec := New(1024)
	codec.SGA = true
	buf := []byte{IAC, IAC, 'x'}

	ev, ok, err := codec.Decode(&buf)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, ev.IsCharacter())
	require.Equal(t, rune(IAC), ev.Character())
	require.Equal(t, []byte("x"), buf)

	ev, ok, err = codec.Decode(&buf)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Event{}, ev)
}

func TestTruncatedFrameLeavesBufferUntouched(t *testing.T) {
	codec := New(1024)
	buf := []byte{IAC, WILL}
	ev, ok, err := codec.Decode(&buf)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, Event{}, ev)
	require.Equal(t, []byte{IAC, WILL}, buf)
}
