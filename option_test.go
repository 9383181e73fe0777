package telnet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionFromByteKnown(t *testing.T) {
	cases := []struct {
		b    byte
		want TelnetOption
	}{
		{OptEcho, OptionEcho},
		{GA, OptionGoAhead},
		{OptSuppressGoAhead, OptionSuppressGoAhead},
		{OptTelnetEndOfRecord, OptionEndOfRecord},
		{OptCharset, OptionCharset},
		{OptMCCP2, OptionMCCP2},
		{OptGMCP, OptionGMCP},
		{OptMSSP, OptionMSSP},
		{OptMSP, OptionMSP},
		{OptMXP, OptionMXP},
		{OptLinemode, OptionLinemode},
		{OptNAWS, OptionNAWS},
		{OptNewEnviron, OptionNewEnviron},
	}
	for _, c := range cases {
		got := OptionFromByte(c.b)
		require.Equal(t, c.want, got)
		require.False(t, got.IsUnknown())
		require.Equal(t, c.b, got.Byte())
	}
}

func TestOptionFromByteUnknown(t *testing.T) {
	got := OptionFromByte(99)
	require.True(t, got.IsUnknown())
	require.Equal(t, byte(99), got.Byte())
	require.Equal(t, "Unknown", got.String())
}

func TestOptionString(t *testing.T) {
	require.Equal(t, "Echo", OptionEcho.String())
	require.Equal(t, "NAWS", OptionNAWS.String())
}
