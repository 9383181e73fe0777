package telnet

// Telnet commands, RFC 854 - https://tools.ietf.org/html/rfc854
const (
	IAC  byte = 255 // Interpret As Command
	DONT byte = 254
	DO   byte = 253
	WONT byte = 252
	WILL byte = 251
	SB   byte = 250 // Subnegotiation begin
	GA   byte = 249 // Go ahead
	EL   byte = 248 // Erase line
	SE   byte = 240 // Subnegotiation end
	NOP  byte = 241
)

// Telnet option bytes. Most are never acted on by this codec; they're
// listed so Unknown(option) carries a recognizable value and so the
// well-known TelnetOption tagged value (option.go) can round-trip them.
const (
	OptBinary            byte = 0
	OptEcho              byte = 1
	OptRCP               byte = 2
	OptSuppressGoAhead   byte = 3
	OptStatus            byte = 5
	OptTimingMark        byte = 6
	OptTelnetEndOfRecord byte = 25
	OptNAWS              byte = 31
	OptRemoteFlowControl byte = 33
	OptLinemode          byte = 34
	OptNewEnviron        byte = 39
	OptCharset           byte = 42
	OptMSSP              byte = 70
	OptMCCP2             byte = 86
	OptMSP               byte = 90
	OptMXP               byte = 91
	OptGMCP              byte = 201
)

// CHARSET subnegotiation commands, RFC 2066 - https://tools.ietf.org/html/rfc2066
const (
	CharsetRequestCmd        byte = 1
	CharsetAcceptedCmd       byte = 2
	CharsetRejectedCmd       byte = 3
	CharsetTTableIsCmd       byte = 4
	CharsetTTableRejectedCmd byte = 5
	CharsetTTableAckCmd      byte = 6
	CharsetTTableNakCmd      byte = 7
)

// LINEMODE subnegotiation commands, RFC 1184 - https://datatracker.ietf.org/doc/html/rfc1184
const (
	LinemodeMode        byte = 1
	LinemodeForwardMask byte = 2
	LinemodeSLC         byte = 3
)

// LINEMODE MODE mask bits.
const (
	LinemodeEdit    byte = 1
	LinemodeTrapSig byte = 2
)

// SLC modifier byte layout: low 2 bits are the support level, the
// remaining flag bits are ACK/FLUSHIN/FLUSHOUT.
const (
	slcLevelBits byte = 0x03
	slcFlushOut  byte = 1 << 5
	slcFlushIn   byte = 1 << 6
	slcAck       byte = 1 << 7
)

// SLC function codes, RFC 1184 section 2.
const (
	SlcSynch    byte = 1
	SlcBrk      byte = 2
	SlcIP       byte = 3
	SlcAO       byte = 4
	SlcAYT      byte = 5
	SlcEOR      byte = 6
	SlcAbort    byte = 7
	SlcEOF      byte = 8
	SlcSusp     byte = 9
	SlcEC       byte = 10
	SlcEL       byte = 11
	SlcEW       byte = 12
	SlcRP       byte = 13
	SlcLnext    byte = 14
	SlcXon      byte = 15
	SlcXoff     byte = 16
	SlcForw1    byte = 17
	SlcForw2    byte = 18
	SlcMcl      byte = 19
	SlcMcr      byte = 20
	SlcMcwl     byte = 21
	SlcMcwr     byte = 22
	SlcMcub     byte = 23
	SlcMcuf     byte = 24
	SlcLp       byte = 25
	SlcXonc     byte = 26
	SlcXoffc    byte = 27
	SlcExit     byte = 28
	SlcSuspc    byte = 29
	SlcDsuspc   byte = 30
	SlcReprint  byte = 31
	SlcAbortc   byte = 32
	SlcEofchar  byte = 33
	SlcSuspchar byte = 34
	SlcBrkc     byte = 35
	SlcEorc     byte = 36
)

// NEW-ENVIRON, RFC 1572 - https://datatracker.ietf.org/doc/html/rfc1572
const (
	EnvIs      byte = 0
	EnvSend    byte = 1
	EnvInfo    byte = 2
	EnvVar     byte = 0
	EnvValue   byte = 1
	EnvEsc     byte = 2
	EnvUserVar byte = 3
)

// Well-known NEW-ENVIRON variable names.
const (
	EnvNameUser       = "USER"
	EnvNameJob        = "JOB"
	EnvNameAcct       = "ACCT"
	EnvNamePrinter    = "PRINTER"
	EnvNameSystemType = "SYSTEMTYPE"
	EnvNameDisplay    = "DISPLAY"
)
