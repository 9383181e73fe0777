package telnet

// Level is the RFC 1184 SLC support level carried in the low 2 bits
// of an SLC modifier byte.
type Level byte

const (
	LevelNoSupport Level = iota
	LevelCantChange
	LevelValue
	LevelDefault
)

func levelFromByte(b byte) Level {
	return Level(b & slcLevelBits)
}

func (l Level) toByte() byte {
	return byte(l) & slcLevelBits
}

// Modifiers packs an SLC function's support level with its ACK,
// FLUSHIN, and FLUSHOUT flags, per RFC 1184 section 2.1.
type Modifiers struct {
	Level    Level
	Ack      bool
	FlushIn  bool
	FlushOut bool
}

func modifiersFromByte(b byte) Modifiers {
	return Modifiers{
		Level:    levelFromByte(b),
		Ack:      b&slcAck != 0,
		FlushIn:  b&slcFlushIn != 0,
		FlushOut: b&slcFlushOut != 0,
	}
}

func (m Modifiers) toByte() byte {
	v := m.Level.toByte()
	if m.Ack {
		v |= slcAck
	}
	if m.FlushIn {
		v |= slcFlushIn
	}
	if m.FlushOut {
		v |= slcFlushOut
	}
	return v
}

// SlcFunction is one of the RFC 1184 Special Linemode Character
// functions. Unknown(byte) absorbs any function code this codec
// doesn't name.
type SlcFunction struct {
	known bool
	name  string
	byte  byte
}

func (f SlcFunction) Byte() byte { return f.byte }

func (f SlcFunction) String() string {
	if f.known {
		return f.name
	}
	return "Unknown"
}

func (f SlcFunction) IsUnknown() bool { return !f.known }

func slcNamed(b byte, name string) SlcFunction {
	return SlcFunction{known: true, name: name, byte: b}
}

var (
	SlcFunctionSynch    = slcNamed(SlcSynch, "Synch")
	SlcFunctionBrk      = slcNamed(SlcBrk, "Brk")
	SlcFunctionIP       = slcNamed(SlcIP, "Ip")
	SlcFunctionAO       = slcNamed(SlcAO, "Ao")
	SlcFunctionAYT      = slcNamed(SlcAYT, "Ayt")
	SlcFunctionEOR      = slcNamed(SlcEOR, "Eor")
	SlcFunctionAbort    = slcNamed(SlcAbort, "Abort")
	SlcFunctionEOF      = slcNamed(SlcEOF, "Eof")
	SlcFunctionSusp     = slcNamed(SlcSusp, "Susp")
	SlcFunctionEC       = slcNamed(SlcEC, "Ec")
	SlcFunctionEL       = slcNamed(SlcEL, "El")
	SlcFunctionEW       = slcNamed(SlcEW, "Ew")
	SlcFunctionRP       = slcNamed(SlcRP, "Rp")
	SlcFunctionLnext    = slcNamed(SlcLnext, "Lnext")
	SlcFunctionXon      = slcNamed(SlcXon, "Xon")
	SlcFunctionXoff     = slcNamed(SlcXoff, "Xoff")
	SlcFunctionForw1    = slcNamed(SlcForw1, "Forw1")
	SlcFunctionForw2    = slcNamed(SlcForw2, "Forw2")
	SlcFunctionMcl      = slcNamed(SlcMcl, "Mcl")
	SlcFunctionMcr      = slcNamed(SlcMcr, "Mcr")
	SlcFunctionMcwl     = slcNamed(SlcMcwl, "Mcwl")
	SlcFunctionMcwr     = slcNamed(SlcMcwr, "Mcwr")
	SlcFunctionMcub     = slcNamed(SlcMcub, "Mcub")
	SlcFunctionMcuf     = slcNamed(SlcMcuf, "Mcuf")
	SlcFunctionLp       = slcNamed(SlcLp, "Lp")
	SlcFunctionXonc     = slcNamed(SlcXonc, "Xonc")
	SlcFunctionXoffc    = slcNamed(SlcXoffc, "Xoffc")
	SlcFunctionExit     = slcNamed(SlcExit, "Exit")
	SlcFunctionSuspc    = slcNamed(SlcSuspc, "Suspc")
	SlcFunctionDsuspc   = slcNamed(SlcDsuspc, "Dsuspc")
	SlcFunctionReprint  = slcNamed(SlcReprint, "Reprint")
	SlcFunctionAbortc   = slcNamed(SlcAbortc, "Abortc")
	SlcFunctionEofchar  = slcNamed(SlcEofchar, "Eofchar")
	SlcFunctionSuspchar = slcNamed(SlcSuspchar, "Suspchar")
	SlcFunctionBrkc     = slcNamed(SlcBrkc, "Brkc")
	SlcFunctionEorc     = slcNamed(SlcEorc, "Eorc")
)

var slcFunctionsByByte = map[byte]SlcFunction{
	SlcSynch: SlcFunctionSynch, SlcBrk: SlcFunctionBrk, SlcIP: SlcFunctionIP,
	SlcAO: SlcFunctionAO, SlcAYT: SlcFunctionAYT, SlcEOR: SlcFunctionEOR,
	SlcAbort: SlcFunctionAbort, SlcEOF: SlcFunctionEOF, SlcSusp: SlcFunctionSusp,
	SlcEC: SlcFunctionEC, SlcEL: SlcFunctionEL, SlcEW: SlcFunctionEW,
	SlcRP: SlcFunctionRP, SlcLnext: SlcFunctionLnext, SlcXon: SlcFunctionXon,
	SlcXoff: SlcFunctionXoff, SlcForw1: SlcFunctionForw1, SlcForw2: SlcFunctionForw2,
	SlcMcl: SlcFunctionMcl, SlcMcr: SlcFunctionMcr, SlcMcwl: SlcFunctionMcwl,
	SlcMcwr: SlcFunctionMcwr, SlcMcub: SlcFunctionMcub, SlcMcuf: SlcFunctionMcuf,
	SlcLp: SlcFunctionLp, SlcXonc: SlcFunctionXonc, SlcXoffc: SlcFunctionXoffc,
	SlcExit: SlcFunctionExit, SlcSuspc: SlcFunctionSuspc, SlcDsuspc: SlcFunctionDsuspc,
	SlcReprint: SlcFunctionReprint, SlcAbortc: SlcFunctionAbortc, SlcEofchar: SlcFunctionEofchar,
	SlcSuspchar: SlcFunctionSuspchar, SlcBrkc: SlcFunctionBrkc, SlcEorc: SlcFunctionEorc,
}

func slcFunctionFromByte(b byte) SlcFunction {
	if f, ok := slcFunctionsByByte[b]; ok {
		return f
	}
	return SlcFunction{known: false, byte: b}
}

// Dispatch pairs an SLC function with its modifiers, the triple
// encoded on the wire as (function, modifiers, character).
type Dispatch struct {
	Function  SlcFunction
	Modifiers Modifiers
}

// SlcEntry is one decoded/encoded SLC triple: a dispatch and the
// character it's bound to.
type SlcEntry struct {
	Dispatch  Dispatch
	Character byte
}

// ForwardMaskOption is the LINEMODE FORWARD_MASK negotiation payload.
// Only Do carries a 16-byte mask; the rest are nullary.
type ForwardMaskOption struct {
	kind forwardMaskKind
	mask []byte // always exactly 16 bytes when kind == forwardMaskDo
	byte byte   // wire byte for Unknown
}

type forwardMaskKind int

const (
	forwardMaskDo forwardMaskKind = iota
	forwardMaskDont
	forwardMaskWill
	forwardMaskWont
	forwardMaskUnknown
)

// ForwardMaskDo builds a Do(mask) option, padding or truncating mask
// to exactly 16 bytes per spec.
func ForwardMaskDo(mask []byte) ForwardMaskOption {
	padded := make([]byte, 16)
	copy(padded, mask)
	return ForwardMaskOption{kind: forwardMaskDo, mask: padded}
}

var (
	ForwardMaskDont = ForwardMaskOption{kind: forwardMaskDont}
	ForwardMaskWill = ForwardMaskOption{kind: forwardMaskWill}
	ForwardMaskWont = ForwardMaskOption{kind: forwardMaskWont}
)

func ForwardMaskUnknown(b byte) ForwardMaskOption {
	return ForwardMaskOption{kind: forwardMaskUnknown, byte: b}
}

// Mask returns the 16-byte forward mask for a Do option, or nil otherwise.
func (f ForwardMaskOption) Mask() []byte {
	if f.kind != forwardMaskDo {
		return nil
	}
	return f.mask
}

func (f ForwardMaskOption) IsDo() bool   { return f.kind == forwardMaskDo }
func (f ForwardMaskOption) IsDont() bool { return f.kind == forwardMaskDont }
func (f ForwardMaskOption) IsWill() bool { return f.kind == forwardMaskWill }
func (f ForwardMaskOption) IsWont() bool { return f.kind == forwardMaskWont }

// LineModeOption is the RFC 1184 LINEMODE subnegotiation payload.
type LineModeOption struct {
	kind        lineModeKind
	mode        byte
	slc         []SlcEntry
	forwardMask ForwardMaskOption
	unknownCmd  byte
	unknownData []byte
}

type lineModeKind int

const (
	lineModeMode lineModeKind = iota
	lineModeSLC
	lineModeForwardMask
	lineModeUnknown
)

func LineModeModeOption(mask byte) LineModeOption {
	return LineModeOption{kind: lineModeMode, mode: mask}
}

func LineModeSLCOption(entries []SlcEntry) LineModeOption {
	return LineModeOption{kind: lineModeSLC, slc: entries}
}

func LineModeForwardMaskOption(fm ForwardMaskOption) LineModeOption {
	return LineModeOption{kind: lineModeForwardMask, forwardMask: fm}
}

func LineModeUnknownOption(cmd byte, data []byte) LineModeOption {
	return LineModeOption{kind: lineModeUnknown, unknownCmd: cmd, unknownData: data}
}

func (l LineModeOption) IsMode() bool        { return l.kind == lineModeMode }
func (l LineModeOption) Mode() byte          { return l.mode }
func (l LineModeOption) IsSLC() bool         { return l.kind == lineModeSLC }
func (l LineModeOption) SLC() []SlcEntry     { return l.slc }
func (l LineModeOption) IsForwardMask() bool { return l.kind == lineModeForwardMask }
func (l LineModeOption) ForwardMask() ForwardMaskOption {
	return l.forwardMask
}
func (l LineModeOption) IsUnknown() bool        { return l.kind == lineModeUnknown }
func (l LineModeOption) UnknownCommand() byte   { return l.unknownCmd }
func (l LineModeOption) UnknownPayload() []byte { return l.unknownData }

// wireLen returns the byte length of the LINEMODE payload, not
// counting the IAC SB LINEMODE ... IAC SE framing.
func (l LineModeOption) wireLen() int {
	switch l.kind {
	case lineModeMode:
		return 2
	case lineModeSLC:
		return 3*len(l.slc) + 1
	case lineModeForwardMask:
		if l.forwardMask.kind == forwardMaskDo {
			return 18
		}
		return 2
	case lineModeUnknown:
		return 1 + len(l.unknownData)
	default:
		return 0
	}
}

// decodeLineMode parses a LINEMODE subnegotiation payload per spec §4.3.
func decodeLineMode(payload []byte) (LineModeOption, bool) {
	if len(payload) == 0 {
		return LineModeOption{}, false
	}

	switch payload[0] {
	case LinemodeMode:
		if len(payload) < 2 {
			return LineModeOption{}, false
		}
		return LineModeModeOption(payload[1]), true

	case LinemodeSLC:
		rest := payload[1:]
		entries := make([]SlcEntry, 0, len(rest)/3)
		for len(rest) >= 3 {
			entries = append(entries, SlcEntry{
				Dispatch: Dispatch{
					Function:  slcFunctionFromByte(rest[0]),
					Modifiers: modifiersFromByte(rest[1]),
				},
				Character: rest[2],
			})
			rest = rest[3:]
		}
		return LineModeSLCOption(entries), true

	case DO, DONT, WILL, WONT:
		if len(payload) < 2 || payload[1] != LinemodeForwardMask {
			return LineModeUnknownOption(payload[0], payload[1:]), true
		}
		switch payload[0] {
		case DO:
			return LineModeForwardMaskOption(ForwardMaskDo(payload[2:])), true
		case DONT:
			return LineModeForwardMaskOption(ForwardMaskDont), true
		case WILL:
			return LineModeForwardMaskOption(ForwardMaskWill), true
		default: // WONT
			return LineModeForwardMaskOption(ForwardMaskWont), true
		}

	default:
		return LineModeUnknownOption(payload[0], payload[1:]), true
	}
}

// encodeLineMode appends the LINEMODE subnegotiation payload (without
// the IAC SB/IAC SE framing) to dst.
func encodeLineMode(l LineModeOption, dst []byte) []byte {
	switch l.kind {
	case lineModeMode:
		return append(dst, LinemodeMode, l.mode)

	case lineModeSLC:
		dst = append(dst, LinemodeSLC)
		for _, e := range l.slc {
			dst = append(dst, e.Dispatch.Function.Byte(), e.Dispatch.Modifiers.toByte(), e.Character)
		}
		return dst

	case lineModeForwardMask:
		switch l.forwardMask.kind {
		case forwardMaskDo:
			dst = append(dst, DO, LinemodeForwardMask)
			return append(dst, l.forwardMask.mask...)
		case forwardMaskDont:
			return append(dst, DONT, LinemodeForwardMask)
		case forwardMaskWill:
			return append(dst, WILL, LinemodeForwardMask)
		case forwardMaskWont:
			return append(dst, WONT, LinemodeForwardMask)
		default:
			return append(dst, l.forwardMask.byte, LinemodeForwardMask)
		}

	case lineModeUnknown:
		dst = append(dst, l.unknownCmd)
		return append(dst, l.unknownData...)

	default:
		return dst
	}
}
