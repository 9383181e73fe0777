package telnet

import "unicode/utf8"

// WellKnownVar is one of the RFC 1572 reserved NEW-ENVIRON variable
// names. Unknown(string) absorbs anything else sent as a VAR.
type WellKnownVar struct {
	known bool
	name  string
}

var (
	WellKnownVarUser       = WellKnownVar{known: true, name: EnvNameUser}
	WellKnownVarJob        = WellKnownVar{known: true, name: EnvNameJob}
	WellKnownVarAcct       = WellKnownVar{known: true, name: EnvNameAcct}
	WellKnownVarPrinter    = WellKnownVar{known: true, name: EnvNamePrinter}
	WellKnownVarSystemType = WellKnownVar{known: true, name: EnvNameSystemType}
	WellKnownVarDisplay    = WellKnownVar{known: true, name: EnvNameDisplay}
)

func WellKnownVarUnknown(name string) WellKnownVar {
	return WellKnownVar{known: false, name: name}
}

// Name returns the wire name for this variable.
func (v WellKnownVar) Name() string { return v.name }

func (v WellKnownVar) IsUnknown() bool { return !v.known }

func wellKnownVarFromName(name string) WellKnownVar {
	switch name {
	case EnvNameUser:
		return WellKnownVarUser
	case EnvNameJob:
		return WellKnownVarJob
	case EnvNameAcct:
		return WellKnownVarAcct
	case EnvNamePrinter:
		return WellKnownVarPrinter
	case EnvNameSystemType:
		return WellKnownVarSystemType
	case EnvNameDisplay:
		return WellKnownVarDisplay
	default:
		return WellKnownVarUnknown(name)
	}
}

// EnvironmentKind is either a well-known (VAR) or user-defined
// (USERVAR) NEW-ENVIRON variable. A nil name pointer is a wildcard,
// meaningful only inside a Send list.
type EnvironmentKind struct {
	userDefined bool
	wellKnown   *WellKnownVar
	userName    *string
}

// WellKnownKind builds a VAR-tagged kind. Pass nil for a wildcard
// (valid only inside Send).
func WellKnownKind(v *WellKnownVar) EnvironmentKind {
	return EnvironmentKind{userDefined: false, wellKnown: v}
}

// UserDefinedKind builds a USERVAR-tagged kind. Pass nil for a
// wildcard (valid only inside Send).
func UserDefinedKind(name *string) EnvironmentKind {
	return EnvironmentKind{userDefined: true, userName: name}
}

func (k EnvironmentKind) IsUserDefined() bool { return k.userDefined }
func (k EnvironmentKind) IsWellKnown() bool   { return !k.userDefined }

// IsWildcard reports whether this kind carries no name.
func (k EnvironmentKind) IsWildcard() bool {
	if k.userDefined {
		return k.userName == nil
	}
	return k.wellKnown == nil
}

// WellKnown returns the well-known variable, or false if this kind is
// user-defined or a wildcard.
func (k EnvironmentKind) WellKnown() (WellKnownVar, bool) {
	if k.userDefined || k.wellKnown == nil {
		return WellKnownVar{}, false
	}
	return *k.wellKnown, true
}

// UserName returns the user-defined variable name, or false if this
// kind is well-known or a wildcard.
func (k EnvironmentKind) UserName() (string, bool) {
	if !k.userDefined || k.userName == nil {
		return "", false
	}
	return *k.userName, true
}

// Name returns the wire name for this kind, or "" for a wildcard.
func (k EnvironmentKind) Name() string {
	if k.userDefined {
		if k.userName == nil {
			return ""
		}
		return *k.userName
	}
	if k.wellKnown == nil {
		return ""
	}
	return k.wellKnown.Name()
}

func (k EnvironmentKind) tagByte() byte {
	if k.userDefined {
		return EnvUserVar
	}
	return EnvVar
}

// EnvVarEntry is one (kind, value?) pair as carried by Is and Info.
type EnvVarEntry struct {
	Kind     EnvironmentKind
	Value    []byte
	HasValue bool
}

// EnvironmentOperation is the RFC 1572 NEW-ENVIRON subnegotiation payload.
type EnvironmentOperation struct {
	kind       envOpKind
	vars       []EnvVarEntry
	sendVars   []EnvironmentKind
	unknownTag byte
	unknownBuf []byte
}

type envOpKind int

const (
	envOpIs envOpKind = iota
	envOpSend
	envOpInfo
	envOpUnknown
)

func EnvironmentIs(vars []EnvVarEntry) EnvironmentOperation {
	return EnvironmentOperation{kind: envOpIs, vars: vars}
}

func EnvironmentSend(kinds []EnvironmentKind) EnvironmentOperation {
	return EnvironmentOperation{kind: envOpSend, sendVars: kinds}
}

func EnvironmentInfo(vars []EnvVarEntry) EnvironmentOperation {
	return EnvironmentOperation{kind: envOpInfo, vars: vars}
}

func EnvironmentUnknown(tag byte, data []byte) EnvironmentOperation {
	return EnvironmentOperation{kind: envOpUnknown, unknownTag: tag, unknownBuf: data}
}

func (e EnvironmentOperation) IsIs() bool                 { return e.kind == envOpIs }
func (e EnvironmentOperation) IsSend() bool               { return e.kind == envOpSend }
func (e EnvironmentOperation) IsInfo() bool               { return e.kind == envOpInfo }
func (e EnvironmentOperation) IsUnknown() bool            { return e.kind == envOpUnknown }
func (e EnvironmentOperation) Vars() []EnvVarEntry        { return e.vars }
func (e EnvironmentOperation) SendKinds() []EnvironmentKind { return e.sendVars }
func (e EnvironmentOperation) UnknownTag() byte           { return e.unknownTag }
func (e EnvironmentOperation) UnknownPayload() []byte     { return e.unknownBuf }

// --- escaping (RFC 1572's ESC-prefixed grammar) ---

// escapeEnvBytes doubles IAC and ESC-prefixes VAR/VALUE/ESC/USERVAR,
// per spec §4.4. The outer SB framer does not re-escape content bytes
// at this layer, so IAC must be doubled here too.
func escapeEnvBytes(data []byte) []byte {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		switch b {
		case EnvEsc, EnvVar, EnvValue, EnvUserVar:
			out = append(out, EnvEsc, b)
		case IAC:
			out = append(out, IAC, IAC)
		default:
			out = append(out, b)
		}
	}
	return out
}

type envEscapeState int

const (
	envUnescaped envEscapeState = iota
	envEscapedEsc
	envEscapedIAC
)

// decodeEnvToken runs the shared name/value escape state machine from
// spec §4.4. endsOnValue controls whether an unescaped VALUE tag
// terminates the token (true, for names) or makes the token malformed
// (false, for values).
func decodeEnvToken(data []byte, endsOnValue bool) ([]byte, int, bool) {
	var buf []byte
	state := envUnescaped

	for i, b := range data {
		switch state {
		case envUnescaped:
			switch b {
			case EnvEsc:
				state = envEscapedEsc
			case IAC:
				state = envEscapedIAC
			case EnvVar, EnvUserVar:
				return buf, i, true
			case EnvValue:
				if endsOnValue {
					return buf, i, true
				}
				return nil, 0, false
			default:
				buf = append(buf, b)
			}

		case envEscapedEsc:
			switch b {
			case EnvVar, EnvUserVar, EnvValue, EnvEsc:
				buf = append(buf, b)
				state = envUnescaped
			default:
				return nil, 0, false
			}

		case envEscapedIAC:
			if b != IAC {
				return nil, 0, false
			}
			buf = append(buf, IAC)
			state = envUnescaped
		}
	}

	if state != envUnescaped {
		return nil, 0, false
	}
	return buf, len(data), true
}

func decodeEnvName(data []byte) ([]byte, int, bool) {
	if len(data) == 0 {
		return nil, 0, false
	}
	return decodeEnvToken(data, true)
}

func decodeEnvValue(data []byte) ([]byte, int, bool) {
	if len(data) == 0 {
		return nil, 0, true
	}
	return decodeEnvToken(data, false)
}

// decodeEnvVar parses one (name, optional value) pair starting right
// after the leading VAR/USERVAR tag byte.
func decodeEnvVar(data []byte) (string, []byte, bool, int, bool) {
	rawName, size, ok := decodeEnvName(data)
	if !ok || len(rawName) == 0 {
		return "", nil, false, 0, false
	}

	if !isValidUTF8(rawName) {
		return "", nil, false, 0, false
	}
	name := string(rawName)

	rest := data[size:]
	if len(rest) == 0 || rest[0] != EnvValue {
		return name, nil, false, size, true
	}

	value, valueSize, ok := decodeEnvValue(rest[1:])
	if !ok {
		return "", nil, false, 0, false
	}
	return name, value, true, size + 1 + valueSize, true
}

// decodeEnvVars decodes the repeated (VAR|USERVAR name value?)* grammar
// shared by Is and Info.
func decodeEnvVars(data []byte) ([]EnvVarEntry, bool) {
	var out []EnvVarEntry
	index := 0

	for index < len(data) {
		tag := data[index]
		if tag != EnvVar && tag != EnvUserVar {
			return nil, false
		}
		name, value, hasValue, size, ok := decodeEnvVar(data[index+1:])
		if !ok {
			return nil, false
		}

		var kind EnvironmentKind
		if tag == EnvVar {
			wk := wellKnownVarFromName(name)
			kind = WellKnownKind(&wk)
		} else {
			n := name
			kind = UserDefinedKind(&n)
		}
		out = append(out, EnvVarEntry{Kind: kind, Value: value, HasValue: hasValue})
		index += size + 1
	}

	return out, true
}

// decodeEnvSend decodes the Send grammar: a run of (VAR|USERVAR
// name?)* requests. A name may be empty (wildcard). Per spec §4.4's
// resolution of the original crate's tag-inversion bug, VAR maps to
// WellKnown and USERVAR maps to UserDefined here, mirroring Is/Info.
func decodeEnvSend(data []byte) ([]EnvironmentKind, bool) {
	var out []EnvironmentKind
	if len(data) == 0 {
		return out, true
	}

	currentTag := data[0]
	var currentName []byte

	flush := func(tag byte, name []byte) bool {
		if tag != EnvVar && tag != EnvUserVar {
			return false
		}
		if len(name) == 0 {
			if tag == EnvVar {
				out = append(out, WellKnownKind(nil))
			} else {
				out = append(out, UserDefinedKind(nil))
			}
			return true
		}
		if !isValidUTF8(name) {
			return false
		}
		s := string(name)
		if tag == EnvVar {
			wk := wellKnownVarFromName(s)
			out = append(out, WellKnownKind(&wk))
		} else {
			out = append(out, UserDefinedKind(&s))
		}
		return true
	}

	for _, b := range data[1:] {
		if b == EnvVar || b == EnvUserVar {
			if !flush(currentTag, currentName) {
				return nil, false
			}
			currentTag = b
			currentName = nil
			continue
		}
		currentName = append(currentName, b)
	}

	if !flush(currentTag, currentName) {
		return nil, false
	}

	return out, true
}

// decodeEnvironmentOperation parses a NEW-ENVIRON subnegotiation
// payload per spec §4.4.
func decodeEnvironmentOperation(payload []byte) (EnvironmentOperation, bool) {
	if len(payload) == 0 {
		return EnvironmentOperation{}, false
	}

	op, rest := payload[0], payload[1:]
	switch op {
	case EnvIs:
		vars, ok := decodeEnvVars(rest)
		if !ok {
			return EnvironmentOperation{}, false
		}
		return EnvironmentIs(vars), true
	case EnvSend:
		kinds, ok := decodeEnvSend(rest)
		if !ok {
			return EnvironmentOperation{}, false
		}
		return EnvironmentSend(kinds), true
	case EnvInfo:
		vars, ok := decodeEnvVars(rest)
		if !ok {
			return EnvironmentOperation{}, false
		}
		return EnvironmentInfo(vars), true
	default:
		return EnvironmentUnknown(op, append([]byte(nil), rest...)), true
	}
}

func encodeEnvVars(vars []EnvVarEntry, dst []byte) []byte {
	for _, v := range vars {
		if v.Kind.IsWildcard() {
			continue
		}
		name := v.Kind.Name()
		dst = append(dst, v.Kind.tagByte())
		dst = append(dst, escapeEnvBytes([]byte(name))...)
		if v.HasValue {
			dst = append(dst, EnvValue)
			dst = append(dst, escapeEnvBytes(v.Value)...)
		}
	}
	return dst
}

// encodeEnvironmentOperation appends the NEW-ENVIRON subnegotiation
// payload (without IAC SB/IAC SE framing) to dst.
func encodeEnvironmentOperation(e EnvironmentOperation, dst []byte) []byte {
	switch e.kind {
	case envOpIs:
		dst = append(dst, EnvIs)
		return encodeEnvVars(e.vars, dst)
	case envOpSend:
		dst = append(dst, EnvSend)
		for _, k := range e.sendVars {
			dst = append(dst, k.tagByte())
			dst = append(dst, []byte(k.Name())...)
		}
		return dst
	case envOpInfo:
		dst = append(dst, EnvInfo)
		return encodeEnvVars(e.vars, dst)
	case envOpUnknown:
		dst = append(dst, e.unknownTag)
		return append(dst, e.unknownBuf...)
	default:
		return dst
	}
}

// wireLen returns the byte length of the NEW-ENVIRON payload, not
// counting the IAC SB/IAC SE framing.
func (e EnvironmentOperation) wireLen() int {
	return len(encodeEnvironmentOperation(e, nil))
}

func isValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}
