package casio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"regexp"
)

// G1M container layout. Shoutout to Simon Lothar, who decoded the header:
// https://www.casiopeia.net/forum/viewtopic.php?p=12378#p12378
const (
	// Header A: file info. Byte file id, byte type id, unknown.
	headA1 = "USBPower1\x00\x10\x00\x10\x00"
	// a2 = control byte (uint8): code+149
	headA3 = "\x01" // unknown
	// a4 = file size (uint32): code+84
	// a5 = control byte (uint8): code+12
	headA6 = "\xff\xff\xff\xff\xff\xff\xff\xff\xff\x00\x01" // alignment, object count

	// Header B: program info.
	headB1 = "PROGRAM\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\x01system\x00\x00"
	// b2 = program name (8 bytes)
	headB3 = "\x01\x00\x00" // unknown
	// b4 = program size (uint16): code+8
	headB5 = "\x00\x00\x00" // unknown
	// b6 = password (8 bytes)
	// b7 = mode (0b0000000B): B -> base mode
	headB8 = "\x00" // padding
)

// HeaderSize is the byte length of the assembled A+B header sections.
const HeaderSize = 86

// allowedName covers the printables the calculator accepts in program names
// and passwords, plus + - * / r @ which remap to glyph bytes.
var allowedName = regexp.MustCompile(`^[A-Z0-9. \[\]{}'"~+\-*/r@]+$`)

// VerifyProgramName reports whether name is a legal on-device program name
// (1-8 characters from the allowed set).
func VerifyProgramName(name string) bool {
	return len(name) >= 1 && len(name) <= 8 && allowedName.MatchString(name)
}

// VerifyPassword reports whether password is legal (empty, or 1-8 characters
// from the allowed set).
func VerifyPassword(password string) bool {
	return password == "" || (len(password) <= 8 && allowedName.MatchString(password))
}

// ConvertName encodes a validated name or password into its 8-byte on-device
// form: ASCII with the operator characters remapped to glyph bytes, padded
// with NULs.
func ConvertName(name string) []byte {
	out := make([]byte, 8)
	for i := 0; i < len(name) && i < 8; i++ {
		switch name[i] {
		case '+':
			out[i] = Add[0]
		case '-':
			out[i] = Subtract[0]
		case '*':
			out[i] = Multiply[0]
		case '/':
			out[i] = Divide[0]
		case 'r':
			out[i] = Radius[0]
		case '@':
			out[i] = Theta[0]
		default:
			out[i] = name[i]
		}
	}
	return out
}

// Header carries everything the fixed-layout G1M record needs: the raw byte
// count of the tokenized program, a name, a password and the base-mode flag.
type Header struct {
	RawByteCount int
	ProgramName  string
	Password     string
	BaseMode     bool
}

func NewHeader(byteCount int, name, password string, baseMode bool) (*Header, error) {
	if !VerifyProgramName(name) {
		return nil, fmt.Errorf("%q is not a valid program name", name)
	}
	if !VerifyPassword(password) {
		return nil, fmt.Errorf("%q is not a valid password", password)
	}
	if CodeRegionSize(byteCount)+8 > 0xffff {
		return nil, fmt.Errorf("program too large: %d bytes > %d", CodeRegionSize(byteCount)+8, 0xffff)
	}
	return &Header{
		RawByteCount: byteCount,
		ProgramName:  name,
		Password:     password,
		BaseMode:     baseMode,
	}, nil
}

// CodeRegionSize returns the size of the program area for a raw program
// byte count: 2 alignment bytes, the program itself, one NUL terminator,
// rounded up to a 4-byte boundary.
func CodeRegionSize(rawByteCount int) int {
	return 4 * ((rawByteCount + 3 + 3) / 4)
}

// CodeRegion returns the padded byte size of the program area.
func (h *Header) CodeRegion() int {
	return CodeRegionSize(h.RawByteCount)
}

// DeviceByteCount is the size the calculator reports for the program.
func (h *Header) DeviceByteCount() int {
	return h.CodeRegion() + 28
}

// Bytes assembles the 86-byte A+B header.
func (h *Header) Bytes() []byte {
	code := h.CodeRegion()
	var buf bytes.Buffer
	buf.WriteString(headA1)
	buf.WriteByte(byte((code + 149) & 0xff))
	buf.WriteString(headA3)
	binary.Write(&buf, binary.BigEndian, uint32(code+84))
	buf.WriteByte(byte((code + 12) & 0xff))
	buf.WriteString(headA6)
	buf.WriteString(headB1)
	buf.Write(ConvertName(h.ProgramName))
	buf.WriteString(headB3)
	binary.Write(&buf, binary.BigEndian, uint16(code+8))
	buf.WriteString(headB5)
	buf.Write(ConvertName(h.Password))
	var mode byte
	if h.BaseMode {
		mode = 1
	}
	buf.WriteByte(mode)
	buf.WriteString(headB8)
	return buf.Bytes()
}

// Pack frames a tokenized program into a complete G1M file: header, two
// alignment bytes, the program, and NUL padding to the 4-byte boundary.
func Pack(program []byte, name, password string) ([]byte, error) {
	h, err := NewHeader(len(program), name, password, false)
	if err != nil {
		return nil, err
	}
	out := h.Bytes()
	out = append(out, 0x00, 0x00)
	out = append(out, program...)
	for pad := h.CodeRegion() - 2 - len(program); pad > 0; pad-- {
		out = append(out, 0x00)
	}
	return out, nil
}
