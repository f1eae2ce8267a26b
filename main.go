package escpos

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Model selects the command dialect. The qsprinter hardware diverges on
// barcode framing and speaks an entirely different 2D-code protocol.
type Model uint8

const (
	ModelGeneric Model = iota
	ModelQSPrinter
)

// Column width defaults. Font B glyphs are narrower, so more of them
// fit on a line.
const (
	defaultWidth      = 48
	defaultWidthFontA = 42
	defaultWidthFontB = 56
)

// defaultImageDelay is the pause after bit-image emission that lets
// transports without flow control drain before further commands.
const defaultImageDelay = 200 * time.Millisecond

// Escpos encodes print instructions into an ESC/POS byte stream. It
// owns the output buffer: every operation appends command bytes and
// returns, and nothing reaches the destination until Print flushes (or
// the internal buffer fills). A session has exactly one writer; callers
// must not issue operations concurrently.
type Escpos struct {
	dst io.Writer
	buf *Buffer
	log *zap.Logger

	encoding   string
	width      int
	model      Model
	imageDelay time.Duration
}

// Option configures a session at construction.
type Option func(*Escpos)

// WithEncoding sets the text codec used by Write, Text and table
// rendering. The default is GB18030.
func WithEncoding(name string) Option {
	return func(e *Escpos) { e.encoding = name }
}

// WithWidth sets the printable width in character columns.
func WithWidth(columns int) Option {
	return func(e *Escpos) {
		if columns > 0 {
			e.width = columns
		}
	}
}

// WithModel selects the command dialect.
func WithModel(m Model) Option {
	return func(e *Escpos) { e.model = m }
}

// WithLogger routes soft warnings to log.
func WithLogger(log *zap.Logger) Option {
	return func(e *Escpos) {
		if log != nil {
			e.log = log
		}
	}
}

// WithImageDelay overrides the drain pause after Image. Zero disables
// it; transports with their own flow control do not need the pause.
func WithImageDelay(d time.Duration) Option {
	return func(e *Escpos) { e.imageDelay = d }
}

// New creates a new Escpos session writing into dst.
func New(dst io.Writer, opts ...Option) *Escpos {
	e := &Escpos{
		dst:        dst,
		buf:        newBuffer(dst),
		log:        zap.NewNop(),
		encoding:   "GB18030",
		width:      defaultWidth,
		model:      ModelGeneric,
		imageDelay: defaultImageDelay,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Width returns the current printable width in character columns.
func (e *Escpos) Width() int { return e.width }

// SetModel selects the command dialect for subsequent operations.
func (e *Escpos) SetModel(m Model) *Escpos {
	e.model = m
	return e
}

// SetEncoding switches the text codec for subsequent text. Unknown
// codecs are rejected and the previous codec stays active.
func (e *Escpos) SetEncoding(name string) error {
	if _, err := encodeText("", name); err != nil {
		return err
	}
	e.encoding = name
	return nil
}

// Print sends the buffered data to the printer.
func (e *Escpos) Print() error {
	if err := e.buf.Flush(); err != nil {
		return fmt.Errorf("failed to send data to printer: %w", err)
	}
	return nil
}

// PrintAndCut sends the buffered data to the printer and performs a
// full cut.
func (e *Escpos) PrintAndCut() error {
	if _, err := e.Cut(false, 3); err != nil {
		return fmt.Errorf("failed to perform cut: %w", err)
	}
	return e.Print()
}

// WriteRaw appends data unmodified.
func (e *Escpos) WriteRaw(data []byte) (int, error) {
	return e.buf.Write(data)
}

// RawHex decodes a hex string, with optional space or colon separators,
// and appends the bytes unmodified. An escape hatch for vendor commands
// not otherwise modeled.
func (e *Escpos) RawHex(s string) (int, error) {
	clean := strings.NewReplacer(" ", "", ":", "").Replace(s)
	data, err := hex.DecodeString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid hex command %q: %w", s, err)
	}
	return e.WriteRaw(data)
}

// Write prints a string through the session codec, without a line
// terminator.
func (e *Escpos) Write(data string) (int, error) {
	encoded, err := encodeText(data, e.encoding)
	if err != nil {
		return 0, err
	}
	return e.buf.Write(encoded)
}

// Text prints one codec-encoded, newline-terminated line.
func (e *Escpos) Text(data string) (int, error) {
	return e.Write(data + eol)
}

// Feed advances the paper n lines.
func (e *Escpos) Feed(n int) (int, error) {
	if n < 1 {
		n = 1
	}
	return e.buf.WriteString(strings.Repeat(eol, n))
}

// Control appends a named feed control sequence: LF, GLF, FF, CR, HT
// or VT.
func (e *Escpos) Control(name string) (int, error) {
	seq, ok := controlSequences[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("unknown control sequence %q", name)
	}
	return e.WriteRaw(seq)
}

// Hardware appends a named hardware sequence: INIT, SELECT or RESET.
func (e *Escpos) Hardware(name string) (int, error) {
	seq, ok := hardwareSequences[strings.ToUpper(name)]
	if !ok {
		return 0, fmt.Errorf("unknown hardware sequence %q", name)
	}
	return e.WriteRaw(seq)
}

// Initialize resets the printer to its default settings.
func (e *Escpos) Initialize() (int, error) {
	return e.Hardware("INIT")
}

// Align sets text justification: LT, CT or RT.
func (e *Escpos) Align(align string) (int, error) {
	cmd, ok := txtAlign[strings.ToUpper(align)]
	if !ok {
		return 0, fmt.Errorf("invalid alignment %q (want LT, CT or RT)", align)
	}
	return e.WriteRaw(cmd)
}

// Font selects the character font (A, B or C) and resets the printable
// width to the font's column default.
func (e *Escpos) Font(family string) (int, error) {
	name := strings.ToUpper(family)
	cmd, ok := txtFont[name]
	if !ok {
		return 0, fmt.Errorf("invalid font family %q (want A, B or C)", family)
	}
	if name == "A" {
		e.width = defaultWidthFontA
	} else {
		e.width = defaultWidthFontB
	}
	return e.WriteRaw(cmd)
}

// SetStyle emits the bold, italic and underline state in one call.
// underline may be 0 (off), 1 or 2 (two-dot); larger values clamp to 2.
func (e *Escpos) SetStyle(bold, italic bool, underline uint8) (int, error) {
	var out []byte
	if bold {
		out = append(out, txtBoldOn...)
	} else {
		out = append(out, txtBoldOff...)
	}
	if italic {
		out = append(out, txtItalicOn...)
	} else {
		out = append(out, txtItalicOff...)
	}
	switch underline {
	case 0:
		out = append(out, txtUnderlineOff...)
	case 1:
		out = append(out, txtUnderlineOn...)
	default:
		out = append(out, txtUnderline2On...)
	}
	return e.WriteRaw(out)
}

// Style emits a composed style by mnemonic: B, I, U, U2 and
// combinations such as BIU or BU2. NORMAL (or the empty string) clears
// everything.
func (e *Escpos) Style(mnemonic string) (int, error) {
	s := strings.ToUpper(mnemonic)
	if s == "" || s == "NORMAL" {
		return e.SetStyle(false, false, 0)
	}
	var bold, italic bool
	var underline uint8
	for len(s) > 0 {
		switch {
		case strings.HasPrefix(s, "U2"):
			underline = 2
			s = s[2:]
		case s[0] == 'U':
			underline = 1
			s = s[1:]
		case s[0] == 'B':
			bold = true
			s = s[1:]
		case s[0] == 'I':
			italic = true
			s = s[1:]
		default:
			return 0, fmt.Errorf("invalid style mnemonic %q", mnemonic)
		}
	}
	return e.SetStyle(bold, italic, underline)
}

// Size sets the character cell multipliers, clamped to [1,8].
func (e *Escpos) Size(width, height uint8) (int, error) {
	clamp := func(v uint8) uint8 {
		if v < 1 {
			return 1
		}
		if v > 8 {
			return 8
		}
		return v
	}
	return e.WriteRaw(txtCustomSize(clamp(width), clamp(height)))
}

// Spacing sets the right-side character spacing in motion units; values
// outside [0,255] restore the default.
func (e *Escpos) Spacing(n int) (int, error) {
	if n < 0 || n > 255 {
		return e.WriteRaw(charSpacingDefault)
	}
	out := append([]byte{}, charSpacingSet...)
	return e.WriteRaw(append(out, byte(n)))
}

// LineSpace sets the line spacing in motion units; values outside
// [0,255] restore the default spacing.
func (e *Escpos) LineSpace(n int) (int, error) {
	if n < 0 || n > 255 {
		return e.WriteRaw(lineSpacingDefault)
	}
	out := append([]byte{}, lineSpacingSet...)
	return e.WriteRaw(append(out, byte(n)))
}

// Beep sounds the buzzer n times for t*100ms each.
func (e *Escpos) Beep(n, t uint8) (int, error) {
	return e.WriteRaw([]byte{esc, 'B', n, t})
}

// Cashdraw fires the drawer kick pulse on pin 2 or 5.
func (e *Escpos) Cashdraw(pin uint8) (int, error) {
	cmd, ok := drawerKick[pin]
	if !ok {
		return 0, fmt.Errorf("invalid drawer pin %d (want 2 or 5)", pin)
	}
	return e.WriteRaw(cmd)
}

// Cut feeds the paper and cuts it. feed of zero or less uses the
// customary three lines.
func (e *Escpos) Cut(partial bool, feed int) (int, error) {
	if feed <= 0 {
		feed = 3
	}
	n, err := e.Feed(feed)
	if err != nil {
		return n, err
	}
	cmd := paperFullCut
	if partial {
		cmd = paperPartCut
	}
	m, err := e.WriteRaw(cmd)
	return n + m, err
}

// Color selects the print color slot, 0 or 1. Unrecognized values log
// a warning and fall back to the primary color.
func (e *Escpos) Color(color uint8) (int, error) {
	if color > 1 {
		e.log.Warn("unrecognized print color, using primary",
			zap.Uint8("color", color))
		color = 0
	}
	return e.WriteRaw(colorSelect[color])
}

// SetReverseColors toggles white-on-black printing.
func (e *Escpos) SetReverseColors(on bool) (int, error) {
	return e.WriteRaw([]byte{gs, 'B', boolToByte(on)})
}

// MarginBottom sets the bottom margin in motion units.
func (e *Escpos) MarginBottom(size uint8) (int, error) {
	out := append([]byte{}, marginBottom...)
	return e.WriteRaw(append(out, size))
}

// MarginLeft sets the left margin in motion units.
func (e *Escpos) MarginLeft(size uint8) (int, error) {
	out := append([]byte{}, marginLeft...)
	return e.WriteRaw(append(out, size))
}

// MarginRight sets the right margin in motion units.
func (e *Escpos) MarginRight(size uint8) (int, error) {
	out := append([]byte{}, marginRight...)
	return e.WriteRaw(append(out, size))
}

// StarFullCut issues the Star-dialect full cut.
func (e *Escpos) StarFullCut() (int, error) {
	return e.WriteRaw(starFullCutCmd)
}

// StarEmphasize toggles Star-dialect emphasized printing.
func (e *Escpos) StarEmphasize(on bool) (int, error) {
	if on {
		return e.WriteRaw(starEmphasizeOn)
	}
	return e.WriteRaw(starEmphasizeOff)
}

// Image emits img through the column-major bit-image path. density is
// one of s8, d8, s24 or d24 (default d24). Line spacing is zeroed for
// the duration and restored afterwards. The call then pauses for the
// session's image delay so slow transports can drain; no other
// operation may run on the session until it returns.
func (e *Escpos) Image(img *Image, density string) (int, error) {
	if img == nil {
		return 0, fmt.Errorf("an image is required")
	}
	if density == "" {
		density = "d24"
	}
	name := strings.ToUpper(density)
	header, ok := bitmapFormat[name]
	if !ok {
		return 0, fmt.Errorf("invalid bitmap density %q (want s8, d8, s24 or d24)", density)
	}
	n := 3
	if name == "S8" || name == "D8" {
		n = 1
	}
	bitmap, err := img.ToBitmap(n * 8)
	if err != nil {
		return 0, err
	}

	written := 0
	if _, err := e.LineSpace(0); err != nil {
		return written, err
	}
	for _, line := range bitmap.Lines {
		if _, err := e.WriteRaw(header); err != nil {
			return written, err
		}
		if err := e.buf.WriteUInt16LE(uint16(len(line) / n)); err != nil {
			return written, err
		}
		m, err := e.WriteRaw(line)
		written += m
		if err != nil {
			return written, err
		}
		if _, err := e.buf.WriteString(eol); err != nil {
			return written, err
		}
	}
	if _, err := e.LineSpace(-1); err != nil {
		return written, err
	}
	if e.imageDelay > 0 {
		time.Sleep(e.imageDelay)
	}
	return written, nil
}

// Raster emits img through the GS v 0 raster path. mode is normal, dw,
// dh or dwdh; the dhdw, dwh and dhw spellings collapse onto dwdh.
func (e *Escpos) Raster(img *Image, mode string) (int, error) {
	if img == nil {
		return 0, fmt.Errorf("an image is required")
	}
	if mode == "" {
		mode = "NORMAL"
	}
	name := strings.ToUpper(mode)
	switch name {
	case "DHDW", "DWH", "DHW":
		name = "DWDH"
	}
	header, ok := rasterFormat[name]
	if !ok {
		return 0, fmt.Errorf("invalid raster mode %q (want normal, dw, dh or dwdh)", mode)
	}
	raster := img.ToRaster()
	if _, err := e.WriteRaw(header); err != nil {
		return 0, err
	}
	if err := e.buf.WriteUInt16LE(uint16(raster.Width)); err != nil {
		return 0, err
	}
	if err := e.buf.WriteUInt16LE(uint16(raster.Height)); err != nil {
		return 0, err
	}
	return e.WriteRaw(raster.Data)
}

// boolToByte converts a boolean to a byte (0x00 or 0x01)
func boolToByte(b bool) byte {
	if b {
		return 0x01
	}
	return 0x00
}

// onlyDigits checks if a non-empty string contains only digits
func onlyDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
