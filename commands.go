package escpos

// Command prefix bytes shared by the ESC/POS family.
const (
	esc byte = 0x1B
	gs  byte = 0x1D
	fs  byte = 0x1C
	dle byte = 0x10
)

// eol terminates every printed line.
const eol = "\n"

// Feed control sequences, addressable by symbolic name through Control.
var controlSequences = map[string][]byte{
	"LF":  {0x0A},       // print and line feed
	"GLF": {0x4A, 0x00}, // print and feed paper
	"FF":  {0x0C},       // form feed
	"CR":  {0x0D},       // carriage return
	"HT":  {0x09},       // horizontal tab
	"VT":  {0x0B},       // vertical tab
}

// Hardware sequences, addressable by symbolic name through Hardware.
var hardwareSequences = map[string][]byte{
	"INIT":   {esc, '@'},
	"SELECT": {esc, '=', 0x01},
	"RESET":  {esc, '?', 0x0A, 0x00},
}

// Line spacing. lineSpacingSet is followed by one motion-unit byte.
var (
	lineSpacingDefault = []byte{esc, '2'}
	lineSpacingSet     = []byte{esc, '3'}
)

// Character spacing. charSpacingSet is followed by one spacing byte.
var (
	charSpacingDefault = []byte{esc, ' ', 0x00}
	charSpacingSet     = []byte{esc, ' '}
)

// Cash drawer kick pulses, keyed by connector pin.
var drawerKick = map[uint8][]byte{
	2: {esc, 'p', 0x00, 0x19, 0x78},
	5: {esc, 'p', 0x01, 0x19, 0x78},
}

// Print area margins. Each command is followed by one size byte.
var (
	marginBottom = []byte{esc, 'O'}
	marginLeft   = []byte{esc, 'l'}
	marginRight  = []byte{esc, 'Q'}
)

// Paper cut commands. starFullCutCmd belongs to the Star dialect.
var (
	paperFullCut   = []byte{gs, 'V', 0x00}
	paperPartCut   = []byte{gs, 'V', 0x01}
	starFullCutCmd = []byte{esc, 'd', 0x02}
)

// Text format commands.
var (
	txtNormal = []byte{esc, '!', 0x00}

	txtBoldOn        = []byte{esc, 'E', 0x01}
	txtBoldOff       = []byte{esc, 'E', 0x00}
	txtItalicOn      = []byte{esc, '4'}
	txtItalicOff     = []byte{esc, '5'}
	txtUnderlineOn   = []byte{esc, '-', 0x01}
	txtUnderline2On  = []byte{esc, '-', 0x02}
	txtUnderlineOff  = []byte{esc, '-', 0x00}
	starEmphasizeOn  = []byte{esc, 'E'}
	starEmphasizeOff = []byte{esc, 'F'}

	txtAlign = map[string][]byte{
		"LT": {esc, 'a', 0x00},
		"CT": {esc, 'a', 0x01},
		"RT": {esc, 'a', 0x02},
	}

	txtFont = map[string][]byte{
		"A": {esc, 'M', 0x00},
		"B": {esc, 'M', 0x01},
		"C": {esc, 'M', 0x02},
	}
)

// styleEscapes maps the style mnemonics usable on table cells to their
// on/off command pair.
var styleEscapes = map[string][2][]byte{
	"B":  {txtBoldOn, txtBoldOff},
	"I":  {txtItalicOn, txtItalicOff},
	"U":  {txtUnderlineOn, txtUnderlineOff},
	"U2": {txtUnderline2On, txtUnderlineOff},
}

// txtCustomSize builds the GS ! size byte for cell multipliers in [1,8].
func txtCustomSize(width, height uint8) []byte {
	return []byte{gs, '!', (width-1)<<4 | (height - 1)}
}

// Color selection and reversal.
var colorSelect = [2][]byte{
	{esc, 'r', 0x00},
	{esc, 'r', 0x01},
}

// Bit image modes for ESC *, keyed by density name. The 8-dot modes pack
// one byte per column, the 24-dot modes three.
var bitmapFormat = map[string][]byte{
	"S8":  {esc, '*', 0x00},
	"D8":  {esc, '*', 0x01},
	"S24": {esc, '*', 0x20},
	"D24": {esc, '*', 0x21},
}

// Raster modes for GS v 0.
var rasterFormat = map[string][]byte{
	"NORMAL": {gs, 'v', '0', 0x00},
	"DW":     {gs, 'v', '0', 0x01},
	"DH":     {gs, 'v', '0', 0x02},
	"DWDH":   {gs, 'v', '0', 0x03},
}

// Barcode format commands.
var (
	barcodeTxtPosition = map[string][]byte{
		"OFF": {gs, 'H', 0x00},
		"ABV": {gs, 'H', 0x01},
		"BLW": {gs, 'H', 0x02},
		"BTH": {gs, 'H', 0x03},
	}

	barcodeFont = map[string][]byte{
		"A": {gs, 'f', 0x00},
		"B": {gs, 'f', 0x01},
	}

	// Module width by width class. Values outside the map fall back to
	// barcodeWidthDefault.
	barcodeWidth = map[int][]byte{
		1: {gs, 'w', 0x02},
		2: {gs, 'w', 0x03},
		3: {gs, 'w', 0x04},
		4: {gs, 'w', 0x05},
		5: {gs, 'w', 0x06},
	}
	barcodeWidthDefault  = []byte{gs, 'w', 0x01}
	barcodeHeightDefault = []byte{gs, 'h', 0x64}

	barcodeSelect = map[string][]byte{
		BarcodeUPCA:    {gs, 'k', 0x00},
		BarcodeUPCE:    {gs, 'k', 0x01},
		BarcodeEAN13:   {gs, 'k', 0x02},
		BarcodeEAN8:    {gs, 'k', 0x03},
		BarcodeCode39:  {gs, 'k', 0x04},
		BarcodeITF:     {gs, 'k', 0x05},
		BarcodeNW7:     {gs, 'k', 0x06},
		BarcodeCode93:  {gs, 'k', 0x48},
		BarcodeCode128: {gs, 'k', 0x49},
	}
)

// barcodeHeightCmd builds the module height command for h in [1,255].
func barcodeHeightCmd(h int) []byte {
	return []byte{gs, 'h', byte(h)}
}

// 2D code commands for generic models.
var (
	code2DTypePDF417     = []byte{gs, 'Z', 0x00}
	code2DTypeDataMatrix = []byte{gs, 'Z', 0x01}
	code2DTypeQR         = []byte{gs, 'Z', 0x02}
	code2DSelect         = []byte{esc, 'Z'}

	// Error correction levels are sent as their ASCII letter.
	qrLevels = map[string]byte{
		"L": 'L',
		"M": 'M',
		"Q": 'Q',
		"H": 'H',
	}
)

// qsprinter dialect overrides. The hardware has no module width or HRI
// font command, frames barcodes in a dedicated mode, and replaces the
// whole 2D protocol with a save/print-buffer sequence.
var (
	qsBarcodeModeOn        = []byte{gs, 'E', 0x43, 0x01}
	qsBarcodeModeOff       = []byte{gs, 'E', 0x43, 0x00}
	qsBarcodeHeightDefault = []byte{gs, 'h', 0xA2}

	qsPixelSize = []byte{esc, '#', '#', 'Q', 'P', 'I', 'X'}
	qsVersion   = []byte{gs, '(', 'k', 0x03, 0x00, 0x31, 0x43}
	qsLevel     = []byte{gs, '(', 'k', 0x03, 0x00, 0x31, 0x45}

	qsSaveBufP1  = []byte{gs, '(', 'k'}
	qsSaveBufP2  = []byte{0x31, 0x50, 0x30}
	qsPrintBufP1 = []byte{gs, '(', 'k'}
	qsPrintBufP2 = []byte{0x31, 0x51, 0x30}

	qsLevels = map[string]byte{
		"L": 48,
		"M": 49,
		"Q": 50,
		"H": 51,
	}
)

// qsprinter 2D parameter ranges. The save/print-buffer length field
// carries the payload length plus qsLenOffset.
const (
	qsPixelSizeMin     = 1
	qsPixelSizeMax     = 24
	qsPixelSizeDefault = 12

	qsVersionMin     = 1
	qsVersionMax     = 16
	qsVersionDefault = 3

	qsLenOffset = 3
)
