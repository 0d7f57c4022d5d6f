package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Font size
const (
	FontNormal = 0x00
	FontDouble = 0x11 // Double width + double height
	FontWide   = 0x10 // Double width only
	FontTall   = 0x01 // Double height only
)

// Document builds an ESC/POS byte stream for thermal printers.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (32 for 58mm, 48 for 80mm)
}

// NewDocument creates a new ESC/POS document with the given character width.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = 48
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Init sends the ESC @ (initialize printer) command.
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// LineFeed sends a line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// SetAlign sets text alignment: AlignLeft, AlignCenter, AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables bold text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, FontWide, or FontTall.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on the same line.
// Widths are counted in runes so Vietnamese labels pad correctly.
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// ItemLine prints a receipt line for qty x name with a right-aligned amount,
// wrapping long product names onto their own line:
//
//	Pho Bo Tai
//	  2 x 50.000                100.000
func (d *Document) ItemLine(qty int, name, unitPrice, amount string) *Document {
	if utf8.RuneCountInString(name) > d.width {
		name = truncateRunes(name, d.width)
	}
	d.Text(name)
	d.KeyValue(fmt.Sprintf("  %d x %s", qty, unitPrice), amount)
	return d
}

// DiscountLine prints an indented negative adjustment under an item.
func (d *Document) DiscountLine(label, amount string) *Document {
	d.KeyValue("  "+label, "-"+amount)
	return d
}

// QRCode prints a QR code using the GS ( k command set (model 2, size 6).
func (d *Document) QRCode(payload string) *Document {
	data := []byte(payload)

	// Select model 2
	d.buf.Write([]byte{GS, '(', 'k', 4, 0, 49, 65, 50, 0})
	// Module size
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 67, 6})
	// Error correction level M
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 69, 49})
	// Store data
	n := len(data) + 3
	d.buf.Write([]byte{GS, '(', 'k', byte(n % 256), byte(n / 256), 49, 80, 48})
	d.buf.Write(data)
	// Print
	d.buf.Write([]byte{GS, '(', 'k', 3, 0, 49, 81, 48})
	return d
}

// Cut sends the paper cut command (full cut).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// PlainText returns the document stripped of command bytes, suitable for
// relay endpoints that accept text jobs.
func (d *Document) PlainText() string {
	var sb strings.Builder
	raw := d.buf.Bytes()
	for i := 0; i < len(raw); i++ {
		switch raw[i] {
		case ESC:
			i++ // command letter
			if i < len(raw) && (raw[i] == 'a' || raw[i] == 'E') {
				i++ // one-byte argument
			}
		case GS:
			i++
			if i < len(raw) {
				switch raw[i] {
				case '!', 'V':
					i++
				case '(':
					// GS ( k has a two-byte length prefix after the function byte
					if i+3 < len(raw) {
						n := int(raw[i+2]) + int(raw[i+3])*256
						i += 3 + n
					}
				}
			}
		default:
			sb.WriteByte(raw[i])
		}
	}
	return sb.String()
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
