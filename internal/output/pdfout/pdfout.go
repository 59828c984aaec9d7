// Package pdfout draws a view tree onto A4 pages with gofpdf.
package pdfout

import (
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/hyperifyio/mdrender/internal/node"
	"github.com/hyperifyio/mdrender/internal/style"
	"github.com/hyperifyio/mdrender/internal/view"
)

const (
	margin     = 15.0
	lineHeight = 5.5
	// body text is 17pt in style units; scale to 11pt on paper
	pointScale = 11.0 / 17.0
)

// WriteFile renders v and writes the PDF to path.
func WriteFile(v view.View, path string) error {
	pdf := newDocument(v)
	return pdf.OutputFileAndClose(path)
}

// Write renders v and writes the PDF to w.
func Write(v view.View, w io.Writer) error {
	pdf := newDocument(v)
	return pdf.Output(w)
}

func newDocument(v view.View) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetFont("Helvetica", "", 11)
	pdf.AddPage()

	d := &drawer{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		links: map[string]int{},
	}
	// register anchors up front so links may point forward
	view.Walk(v, func(cur view.View) bool {
		if a, ok := cur.(view.Anchor); ok && a.ID != "" {
			if _, seen := d.links[a.ID]; !seen {
				d.links[a.ID] = pdf.AddLink()
			}
		}
		return true
	})
	pageW, _ := pdf.GetPageSize()
	d.draw(v, margin, pageW-2*margin)
	return pdf
}

type drawer struct {
	pdf   *gofpdf.Fpdf
	tr    func(string) string
	links map[string]int
}

func (d *drawer) draw(v view.View, x, w float64) {
	switch v := v.(type) {
	case view.Text:
		d.text(v, x)
	case view.VStack:
		for i, c := range v.Children {
			if i > 0 && v.Spacing > 0 {
				d.pdf.Ln(float64(v.Spacing) * lineHeight / 2)
			}
			d.draw(c, x, w)
		}
	case view.HStack:
		cells := make([]tableCell, len(v.Children))
		for i, c := range v.Children {
			cells[i] = cellOf(c)
		}
		d.row(cells, x, w, "1")
	case view.Grid:
		d.pdf.SetDrawColor(0x99, 0x99, 0x99)
		d.pdf.SetLineWidth(0.1)
		for _, row := range v.Rows {
			cells := make([]tableCell, len(v.Columns))
			for c := range cells {
				if c < len(row) {
					cells[c] = cellOf(row[c])
				}
			}
			d.row(cells, x, w, "1")
		}
		d.pdf.SetDrawColor(0, 0, 0)
		d.pdf.SetLineWidth(0.2)
	case view.Frame:
		d.draw(v.Child, x, w)
	case view.Border:
		d.draw(v.Child, x, w)
	case view.Indent:
		d.indent(v, x, w)
	case view.Rule:
		y := d.pdf.GetY() + lineHeight/2
		d.pdf.Line(x, y, x+w, y)
		d.pdf.Ln(lineHeight)
	case view.Anchor:
		if id, ok := d.links[v.ID]; ok {
			d.pdf.SetLink(id, d.pdf.GetY(), -1)
		}
		d.draw(v.Child, x, w)
	case view.Code:
		d.setFont(v.Attrs)
		d.pdf.SetFillColor(0xf4, 0xf4, 0xf4)
		d.pdf.SetX(x)
		d.pdf.MultiCell(w, lineHeight, d.tr(strings.Join(v.Lines, "\n")), "", "L", true)
		d.pdf.SetFont("Helvetica", "", 11)
	}
}

func (d *drawer) text(t view.Text, x float64) {
	d.pdf.SetLeftMargin(x)
	d.pdf.SetX(x)
	for _, r := range t.Runs {
		d.setFont(r.Attrs)
		if r.Text != "" {
			s := d.tr(r.Text)
			switch link := linkOf(r.Attrs); {
			case strings.HasPrefix(link, "#"):
				if id, ok := d.links[strings.TrimPrefix(link, "#")]; ok {
					d.pdf.WriteLinkID(lineHeight, s, id)
				} else {
					d.pdf.Write(lineHeight, s)
				}
			case link != "":
				d.pdf.WriteLinkString(lineHeight, s, link)
			default:
				d.pdf.Write(lineHeight, s)
			}
		}
		if r.Break {
			d.pdf.Ln(lineHeight)
		}
	}
	d.pdf.Ln(lineHeight)
	d.pdf.SetLeftMargin(margin)
	d.pdf.SetTextColor(0, 0, 0)
}

func (d *drawer) indent(in view.Indent, x, w float64) {
	marker := strings.TrimSpace(in.Marker)
	mw := 6.0
	y0 := d.pdf.GetY()
	if marker == "│" {
		// quote bar instead of the box-drawing glyph
		d.draw(in.Child, x+mw, w-mw)
		d.pdf.SetDrawColor(0xcc, 0xcc, 0xcc)
		d.pdf.SetLineWidth(0.8)
		d.pdf.Line(x+1, y0, x+1, d.pdf.GetY())
		d.pdf.SetDrawColor(0, 0, 0)
		d.pdf.SetLineWidth(0.2)
		return
	}
	d.pdf.SetFont("Helvetica", "", 11)
	d.pdf.SetXY(x, y0)
	d.pdf.CellFormat(mw, lineHeight, d.tr(marker), "", 0, "L", false, 0, "")
	d.pdf.SetY(y0)
	d.draw(in.Child, x+mw, w-mw)
}

type tableCell struct {
	text  string
	align node.Alignment
	attrs style.Native
}

// cellOf flattens a table cell view to one text line with its alignment.
func cellOf(v view.View) tableCell {
	var c tableCell
	view.Walk(v, func(cur view.View) bool {
		switch t := cur.(type) {
		case view.Frame:
			c.align = t.Alignment
		case view.Text:
			if len(t.Runs) > 0 {
				c.attrs = t.Runs[0].Attrs
			}
		}
		return true
	})
	c.text = view.PlainText(v)
	return c
}

func (d *drawer) row(cells []tableCell, x, w float64, border string) {
	if len(cells) == 0 {
		return
	}
	cw := w / float64(len(cells))
	d.pdf.SetX(x)
	for _, c := range cells {
		d.setFont(c.attrs)
		d.pdf.CellFormat(cw, lineHeight+1, d.tr(c.text), border, 0, alignStr(c.align), false, 0, "")
	}
	d.pdf.Ln(lineHeight + 1)
	d.pdf.SetTextColor(0, 0, 0)
}

func alignStr(a node.Alignment) string {
	switch a {
	case node.AlignCenter:
		return "CM"
	case node.AlignRight:
		return "RM"
	default:
		return "LM"
	}
}

func linkOf(a style.Native) string {
	if a.Link == nil {
		return ""
	}
	return *a.Link
}

func (d *drawer) setFont(a style.Native) {
	f := a.Font()
	family := "Helvetica"
	if f.FamilyVariant == style.FamilyMonospaced {
		family = "Courier"
	}
	d.pdf.SetFont(family, fontStyle(a), f.ScaledSize()*pointScale)
	if c := a.ForegroundColor; c != nil {
		d.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
	} else {
		d.pdf.SetTextColor(0, 0, 0)
	}
}

func fontStyle(a style.Native) string {
	f := a.Font()
	var b strings.Builder
	if f.Weight >= style.WeightSemibold {
		b.WriteByte('B')
	}
	if f.Slant == style.SlantItalic {
		b.WriteByte('I')
	}
	if a.UnderlineStyle != nil {
		b.WriteByte('U')
	}
	if a.StrikethroughStyle != nil {
		b.WriteByte('S')
	}
	return b.String()
}
