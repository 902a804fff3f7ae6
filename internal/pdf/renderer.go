package pdf

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pakricemarket/mandi-admin/internal/llm"
)

// A4 portrait layout in millimeters.
const (
	pageWidth  = 210.0
	marginSide = 20.0
	contentW   = pageWidth - 2*marginSide

	colNameW    = 62.0
	colPriceW   = 40.0
	colUnitW    = 23.0
	colDetailsW = contentW - colNameW - colPriceW - colUnitW
)

// Config for the report renderer.
type Config struct {
	// UrduFontFile points at a TTF carrying Arabic-script glyphs. When empty
	// the renderer falls back to the Helvetica core font; layout and
	// pagination are unchanged, only glyph coverage suffers.
	UrduFontFile string
}

// Renderer lays out a validated ParsedMandiData as a paginated A4 document
// with right-to-left text. Content that overflows one page flows onto
// additional same-size pages; a table row may land on a page boundary, which
// is accepted behavior.
type Renderer struct {
	cfg Config
	log *slog.Logger
	now func() time.Time
}

func NewRenderer(cfg Config, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{cfg: cfg, log: logger, now: time.Now}
}

// WithClock overrides the timestamp source used in the footer.
func (r *Renderer) WithClock(now func() time.Time) *Renderer {
	r.now = now
	return r
}

// Render produces the finished PDF bytes and the suggested filename.
func (r *Renderer) Render(data llm.ParsedMandiData) ([]byte, string, error) {
	start := time.Now()

	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetMargins(marginSide, marginSide, marginSide)
	doc.SetAutoPageBreak(true, marginSide)

	font := "Helvetica"
	if r.cfg.UrduFontFile != "" {
		font = "urdu"
		doc.AddUTF8Font(font, "", r.cfg.UrduFontFile)
	}
	doc.RTL()

	generated := r.now()
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(font, "", 8)
		doc.SetTextColor(141, 110, 99)
		footer := fmt.Sprintf("PakRiceMarket ایڈمن پینل کی طرف سے تیار کیا گیا — %s", generated.Format("02 January 2006"))
		doc.CellFormat(0, 5, footer, "", 0, "C", false, 0, "")
	})

	doc.AddPage()
	r.title(doc, font, data)
	for _, cat := range data.Categories {
		r.categoryTable(doc, font, cat)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		r.log.Error("pdf.render.failed", "market", data.Market, "date", data.Date, "error", err)
		return nil, "", fmt.Errorf("failed to generate PDF: %w", err)
	}

	filename := Filename(data.Date)
	r.log.Info("pdf.render.ok",
		"market", data.Market,
		"date", data.Date,
		"pages", doc.PageCount(),
		"bytes", buf.Len(),
		"filename", filename,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), filename, nil
}

func (r *Renderer) title(doc *fpdf.Fpdf, font string, data llm.ParsedMandiData) {
	doc.SetFont(font, "", 22)
	doc.SetTextColor(93, 64, 55)
	doc.CellFormat(contentW, 12, data.Market, "", 1, "C", false, 0, "")

	doc.SetFont(font, "", 16)
	doc.SetTextColor(141, 110, 99)
	doc.CellFormat(contentW, 10, "غلہ منڈی قیمت کی فہرست", "", 1, "C", false, 0, "")
	doc.Ln(4)

	doc.SetFont(font, "", 11)
	doc.CellFormat(contentW, 7, "منڈی: "+data.Market, "", 1, "R", false, 0, "")
	doc.CellFormat(contentW, 7, "تاریخ: "+data.Date, "", 1, "R", false, 0, "")
	if data.Source != "" {
		doc.CellFormat(contentW, 7, "ذریعہ: "+data.Source, "", 1, "R", false, 0, "")
	}

	doc.Ln(3)
	doc.SetDrawColor(255, 213, 161)
	doc.SetLineWidth(0.8)
	x, y := doc.GetXY()
	doc.Line(x, y, x+contentW, y)
	doc.Ln(5)
}

func (r *Renderer) categoryTable(doc *fpdf.Fpdf, font string, cat llm.MandiCategory) {
	doc.Ln(4)
	doc.SetFont(font, "", 13)
	doc.SetTextColor(93, 64, 55)
	heading := fmt.Sprintf("%s (%d اشیاء)", cat.Category, len(cat.Items))
	doc.CellFormat(contentW, 9, heading, "B", 1, "R", false, 0, "")
	doc.Ln(1)

	// header row
	doc.SetFont(font, "", 10)
	doc.SetFillColor(255, 213, 161)
	doc.SetDrawColor(224, 224, 224)
	doc.SetLineWidth(0.3)
	doc.CellFormat(colNameW, 8, "مصنوعات کا نام", "1", 0, "R", true, 0, "")
	doc.CellFormat(colPriceW, 8, "قیمت", "1", 0, "C", true, 0, "")
	doc.CellFormat(colUnitW, 8, "وزن", "1", 0, "C", true, 0, "")
	doc.CellFormat(colDetailsW, 8, "تفصیلات", "1", 1, "R", true, 0, "")

	for i, item := range cat.Items {
		if i%2 == 0 {
			doc.SetFillColor(255, 255, 255)
		} else {
			doc.SetFillColor(254, 252, 248)
		}
		doc.SetTextColor(93, 64, 55)
		doc.CellFormat(colNameW, 7, item.NameUrdu, "1", 0, "R", true, 0, "")
		doc.SetTextColor(139, 195, 74)
		doc.CellFormat(colPriceW, 7, RenderPriceCell(item), "1", 0, "C", true, 0, "")
		doc.SetTextColor(93, 64, 55)
		doc.CellFormat(colUnitW, 7, item.Unit, "1", 0, "C", true, 0, "")
		doc.SetTextColor(141, 110, 99)
		doc.CellFormat(colDetailsW, 7, RenderDetailsCell(item), "1", 1, "R", true, 0, "")
	}
}
