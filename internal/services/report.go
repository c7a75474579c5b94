package services

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"scet/student-analytics/internal/models"
)

// ErrEmptyReport is returned when report generation is requested before
// any analysis has stored a record.
var ErrEmptyReport = errors.New("no analysis data found")

const (
	pageWidth  = 210.0
	pageHeight = 297.0
	marginX    = 12.0
	topY       = 20.0

	// sectionBreakY: a new section must not start below this line.
	// lineBreakY: a flowed text line must not be drawn below this line.
	sectionBreakY = 247.0
	lineBreakY    = 272.0

	summaryWrapBudget        = 95
	policyWrapBudget         = 100
	recommendationWrapBudget = 90
)

// Creation and modification dates are pinned so that composing the same
// store twice yields byte-identical output.
var reportEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

var sectionTitles = map[models.Category]string{
	models.CategoryDropout:   "Dropout Risk Analysis",
	models.CategoryPlacement: "Placement Readiness",
	models.CategoryExam:      "Exam Performance Forecast",
}

type ReportService interface {
	Compose(studentName, studentID string, store *models.ReportStore) ([]byte, error)
}

type reportService struct {
	institution string
}

func NewReportService(institution string) ReportService {
	return &reportService{
		institution: institution,
	}
}

// Compose renders every stored category into a single paginated PDF.
// Categories render in canonical order (dropout, placement, exam), not
// analysis order; categories without data are skipped. The document is
// a pure function of the store contents and the identity strings.
func (r *reportService) Compose(studentName, studentID string, store *models.ReportStore) ([]byte, error) {
	if store == nil || store.IsEmpty() {
		return nil, ErrEmptyReport
	}
	records := store.Records()

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(reportEpoch)
	pdf.SetModificationDate(reportEpoch)
	pdf.AddPage()

	doc := &composer{pdf: pdf, y: topY}
	doc.header(r.institution)
	doc.identityBox(studentName, studentID)

	for _, category := range models.Categories() {
		record, ok := records[category]
		if !ok {
			continue
		}
		doc.section(sectionTitles[category], record)
	}

	doc.footer(r.institution)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render report: %w", err)
	}
	return buf.Bytes(), nil
}

// composer tracks the vertical cursor across draw operations and page
// breaks.
type composer struct {
	pdf *fpdf.Fpdf
	y   float64
}

func (c *composer) header(institution string) {
	c.pdf.SetFillColor(15, 23, 42)
	c.pdf.Rect(0, 10, pageWidth, 18, "F")
	c.pdf.SetTextColor(255, 255, 255)
	c.pdf.SetFont("Helvetica", "B", 15)
	c.pdf.Text(marginX+2, 17.5, institution)
	c.pdf.SetFont("Helvetica", "", 10)
	c.pdf.Text(marginX+2, 24.5, "Student Performance & Retention Analytics Report")
	c.y = 36
}

func (c *composer) identityBox(studentName, studentID string) {
	c.pdf.SetFillColor(243, 244, 255)
	c.pdf.RoundedRect(marginX, c.y, pageWidth-2*marginX, 18, 3, "1234", "F")
	c.pdf.SetTextColor(17, 24, 39)
	c.pdf.SetFont("Helvetica", "B", 11)
	c.pdf.Text(marginX+6, c.y+11, "Student Name: "+studentName)
	if studentID != "" {
		c.pdf.Text(marginX+100, c.y+11, "Roll No / ID: "+studentID)
	}
	c.y += 26
}

func (c *composer) section(title string, record models.AssessmentRecord) {
	if c.y > sectionBreakY {
		c.breakPage()
	}

	c.pdf.SetFillColor(29, 78, 216)
	c.pdf.RoundedRect(marginX, c.y, pageWidth-2*marginX, 9, 2.5, "1234", "F")
	c.pdf.SetTextColor(255, 255, 255)
	c.pdf.SetFont("Helvetica", "B", 11)
	c.pdf.Text(marginX+4, c.y+6, title)
	c.y += 13

	c.pdf.SetFont("Helvetica", "", 10)
	c.setSeverityColor(ClassifyTier(record.TierLabel))
	c.textLine(marginX+4, "Level / Tier: "+record.TierLabel, 5.5)
	c.pdf.SetTextColor(17, 24, 39)
	if record.PredictedScore != nil {
		score := strconv.FormatFloat(*record.PredictedScore, 'f', -1, 64)
		c.textLine(marginX+4, "Score / Prediction: "+score, 5.5)
	}

	if record.Summary != "" {
		c.pdf.SetFont("Helvetica", "I", 9)
		c.pdf.SetTextColor(55, 65, 81)
		for _, line := range wrapText(record.Summary, summaryWrapBudget) {
			c.textLine(marginX+8, line, 4.5)
		}
	}

	if policy := AttendancePolicyFor(record.Category, record.Profile); policy != nil {
		c.y += 1.5
		c.pdf.SetFont("Helvetica", "", 9)
		c.pdf.SetTextColor(17, 24, 39)
		c.textLine(marginX+8, "Attendance Eligibility: "+policy.Label, 4.2)
		for _, line := range wrapText(policy.Message, policyWrapBudget) {
			c.textLine(marginX+8, line, 4.2)
		}
	}

	if len(record.Recommendations) > 0 {
		c.y += 2.5
		c.pdf.SetFont("Helvetica", "B", 10)
		c.pdf.SetTextColor(17, 24, 39)
		c.textLine(marginX+4, "Recommendations:", 5)
		c.pdf.SetFont("Helvetica", "", 9)
		for _, rec := range record.Recommendations {
			for _, line := range wrapText(rec, recommendationWrapBudget) {
				c.textLine(marginX+8, "- "+line, 4.2)
			}
		}
	}

	c.y += 7
}

func (c *composer) footer(institution string) {
	c.pdf.SetFont("Helvetica", "I", 8)
	c.pdf.SetTextColor(107, 114, 128)
	c.pdf.Text(marginX+2, pageHeight-14,
		fmt.Sprintf("Generated using the %s Student Analytics Dashboard.", institution))
}

// textLine draws one flowed line at the cursor, breaking the page first
// when the cursor has run past the threshold. Wrapped lists may break
// mid-list this way.
func (c *composer) textLine(x float64, text string, advance float64) {
	if c.y > lineBreakY {
		c.breakPage()
	}
	c.pdf.Text(x, c.y, text)
	c.y += advance
}

func (c *composer) breakPage() {
	c.pdf.AddPage()
	c.y = topY
}

func (c *composer) setSeverityColor(severity Severity) {
	switch severity {
	case SeverityBlocked:
		c.pdf.SetTextColor(185, 28, 28)
	case SeverityCaution:
		c.pdf.SetTextColor(180, 83, 9)
	default:
		c.pdf.SetTextColor(21, 128, 61)
	}
}

// wrapText splits text on whitespace and greedily packs tokens into
// lines of at most budget characters, counting separating spaces. A
// single token longer than the budget gets its own line, unsplit.
func wrapText(text string, budget int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) <= budget {
			line += " " + word
		} else {
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
