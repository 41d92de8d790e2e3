package reports

import (
	"bytes"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/charts"
	"github.com/tubetale/tubetale/src/stats"
)

// Generator exports reports as PDF documents, drawing the same chart specs
// the web view mounts.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// sanitizeTextForPDF converts UTF-8 punctuation the core fonts lack into
// ASCII equivalents.
func sanitizeTextForPDF(text string) string {
	if text == "" {
		return text
	}

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch r {
		case '–':
			result.WriteString("-")
		case '—':
			result.WriteString("--")
		case '‘', '’':
			result.WriteString("'")
		case '“', '”':
			result.WriteString("\"")
		case '…':
			result.WriteString("...")
		case ' ':
			result.WriteString(" ")
		case '​', '‌', '‍', '\uFEFF':
			continue
		default:
			if r < 128 {
				result.WriteRune(r)
			} else if unicode.IsSpace(r) {
				result.WriteString(" ")
			} else {
				result.WriteString("?")
			}
		}
	}
	return result.String()
}

func (g *Generator) newPDF(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)
	pdf.SetHeaderFunc(func() {
		pdf.SetFont("Arial", "B", 14)
		pdf.SetTextColor(99, 102, 241)
		pdf.CellFormat(0, 10, "TubeTale Analytics", "", 0, "C", false, 0, "")
		pdf.Ln(12)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Arial", "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Generated %s - Page %d",
			time.Now().Format("January 2, 2006"), pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 15, sanitizeTextForPDF(title), "", 0, "L", false, 0, "")
	pdf.Ln(18)
	return pdf
}

func (g *Generator) sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 13)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, title, "", 0, "L", false, 0, "")
	pdf.Ln(10)
}

func (g *Generator) bodyText(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(0, 6, sanitizeTextForPDF(text), "", "", false)
	pdf.Ln(4)
}

func (g *Generator) labeledLine(pdf *gofpdf.Fpdf, label, value string) {
	pdf.SetFont("Arial", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(45, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.MultiCell(0, 7, sanitizeTextForPDF(value), "", "", false)
}

func (g *Generator) output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Solo renders a channel analysis report.
func (g *Generator) Solo(r *analytics.SoloReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report is nil")
	}
	pdf := g.newPDF(fmt.Sprintf("Channel Analysis: %s", r.ChannelName))

	g.labeledLine(pdf, "Country", r.Stats.Country)
	g.labeledLine(pdf, "Subscribers", r.Stats.Subscribers)
	g.labeledLine(pdf, "Videos", r.Stats.TotalVideos)
	g.labeledLine(pdf, "Shorts", r.Stats.ShortsCount)
	pdf.Ln(6)

	points := stats.CleanGrowth(r.GrowthTimeline)
	if len(points) > 1 {
		g.sectionTitle(pdf, "Growth Timeline")
		series := make([]charts.GrowthPoint, len(points))
		for i, pt := range points {
			series[i] = charts.GrowthPoint{Label: fmt.Sprint(pt.Year), Subscribers: pt.Subscribers, Videos: pt.Videos}
		}
		g.drawLineChart(pdf, charts.Growth(series))

		if gs := stats.ComputeGrowth(points); gs.Trend != stats.TrendInsufficientData {
			g.bodyText(pdf, fmt.Sprintf("Average growth: %+.2f%% subscribers/yr, %+.2f%% videos/yr (%s).",
				gs.AvgSubscriberGrowth, gs.AvgVideoGrowth, gs.Trend))
		}
	}

	if len(r.TopicAnalysis.TopicDistribution) > 0 {
		g.sectionTitle(pdf, "Topics")
		g.drawProportionBars(pdf, stats.NormalizeTopics(r.TopicAnalysis.TopicDistribution))
	}

	g.sectionTitle(pdf, "Biography")
	g.bodyText(pdf, r.Biography.Summary)
	g.bodyText(pdf, r.Biography.Origin)
	g.bodyText(pdf, r.Biography.Evolution)

	g.sectionTitle(pdf, fmt.Sprintf("Recommendation: %s", sanitizeTextForPDF(r.Recommendation.Status)))
	g.bodyText(pdf, r.Recommendation.Reason)

	if len(r.Sources) > 0 {
		g.sectionTitle(pdf, "Sources")
		for _, s := range r.Sources {
			g.labeledLine(pdf, sanitizeTextForPDF(s.Title), s.URI)
		}
	}

	return g.output(pdf)
}

// Battle renders a comparison report.
func (g *Generator) Battle(r *analytics.BattleReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report is nil")
	}
	pdf := g.newPDF("Channel Battle")

	g.sectionTitle(pdf, fmt.Sprintf("Winner: %s", sanitizeTextForPDF(r.Verdict.Winner)))
	g.bodyText(pdf, r.Verdict.Reasoning)

	g.drawComparisonBars(pdf, r.Scores, r.Verdict.Winner)

	if bs := stats.ComputeBattle(r.Scores); bs != nil {
		g.bodyText(pdf, fmt.Sprintf("Mean score %.1f, spread %.1f, winning gap %.1f.",
			bs.MeanScore, bs.ScoreRange, bs.ScoreDifference))
	}

	g.sectionTitle(pdf, "The Story")
	g.bodyText(pdf, r.Verdict.Narrative)

	return g.output(pdf)
}

// Truth renders a fact-check report.
func (g *Generator) Truth(r *analytics.TruthReport) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("report is nil")
	}
	pdf := g.newPDF("Truth Analysis")

	g.labeledLine(pdf, "Video", r.VideoTitle)
	g.labeledLine(pdf, "Creator", r.CreatorName)
	g.labeledLine(pdf, "Language", r.Language)
	g.labeledLine(pdf, "Tone", r.ToneAnalysis)
	pdf.Ln(4)

	g.drawScoreBadge(pdf, r.TruthScore)
	ci := stats.Confidence(float64(r.TruthScore), 100, 0.95)
	g.bodyText(pdf, fmt.Sprintf("95%% confidence interval: %.1f-%.1f.", ci.LowerBound, ci.UpperBound))

	g.sectionTitle(pdf, "Verdict")
	g.bodyText(pdf, r.SummaryVerdict)

	if len(r.Claims) > 0 {
		g.sectionTitle(pdf, "Claims")
		for _, claim := range r.Claims {
			g.drawClaim(pdf, claim)
		}
	}

	if len(r.References) > 0 {
		g.sectionTitle(pdf, "References")
		for _, s := range r.References {
			g.labeledLine(pdf, sanitizeTextForPDF(s.Title), s.URI)
		}
	}

	return g.output(pdf)
}
