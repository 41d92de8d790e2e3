package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/reports"
)

// Export turns a report the client already holds into a downloadable PDF.
type Export struct {
	gen *reports.Generator
	log *logrus.Logger
}

func NewExport(gen *reports.Generator, log *logrus.Logger) *Export {
	return &Export{gen: gen, log: log}
}

func (e *Export) send(c *gin.Context, filename string, pdf []byte, err error) {
	if err != nil {
		e.log.Errorf("pdf export failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Export failed"})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (e *Export) Solo(c *gin.Context) {
	var report analytics.SoloReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report payload"})
		return
	}
	pdf, err := e.gen.Solo(&report)
	e.send(c, "channel-analysis.pdf", pdf, err)
}

func (e *Export) Battle(c *gin.Context) {
	var report analytics.BattleReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report payload"})
		return
	}
	if err := report.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pdf, err := e.gen.Battle(&report)
	e.send(c, "channel-battle.pdf", pdf, err)
}

func (e *Export) Truth(c *gin.Context) {
	var report analytics.TruthReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report payload"})
		return
	}
	pdf, err := e.gen.Truth(&report)
	e.send(c, "truth-analysis.pdf", pdf, err)
}
