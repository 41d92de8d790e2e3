package webserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/tubetale/tubetale/src/analytics"
	"github.com/tubetale/tubetale/src/present"
	"github.com/tubetale/tubetale/src/ui"
	"github.com/tubetale/tubetale/src/web/data"
)

// Handler owns the submission lifecycle for the three analysis operations:
// validate, enter loading, call the analytics service, and dispatch the
// result to the presenter, all under the controller's generation guard.
type Handler struct {
	client    *analytics.Client
	ctrl      *ui.Controller
	presenter *present.Presenter
	cache     *data.ReportCache
	log       *logrus.Logger
}

func NewHandler(deps Deps) *Handler {
	return &Handler{
		client:    deps.Client,
		ctrl:      deps.Controller,
		presenter: deps.Presenter,
		cache:     deps.Cache,
		log:       deps.Log,
	}
}

func (h *Handler) respond(c *gin.Context, report any, view present.View) {
	c.JSON(http.StatusOK, gin.H{
		"report": report,
		"view":   view,
		"state":  h.ctrl.State(),
	})
}

func (h *Handler) fail(c *gin.Context, form ui.Form, gen uint64, err error, fallback string) {
	msg := analytics.Message(err, fallback)
	h.ctrl.Fail(form, gen, msg)
	h.log.Warnf("%s submission failed: %s", form, msg)

	status := http.StatusBadGateway
	if apiErr, ok := err.(*analytics.APIError); ok && apiErr.Status >= 400 && apiErr.Status < 500 {
		status = apiErr.Status
	}
	c.JSON(status, gin.H{"error": msg})
}

// superseded answers a completion whose generation no longer matches: a reset
// or resubmission won the race, so this result must not be applied.
func superseded(c *gin.Context) {
	c.JSON(http.StatusConflict, gin.H{"error": "submission superseded"})
}

func (h *Handler) AnalyzeChannel(c *gin.Context) {
	var req struct {
		ChannelName string `json:"channelName"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := ui.ValidateSolo(req.ChannelName); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.ctrl.Show(ui.FormSolo)
	gen := h.ctrl.Begin(ui.FormSolo)
	ctx := c.Request.Context()

	report, cached := h.cache.GetSolo(ctx, req.ChannelName)
	if !cached {
		var err error
		report, err = h.client.AnalyzeChannel(ctx, req.ChannelName)
		if err != nil {
			h.fail(c, ui.FormSolo, gen, err, analytics.DefaultSoloError)
			return
		}
		h.cache.SetSolo(ctx, req.ChannelName, report)
	} else {
		h.log.Debugf("cache hit for channel %q", req.ChannelName)
	}

	if !h.ctrl.Succeed(ui.FormSolo, gen) {
		superseded(c)
		return
	}
	view := h.presenter.Solo(report)
	h.ctrl.Surface().SetContent(ui.RegionResults, view)
	h.respond(c, report, view)
}

func (h *Handler) RunBattle(c *gin.Context) {
	var req struct {
		Channels []string `json:"channels"`
	}
	_ = c.ShouldBindJSON(&req)

	channels, err := ui.ValidateBattle(req.Channels)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.ctrl.Show(ui.FormBattle)
	gen := h.ctrl.Begin(ui.FormBattle)

	report, err := h.client.RunBattle(c.Request.Context(), channels)
	if err != nil {
		h.fail(c, ui.FormBattle, gen, err, analytics.DefaultBattleError)
		return
	}

	if !h.ctrl.Succeed(ui.FormBattle, gen) {
		superseded(c)
		return
	}
	view := h.presenter.Battle(report)
	h.ctrl.Surface().SetContent(ui.RegionResults, view)
	h.respond(c, report, view)
}

func (h *Handler) AnalyzeTruth(c *gin.Context) {
	var req struct {
		VideoInput string `json:"videoInput"`
	}
	_ = c.ShouldBindJSON(&req)

	if err := ui.ValidateTruth(req.VideoInput); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.ctrl.Show(ui.FormTruth)
	gen := h.ctrl.Begin(ui.FormTruth)

	report, err := h.client.AnalyzeTruth(c.Request.Context(), req.VideoInput)
	if err != nil {
		h.fail(c, ui.FormTruth, gen, err, analytics.DefaultTruthError)
		return
	}

	if !h.ctrl.Succeed(ui.FormTruth, gen) {
		superseded(c)
		return
	}
	view := h.presenter.Truth(report)
	h.ctrl.Surface().SetContent(ui.RegionResults, view)
	h.respond(c, report, view)
}

// Reset clears results and errors, hides all forms and disposes every
// mounted chart. Safe to call at any time.
func (h *Handler) Reset(c *gin.Context) {
	h.ctrl.Reset()
	h.presenter.Charts().Clear()
	c.JSON(http.StatusOK, gin.H{"state": h.ctrl.State()})
}

// State exposes the UI state struct for the thin client shell.
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state":        h.ctrl.State(),
		"scrollTarget": h.ctrl.Surface().ScrollTarget(),
	})
}
