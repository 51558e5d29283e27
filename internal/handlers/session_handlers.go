package handlers

import (
	"context"
	"net/http"
	"strconv"

	"top-sales-tracker/internal/middleware"
	"top-sales-tracker/internal/services"
	"top-sales-tracker/internal/types"
	"top-sales-tracker/internal/view"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHandler exposes one SalesQueryController per UI session
type SessionHandler struct {
	registry *services.SessionRegistry
}

func NewSessionHandler(registry *services.SessionRegistry) *SessionHandler {
	return &SessionHandler{registry: registry}
}

func sessionResponse(id uuid.UUID, snapshot services.Snapshot) SessionResponse {
	return SessionResponse{
		ID:   id.String(),
		Page: view.Build(snapshot),
	}
}

// GetOptions godoc
// @Summary List selectable values
// @Description Networks, timeframes and DEX filter choices with their labels
// @Tags sessions
// @Produce json
// @Success 200 {object} OptionsResponse
// @Router /options [get]
func (h *SessionHandler) GetOptions(c *gin.Context) {
	defaults := types.DefaultSelection()
	sendSuccess(c, http.StatusOK, OptionsResponse{
		Networks:   view.NetworkOptions(defaults.Network),
		Timeframes: view.TimeframeOptions(defaults.Timeframe),
		ExcludeDex: view.ExcludeDexOptions(defaults.ExcludeDex),
		Defaults:   defaults,
	})
}

// CreateSession godoc
// @Summary Create a session
// @Description Starts a session with the default selection and no query issued
// @Tags sessions
// @Produce json
// @Success 201 {object} SessionResponse
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	id, controller := h.registry.Create()
	middleware.LogWithCorrelationID(c.Request.Context()).Info("Session created", zap.String("session_id", id.String()))
	sendSuccess(c, http.StatusCreated, sessionResponse(id, controller.Snapshot()))
}

// GetSession godoc
// @Summary Get session state
// @Description Returns the page model for the session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, controller, ok := lookupSession(c, h.registry)
	if !ok {
		return
	}
	sendSuccess(c, http.StatusOK, sessionResponse(id, controller.Snapshot()))
}

// ViewSession godoc
// @Summary Render the tracker page
// @Tags sessions
// @Produce html
// @Param id path string true "Session ID"
// @Success 200 {string} string "HTML page"
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/view [get]
func (h *SessionHandler) ViewSession(c *gin.Context) {
	_, controller, ok := lookupSession(c, h.registry)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, view.TemplateName, view.NewDocument(view.Build(controller.Snapshot()), c.Request.URL.Path))
}

// SubmitView godoc
// @Summary Submit the tracker form
// @Description Applies the three selectors and runs a query, then redirects back to the page
// @Tags sessions
// @Accept x-www-form-urlencoded
// @Param id path string true "Session ID"
// @Param network formData string false "Network"
// @Param timeframe formData string false "Timeframe"
// @Param exclude_dex formData string false "true or false"
// @Success 303
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/view [post]
func (h *SessionHandler) SubmitView(c *gin.Context) {
	_, controller, ok := lookupSession(c, h.registry)
	if !ok {
		return
	}

	network, timeframe, excludeDex := c.PostForm("network"), c.PostForm("timeframe"), c.PostForm("exclude_dex")
	err := controller.UpdateSelection(func(current types.Selection) (types.Selection, error) {
		return selectionFromStrings(current, network, timeframe, excludeDex)
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	controller.TriggerQuery(c.Request.Context())
	c.Redirect(http.StatusSeeOther, c.Request.URL.Path)
}

// UpdateSelection godoc
// @Summary Change the selection
// @Description Updates any of network, timeframe and exclude_dex. Never issues a query.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param selection body UpdateSelectionRequest true "Selection changes"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id}/selection [put]
func (h *SessionHandler) UpdateSelection(c *gin.Context) {
	id, controller, ok := lookupSession(c, h.registry)
	if !ok {
		return
	}

	var req UpdateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := controller.UpdateSelection(req.apply); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	sendSuccess(c, http.StatusOK, sessionResponse(id, controller.Snapshot()))
}

// TriggerQuery godoc
// @Summary Find top sales
// @Description Runs one query for the current selection. Without wait the response carries the loading page and the result arrives on the stream.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Param wait query bool false "Block until the query settles"
// @Success 200 {object} SessionResponse
// @Success 202 {object} SessionResponse
// @Failure 404 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /sessions/{id}/query [post]
func (h *SessionHandler) TriggerQuery(c *gin.Context) {
	id, controller, ok := lookupSession(c, h.registry)
	if !ok {
		return
	}

	wait, _ := strconv.ParseBool(c.DefaultQuery("wait", "false"))
	if wait {
		controller.TriggerQuery(c.Request.Context())
		sendSuccess(c, http.StatusOK, sessionResponse(id, controller.Snapshot()))
		return
	}

	// Detached from the request so the query outlives the 202
	ctx := middleware.WithCorrelationID(context.Background(), middleware.GetCorrelationID(c))
	snapshot, _ := controller.StartQuery(ctx)
	sendSuccess(c, http.StatusAccepted, sessionResponse(id, snapshot))
}

// DeleteSession godoc
// @Summary Delete a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid session ID format", err)
		return
	}
	if !h.registry.Delete(id) {
		sendError(c, http.StatusNotFound, "Session not found", nil)
		return
	}
	sendSuccessMessage(c, http.StatusOK, "Session deleted")
}
