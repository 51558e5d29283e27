package handlers

import (
	"net/http"

	"top-sales-tracker/internal/services"
	"top-sales-tracker/internal/types"
	"top-sales-tracker/internal/view"

	"github.com/gin-gonic/gin"
)

// TopSalesHandler answers one-shot queries without keeping any session state
type TopSalesHandler struct {
	newController services.ControllerFactory
}

func NewTopSalesHandler(factory services.ControllerFactory) *TopSalesHandler {
	return &TopSalesHandler{newController: factory}
}

// GetTopSales godoc
// @Summary Top sales for a selection
// @Description Runs a single query and returns the settled page. Omitted parameters use the defaults.
// @Tags top-sales
// @Produce json
// @Param chain query string false "Network" Enums(eth-main, arbitrum-main, optimism-main, poly-main, bsc-main, eth-goerli)
// @Param timeframe query string false "Timeframe" Enums(1_DAY, 7_DAYS, 30_DAYS)
// @Param exclude_dex query string false "true or false"
// @Success 200 {object} view.Page
// @Failure 400 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /top-sales [get]
func (h *TopSalesHandler) GetTopSales(c *gin.Context) {
	selection, err := selectionFromStrings(types.DefaultSelection(),
		c.Query("chain"), c.Query("timeframe"), c.Query("exclude_dex"))
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	controller := h.newController()
	if err := controller.SetSelection(selection); err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	controller.TriggerQuery(c.Request.Context())
	sendSuccess(c, http.StatusOK, view.Build(controller.Snapshot()))
}
