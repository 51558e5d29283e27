package view

import (
	"top-sales-tracker/internal/constants"
	"top-sales-tracker/internal/services"
	"top-sales-tracker/internal/types"
)

// Status is what the page is currently showing
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusError   Status = "error"
	StatusResults Status = "results"
	StatusEmpty   Status = "empty"
)

// Title is the page heading
const Title = "Top Sales Tracker"

// Option is one entry of a selector
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Page is everything a client needs to draw the tracker
type Page struct {
	Status     Status          `json:"status"`
	Message    string          `json:"message,omitempty"`
	TopSale    string          `json:"top_sale,omitempty"`
	Rows       []types.SaleRow `json:"rows"`
	Selection  types.Selection `json:"selection"`
	Networks   []Option        `json:"networks"`
	Timeframes []Option        `json:"timeframes"`
	ExcludeDex []Option        `json:"exclude_dex"`
	Version    uint64          `json:"version"`
}

var normalizer = services.NewResultNormalizer()

// Build derives the page from a controller snapshot. It has no side effects.
func Build(snapshot services.Snapshot) Page {
	page := Page{
		Status:     StatusIdle,
		Rows:       []types.SaleRow{},
		Selection:  snapshot.Selection,
		Networks:   NetworkOptions(snapshot.Selection.Network),
		Timeframes: TimeframeOptions(snapshot.Selection.Timeframe),
		ExcludeDex: ExcludeDexOptions(snapshot.Selection.ExcludeDex),
		Version:    snapshot.Version,
	}

	outcome := snapshot.Outcome
	switch outcome.Kind() {
	case types.OutcomeLoading:
		page.Status = StatusLoading
		page.Message = constants.MessageLoading
	case types.OutcomeFailed:
		page.Status = StatusError
		page.Message = outcome.Message()
	case types.OutcomeSucceeded:
		records := outcome.Records()
		if top, ok := outcome.TopSale(); ok {
			page.Status = StatusResults
			page.TopSale = normalizer.Summary(top)
			page.Rows = normalizer.PresentAll(records)
		} else if snapshot.HasTriggered {
			page.Status = StatusEmpty
			page.Message = constants.MessageNoSalesData
		}
	}

	return page
}

// NetworkOptions lists every network, marking the selected one
func NetworkOptions(selected types.Network) []Option {
	options := make([]Option, 0, len(types.Networks))
	for _, network := range types.Networks {
		options = append(options, Option{
			Value:    network.String(),
			Label:    network.String(),
			Selected: network == selected,
		})
	}
	return options
}

// TimeframeOptions lists every timeframe, marking the selected one
func TimeframeOptions(selected types.Timeframe) []Option {
	options := make([]Option, 0, len(types.Timeframes))
	for _, timeframe := range types.Timeframes {
		options = append(options, Option{
			Value:    timeframe.String(),
			Label:    timeframe.Label(),
			Selected: timeframe == selected,
		})
	}
	return options
}

// ExcludeDexOptions lists both filter choices, marking the selected one
func ExcludeDexOptions(selected bool) []Option {
	options := make([]Option, 0, 2)
	for _, excludeDex := range []bool{false, true} {
		options = append(options, Option{
			Value:    types.FormatExcludeDex(excludeDex),
			Label:    types.ExcludeDexLabel(excludeDex),
			Selected: excludeDex == selected,
		})
	}
	return options
}
