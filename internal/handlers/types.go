package handlers

import (
	"top-sales-tracker/internal/types"
	"top-sales-tracker/internal/view"
)

// HealthResponse reports liveness plus a few runtime counters
type HealthResponse struct {
	Status   string         `json:"status"`
	Sessions int            `json:"sessions"`
	Upstream *UpstreamStats `json:"upstream,omitempty"`
}

// UpstreamStats summarizes calls made to the top sales API
type UpstreamStats struct {
	Requests        int64  `json:"requests"`
	Errors          int64  `json:"errors"`
	AverageDuration string `json:"average_duration"`
	LastStatus      int    `json:"last_status"`
}

// OptionsResponse lists every selectable value with its label
type OptionsResponse struct {
	Networks   []view.Option   `json:"networks"`
	Timeframes []view.Option   `json:"timeframes"`
	ExcludeDex []view.Option   `json:"exclude_dex"`
	Defaults   types.Selection `json:"defaults"`
}

// SessionResponse is returned for every session operation that yields state
type SessionResponse struct {
	ID   string    `json:"id"`
	Page view.Page `json:"page"`
}

// UpdateSelectionRequest changes any subset of the selectors. Omitted fields keep their value.
type UpdateSelectionRequest struct {
	Network    *string `json:"network,omitempty" example:"eth-main"`
	Timeframe  *string `json:"timeframe,omitempty" example:"1_DAY"`
	ExcludeDex *bool   `json:"exclude_dex,omitempty" example:"true"`
}

// apply validates every provided field before producing the new selection
func (r UpdateSelectionRequest) apply(current types.Selection) (types.Selection, error) {
	next := current
	if r.Network != nil {
		network, err := types.ParseNetwork(*r.Network)
		if err != nil {
			return current, err
		}
		next.Network = network
	}
	if r.Timeframe != nil {
		timeframe, err := types.ParseTimeframe(*r.Timeframe)
		if err != nil {
			return current, err
		}
		next.Timeframe = timeframe
	}
	if r.ExcludeDex != nil {
		next.ExcludeDex = *r.ExcludeDex
	}
	return next, nil
}

// selectionFromStrings parses the string form used by query strings and HTML forms.
// Empty values fall back to base.
func selectionFromStrings(base types.Selection, network, timeframe, excludeDex string) (types.Selection, error) {
	next := base
	if network != "" {
		parsed, err := types.ParseNetwork(network)
		if err != nil {
			return base, err
		}
		next.Network = parsed
	}
	if timeframe != "" {
		parsed, err := types.ParseTimeframe(timeframe)
		if err != nil {
			return base, err
		}
		next.Timeframe = parsed
	}
	if excludeDex != "" {
		parsed, err := types.ParseExcludeDex(excludeDex)
		if err != nil {
			return base, err
		}
		next.ExcludeDex = parsed
	}
	return next, nil
}
