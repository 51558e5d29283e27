package types

import (
	"strconv"

	"github.com/pkg/errors"
)

// Network identifies a chain supported by the top sales endpoint.
type Network string

const (
	NetworkEthMain      Network = "eth-main"
	NetworkArbitrumMain Network = "arbitrum-main"
	NetworkOptimismMain Network = "optimism-main"
	NetworkPolyMain     Network = "poly-main"
	NetworkBscMain      Network = "bsc-main"
	NetworkEthGoerli    Network = "eth-goerli"
)

// Networks lists the supported networks in display order.
var Networks = []Network{
	NetworkEthMain,
	NetworkArbitrumMain,
	NetworkOptimismMain,
	NetworkPolyMain,
	NetworkBscMain,
	NetworkEthGoerli,
}

// Valid reports whether n is one of the supported networks.
func (n Network) Valid() bool {
	for _, candidate := range Networks {
		if n == candidate {
			return true
		}
	}
	return false
}

func (n Network) String() string {
	return string(n)
}

// ParseNetwork converts a wire value into a Network.
func ParseNetwork(value string) (Network, error) {
	n := Network(value)
	if !n.Valid() {
		return "", errors.Wrapf(ErrInvalidSelection, "unsupported network %q", value)
	}
	return n, nil
}

// Timeframe is the look-back window for the top sales query.
type Timeframe string

const (
	TimeframeOneDay     Timeframe = "1_DAY"
	TimeframeSevenDays  Timeframe = "7_DAYS"
	TimeframeThirtyDays Timeframe = "30_DAYS"
)

// Timeframes lists the supported timeframes in display order.
var Timeframes = []Timeframe{
	TimeframeOneDay,
	TimeframeSevenDays,
	TimeframeThirtyDays,
}

var timeframeLabels = map[Timeframe]string{
	TimeframeOneDay:     "One Day",
	TimeframeSevenDays:  "Seven Days",
	TimeframeThirtyDays: "Thirty Days",
}

// Valid reports whether t is one of the supported timeframes.
func (t Timeframe) Valid() bool {
	_, ok := timeframeLabels[t]
	return ok
}

// Label returns the human readable name of the timeframe.
func (t Timeframe) Label() string {
	return timeframeLabels[t]
}

func (t Timeframe) String() string {
	return string(t)
}

// ParseTimeframe converts a wire value into a Timeframe.
func ParseTimeframe(value string) (Timeframe, error) {
	t := Timeframe(value)
	if !t.Valid() {
		return "", errors.Wrapf(ErrInvalidSelection, "unsupported timeframe %q", value)
	}
	return t, nil
}

// ParseExcludeDex accepts only the literal strings "true" and "false".
func ParseExcludeDex(value string) (bool, error) {
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Wrapf(ErrInvalidSelection, "unsupported exclude_dex value %q", value)
}

// FormatExcludeDex is the inverse of ParseExcludeDex.
func FormatExcludeDex(excludeDex bool) string {
	return strconv.FormatBool(excludeDex)
}

// ExcludeDexLabel returns the selector label for the exclusion flag.
func ExcludeDexLabel(excludeDex bool) string {
	if excludeDex {
		return "Exclude DEX Contracts"
	}
	return "Include DEX Contracts"
}

// Selection is the user's current choice of network, timeframe and DEX filter.
type Selection struct {
	Network    Network   `json:"network"`
	Timeframe  Timeframe `json:"timeframe"`
	ExcludeDex bool      `json:"exclude_dex"`
}

// DefaultSelection returns the selection a new session starts with.
func DefaultSelection() Selection {
	return Selection{
		Network:    NetworkEthMain,
		Timeframe:  TimeframeOneDay,
		ExcludeDex: true,
	}
}

// Validate checks every field against its option set.
func (s Selection) Validate() error {
	if !s.Network.Valid() {
		return errors.Wrapf(ErrInvalidSelection, "unsupported network %q", s.Network)
	}
	if !s.Timeframe.Valid() {
		return errors.Wrapf(ErrInvalidSelection, "unsupported timeframe %q", s.Timeframe)
	}
	return nil
}
