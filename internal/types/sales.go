package types

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// RawSale is one entry of the top sales response as it appears on the wire.
// Every field may be null or absent.
type RawSale struct {
	TransferType    *string             `json:"transfer_type"`
	PriceUSD        decimal.NullDecimal `json:"price_usd"`
	PriceNative     decimal.NullDecimal `json:"price_native"`
	PriceCurrency   *string             `json:"price_currency"`
	ContractAddress *string             `json:"contract_address"`
	ID              *string             `json:"id"`
	BlockTimestamp  *string             `json:"block_timestamp"`
}

// UnmarshalJSON decodes one record field by field. A field of the wrong shape is
// treated as missing so a single bad value never sinks the whole response.
// Strings also accept JSON numbers; prices accept strings or numbers, and an
// empty or unparseable price is missing.
func (r *RawSale) UnmarshalJSON(data []byte) error {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*r = RawSale{
		TransferType:    looseString(wire["transfer_type"]),
		PriceUSD:        looseDecimal(wire["price_usd"]),
		PriceNative:     looseDecimal(wire["price_native"]),
		PriceCurrency:   looseString(wire["price_currency"]),
		ContractAddress: looseString(wire["contract_address"]),
		ID:              looseString(wire["id"]),
		BlockTimestamp:  looseString(wire["block_timestamp"]),
	}
	return nil
}

func looseString(raw json.RawMessage) *string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		s = n.String()
		return &s
	}
	return nil
}

func looseDecimal(raw json.RawMessage) decimal.NullDecimal {
	text := looseString(raw)
	if text == nil {
		return decimal.NullDecimal{}
	}

	d, err := decimal.NewFromString(*text)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// TopSalesResponse is the body of a successful top sales query.
type TopSalesResponse struct {
	Results []RawSale `json:"results"`
}

// SaleRecord is a normalized sale. Missing values stay missing: an empty
// TransferKind or PriceCurrencySymbol, an invalid NullDecimal or a nil pointer.
type SaleRecord struct {
	TransferKind        string              `json:"transfer_kind"`
	PriceUSD            decimal.NullDecimal `json:"price_usd"`
	PriceNative         decimal.NullDecimal `json:"price_native"`
	PriceCurrencySymbol string              `json:"price_currency_symbol"`
	ContractAddress     *string             `json:"contract_address"`
	TokenID             *string             `json:"token_id"`
	BlockTimestamp      *string             `json:"block_timestamp"`
}

// SaleRow is the presentation form of a SaleRecord. Every field is display ready.
type SaleRow struct {
	Number          int    `json:"number"`
	TransferKind    string `json:"transfer_kind"`
	PriceUSD        string `json:"price_usd"`
	PriceNative     string `json:"price_native"`
	PriceCurrency   string `json:"price_currency"`
	ContractAddress string `json:"contract_address"`
	TokenID         string `json:"token_id"`
	BlockTimestamp  string `json:"block_timestamp"`
}

// TopSalesQuery is the outbound request built from a Selection.
type TopSalesQuery struct {
	Chain             Network
	Timeframe         Timeframe
	ExcludeDex        bool
	IncludeNFTDetails bool
}

// NewTopSalesQuery builds the query for a selection. NFT details are always requested.
func NewTopSalesQuery(selection Selection) TopSalesQuery {
	return TopSalesQuery{
		Chain:             selection.Network,
		Timeframe:         selection.Timeframe,
		ExcludeDex:        selection.ExcludeDex,
		IncludeNFTDetails: true,
	}
}
