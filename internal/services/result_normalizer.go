package services

import (
	"fmt"

	"top-sales-tracker/internal/constants"
	"top-sales-tracker/internal/types"

	"github.com/shopspring/decimal"
)

// pricePrecision is the number of decimals shown for USD and native prices.
const pricePrecision = 2

// ResultNormalizer turns raw remote records into SaleRecords and SaleRecords into display rows.
// Normalization keeps missing values missing; the N/A sentinel only exists in presentation.
type ResultNormalizer struct{}

func NewResultNormalizer() *ResultNormalizer {
	return &ResultNormalizer{}
}

// Normalize converts one raw record. It never changes values or drops fields.
func (n *ResultNormalizer) Normalize(raw types.RawSale) types.SaleRecord {
	return types.SaleRecord{
		TransferKind:        derefString(raw.TransferType),
		PriceUSD:            raw.PriceUSD,
		PriceNative:         raw.PriceNative,
		PriceCurrencySymbol: derefString(raw.PriceCurrency),
		ContractAddress:     copyString(raw.ContractAddress),
		TokenID:             copyString(raw.ID),
		BlockTimestamp:      copyString(raw.BlockTimestamp),
	}
}

// NormalizeAll converts records in order. The result is never nil.
func (n *ResultNormalizer) NormalizeAll(raws []types.RawSale) []types.SaleRecord {
	records := make([]types.SaleRecord, 0, len(raws))
	for _, raw := range raws {
		records = append(records, n.Normalize(raw))
	}
	return records
}

// Denormalize is the inverse of Normalize: Normalize(Denormalize(r)) == r.
func (n *ResultNormalizer) Denormalize(record types.SaleRecord) types.RawSale {
	return types.RawSale{
		TransferType:    stringOrNil(record.TransferKind),
		PriceUSD:        record.PriceUSD,
		PriceNative:     record.PriceNative,
		PriceCurrency:   stringOrNil(record.PriceCurrencySymbol),
		ContractAddress: copyString(record.ContractAddress),
		ID:              copyString(record.TokenID),
		BlockTimestamp:  copyString(record.BlockTimestamp),
	}
}

// Present renders a record for display. rank is zero based; the row number is rank+1.
func (n *ResultNormalizer) Present(record types.SaleRecord, rank int) types.SaleRow {
	return types.SaleRow{
		Number:          rank + 1,
		TransferKind:    orNotAvailable(record.TransferKind),
		PriceUSD:        FormatPrice(record.PriceUSD),
		PriceNative:     FormatPrice(record.PriceNative),
		PriceCurrency:   orNotAvailable(record.PriceCurrencySymbol),
		ContractAddress: optionalOrNotAvailable(record.ContractAddress),
		TokenID:         optionalOrNotAvailable(record.TokenID),
		BlockTimestamp:  optionalOrNotAvailable(record.BlockTimestamp),
	}
}

// PresentAll renders records in the order given.
func (n *ResultNormalizer) PresentAll(records []types.SaleRecord) []types.SaleRow {
	rows := make([]types.SaleRow, 0, len(records))
	for i, record := range records {
		rows = append(rows, n.Present(record, i))
	}
	return rows
}

// Summary is the one line description of the top sale, e.g. "sale for $1234.50 (0.50 ETH)".
func (n *ResultNormalizer) Summary(record types.SaleRecord) string {
	row := n.Present(record, 0)
	return fmt.Sprintf("%s for $%s (%s %s)", row.TransferKind, row.PriceUSD, row.PriceNative, row.PriceCurrency)
}

// FormatPrice renders a price with two decimals, or N/A when the price is missing.
func FormatPrice(price decimal.NullDecimal) string {
	if !price.Valid {
		return constants.NotAvailable
	}
	return price.Decimal.StringFixed(pricePrecision)
}

func orNotAvailable(value string) string {
	if value == "" {
		return constants.NotAvailable
	}
	return value
}

func optionalOrNotAvailable(value *string) string {
	if value == nil {
		return constants.NotAvailable
	}
	return *value
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func stringOrNil(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
