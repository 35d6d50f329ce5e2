package oned

import "github.com/mharwood/telepengo"

// RowDecoder is implemented by a single-format reader.
type RowDecoder interface {
	DecodeRow(image telepen.RowImage, opts *DecodeOptions) (*Result, error)
}

// TelepenReader adapts the core telepen decoder to the RowDecoder shape.
type TelepenReader struct{}

// NewTelepenReader returns a reader for Telepen Numeric symbols.
func NewTelepenReader() *TelepenReader { return &TelepenReader{} }

// DecodeRow runs the core decoder over image and reports ErrNotFound if it
// produced no checksum-valid, stop-terminated result.
func (r *TelepenReader) DecodeRow(image telepen.RowImage, opts *DecodeOptions) (*Result, error) {
	text, ok := telepen.Decode(image)
	if !ok {
		return nil, ErrNotFound
	}
	return &Result{Text: text, Format: FormatTelepen}, nil
}
