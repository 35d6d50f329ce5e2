package oned

import "github.com/mharwood/telepengo"

// readerFactory builds a RowDecoder for the given options.
type readerFactory func(opts *DecodeOptions) RowDecoder

var registry = map[Format]readerFactory{}

// RegisterReader associates a factory with a format. This is the teacher's
// extension point, carried over unchanged in shape: a new symbology plugs in
// by calling RegisterReader from its own init, without this package needing
// to know about it ahead of time.
func RegisterReader(format Format, factory readerFactory) {
	registry[format] = factory
}

func init() {
	RegisterReader(FormatTelepen, func(opts *DecodeOptions) RowDecoder {
		return NewTelepenReader()
	})
}

// MultiFormatReader tries every registered format's reader in sequence.
type MultiFormatReader struct {
	readers []RowDecoder
}

// NewMultiFormatReader builds a reader for every format currently in the
// registry, each configured with the same opts.
func NewMultiFormatReader(opts *DecodeOptions) *MultiFormatReader {
	readers := make([]RowDecoder, 0, len(registry))
	for _, factory := range registry {
		readers = append(readers, factory(opts))
	}
	return &MultiFormatReader{readers: readers}
}

// DecodeRow tries each registered reader in turn, returning the first
// success.
func (r *MultiFormatReader) DecodeRow(image telepen.RowImage, opts *DecodeOptions) (*Result, error) {
	for _, reader := range r.readers {
		if result, err := reader.DecodeRow(image, opts); err == nil {
			return result, nil
		}
	}
	return nil, ErrNotFound
}
