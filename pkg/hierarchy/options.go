package hierarchy

import (
	"github.com/google/uuid"

	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/model"
	"github.com/SHRUTI-SHAR/DocFlow-sub000/pkg/naming"
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	typeAnnotations bool
}

func defaultEncodeOptions() encodeOptions {
	return encodeOptions{typeAnnotations: true}
}

// WithTypeAnnotations toggles the `{"_type": ...}` encoding of non-text,
// required or option-bearing fields. When disabled every non-table field is
// encoded as null and only the field name survives.
func WithTypeAnnotations(enabled bool) EncodeOption {
	return func(o *encodeOptions) {
		o.typeAnnotations = enabled
	}
}

// DecodeOption configures Decode and DecodeFlat.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	sections []model.Section
	newID    func() string
	sanitize func(string) string
}

func defaultDecodeOptions() decodeOptions {
	return decodeOptions{
		newID:    uuid.NewString,
		sanitize: naming.SanitizeLabel,
	}
}

func newDecodeOptions(options []DecodeOption) decodeOptions {
	opts := defaultDecodeOptions()
	for _, option := range options {
		if option != nil {
			option(&opts)
		}
	}
	return opts
}

// WithSections seeds the decoder with persisted section records. Their names
// and orders are kept; sections discovered during the walk are appended with
// order equal to the number of sections known at that point.
func WithSections(sections []model.Section) DecodeOption {
	return func(o *decodeOptions) {
		o.sections = append([]model.Section(nil), sections...)
	}
}

// WithIDGenerator replaces the default UUID field id generator.
func WithIDGenerator(fn func() string) DecodeOption {
	return func(o *decodeOptions) {
		if fn != nil {
			o.newID = fn
		}
	}
}

// WithLabelSanitizer replaces the markup sanitiser applied to generated
// labels and section names. Pass an identity function to disable it.
func WithLabelSanitizer(fn func(string) string) DecodeOption {
	return func(o *decodeOptions) {
		if fn != nil {
			o.sanitize = fn
		}
	}
}
