package nx

type openConfig struct {
	validateOffsets bool
}

type Option func(*openConfig)

// WithOffsetValidation controls whether Open and FromBytes verify up front
// that the four tables and every offset-table entry lie inside the mapped
// region, failing with ErrInvalidHeader otherwise.
//
// The default is false, matching the format's trust model: offsets in a
// well-formed file are valid by construction, and validating them costs a
// full pass over every table at open time. Without validation, a malformed
// file is only detected when an accessor touches a bad offset, which
// panics via the runtime's slice bounds check.
func WithOffsetValidation(v bool) Option {
	return func(c *openConfig) { c.validateOffsets = v }
}
