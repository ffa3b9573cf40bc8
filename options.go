package x12

import "log/slog"

type readConfig struct {
	limits      Limits
	schemas     SchemaSet
	opaque      bool
	validate    bool
	compression Compression
	logger      *slog.Logger
	concurrency int
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits(), compression: CompAuto}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithSchemas sets the transaction sets the decoder can bind groups to.
func WithSchemas(s SchemaSet) ReadOption {
	return func(c *readConfig) { c.schemas = s }
}

// WithOpaqueTransactions makes transaction sets without a schema decode as a
// flat run of segments instead of failing with ErrUnknownTransaction.
func WithOpaqueTransactions(v bool) ReadOption {
	return func(c *readConfig) { c.opaque = v }
}

// WithValidation runs Validate on every decoded interchange.
func WithValidation(v bool) ReadOption {
	return func(c *readConfig) { c.validate = v }
}

// WithReadCompression sets how Decode unwraps its input. The default,
// CompAuto, recognizes ZIP, Zstandard and LZ4 streams by their magic bytes;
// Brotli has none and must be selected explicitly.
func WithReadCompression(comp Compression) ReadOption {
	return func(c *readConfig) { c.compression = comp }
}

// WithLogger enables debug logging of envelope-level decode events.
func WithLogger(l *slog.Logger) ReadOption {
	return func(c *readConfig) { c.logger = l }
}

// WithConcurrency bounds the number of inputs DecodeBatch decodes at once.
func WithConcurrency(n int) ReadOption {
	return func(c *readConfig) { c.concurrency = n }
}

type writeConfig struct {
	delimiters   *Delimiters
	autoPopulate bool
	compression  Compression
}

func newWriteConfig(opts []WriteOption) writeConfig {
	cfg := writeConfig{autoPopulate: true, compression: CompNone}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

type WriteOption func(*writeConfig)

// WithDelimiters encodes with d instead of the interchange's own delimiters.
// Every segment is followed by d.Suffix; line breaks recorded on decode are
// dropped.
func WithDelimiters(d Delimiters) WriteOption {
	return func(c *writeConfig) { c.delimiters = &d }
}

// WithAutoPopulateControls causes Encode to fill absent trailer counts and
// control numbers (SE, GE, IEA), creating missing trailers. Present values,
// empty ones included, are written as they are.
func WithAutoPopulateControls(v bool) WriteOption {
	return func(c *writeConfig) { c.autoPopulate = v }
}

func WithWriteCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}
