package nested

import "log/slog"

// Option configures a Parser.
type Option func(*Parser)

// WithLogger sets a logger for the parser.
// If nil, a discard logger is used (default behavior).
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}
