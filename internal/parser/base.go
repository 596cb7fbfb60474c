package parser

import (
	"fjacquet/charge-calc/internal/logging"
)

// BaseParser carries the logger shared by parser implementations.
type BaseParser struct {
	logger logging.Logger
}

// NewBaseParser creates a BaseParser. If logger is nil, a default logger is used.
func NewBaseParser(logger logging.Logger) BaseParser {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return BaseParser{logger: logger}
}

// SetLogger replaces the logger; nil is ignored.
func (b *BaseParser) SetLogger(logger logging.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// GetLogger returns the current logger instance.
func (b *BaseParser) GetLogger() logging.Logger {
	return b.logger
}
