package utils

import (
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// TextProcessor provides utilities for preparing record text for display
type TextProcessor struct {
	logger *zap.Logger
}

// NewTextProcessor creates a new TextProcessor
func NewTextProcessor(logger *zap.Logger) *TextProcessor {
	return &TextProcessor{
		logger: logger,
	}
}

// SanitizeUTF8 ensures the string contains only valid UTF-8, replacing
// ill-formed sequences with the Unicode replacement character
func (tp *TextProcessor) SanitizeUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}

	sanitized, _, err := transform.String(runes.ReplaceIllFormed(), text)
	if err != nil {
		// ReplaceIllFormed does not fail in practice; keep the input
		// rather than lose the record's text.
		return text
	}

	tp.logger.Debug("Text sanitized",
		zap.Int("original_size", len(text)),
		zap.Int("sanitized_size", len(sanitized)))

	return sanitized
}
