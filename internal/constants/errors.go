package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoAPIKeyConfigured  = errors.New("no API key configured, use 'easyverein login' or set EASYVEREIN_API_KEY")
	ErrConfigNotFound      = errors.New("configuration file not found")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidAPIVersion   = errors.New("invalid API version, expected v1.7 or v2.0")
)

// Validation errors.
var (
	ErrIDRequired                 = errors.New("a numeric record id is required")
	ErrInvalidID                  = errors.New("record id must be a positive integer")
	ErrAttachmentNotPDF           = errors.New("invoice attachments must be PDF files")
	ErrAttachmentNotFound         = errors.New("attachment file does not exist")
	ErrDirectoryTraversalDetected = errors.New("path contains directory traversal sequences")
	ErrNotRegularFile             = errors.New("path is not a regular file")
)
