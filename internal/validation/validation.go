package validation

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"shortcuts/internal/models"
)

// KeywordPattern defines the valid keyword format: a single token without whitespace.
var KeywordPattern = regexp.MustCompile(`^\S+$`)

// Record validation errors.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrKeywordInvalid   = errors.New("keyword must be a single word of at most 100 characters")
	ErrTemplateRequired = errors.New("url is required")
	ErrMultipleDefaults = errors.New("only one shortcut may be marked as default")
)

// ValidateKeyword checks if a keyword matches the allowed pattern.
func ValidateKeyword(keyword string) bool {
	if keyword == "" || len(keyword) > 100 {
		return false
	}
	return KeywordPattern.MatchString(keyword)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// ValidateURLTemplate checks every whitespace-separated URL of a template.
// Placeholders are substituted with a sample term before parsing.
func ValidateURLTemplate(template string) (bool, string) {
	fields := strings.Fields(template)
	if len(fields) == 0 {
		return false, "URL is required"
	}

	for _, field := range fields {
		sample := strings.ReplaceAll(field, models.Placeholder, "test")
		if valid, msg := ValidateURL(sample); !valid {
			return false, fmt.Sprintf("%s: %s", field, msg)
		}
	}

	return true, ""
}

// ValidateRecord checks a single shortcut record.
func ValidateRecord(r *models.Record) error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if !ValidateKeyword(r.Keyword) {
		return fmt.Errorf("%s: %w", r.Name, ErrKeywordInvalid)
	}
	if strings.TrimSpace(r.URL) == "" {
		return fmt.Errorf("%s: %w", r.Name, ErrTemplateRequired)
	}
	if valid, msg := ValidateURLTemplate(r.URL); !valid {
		return fmt.Errorf("%s: %s", r.Name, msg)
	}
	return nil
}

// ValidateRecords checks a full record set, including the single-default rule.
// All problems are joined into one error.
func ValidateRecords(records []models.Record) error {
	var errs []error
	defaults := 0

	for i := range records {
		if err := ValidateRecord(&records[i]); err != nil {
			errs = append(errs, err)
		}
		if records[i].IsDefault {
			defaults++
		}
	}

	if defaults > 1 {
		errs = append(errs, ErrMultipleDefaults)
	}

	return errors.Join(errs...)
}
