package errors

import (
	"net/url"
	"regexp"
	"strings"
	"unicode"
)

// Required returns a MISSING_FIELD error naming field when value is blank.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return New(ErrCodeMissingField, "%s is required", field)
	}
	return nil
}

// coordinatePartRegex matches Maven groupId, artifactId and version segments.
var coordinatePartRegex = regexp.MustCompile(`^[A-Za-z0-9_.\-+]+$`)

// ValidateCoordinatePart validates one segment of a Maven coordinate.
//
// The rules are intentionally conservative:
//   - No empty values
//   - No control characters
//   - No path separators or ':' (coordinates are joined with ':' and mapped to paths)
//   - Maximum length of 256 characters
func ValidateCoordinatePart(field, value string) error {
	if err := Required(field, value); err != nil {
		return err
	}
	if len(value) > 256 {
		return New(ErrCodeInvalidInput, "%s too long (max 256 characters)", field)
	}
	for _, r := range value {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid control characters", field)
		}
	}
	if strings.Contains(value, "..") {
		return New(ErrCodeInvalidInput, "%s contains invalid characters: %q", field, "..")
	}
	if !coordinatePartRegex.MatchString(value) {
		return New(ErrCodeInvalidInput, "invalid %s: %q", field, value)
	}
	return nil
}

// classifierRegex matches archive classifiers such as "sources" or "javadoc".
var classifierRegex = regexp.MustCompile(`^[a-z][a-z0-9\-]*$`)

// ValidateClassifier validates an auxiliary artifact classifier.
// An empty classifier is valid and denotes the main artifact.
func ValidateClassifier(classifier string) error {
	if classifier == "" {
		return nil
	}
	if !classifierRegex.MatchString(classifier) {
		return New(ErrCodeInvalidInput, "invalid classifier: %q", classifier)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It requires an absolute http or https URL with a host.
func ValidateURL(field, rawURL string) error {
	if err := Required(field, rawURL); err != nil {
		return err
	}
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidURL, "%s must use http or https scheme: %q", field, rawURL)
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return Wrap(ErrCodeInvalidURL, err, "%s is malformed", field)
	}
	if u.Host == "" {
		return New(ErrCodeInvalidURL, "%s has no host: %q", field, rawURL)
	}
	return nil
}

// ValidateSCMConnection accepts an http or https URL, or a Maven SCM
// connection string such as "scm:git:ssh://git@github.com/acme/widget.git".
func ValidateSCMConnection(field, value string) error {
	if err := Required(field, value); err != nil {
		return err
	}
	if !strings.HasPrefix(value, "scm:") {
		return ValidateURL(field, value)
	}
	for _, r := range value {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidURL, "%s contains invalid characters: %q", field, value)
		}
	}
	if strings.Count(value, ":") < 3 {
		return New(ErrCodeInvalidURL, "%s is not a valid scm connection: %q", field, value)
	}
	return nil
}
