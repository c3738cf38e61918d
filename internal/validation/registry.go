package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ConstraintFunc evaluates one custom token against a submitted value. It
// returns a violation message, or "" when satisfied.
type ConstraintFunc func(label string, value any, params []string) string

// Registry maps custom token names to evaluators. Tokens whose name is not
// registered pass through unevaluated.
type Registry map[string]ConstraintFunc

// DefaultRegistry evaluates the built-in tokens: max, min and regex.
func DefaultRegistry() Registry {
	return Registry{
		"max":   maxRule,
		"min":   minRule,
		"regex": regexRule,
	}
}

// maxRule bounds string length, list length, or numeric value.
func maxRule(label string, value any, params []string) string {
	limit, ok := ruleLimit(params)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			if n > limit {
				return fmt.Sprintf("%s must not be greater than %s", label, formatLimit(limit))
			}
			return ""
		}
		if float64(len(v)) > limit {
			return fmt.Sprintf("%s must not be longer than %s characters", label, formatLimit(limit))
		}
	case float64:
		if v > limit {
			return fmt.Sprintf("%s must not be greater than %s", label, formatLimit(limit))
		}
	case []any:
		if float64(len(v)) > limit {
			return fmt.Sprintf("%s must not have more than %s items", label, formatLimit(limit))
		}
	}
	return ""
}

func minRule(label string, value any, params []string) string {
	limit, ok := ruleLimit(params)
	if !ok {
		return ""
	}
	switch v := value.(type) {
	case string:
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			if n < limit {
				return fmt.Sprintf("%s must be at least %s", label, formatLimit(limit))
			}
			return ""
		}
		if float64(len(v)) < limit {
			return fmt.Sprintf("%s must be at least %s characters", label, formatLimit(limit))
		}
	case float64:
		if v < limit {
			return fmt.Sprintf("%s must be at least %s", label, formatLimit(limit))
		}
	case []any:
		if float64(len(v)) < limit {
			return fmt.Sprintf("%s must have at least %s items", label, formatLimit(limit))
		}
	}
	return ""
}

func regexRule(label string, value any, params []string) string {
	if len(params) == 0 {
		return ""
	}
	// Commas inside the pattern were split by the token parser; rejoin them.
	pattern := strings.Join(params, ",")
	re, err := regexp.Compile(pattern)
	if err != nil {
		// Malformed patterns cannot raise compiler errors; they pass through.
		return ""
	}
	if s, ok := scalarString(value); ok && !re.MatchString(s) {
		return fmt.Sprintf("%s has an invalid format", label)
	}
	return ""
}

func ruleLimit(params []string) (float64, bool) {
	if len(params) == 0 {
		return 0, false
	}
	limit, err := strconv.ParseFloat(params[0], 64)
	if err != nil {
		return 0, false
	}
	return limit, true
}

func formatLimit(limit float64) string {
	return strconv.FormatFloat(limit, 'f', -1, 64)
}
