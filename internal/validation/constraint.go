package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type Kind int

const (
	KindRequired Kind = iota
	KindNumeric
	KindDate
	KindTime
	KindDateTime
	KindOneOf
	KindEachOneOf
	KindFileUpload
	KindCustom
)

// Constraint is one compiled rule for one field. The set of kinds is closed;
// administrator-declared tokens ride through as KindCustom and are only ever
// evaluated by the registry, never interpreted here.
type Constraint struct {
	Kind    Kind
	Allowed []string // OneOf, EachOneOf
	MaxSize int64    // FileUpload, bytes
	Exts    []string // FileUpload
	Name    string   // Custom token name
	Params  []string // Custom token params
}

func Required() Constraint               { return Constraint{Kind: KindRequired} }
func Numeric() Constraint                { return Constraint{Kind: KindNumeric} }
func DateISO() Constraint                { return Constraint{Kind: KindDate} }
func TimeHHMM() Constraint               { return Constraint{Kind: KindTime} }
func DateTimeISO() Constraint            { return Constraint{Kind: KindDateTime} }
func OneOf(allowed []string) Constraint  { return Constraint{Kind: KindOneOf, Allowed: allowed} }
func EachOneOf(allowed []string) Constraint {
	return Constraint{Kind: KindEachOneOf, Allowed: allowed}
}

func FileUpload(maxSize int64, exts []string) Constraint {
	return Constraint{Kind: KindFileUpload, MaxSize: maxSize, Exts: exts}
}

// ParseCustomToken splits "max:500" into name "max" and params ["500"].
// Tokens without a colon become a bare name with no params.
func ParseCustomToken(token string) Constraint {
	name, rest, found := strings.Cut(token, ":")
	c := Constraint{Kind: KindCustom, Name: name}
	if found {
		c.Params = strings.Split(rest, ",")
	}
	return c
}

// Token renders the constraint back into its declarative form for the schema
// projection endpoint.
func (c Constraint) Token() string {
	switch c.Kind {
	case KindRequired:
		return "required"
	case KindNumeric:
		return "numeric"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindDateTime:
		return "datetime"
	case KindOneOf:
		return "in:" + strings.Join(c.Allowed, ",")
	case KindEachOneOf:
		return "array|each_in:" + strings.Join(c.Allowed, ",")
	case KindFileUpload:
		return fmt.Sprintf("file|max_bytes:%d|ext:%s", c.MaxSize, strings.Join(c.Exts, ","))
	case KindCustom:
		if len(c.Params) == 0 {
			return c.Name
		}
		return c.Name + ":" + strings.Join(c.Params, ",")
	}
	return ""
}

var timePattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var datetimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
}

// scalarString renders a submitted scalar for comparison against option sets.
// Numbers from JSON arrive as float64 and are printed without a trailing
// fraction when integral.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case int:
		return strconv.Itoa(s), true
	case bool:
		return strconv.FormatBool(s), true
	}
	return "", false
}

func contains(allowed []string, v string) bool {
	for _, a := range allowed {
		if a == v {
			return true
		}
	}
	return false
}

// check evaluates the constraint against one submitted value and returns a
// violation message, or "" when satisfied. Presence is handled by the rule
// set, so value here is always present.
func (c Constraint) check(label string, value any, reg Registry) string {
	switch c.Kind {
	case KindRequired:
		// Handled by RuleSet before per-value checks run.
		return ""
	case KindNumeric:
		switch n := value.(type) {
		case float64, int:
			return ""
		case string:
			if _, err := strconv.ParseFloat(n, 64); err == nil {
				return ""
			}
		}
		return fmt.Sprintf("%s must be a number", label)
	case KindDate:
		if s, ok := value.(string); ok {
			if _, err := time.Parse("2006-01-02", s); err == nil {
				return ""
			}
		}
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD)", label)
	case KindTime:
		if s, ok := value.(string); ok && timePattern.MatchString(s) {
			return ""
		}
		return fmt.Sprintf("%s must be a time (HH:MM)", label)
	case KindDateTime:
		if s, ok := value.(string); ok {
			for _, layout := range datetimeLayouts {
				if _, err := time.Parse(layout, s); err == nil {
					return ""
				}
			}
		}
		return fmt.Sprintf("%s must be a date and time", label)
	case KindOneOf:
		if s, ok := scalarString(value); ok && contains(c.Allowed, s) {
			return ""
		}
		return fmt.Sprintf("%s must be one of: %s", label, strings.Join(c.Allowed, ", "))
	case KindEachOneOf:
		items, ok := value.([]any)
		if !ok {
			if ss, isSlice := value.([]string); isSlice {
				items = make([]any, len(ss))
				for i, s := range ss {
					items[i] = s
				}
			} else {
				return fmt.Sprintf("%s must be a list", label)
			}
		}
		for _, item := range items {
			s, ok := scalarString(item)
			if !ok || !contains(c.Allowed, s) {
				return fmt.Sprintf("%s contains a value outside: %s", label, strings.Join(c.Allowed, ", "))
			}
		}
		return ""
	case KindFileUpload:
		// Evaluated against upload metadata by the rule set, not the value map.
		return ""
	case KindCustom:
		fn, ok := reg[c.Name]
		if !ok {
			// Unknown tokens pass through unevaluated.
			return ""
		}
		return fn(label, value, c.Params)
	}
	return ""
}

// checkUpload evaluates a file constraint against upload metadata.
func (c Constraint) checkUpload(label string, up UploadMeta) string {
	if c.Kind != KindFileUpload {
		return ""
	}
	if c.MaxSize > 0 && up.Size > c.MaxSize {
		return fmt.Sprintf("%s exceeds the maximum file size of %d bytes", label, c.MaxSize)
	}
	ext := strings.TrimPrefix(strings.ToLower(filepathExt(up.Filename)), ".")
	if len(c.Exts) > 0 && !contains(c.Exts, ext) {
		return fmt.Sprintf("%s must be one of the file types: %s", label, strings.Join(c.Exts, ", "))
	}
	return ""
}

func filepathExt(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}
