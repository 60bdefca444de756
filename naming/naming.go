// Package naming converts declared descriptor names into presentation names:
// header labels for encoded output and a collection name for a record type.
// The default strategy leaves field names untouched, since descriptor names
// are already the canonical labels, and pluralizes snake_cased type names.
package naming

import (
	"strings"
	"unicode"

	pluralizer "github.com/gertd/go-pluralize"
)

// pluralizeClient is a singleton instance for consistent pluralization behavior.
var pluralizeClient = pluralizer.NewClient()

// =========================================================================
// Core Interfaces
// =========================================================================

// Strategy defines the complete naming configuration for table output.
type Strategy interface {
	FieldStrategy
	TypeStrategy
}

// FieldStrategy converts a declared field name to a header label.
type FieldStrategy interface {
	// FieldName converts a declared descriptor name to the label emitted in
	// headers. Must return consistent results for the same input.
	FieldName(name string) string
}

// TypeStrategy converts a record type's name to a collection name.
type TypeStrategy interface {
	// TypeName converts a Go type name to a collection name.
	// Must return consistent results for the same input.
	TypeName(name string) string
}

// =========================================================================
// Field Strategies
// =========================================================================

// FieldCase represents the supported header label conventions.
type FieldCase int

const (
	FieldAsIs       FieldCase = iota // name, password, karma (declared names verbatim)
	FieldSnakeCase                   // user_id, first_name
	FieldCamelCase                   // userId, firstName
	FieldPascalCase                  // UserId, FirstName
)

type fieldStrategy struct {
	fieldCase FieldCase
}

// NewFieldStrategy creates a field naming strategy for the given convention.
func NewFieldStrategy(c FieldCase) FieldStrategy {
	return &fieldStrategy{fieldCase: c}
}

func (s *fieldStrategy) FieldName(name string) string {
	switch s.fieldCase {
	case FieldSnakeCase:
		return toSnakeCase(name)
	case FieldCamelCase:
		return toCamelCase(name)
	case FieldPascalCase:
		return toPascalCase(name)
	default:
		return name
	}
}

// =========================================================================
// Type Strategies
// =========================================================================

// TypeCase represents the supported collection name conventions.
type TypeCase int

const (
	TypeSnakeCaseSingular TypeCase = iota // user, blog_post
	TypeSnakeCasePlural                   // users, blog_posts
	TypeCamelCasePlural                   // users, blogPosts
	TypePascalCasePlural                  // Users, BlogPosts
)

type typeStrategy struct {
	typeCase TypeCase
}

// NewTypeStrategy creates a type naming strategy for the given convention.
func NewTypeStrategy(c TypeCase) TypeStrategy {
	return &typeStrategy{typeCase: c}
}

func (s *typeStrategy) TypeName(name string) string {
	switch s.typeCase {
	case TypeSnakeCaseSingular:
		return toSnakeCase(name)
	case TypeCamelCasePlural:
		return pluralize(toCamelCase(name))
	case TypePascalCasePlural:
		return pluralize(toPascalCase(name))
	default:
		return pluralize(toSnakeCase(name))
	}
}

// =========================================================================
// Combined Strategies
// =========================================================================

// CombinedStrategy joins independent field and type strategies into one.
type CombinedStrategy struct {
	FieldStrategy
	TypeStrategy
}

// NewStrategy creates a complete naming strategy from its two halves.
func NewStrategy(fields FieldStrategy, types TypeStrategy) Strategy {
	return &CombinedStrategy{FieldStrategy: fields, TypeStrategy: types}
}

// Default returns the strategy used when none is configured: declared field
// names verbatim, snake_case plural collection names.
func Default() Strategy {
	return NewStrategy(
		NewFieldStrategy(FieldAsIs),
		NewTypeStrategy(TypeSnakeCasePlural),
	)
}

// Snake returns snake_case field labels with snake_case plural collections.
func Snake() Strategy {
	return NewStrategy(
		NewFieldStrategy(FieldSnakeCase),
		NewTypeStrategy(TypeSnakeCasePlural),
	)
}

// =========================================================================
// Core Conversion Functions
// =========================================================================

// toSnakeCase converts any naming convention to snake_case.
// Handles acronym runs, digits, and already-converted input.
func toSnakeCase(name string) string {
	if name == "" {
		return ""
	}

	// Common acronym-only names resolve without scanning.
	switch name {
	case "ID":
		return "id"
	case "UUID":
		return "uuid"
	case "ULID":
		return "ulid"
	case "URL":
		return "url"
	case "API":
		return "api"
	case "JSON":
		return "json"
	case "CSV":
		return "csv"
	case "HTML":
		return "html"
	}

	// Already snake_case: no uppercase to fold.
	if strings.Contains(name, "_") && !hasUpperCase(name) {
		return strings.ToLower(name)
	}

	var result strings.Builder
	result.Grow(len(name) + 8)

	runes := []rune(name)
	for i, r := range runes {
		needsUnderscore := false
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			// aB -> a_b, a1B -> a1_b, and ABc -> a_bc for acronym ends.
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				needsUnderscore = true
			} else if unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				needsUnderscore = true
			}
		}
		if needsUnderscore {
			result.WriteByte('_')
		}
		result.WriteRune(unicode.ToLower(r))
	}

	return result.String()
}

// toCamelCase converts any naming convention to camelCase.
func toCamelCase(name string) string {
	if name == "" {
		return ""
	}

	snake := toSnakeCase(name)
	parts := strings.Split(snake, "_")

	var result strings.Builder
	result.Grow(len(name))
	result.WriteString(parts[0])
	for _, part := range parts[1:] {
		result.WriteString(title(part))
	}
	return result.String()
}

// toPascalCase converts any naming convention to PascalCase.
func toPascalCase(name string) string {
	if name == "" {
		return ""
	}

	snake := toSnakeCase(name)
	parts := strings.Split(snake, "_")

	var result strings.Builder
	result.Grow(len(name))
	for _, part := range parts {
		result.WriteString(title(part))
	}
	return result.String()
}

// =========================================================================
// Pluralization
// =========================================================================

// pluralize converts singular nouns to their plural forms.
func pluralize(name string) string {
	if name == "" {
		return ""
	}

	// Irregulars the library occasionally mis-handles across case styles.
	switch strings.ToLower(name) {
	case "person":
		return preserveCase(name, "people")
	case "child":
		return preserveCase(name, "children")
	case "datum":
		return preserveCase(name, "data")
	case "criterion":
		return preserveCase(name, "criteria")
	}

	// The library preserves the input's internal casing on the suffix path.
	return pluralizeClient.Pluralize(name, 2, false)
}

// =========================================================================
// Utility Functions
// =========================================================================

func title(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// hasUpperCase returns true if the string contains any uppercase letters.
func hasUpperCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// preserveCase preserves the case pattern of the original string in the result.
func preserveCase(original, result string) string {
	if original == "" || result == "" {
		return result
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(result)
	}
	if strings.ToUpper(original) == original {
		return strings.ToUpper(result)
	}
	if unicode.IsUpper(rune(original[0])) {
		return title(strings.ToLower(result))
	}
	return strings.ToLower(result)
}
