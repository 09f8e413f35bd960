package casing

import "fmt"

// ConvertStringer converts the String() form of an enumeration value.
// A nil value yields the empty string.
func ConvertStringer(v fmt.Stringer, style Style) string {
	if v == nil {
		return ""
	}
	return Convert(v.String(), style)
}

// CamelCaseOf returns ToCamelCase(v.String()).
func CamelCaseOf(v fmt.Stringer) string { return ConvertStringer(v, Camel) }

// PascalCaseOf returns ToPascalCase(v.String()).
func PascalCaseOf(v fmt.Stringer) string { return ConvertStringer(v, Pascal) }

// SnakeCaseLowerOf returns ToSnakeCaseLower(v.String()).
func SnakeCaseLowerOf(v fmt.Stringer) string { return ConvertStringer(v, SnakeLower) }

// SnakeCaseUpperOf returns ToSnakeCaseUpper(v.String()).
func SnakeCaseUpperOf(v fmt.Stringer) string { return ConvertStringer(v, SnakeUpper) }
