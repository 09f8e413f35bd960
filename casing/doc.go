// Package casing rewrites identifier-like strings into canonical naming styles.
//
// Four conversions are provided: [ToCamelCase], [ToPascalCase],
// [ToSnakeCaseLower] and [ToSnakeCaseUpper]. All of them are total functions
// over strings. The empty string is returned unchanged and no input causes an
// error or a panic. Every call owns its own scan state, so the functions are
// safe for concurrent use without coordination.
//
// # Word Boundaries
//
// Each conversion walks the input once, left to right, and decides for every
// rune whether it starts a new word. Two boundary policies exist:
//
//   - Camel and Pascal start a word only after one or more separators
//     (whitespace, Unicode separators, '_', '-' or '~'). The first letter of a
//     word is uppercased and the rest of the word is copied verbatim, so
//     "my variAb-le" becomes "MyVariAbLe".
//   - The snake styles treat every rune that is not a letter or digit as a
//     separator, and additionally start a word at a lowercase-to-uppercase
//     hump and where a letter is followed by a digit. Words are joined with a
//     single '_' and every rune is re-cased, so "my variAb-le" becomes
//     "my_vari_ab_le".
//
// Separators are consumed and never copied into the output. Leading and
// trailing separators therefore disappear.
//
// # Leading Digits
//
// When the first rune that would be written is a digit, every style writes
// [LeadingDigitPrefix] before it so the result is never a name starting with
// a digit:
//
//	casing.ToCamelCase("1Test this string") // "_1TestThisString"
//	casing.ToSnakeCaseLower("1st place")    // "_1st_place"
//
// This is the only situation in which a result begins with '_'.
//
// # Styles and Enumerations
//
// [Style] names a target convention and [Convert] dispatches on it, which is
// convenient when the style comes from configuration ([ParseStyle] accepts
// names such as "camelCase", "snake_case" or "SCREAMING_SNAKE"). Enumerations
// that implement fmt.Stringer can be converted through [ConvertStringer] and
// the *Of helpers, which simply convert the value's String() form.
//
// # Asynchronous Use
//
// [ToCamelCaseAsync], [ToPascalCaseAsync] and [ConvertAsync] run the same
// conversion on a separate goroutine and return a [Pending] handle. Waiting
// can be abandoned through a context; the conversion itself always runs to
// completion.
package casing
