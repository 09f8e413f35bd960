// Package enumgen generates name methods for Go enum types.
//
// For a named integer or string type with declared constants, the generated
// file holds one method per requested style returning the constant's
// identifier in that style:
//
//	//go:generate casekit enumgen -type Color -trimprefix Color
//
//	func (v Color) SnakeName() string {
//		switch v {
//		case ColorDarkRed:
//			return "dark_red"
//		}
//		return ""
//	}
package enumgen

import (
	"bytes"
	"fmt"
	"go/constant"
	"go/types"
	"slices"
	"strings"
	"text/template"

	"github.com/erraggy/casekit/casing"
	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/imports"
)

// Enum describes a named constant type and its values.
type Enum struct {
	// Package is the name of the package declaring the type
	Package string
	// TypeName is the enum type
	TypeName string
	// Constants are the constant identifiers in declaration order. Constants
	// sharing a value with an earlier one are omitted.
	Constants []string
	// TrimPrefix is removed from each identifier before conversion
	TrimPrefix string
}

// Load type-checks the package in dir and collects the constants of typeName.
func Load(dir, typeName string) (*Enum, error) {
	cfg := &packages.Config{
		Mode: packages.NeedTypes | packages.NeedSyntax | packages.NeedName,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("enumgen: failed to load package: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("enumgen: no packages found in %s", dir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("enumgen: package %s has errors: %v", pkg.Name, pkg.Errors[0])
	}

	scope := pkg.Types.Scope()
	tn, ok := scope.Lookup(typeName).(*types.TypeName)
	if !ok {
		return nil, fmt.Errorf("enumgen: type %s not found in package %s", typeName, pkg.Name)
	}
	basic, ok := tn.Type().Underlying().(*types.Basic)
	if !ok || basic.Info()&(types.IsInteger|types.IsString) == 0 {
		return nil, fmt.Errorf("enumgen: %s must have an integer or string underlying type", typeName)
	}

	var consts []*types.Const
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), tn.Type()) {
			continue
		}
		consts = append(consts, c)
	}
	if len(consts) == 0 {
		return nil, fmt.Errorf("enumgen: no constants of type %s", typeName)
	}

	// Scope names are sorted; restore declaration order.
	slices.SortFunc(consts, func(a, b *types.Const) int {
		return int(a.Pos() - b.Pos())
	})

	e := &Enum{Package: pkg.Name, TypeName: typeName}
	seen := make(map[string]bool, len(consts))
	for _, c := range consts {
		value := c.Val().ExactString()
		if c.Val().Kind() == constant.Unknown || seen[value] {
			continue
		}
		seen[value] = true
		e.Constants = append(e.Constants, c.Name())
	}
	return e, nil
}

// MethodName returns the name of the generated method for style.
func MethodName(style casing.Style) string {
	switch style {
	case casing.Camel:
		return "CamelName"
	case casing.Pascal:
		return "PascalName"
	case casing.SnakeLower:
		return "SnakeName"
	case casing.SnakeUpper:
		return "UpperSnakeName"
	default:
		return ""
	}
}

// Filename returns the conventional output file name for typeName.
func Filename(typeName string) string {
	return casing.ToSnakeCaseLower(typeName) + "_names.go"
}

type templateData struct {
	Package  string
	TypeName string
	Methods  []methodData
}

type methodData struct {
	Name  string
	Style string
	Cases []caseData
}

type caseData struct {
	Ident string
	Value string
}

// Render generates the source of the name methods for e, one method per style.
func Render(e *Enum, styles []casing.Style) ([]byte, error) {
	if e == nil || e.TypeName == "" {
		return nil, fmt.Errorf("enumgen: enum type is required")
	}
	if len(styles) == 0 {
		styles = casing.Styles()
	}

	data := templateData{Package: e.Package, TypeName: e.TypeName}
	for _, style := range styles {
		name := MethodName(style)
		if name == "" {
			return nil, fmt.Errorf("enumgen: invalid style %v", style)
		}
		m := methodData{Name: name, Style: style.String()}
		for _, ident := range e.Constants {
			m.Cases = append(m.Cases, caseData{
				Ident: ident,
				Value: casing.Convert(strings.TrimPrefix(ident, e.TrimPrefix), style),
			})
		}
		data.Methods = append(data.Methods, m)
	}

	var buf bytes.Buffer
	if err := namesTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("enumgen: failed to execute template: %w", err)
	}

	out, err := imports.Process(Filename(e.TypeName), buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("enumgen: failed to format generated code: %w\n\nGenerated code:\n%s", err, buf.String())
	}
	return out, nil
}

var namesTemplate = template.Must(template.New("names").Parse(`// Code generated by casekit enumgen; DO NOT EDIT.

package {{.Package}}
{{range $m := .Methods}}
// {{$m.Name}} returns the {{$m.Style}} form of the constant's name, or "" for
// values without a declared constant.
func (v {{$.TypeName}}) {{$m.Name}}() string {
	switch v {
{{- range $m.Cases}}
	case {{.Ident}}:
		return {{printf "%q" .Value}}
{{- end}}
	}
	return ""
}
{{end}}`))
