package main

import (
	"fmt"
	"strings"
	"text/template"
)

// funcMap provides helper functions available to all templates.
var funcMap = template.FuncMap{
	"quote":        func(s string) string { return fmt.Sprintf("%q", s) },
	"fieldLiteral": fieldLiteral,
}

// templates holds all parsed code generation templates.
var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	headerTmpl +
		registerTmpl +
		accessorsTmpl +
		handleTmpl,
))

// renderTemplate executes a named template into the builder.
func renderTemplate(b *strings.Builder, name string, data any) {
	if err := templates.ExecuteTemplate(b, name, data); err != nil {
		panic(fmt.Sprintf("template %s: %v", name, err))
	}
}

// --- Template data types ---

// tableData holds the data of the file header.
type tableData struct {
	Source    string
	Package   string
	Registers []*registerData
}

// registerData holds pre-computed data for one register.
type registerData struct {
	Name       string // Go type name
	TableName  string
	Const      string // address constant
	Layout     string // layout variable
	Addr       string
	Doc        string
	Tier       string // "SMI" or "MIIM"
	Word       string // "uint8" or "uint16"
	WidthConst string
	Fields     []fieldData
	Readable   []fieldData
	Writable   []fieldData

	// Receiver of the handle method: "s *Smi" or "p *Phy".
	RecvName string
	RecvType string
}

// fieldData holds pre-computed data for one field accessor.
type fieldData struct {
	Index      int
	Name       string
	GoName     string
	Lsb        uint8
	Msb        uint8
	Access     string
	Default    uint16
	HasDefault bool
	IsBit      bool
	Word       string
	Writer     string
}

// ReadType is the read cursor type of the field.
func (f fieldData) ReadType() string {
	if f.IsBit {
		return "register.BitR"
	}
	return "register.BitsR[" + f.Word + "]"
}

// ReadFunc constructs the read cursor.
func (f fieldData) ReadFunc() string {
	if f.IsBit {
		return "register.ReadBit"
	}
	return "register.ReadBits"
}

// cursorName is the write cursor kind of the field. Only fields with a
// declared default get a cursor with Reset.
func (f fieldData) cursorName() string {
	name := "Bits"
	if f.IsBit {
		name = "Bit"
	}
	if f.HasDefault {
		name = "Resettable" + name
	}
	return name
}

// WriteType is the write cursor type of the field.
func (f fieldData) WriteType() string {
	return "register." + f.cursorName() + "W[" + f.Word + ", *" + f.Writer + "]"
}

// WriteFunc constructs the write cursor.
func (f fieldData) WriteFunc() string {
	return "register.Write" + f.cursorName()
}

// Range is the bit position as written in the table.
func (f fieldData) Range() string {
	if f.IsBit {
		return fmt.Sprintf("bit %d", f.Lsb)
	}
	return fmt.Sprintf("bits %d..%d", f.Lsb, f.Msb)
}

// fieldLiteral renders the register.Field composite literal of f.
func fieldLiteral(f fieldData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "{Name: %q, Lsb: %d, Msb: %d, Access: %s", f.Name, f.Lsb, f.Msb, f.Access)
	if f.Default != 0 {
		fmt.Fprintf(&b, ", Default: %d", f.Default)
	}
	if f.HasDefault {
		b.WriteString(", HasDefault: true")
	}
	b.WriteString("}")
	return b.String()
}

// --- Template definitions ---

const headerTmpl = `{{define "header"}}// Code generated by ksz-regen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import "github.com/ksz8863/ksz8863-go/pkg/register"

// Register addresses.
const (
{{- range .Registers}}
{{.Const}} Address = {{.Addr}}
{{- end}}
)

// layouts lists the registers of the tier in table order.
var layouts = []*register.Layout{
{{- range .Registers}}
{{.Layout}},
{{- end}}
}
{{end}}`

const registerTmpl = `{{define "register"}}
// {{.Name}} is the {{.Tier}} register at address {{.Addr}}{{if .Doc}} ({{.Doc}}){{end}}.
type {{.Name}} struct{ raw {{.Word}} }

// {{.Name}}W writes the fields of a {{.Name}}.
type {{.Name}}W {{.Name}}

var {{.Layout}} = &register.Layout{
Name: {{quote .TableName}},
Addr: {{.Addr}},
Width: {{.WidthConst}},
{{- if .Doc}}
Doc: {{quote .Doc}},
{{- end}}
{{- if .Fields}}
Fields: []register.Field{
{{- range .Fields}}
{{fieldLiteral .}},
{{- end}}
},
{{- end}}
}

// Layout returns the layout of {{.Name}}.
func ({{.Name}}) Layout() *register.Layout {
return {{.Layout}}
}

// Raw returns the register word.
func (r {{.Name}}) Raw() {{.Word}} {
return r.raw
}

// SetRaw replaces the register word.
func (r *{{.Name}}) SetRaw(raw {{.Word}}) {
r.raw = raw
}

// Writer returns the field writer of r.
func (r *{{.Name}}) Writer() *{{.Name}}W {
return (*{{.Name}}W)(r)
}

func (r {{.Name}}) String() string {
return {{.Layout}}.Format(uint16(r.raw))
}
{{end}}`

const accessorsTmpl = `{{define "accessors"}}
{{- range .Readable}}
// {{.GoName}} reads {{.Name}}, {{.Range}}.
func (r {{$.Name}}) {{.GoName}}() {{.ReadType}} {
return {{.ReadFunc}}(r.raw, &{{$.Layout}}.Fields[{{.Index}}])
}

{{end}}
// Reset restores every writable field that declares a default.
func (w *{{.Name}}W) Reset() *{{.Name}}W {
register.ResetWord(&w.raw, {{.Layout}})
return w
}

// Bits replaces the whole register word.
func (w *{{.Name}}W) Bits(v {{.Word}}) *{{.Name}}W {
w.raw = v
return w
}
{{- range .Writable}}

// {{.GoName}} writes {{.Name}}, {{.Range}}.
func (w *{{$.Name}}W) {{.GoName}}() {{.WriteType}} {
return {{.WriteFunc}}(&w.raw, &{{$.Layout}}.Fields[{{.Index}}], w)
}
{{- end}}
{{end}}`

const handleTmpl = `{{define "handle"}}
// {{.Name}} returns the handle of register {{.Name}}.
func ({{.RecvName}} {{.RecvType}}) {{.Name}}() Reg[{{.Name}}, *{{.Name}}W, *{{.Name}}] {
return Handle[{{.Name}}, *{{.Name}}W]({{.RecvName}})
}
{{end}}`
