package main

import (
	"fmt"
	"strings"

	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/ksz8863/ksz8863-go/pkg/tablespec"
)

// Generate produces the Go source of the typed registers of table. source
// names the table file in the generated-code header. The table is expected
// to have passed tablespec.Validate.
func Generate(table *tablespec.RawTable, source string) (string, error) {
	layouts, err := table.Layouts()
	if err != nil {
		return "", err
	}

	var word string
	switch register.Width(table.Width) {
	case register.Width8:
		word = "uint8"
	case register.Width16:
		word = "uint16"
	default:
		return "", fmt.Errorf("unsupported width %d", table.Width)
	}

	recvName, recvType := "s", "*Smi"
	if table.Scoped() {
		recvName, recvType = "p", "*Phy"
	}

	data := tableData{
		Source:  source,
		Package: table.Package,
	}
	for _, l := range layouts {
		data.Registers = append(data.Registers, newRegisterData(l, table.Tier, word, recvName, recvType))
	}

	var b strings.Builder
	renderTemplate(&b, "header", data)
	for _, r := range data.Registers {
		renderTemplate(&b, "register", r)
		renderTemplate(&b, "accessors", r)
		renderTemplate(&b, "handle", r)
	}
	return b.String(), nil
}

func newRegisterData(l *register.Layout, tier, word, recvName, recvType string) *registerData {
	name := tablespec.GoName(l.Name)
	r := &registerData{
		Name:       name,
		TableName:  l.Name,
		Const:      "Addr" + name,
		Layout:     "layout" + name,
		Addr:       fmt.Sprintf("0x%02X", l.Addr),
		Doc:        l.Doc,
		Tier:       strings.ToUpper(tier),
		Word:       word,
		WidthConst: widthConst(l.Width),
		RecvName:   recvName,
		RecvType:   recvType,
	}
	for i := range l.Fields {
		f := &l.Fields[i]
		fd := fieldData{
			Index:      i,
			Name:       f.Name,
			GoName:     tablespec.GoName(f.Name),
			Lsb:        f.Lsb,
			Msb:        f.Msb,
			Access:     accessConst(f.Access),
			Default:    f.Default,
			HasDefault: f.HasDefault,
			IsBit:      f.IsBit(),
			Word:       word,
			Writer:     name + "W",
		}
		r.Fields = append(r.Fields, fd)
		if f.Access.CanRead() {
			r.Readable = append(r.Readable, fd)
		}
		if f.Access.CanWrite() {
			r.Writable = append(r.Writable, fd)
		}
	}
	return r
}

func widthConst(w register.Width) string {
	return fmt.Sprintf("register.Width%d", uint8(w))
}

func accessConst(a register.Access) string {
	switch a {
	case register.AccessRead:
		return "register.AccessRead"
	case register.AccessWrite:
		return "register.AccessWrite"
	default:
		return "register.AccessReadWrite"
	}
}
