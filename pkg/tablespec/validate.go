package tablespec

import (
	"go/token"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// reserved lists method names every generated register or writer type
// already carries.
var reserved = map[string]bool{
	"Layout": true,
	"Raw":    true,
	"SetRaw": true,
	"Writer": true,
	"String": true,
	"State":  true,
	"Reset":  true,
	"Bits":   true,
}

// reservedTypes lists identifiers the tier packages declare by hand next to
// the generated code.
var reservedTypes = map[string]bool{
	"Address":   true,
	"State":     true,
	"Map":       true,
	"Reg":       true,
	"Transport": true,
	"Reader":    true,
	"Writer":    true,
	"Smi":       true,
	"Miim":      true,
	"Phy":       true,
	"Sim":       true,
	"Read":      true,
	"Write":     true,
	"Addr":      true,
	"Handle":    true,
	"New":       true,
	"Traced":    true,
	"Default":   true,
	"Get":       true,
	"Set":       true,
	"Update":    true,
	"ReadWord":  true,
	"WriteWord": true,
	"Bank":      true,
	"Lookup":    true,
	"NewMap":    true,
	"NewState":  true,
	"StateOf":   true,
	"Downcast":  true,
}

// Validate checks a table before generation. Rows that cannot be converted
// are reported as errors and left out of the layout checks.
func Validate(t *RawTable) register.Report {
	var r register.Report

	switch t.Tier {
	case TierDirect, TierScoped:
	default:
		r.Errorf("", "", "unknown tier %q", t.Tier)
	}
	if !token.IsIdentifier(t.Package) {
		r.Errorf("", "", "package %q is not a Go identifier", t.Package)
	}
	if len(t.Registers) == 0 {
		r.Errorf("", "", "table has no registers")
	}

	width := register.Width(t.Width)
	layouts := make([]*register.Layout, 0, len(t.Registers))
	goNames := make(map[string]string)
	for i := range t.Registers {
		reg := &t.Registers[i]

		typeName := GoName(reg.Name)
		if !token.IsExported(typeName) || !token.IsIdentifier(typeName) {
			r.Errorf(reg.Name, "", "name does not form an exported Go identifier")
		} else if reservedTypes[typeName] {
			r.Errorf(reg.Name, "", "type %s clashes with a declaration of the tier package", typeName)
		} else if prev, ok := goNames[typeName]; ok && prev != reg.Name {
			r.Errorf(reg.Name, "", "Go name %s already used by %s", typeName, prev)
		}
		goNames[typeName] = reg.Name

		l, err := reg.Layout(width)
		if err != nil {
			r.Errorf("", "", "%v", err)
			continue
		}
		layouts = append(layouts, l)
		checkRow(&r, reg)
	}

	r.Merge(register.Check(width, layouts...))
	return r
}

func checkRow(r *register.Report, reg *RawRegister) {
	methods := make(map[string]string)
	for i := range reg.Fields {
		f := &reg.Fields[i]

		m := GoName(f.Name)
		switch {
		case !token.IsIdentifier(m):
			r.Errorf(reg.Name, f.Name, "name does not form a Go identifier")
		case reserved[m]:
			r.Errorf(reg.Name, f.Name, "accessor %s clashes with a register method", m)
		case methods[m] != "" && methods[m] != f.Name:
			r.Errorf(reg.Name, f.Name, "accessor %s already used by %s", m, methods[m])
		}
		methods[m] = f.Name

		if f.Reset {
			// Conversion succeeded, so the access mode parses.
			if a, _ := register.ParseAccess(f.Access); !a.CanWrite() {
				r.Errorf(reg.Name, f.Name, "read-only field cannot be restored by reset")
			} else if f.Default == nil {
				r.Errorf(reg.Name, f.Name, "reset field has no default")
			}
		}
	}
}
