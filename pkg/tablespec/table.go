// Package tablespec provides the YAML format of register layout tables and
// its conversion into register layouts. Both ksz-regen and the tests of the
// tier packages read tables through this package.
package tablespec

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ksz8863/ksz8863-go/pkg/register"
)

// Addressing tiers.
const (
	TierDirect = "smi"
	TierScoped = "miim"
)

// RawTable represents a register table loaded from YAML.
type RawTable struct {
	Tier        string        `yaml:"tier"`    // "smi" or "miim"
	Package     string        `yaml:"package"` // Go package of the generated code
	Width       uint8         `yaml:"width"`   // 8 or 16
	Description string        `yaml:"description"`
	Registers   []RawRegister `yaml:"registers"`
}

// RawRegister represents one register row.
type RawRegister struct {
	Addr        uint8      `yaml:"addr"`
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Fields      []RawField `yaml:"fields"`
}

// RawField represents one field of a register.
type RawField struct {
	Name        string `yaml:"name"`
	Bits        string `yaml:"bits"`   // "5" or "0..7"
	Access      string `yaml:"access"` // "R", "W", "RW"
	Default     any    `yaml:"default"`
	Reset       bool   `yaml:"reset"` // field must be restored by Reset
	Description string `yaml:"description"`
}

// Parse parses a register table from YAML bytes.
func Parse(data []byte) (*RawTable, error) {
	var t RawTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing register table: %w", err)
	}
	if t.Tier == "" {
		return nil, fmt.Errorf("register table missing tier")
	}
	if t.Package == "" {
		t.Package = t.Tier
	}
	return &t, nil
}

// Load loads and parses a register table from a file.
func Load(path string) (*RawTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}

// Scoped reports whether the table belongs to the PHY-scoped tier.
func (t *RawTable) Scoped() bool { return t.Tier == TierScoped }

// Layouts converts every register row. It fails on the first row that
// cannot be converted.
func (t *RawTable) Layouts() ([]*register.Layout, error) {
	out := make([]*register.Layout, 0, len(t.Registers))
	for i := range t.Registers {
		l, err := t.Registers[i].Layout(register.Width(t.Width))
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}

// Layout converts the row into a register layout of the given width.
func (r *RawRegister) Layout(width register.Width) (*register.Layout, error) {
	l := &register.Layout{
		Name:   r.Name,
		Addr:   r.Addr,
		Width:  width,
		Doc:    r.Description,
		Fields: make([]register.Field, 0, len(r.Fields)),
	}
	var errs []error
	for i := range r.Fields {
		f, err := r.Fields[i].Field()
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.Name, err))
			continue
		}
		l.Fields = append(l.Fields, f)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return l, nil
}

// Field converts the row into a register field.
func (f *RawField) Field() (register.Field, error) {
	out := register.Field{Name: f.Name}

	lsb, msb, err := ParseBits(f.Bits)
	if err != nil {
		return out, fmt.Errorf("field %s: %w", f.Name, err)
	}
	out.Lsb, out.Msb = lsb, msb

	out.Access, err = register.ParseAccess(f.Access)
	if err != nil {
		return out, fmt.Errorf("field %s: %w", f.Name, err)
	}

	if f.Default != nil {
		v, err := parseDefault(f.Default)
		if err != nil {
			return out, fmt.Errorf("field %s: %w", f.Name, err)
		}
		out.Default, out.HasDefault = v, true
	}
	return out, nil
}

func parseDefault(v any) (uint16, error) {
	switch d := v.(type) {
	case int:
		if d < 0 || d > 0xFFFF {
			return 0, fmt.Errorf("default %d out of range", d)
		}
		return uint16(d), nil
	case uint64:
		if d > 0xFFFF {
			return 0, fmt.Errorf("default %d out of range", d)
		}
		return uint16(d), nil
	case bool:
		if d {
			return 1, nil
		}
		return 0, nil
	case string:
		n, err := strconv.ParseUint(d, 0, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid default %q", d)
		}
		return uint16(n), nil
	default:
		return 0, fmt.Errorf("invalid default %v (%T)", v, v)
	}
}
