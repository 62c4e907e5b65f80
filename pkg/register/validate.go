package register

import (
	"errors"
	"fmt"
	"strings"
)

// Issue is one finding of Check.
type Issue struct {
	Register string
	Field    string
	Message  string
}

func (i Issue) String() string {
	if i.Register == "" {
		return i.Message
	}
	var b strings.Builder
	b.WriteString(i.Register)
	if i.Field != "" {
		b.WriteByte('.')
		b.WriteString(i.Field)
	}
	b.WriteString(": ")
	b.WriteString(i.Message)
	return b.String()
}

// Report collects the findings of Check. Errors make a table unusable;
// Warnings describe constructs the engine accepts.
type Report struct {
	Errors   []Issue
	Warnings []Issue

	// ReadOnlyDefaults counts read-only fields carrying a default. The
	// default only seeds default construction; such fields are never
	// written.
	ReadOnlyDefaults int
}

// OK reports whether the report holds no errors.
func (r *Report) OK() bool { return len(r.Errors) == 0 }

// Err joins the errors of the report, or returns nil.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i, is := range r.Errors {
		errs[i] = errors.New(is.String())
	}
	return errors.Join(errs...)
}

// Errorf records an error.
func (r *Report) Errorf(reg, field, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Register: reg, Field: field, Message: fmt.Sprintf(format, args...)})
}

// Warnf records a warning.
func (r *Report) Warnf(reg, field, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Register: reg, Field: field, Message: fmt.Sprintf(format, args...)})
}

// Merge appends the findings of other.
func (r *Report) Merge(other Report) {
	r.Errors = append(r.Errors, other.Errors...)
	r.Warnings = append(r.Warnings, other.Warnings...)
	r.ReadOnlyDefaults += other.ReadOnlyDefaults
}

// Check validates layouts meant to form one bank of the given width.
func Check(width Width, layouts ...*Layout) Report {
	var r Report
	if !width.Valid() {
		r.Errorf("", "", "unsupported width %d", uint8(width))
		return r
	}

	names := make(map[string]bool)
	addrs := make(map[uint8]string)
	for _, l := range layouts {
		switch {
		case l.Name == "":
			r.Errorf(fmt.Sprintf("0x%02x", l.Addr), "", "register has no name")
		case names[l.Name]:
			r.Errorf(l.Name, "", "duplicate register name")
		}
		names[l.Name] = true

		if prev, ok := addrs[l.Addr]; ok {
			r.Errorf(l.Name, "", "address 0x%02x already used by %s", l.Addr, prev)
		} else {
			addrs[l.Addr] = l.Name
		}
		if l.Width != width {
			r.Errorf(l.Name, "", "register is %s in a %s bank", l.Width, width)
		}
		checkFields(&r, width, l)
	}
	return r
}

func checkFields(r *Report, width Width, l *Layout) {
	fields := make(map[string]bool)
	for i := range l.Fields {
		f := &l.Fields[i]
		switch {
		case f.Name == "":
			r.Errorf(l.Name, fmt.Sprintf("#%d", i), "field has no name")
		case fields[f.Name]:
			r.Errorf(l.Name, f.Name, "duplicate field name")
		}
		fields[f.Name] = true

		if f.Lsb > f.Msb {
			r.Errorf(l.Name, f.Name, "lsb %d above msb %d", f.Lsb, f.Msb)
			continue
		}
		if f.Msb >= uint8(width) {
			r.Errorf(l.Name, f.Name, "bit %d beyond %s word", f.Msb, width)
			continue
		}
		if f.Default>>f.Bits() != 0 {
			r.Errorf(l.Name, f.Name, "default %#x does not fit %d bits", f.Default, f.Bits())
		}

		switch {
		case f.Access == 0:
			r.Errorf(l.Name, f.Name, "field has no access mode")
		case f.Access.CanWrite() && !f.HasDefault:
			r.Warnf(l.Name, f.Name, "writable field has no default, reset leaves it unchanged")
		case !f.Access.CanWrite() && f.HasDefault:
			r.ReadOnlyDefaults++
		}

		for j := range l.Fields[:i] {
			g := &l.Fields[j]
			if g.Lsb <= g.Msb && g.Msb < uint8(width) && f.Mask()&g.Mask() != 0 {
				r.Warnf(l.Name, f.Name, "bits %s overlap %s (bits %s)", f.Range(), g.Name, g.Range())
			}
		}
	}
}
