package interactive

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ksz8863/ksz8863-go/pkg/miim"
	"github.com/ksz8863/ksz8863-go/pkg/register"
	"github.com/ksz8863/ksz8863-go/pkg/smi"
)

// maxPHY is the highest address a 5-bit MIIM PHY field can carry.
const maxPHY = 0x1F

// target is one register resolved from the command line: "Gc1" or "0x03"
// for SMI, "phy1/Bcr" or "phy2/0x1f" for a PHY.
type target struct {
	phy    *uint8
	layout *register.Layout
	read   func() (uint16, error)
	write  func(uint16) error
}

// Label renders the target the way traces print locations.
func (t target) Label() string {
	if t.phy != nil {
		return fmt.Sprintf("phy%d/%s (0x%02x)", *t.phy, t.layout.Name, t.layout.Addr)
	}
	return fmt.Sprintf("%s (0x%02x)", t.layout.Name, t.layout.Addr)
}

// Width returns the word width of the target's tier.
func (t target) Width() register.Width { return t.layout.Width }

// FormatWord renders v with the digit count of the target's width.
func (t target) FormatWord(v uint16) string {
	if t.layout.Width == register.Width8 {
		return fmt.Sprintf("0x%02x", v)
	}
	return fmt.Sprintf("0x%04x", v)
}

// resolveTarget parses s against the register tables.
func (c *Console) resolveTarget(s string) (target, error) {
	scope, name, scoped, err := splitScope(s)
	if err != nil {
		return target{}, err
	}
	if scoped {
		return c.miimTarget(scope, name)
	}
	return c.smiTarget(name)
}

// splitScope separates an optional "phyN/" prefix.
func splitScope(s string) (phy uint8, name string, scoped bool, err error) {
	prefix, rest, found := strings.Cut(s, "/")
	if !found {
		return 0, s, false, nil
	}
	phy, err = parsePHY(prefix)
	if err != nil {
		return 0, "", false, err
	}
	if rest == "" {
		return 0, "", false, fmt.Errorf("missing register after %q", prefix+"/")
	}
	return phy, rest, true, nil
}

// parsePHY parses "phyN" or "N".
func parsePHY(s string) (uint8, error) {
	digits := strings.TrimPrefix(strings.ToLower(s), "phy")
	v, err := strconv.ParseUint(digits, 0, 8)
	if err != nil || v > maxPHY {
		return 0, fmt.Errorf("invalid phy %q (must be phy0..phy31)", s)
	}
	return uint8(v), nil
}

func (c *Console) smiTarget(name string) (target, error) {
	a, err := lookupSMI(name)
	if err != nil {
		return target{}, err
	}
	return target{
		layout: a.Layout(),
		read: func() (uint16, error) {
			st, err := c.smi.Read(a)
			if err != nil {
				return 0, err
			}
			return uint16(st.Raw()), nil
		},
		write: func(v uint16) error {
			if v > 0xFF {
				return fmt.Errorf("value 0x%x exceeds 8-bit word", v)
			}
			return c.smi.Write(smi.NewState(a, uint8(v)))
		},
	}, nil
}

func (c *Console) miimTarget(phy uint8, name string) (target, error) {
	a, err := lookupMIIM(name)
	if err != nil {
		return target{}, err
	}
	p := c.miim.Phy(phy)
	return target{
		phy:    &phy,
		layout: a.Layout(),
		read: func() (uint16, error) {
			st, err := p.Read(a)
			if err != nil {
				return 0, err
			}
			return st.Raw(), nil
		},
		write: func(v uint16) error {
			return p.Write(miim.NewState(a, v))
		},
	}, nil
}

// lookupSMI resolves a register name, case-insensitively, or a numeric code.
func lookupSMI(name string) (smi.Address, error) {
	if a, ok := smi.Lookup(name); ok {
		return a, nil
	}
	for _, a := range smi.Addresses() {
		if strings.EqualFold(a.Layout().Name, name) {
			return a, nil
		}
	}
	code, err := strconv.ParseUint(name, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown SMI register %q", name)
	}
	return smi.ParseAddress(uint8(code))
}

// lookupMIIM resolves a register name, case-insensitively, or a numeric code.
func lookupMIIM(name string) (miim.Address, error) {
	if a, ok := miim.Lookup(name); ok {
		return a, nil
	}
	for _, a := range miim.Addresses() {
		if strings.EqualFold(a.Layout().Name, name) {
			return a, nil
		}
	}
	code, err := strconv.ParseUint(name, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("unknown MIIM register %q", name)
	}
	return miim.ParseAddress(uint8(code))
}

// parseWord parses a register value in any base strconv accepts.
func parseWord(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q", s)
	}
	return uint16(v), nil
}

// parseFieldValue parses the right-hand side of a field assignment. Bits
// also accept true/false and on/off.
func parseFieldValue(f *register.Field, s string) (uint16, error) {
	if f.IsBit() {
		switch strings.ToLower(s) {
		case "true", "on", "set":
			return 1, nil
		case "false", "off", "clear":
			return 0, nil
		}
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q for %s", s, f.Name)
	}
	if v>>f.Bits() != 0 {
		return 0, fmt.Errorf("value %s does not fit %s (%d bits)", s, f.Name, f.Bits())
	}
	return uint16(v), nil
}
