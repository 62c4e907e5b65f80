package miim

import "slices"

// Sim simulates the registers of several PHYs. Each PHY address gets its
// own Map, created with default values on first access.
type Sim struct {
	maps map[uint8]*Map
}

// NewSim returns an empty Sim.
func NewSim() *Sim {
	return &Sim{maps: make(map[uint8]*Map)}
}

// Map returns the register map of the PHY at phy.
func (s *Sim) Map(phy uint8) *Map {
	m, ok := s.maps[phy]
	if !ok {
		m = NewMap()
		s.maps[phy] = m
	}
	return m
}

// PHYs returns the addresses of the PHYs accessed successfully so far, in
// ascending order.
func (s *Sim) PHYs() []uint8 {
	out := make([]uint8, 0, len(s.maps))
	for phy := range s.maps {
		out = append(out, phy)
	}
	slices.Sort(out)
	return out
}

// Read returns register reg of the PHY at phy. An unknown reg fails without
// creating the PHY.
func (s *Sim) Read(phy, reg uint8) (uint16, error) {
	if _, err := ParseAddress(reg); err != nil {
		return 0, err
	}
	return s.Map(phy).Read(phy, reg)
}

// Write stores register reg of the PHY at phy. An unknown reg fails without
// creating the PHY.
func (s *Sim) Write(phy, reg uint8, data uint16) error {
	if _, err := ParseAddress(reg); err != nil {
		return err
	}
	return s.Map(phy).Write(phy, reg, data)
}
