// Package miim provides typed access to the IEEE 802.3 registers of the
// KSZ8863 PHYs, reached over MIIM. Each PHY has its own set of 16-bit
// registers selected by its PHY address.
//
// A Miim hands out one Phy per PHY address. The Phy is created on first
// use and reused afterwards; it carries the PHY address so register
// handles only need the register address:
//
//	m := miim.New(mdio)
//	phy := m.Phy(miim.DefaultPHYAddrs[0])
//
//	bsr, err := phy.Bsr().Read()
//	if bsr.LinkStatus().IsSet() { ... }
//
//	err = phy.Bcr().Modify(func(w *miim.BcrW) { w.RestartAutoneg().Set() })
//
// The register types and their layouts are generated by ksz-regen from
// tables/ksz8863/miim.yaml into registers_gen.go.
package miim
