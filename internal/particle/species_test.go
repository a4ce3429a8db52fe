package particle

import "testing"

func TestCatalogIntegrity(t *testing.T) {
	cat := Catalog()
	if len(cat) != 6 {
		t.Fatalf("expected 6 species, got %d", len(cat))
	}

	validSpins := map[float64]bool{0: true, 0.5: true, 1: true, 2: true}
	for _, sp := range cat {
		if sp.Name == "" {
			t.Errorf("species with empty name: %+v", sp)
		}
		if sp.Degeneracy <= 0 {
			t.Errorf("%s: degeneracy must be positive, got %v", sp.Name, sp.Degeneracy)
		}
		if sp.MassEV < 0 {
			t.Errorf("%s: negative mass %v", sp.Name, sp.MassEV)
		}
		if !validSpins[sp.Spin] {
			t.Errorf("%s: unexpected spin %v", sp.Name, sp.Spin)
		}
		if sp.Fermion != (sp.Spin == 0.5) {
			t.Errorf("%s: fermion flag %v inconsistent with spin %v", sp.Name, sp.Fermion, sp.Spin)
		}
	}
}

func TestCatalogMasslessChannels(t *testing.T) {
	massless := 0
	for _, sp := range Catalog() {
		if sp.MassEV == 0 {
			massless++
		}
	}
	if massless != 2 {
		t.Errorf("expected photon and graviton massless, got %d massless channels", massless)
	}
}

func TestCatalogReturnsCopy(t *testing.T) {
	first := Catalog()
	first[0].Degeneracy = 999

	second := Catalog()
	if second[0].Degeneracy == 999 {
		t.Error("mutating a returned catalog leaked into the canonical table")
	}
}
