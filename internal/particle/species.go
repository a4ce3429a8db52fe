package particle

// BoltzmannEVPerK is the Boltzmann constant in eV per kelvin, used to convert
// horizon temperatures into mass thresholds.
const BoltzmannEVPerK = 8.617333262e-5

// Species describes one emission channel of the evaporating hole.
type Species struct {
	Name       string
	Degeneracy float64 // internal degrees of freedom (spin, charge, flavor)
	MassEV     float64 // rest mass in eV; zero for massless channels
	Spin       float64
	Fermion    bool
}

// Standard Model channels that dominate emission below ~10^13 K, plus the
// graviton. Masses in eV, degeneracies counting particle and antiparticle.
var catalog = []Species{
	{Name: "photon", Degeneracy: 2, MassEV: 0, Spin: 1, Fermion: false},
	{Name: "graviton", Degeneracy: 2, MassEV: 0, Spin: 2, Fermion: false},
	{Name: "neutrino", Degeneracy: 6, MassEV: 0.1, Spin: 0.5, Fermion: true},
	{Name: "electron", Degeneracy: 4, MassEV: 5.11e5, Spin: 0.5, Fermion: true},
	{Name: "muon", Degeneracy: 4, MassEV: 1.057e8, Spin: 0.5, Fermion: true},
	{Name: "pion", Degeneracy: 3, MassEV: 1.396e8, Spin: 0, Fermion: false},
}

// Catalog returns the emission channels the evaporation model sums over.
// The returned slice is a copy; callers may filter or reorder it freely.
func Catalog() []Species {
	out := make([]Species, len(catalog))
	copy(out, catalog)
	return out
}
