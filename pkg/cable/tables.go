package cable

// Material is a conductor whose thermal conductivity integral from 4 K,
// K(T) = ∫_4^T k dT in W/m, is tabulated at thermalTemps.
type Material string

const (
	StainlessSteel Material = "ss304"
	CopperNickel   Material = "cuni"
	NiobiumTitan   Material = "nbti"
)

var thermalTemps = []float64{4, 10, 20, 50, 77, 100, 150, 200, 250, 300}

// Integrated from NIST cryogenic material property curves.
var conductivity = map[Material][]float64{
	StainlessSteel: {0, 3.0, 16.7, 137, 326, 524, 1042, 1654, 2334, 3064},
	CopperNickel:   {0, 6, 25, 180, 480, 800, 1700, 2800, 4100, 5500},
	NiobiumTitan:   {0, 1.0, 8, 70, 165, 275, 600, 1000, 1450, 1950},
}

// Cable describes one line of a cable type.
type Cable struct {
	Material     Material
	CrossSection float64   // m² of metal per line, inner plus outer conductor
	Attenuation  []float64 // dB/m at attenuationGHz
}

var attenuationGHz = []float64{0.5, 1, 2, 5, 10, 20}

// UT-085 semi-rigid coax: 2.197 mm outer conductor, 0.511 mm centre pin.
const ut085CrossSection = 1.78e-6

var cables = map[string]Cable{
	"ut085_ss": {
		Material:     StainlessSteel,
		CrossSection: ut085CrossSection,
		Attenuation:  []float64{2.4, 3.4, 4.8, 7.6, 10.8, 15.2},
	},
	"ut085_cuni": {
		Material:     CopperNickel,
		CrossSection: ut085CrossSection,
		Attenuation:  []float64{2.0, 2.8, 4.0, 6.3, 8.9, 12.6},
	},
	"ut085_nbti": {
		Material:     NiobiumTitan,
		CrossSection: ut085CrossSection,
		Attenuation:  []float64{0.05, 0.08, 0.12, 0.2, 0.35, 0.6},
	},
	"flex_nbti": {
		Material:     NiobiumTitan,
		CrossSection: 2e-8,
		Attenuation:  []float64{0.1, 0.15, 0.25, 0.45, 0.8, 1.4},
	},
}

// Amplifier power per line in watts, dissipated at the cold end.
var amplifiers = map[string]float64{
	"none":      0,
	"hemt":      10e-3,
	"cryo_cmos": 2e-3,
}
