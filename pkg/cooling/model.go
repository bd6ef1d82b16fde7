package cooling

// Config holds the cryocooler model.
// Units:
//   - *K: kelvin
//   - *Factor: wall-plug watts per watt removed at the stage
//   - FirstStageBudgetW: watts
//
// Defaults describe an SHI RDE-418D4 4K cryocooler on an F-50 compressor
// drawing 7.5 kW:
//   - second stage at 4 K removes up to 2 W (3750 W/W, derated to 1000)
//   - first stage at 70 K removes up to 80 W (93.75 W/W)
//
// https://shicryogenics.com/product/rde-418d4-4k-cryocooler-series/
// https://shicryogenics.com/wp-content/uploads/2020/09/RDE-418D4_Capacity_Map-2.pdf
type Config struct {
	SecondStageMaxK   float64
	FirstStageMaxK    float64
	RoomMinK          float64
	RoomMaxK          float64
	SecondStageFactor float64
	FirstStageFactor  float64
	FirstStageBudgetW float64
}

// _defaultConfig returns a Config pre-filled with the RDE-418D4 figures.
func _defaultConfig() *Config {
	return &Config{
		SecondStageMaxK:   10,
		FirstStageMaxK:    80,
		RoomMinK:          200,
		RoomMaxK:          300,
		SecondStageFactor: 1000,
		FirstStageFactor:  93.75,
		FirstStageBudgetW: 80,
	}
}

// Stage is the cooling stage a component sits on.
type Stage int

const (
	Room Stage = iota
	FirstStage
	SecondStage
	Unbanded
)

func (s Stage) String() string {
	switch s {
	case Room:
		return "room"
	case FirstStage:
		return "first"
	case SecondStage:
		return "second"
	default:
		return "unbanded"
	}
}

// Overhead summarises one post-processing pass.
type Overhead struct {
	Factors     map[string]float64 // multiplier applied per component
	Stages      map[string]Stage
	AddedJ      float64 // energy added by cooling
	SecondStage bool    // some component sits below SecondStageMaxK
}
