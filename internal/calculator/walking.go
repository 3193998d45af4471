package calculator

// metBand maps walking speeds below upTo (mph) to a MET value.
type metBand struct {
	upTo float64
	met  float64
}

// walkingMETs is ordered by speed. Speeds at or above the last bound use maxWalkingMET.
var walkingMETs = []metBand{
	{upTo: 2.0, met: 2.0},
	{upTo: 2.5, met: 2.5},
	{upTo: 3.0, met: 3.0},
	{upTo: 3.5, met: 3.5},
	{upTo: 4.0, met: 4.0},
}

const (
	maxWalkingMET = 4.5

	// metPerInclinePercent is added to the base MET for every percent of incline.
	metPerInclinePercent = 0.5
)

// WalkingMET returns the MET value for walking at speedMph on the given
// incline (percent). Incline is not capped.
func WalkingMET(speedMph, incline float64) float64 {
	met := maxWalkingMET
	for _, band := range walkingMETs {
		if speedMph < band.upTo {
			met = band.met
			break
		}
	}
	return met + incline*metPerInclinePercent
}

// CalculateCaloriesBurned estimates kcal burned as MET × weight(kg) × hours.
func CalculateCaloriesBurned(weightLbs, speedMph, durationHours, incline float64) float64 {
	return WalkingMET(speedMph, incline) * lbsToKg(weightLbs) * durationHours
}

// CalculateMilesWalked returns the distance covered at a constant speed.
func CalculateMilesWalked(speedMph, durationHours float64) float64 {
	return speedMph * durationHours
}
