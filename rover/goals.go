package rover

// MissionComplete: charged at the battery with the sample extracted and not
// in hand.
func MissionComplete(s State) bool {
	return s.Loc == Battery && s.Charged && !s.HoldingSample && s.SampleExtracted
}

// AtSample holds once the rover reaches the sample site.
func AtSample(s State) bool { return s.Loc == Sample }

// SampleRemoved holds once the sample is extracted and held.
func SampleRemoved(s State) bool { return s.SampleExtracted && s.HoldingSample }

// Recharged holds when the rover is charged at the battery.
func Recharged(s State) bool { return s.Loc == Battery && s.Charged }
