package speech

import "github.com/zoralabs/zora/backend/internal/analysis/emotion"

// VoiceProfile carries the synthesis parameters tuned for one emotion. Values
// follow the Web Speech API ranges (rate/pitch around 1.0, volume 0..1).
type VoiceProfile struct {
	Rate   float64 `json:"rate"`
	Pitch  float64 `json:"pitch"`
	Volume float64 `json:"volume"`
}

var voiceProfiles = map[emotion.Label]VoiceProfile{
	emotion.Excited:    {Rate: 1.2, Pitch: 1.3, Volume: 1.0},
	emotion.Happy:      {Rate: 1.1, Pitch: 1.2, Volume: 1.0},
	emotion.Sad:        {Rate: 0.9, Pitch: 0.8, Volume: 0.8},
	emotion.Thoughtful: {Rate: 0.95, Pitch: 1.0, Volume: 0.9},
	emotion.Calm:       {Rate: 1.0, Pitch: 1.0, Volume: 0.9},
}

// ProfileFor returns the voice preset for an emotion, defaulting to the calm
// profile for anything unrecognized.
func ProfileFor(label emotion.Label) VoiceProfile {
	if profile, ok := voiceProfiles[label]; ok {
		return profile
	}
	return voiceProfiles[emotion.Calm]
}
