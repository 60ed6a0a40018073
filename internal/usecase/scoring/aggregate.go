package scoring

import (
	"math"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// Ideal speaking-rate band in words per minute. Speaking outside the band
// costs one pace point per WPM unit of distance.
const (
	paceBandLow  = 120.0
	paceBandHigh = 160.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func paceScore(wpm float64) float64 {
	penalty := 0.0
	switch {
	case wpm < paceBandLow:
		penalty = paceBandLow - wpm
	case wpm > paceBandHigh:
		penalty = wpm - paceBandHigh
	}
	return clamp(100-penalty, 0, 100)
}

func fillerScore(density float64) float64 {
	return clamp(100-density*400, 0, 100)
}

func deliveryScore(m entities.Measurements) float64 {
	return clamp(0.6*paceScore(m.WPM)+0.4*fillerScore(m.FillerDensity), 0, 100)
}

// communicationScore blends grammar cleanliness and vocabulary diversity
// 50/50. An unavailable grammar checker contributes the neutral default and
// reports the degradation.
func communicationScore(m entities.Measurements) (float64, bool) {
	grammar := entities.NeutralScore
	degraded := !m.GrammarChecked
	if m.GrammarChecked && m.WordCount > 0 {
		density := float64(m.GrammarErrors) / float64(m.WordCount)
		grammar = clamp(100-density*500, 0, 100)
	}
	vocab := clamp(m.VocabularyDiversity/0.65*100, 0, 100)
	return clamp(0.5*grammar+0.5*vocab, 0, 100), degraded
}

// voiceScore rewards moderate pitch variation and steady energy. A nil
// acoustic summary yields exactly the neutral default plus the degraded flag,
// which is distinct from a flat voice that measured zeros.
func voiceScore(audio *entities.AudioFeatures) (float64, bool) {
	if audio == nil {
		return entities.NeutralScore, true
	}
	score := 0.6*pitchVariationScore(audio.PitchStdev) + 0.4*energySteadinessScore(audio.EnergyStdev)
	return clamp(score, 0, 100), false
}

// pitchVariationScore maps pitch stdev (Hz) onto [0,100]: monotone speech
// scores low, 25-50 Hz is the optimal band, erratic pitch is penalized.
func pitchVariationScore(std float64) float64 {
	switch {
	case std < 15:
		return std / 15 * 50
	case std < 25:
		return 50 + (std-15)/10*30
	case std <= 50:
		return 80 + (std-25)/25*20
	case std <= 70:
		return 100 - (std-50)/20*30
	default:
		return math.Max(50, 70-(std-70)*0.5)
	}
}

// energySteadinessScore maps energy stdev (dB) onto [0,100]: very low
// variation reads as flat affect, moderate variation is natural, very high
// variation is erratic.
func energySteadinessScore(std float64) float64 {
	switch {
	case std < 3:
		return 75
	case std <= 8:
		return 90 + math.Min(10, 8-std)
	case std <= 15:
		return 90 - (std-8)/7*20
	default:
		return math.Max(50, 70-(std-15)*2)
	}
}

// projectionScore maps mean energy (dBFS, typically negative) onto [0,100]:
// stronger projection scores higher up to a ceiling, beyond which the
// speaker reads as too loud.
func projectionScore(energyMeanDb float64) float64 {
	n := energyMeanDb + 30
	switch {
	case n < 0:
		return math.Max(30, 50+n*2)
	case n < 10:
		return 50 + n*3
	case n < 20:
		return 80 + (n-10)*2
	case n < 25:
		return 100
	default:
		return math.Max(70, 100-(n-25)*4)
	}
}

// confidenceScore blends vocal projection with filler density. Without audio
// the projection part falls back to the neutral default while the filler
// part stays live.
func confidenceScore(m entities.Measurements) float64 {
	projection := entities.NeutralScore
	if m.Audio != nil {
		projection = projectionScore(m.Audio.EnergyMean)
	}
	return clamp(0.6*projection+0.4*fillerScore(m.FillerDensity), 0, 100)
}

// Aggregate assembles the six sub-scores into a score report. Content and
// structure arrive from their scorers; delivery, communication, voice and
// confidence derive from the measurements. Every sub-score is clamped at
// assignment and the final score is recomputed from the weight table.
func Aggregate(content, structure float64, m entities.Measurements, flags entities.ScoreFlags, star entities.StarAnalysis) *entities.ScoreReport {
	communication, grammarDegraded := communicationScore(m)
	voice, voiceDegraded := voiceScore(m.Audio)

	flags.DegradedGrammar = flags.DegradedGrammar || grammarDegraded
	flags.DegradedVoice = flags.DegradedVoice || voiceDegraded

	scores := entities.SubScores{
		Content:       clamp(content, 0, 100),
		Delivery:      deliveryScore(m),
		Communication: communication,
		Voice:         voice,
		Confidence:    confidenceScore(m),
		Structure:     clamp(structure, 0, 100),
	}
	return entities.NewScoreReport(scores, flags, m, star)
}
