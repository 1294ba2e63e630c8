package registry

import (
	"sort"

	"github.com/medsignal/auscultasim/internal/metrics"
	"github.com/medsignal/auscultasim/internal/synth"
)

func init() {
	metrics.CatalogueSize.Set(float64(len(profiles)))
}

// Kind tags which synthesizer family a condition belongs to.
type Kind int

const (
	KindCardiac Kind = iota
	KindFetal
	KindRespiratory
)

func (k Kind) String() string {
	switch k {
	case KindCardiac:
		return "cardiac"
	case KindFetal:
		return "fetal"
	case KindRespiratory:
		return "respiratory"
	}
	return "unknown"
}

// Profile binds a condition id to fully fixed synthesis parameters. Only
// the parameter set matching Kind is populated.
type Profile struct {
	ID    string
	Label string
	Kind  Kind

	Cardiac synth.CardiacParams
	Fetal   synth.FetalParams
	Resp    synth.RespParams
}

// synthesizer returns the profile's synthesizer with the caller's cycle
// count applied. Respiratory profiles also receive the sample count since
// they emit their final length directly.
func (p Profile) synthesizer(sampleCount, cycles int) synth.Synthesizer {
	switch p.Kind {
	case KindFetal:
		fp := p.Fetal
		fp.Cycles = cycles
		return fp
	case KindRespiratory:
		rp := p.Resp
		rp.Count = sampleCount
		rp.Cycles = cycles
		return rp
	default:
		cp := p.Cardiac
		cp.Cycles = cycles
		return cp
	}
}

// DefaultConditionID is substituted for any unknown condition id.
const DefaultConditionID = "heart-normal"

var profiles = map[string]Profile{
	"heart-normal": {
		ID: "heart-normal", Label: "Normal heart", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 75, NoiseAmp: 0.02, RRJitterFrac: 0.05},
	},
	"heart-failure": {
		ID: "heart-failure", Label: "Heart failure, S3/S4 gallop", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 65, NoiseAmp: 0.02, RRJitterFrac: 0.08, Gallop: true},
	},
	"aortic-stenosis": {
		ID: "aortic-stenosis", Label: "Aortic stenosis, systolic murmur", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 78, NoiseAmp: 0.02, RRJitterFrac: 0.05, SystolicMurmur: true},
	},
	"aortic-regurgitation": {
		ID: "aortic-regurgitation", Label: "Aortic regurgitation, diastolic murmur", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 72, NoiseAmp: 0.02, RRJitterFrac: 0.05, DiastolicMurmur: true},
	},
	"patent-ductus": {
		ID: "patent-ductus", Label: "Patent ductus arteriosus, continuous murmur", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 80, NoiseAmp: 0.02, RRJitterFrac: 0.05, ContinuousMurmur: true},
	},
	"pericarditis": {
		ID: "pericarditis", Label: "Pericarditis, friction rub", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 85, NoiseAmp: 0.03, RRJitterFrac: 0.06, Friction: true},
	},
	"tachycardia": {
		ID: "tachycardia", Label: "Sinus tachycardia", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 120, NoiseAmp: 0.02, RRJitterFrac: 0.04},
	},
	"bradycardia": {
		ID: "bradycardia", Label: "Sinus bradycardia", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 45, NoiseAmp: 0.02, RRJitterFrac: 0.04},
	},
	"arrhythmia": {
		ID: "arrhythmia", Label: "Arrhythmia, irregular RR", Kind: KindCardiac,
		Cardiac: synth.CardiacParams{HeartRate: 75, NoiseAmp: 0.03, RRJitterFrac: 0.35},
	},

	"fetal-normal": {
		ID: "fetal-normal", Label: "Normal fetal heart", Kind: KindFetal,
		Fetal: synth.FetalParams{HeartRate: 140, NoiseAmp: 0.03, RRJitterFrac: 0.07},
	},
	"fetal-tachycardia": {
		ID: "fetal-tachycardia", Label: "Fetal tachycardia", Kind: KindFetal,
		Fetal: synth.FetalParams{HeartRate: 180, NoiseAmp: 0.03, RRJitterFrac: 0.06},
	},
	"fetal-bradycardia": {
		ID: "fetal-bradycardia", Label: "Fetal bradycardia", Kind: KindFetal,
		Fetal: synth.FetalParams{HeartRate: 100, NoiseAmp: 0.03, RRJitterFrac: 0.06},
	},
	"fetal-movement": {
		ID: "fetal-movement", Label: "Fetal heart with movement artifacts", Kind: KindFetal,
		Fetal: synth.FetalParams{
			HeartRate: 140, NoiseAmp: 0.03, RRJitterFrac: 0.07,
			Movement: true, MovementIntensity: 1.5, MovementRatePerMin: 8,
		},
	},
	"uterine-contractions": {
		ID: "uterine-contractions", Label: "Fetal heart under uterine contractions", Kind: KindFetal,
		Fetal: synth.FetalParams{
			HeartRate: 140, NoiseAmp: 0.03, RRJitterFrac: 0.07,
			Contractions: true, ContractionRatePer10Min: 5,
			ContractionDurMin: 3, ContractionDurMax: 6,
		},
	},

	"breath-normal": {
		ID: "breath-normal", Label: "Normal breath sounds", Kind: KindRespiratory,
		Resp: synth.RespParams{BreathRate: 16, NoiseAmp: 0.05, Kind: synth.RespNormal},
	},
	"coarse-crackles": {
		ID: "coarse-crackles", Label: "Coarse crackles", Kind: KindRespiratory,
		Resp: synth.RespParams{BreathRate: 14, NoiseAmp: 0.05, Kind: synth.RespCoarseCrackles},
	},
	"fine-crackles": {
		ID: "fine-crackles", Label: "Fine crackles", Kind: KindRespiratory,
		Resp: synth.RespParams{BreathRate: 18, NoiseAmp: 0.05, Kind: synth.RespFineCrackles},
	},
	"wheeze": {
		ID: "wheeze", Label: "Expiratory wheeze", Kind: KindRespiratory,
		Resp: synth.RespParams{BreathRate: 20, NoiseAmp: 0.04, Kind: synth.RespWheeze},
	},
}

// Profiles lists the condition catalogue sorted by id.
func Profiles() []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Lookup resolves a condition id, substituting the default profile for
// unknown ids. It never fails.
func Lookup(id string) Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return profiles[DefaultConditionID]
}
