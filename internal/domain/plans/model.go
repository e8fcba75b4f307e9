package plans

// PlanID identifica un plan de suscripción.
// @Enum free, essence, celestial
type PlanID string

const (
	PlanFree      PlanID = "free"
	PlanEssence   PlanID = "essence"
	PlanCelestial PlanID = "celestial"
)

// Feature es una capability que un plan habilita.
type Feature string

const (
	FeatureDailyHoroscope      Feature = "daily_horoscope"
	FeatureBasicBirthChart     Feature = "basic_birth_chart"
	FeatureMoonPhaseTracker    Feature = "moon_phase_tracker"
	FeaturePersonalizedPredict Feature = "personalized_predictions"
	FeatureTransitAnalysis     Feature = "detailed_transit_analysis"
	FeatureRelationshipCompat  Feature = "relationship_compatibility"
	FeatureCareerGuidance      Feature = "career_guidance"
	FeatureVideoConsultations  Feature = "video_consultations"
)

type FeatureInfo struct {
	Feature Feature
	Label   string
}

// allFeatures en el orden de la pantalla de upgrade.
var allFeatures = []FeatureInfo{
	{FeatureDailyHoroscope, "Daily horoscope"},
	{FeatureBasicBirthChart, "Basic birth chart"},
	{FeatureMoonPhaseTracker, "Moon phase tracker"},
	{FeaturePersonalizedPredict, "Personalized predictions"},
	{FeatureTransitAnalysis, "Detailed transit analysis"},
	{FeatureRelationshipCompat, "Relationship compatibility"},
	{FeatureCareerGuidance, "Career guidance"},
	{FeatureVideoConsultations, "Video consultations"},
}

type Plan struct {
	ID          PlanID
	Name        string
	PriceINR    int
	Description string
	Popular     bool

	// Cantidad de features de allFeatures incluidas (prefijo).
	included int
}

func (p Plan) Includes(f Feature) bool {
	for i, fi := range allFeatures {
		if fi.Feature == f {
			return i < p.included
		}
	}
	return false
}

// Features devuelve el mapa completo feature => incluida.
func (p Plan) Features() map[string]bool {
	out := make(map[string]bool, len(allFeatures))
	for i, fi := range allFeatures {
		out[string(fi.Feature)] = i < p.included
	}
	return out
}

var catalog = []Plan{
	{ID: PlanFree, Name: "Free", PriceINR: 0, Description: "Basic astrology insights for casual users", included: 3},
	{ID: PlanEssence, Name: "Essence", PriceINR: 199, Description: "Enhanced insights for the curious seeker", Popular: true, included: 5},
	{ID: PlanCelestial, Name: "Celestial", PriceINR: 499, Description: "Comprehensive guidance for serious practitioners", included: len(allFeatures)},
}

// Catalog devuelve los planes ordenados por precio.
func Catalog() []Plan {
	out := make([]Plan, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id PlanID) (Plan, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

func Features() []FeatureInfo {
	out := make([]FeatureInfo, len(allFeatures))
	copy(out, allFeatures)
	return out
}
