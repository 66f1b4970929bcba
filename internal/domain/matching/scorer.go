package matching

import (
	"math"
	"sort"

	"agrimatch/internal/domain/entity"
)

// Weights of each factor in the aggregate score. They sum to 1.
type Weights struct {
	ProductMatch        float64
	GeographicProximity float64
	QualityMatch        float64
	VolumeMatch         float64
	HistoricalSuccess   float64
	PriceMatch          float64
}

// DefaultWeights are the fixed marketplace weights.
var DefaultWeights = Weights{
	ProductMatch:        0.25,
	GeographicProximity: 0.20,
	QualityMatch:        0.15,
	VolumeMatch:         0.20,
	HistoricalSuccess:   0.10,
	PriceMatch:          0.10,
}

// Aggregate combines the factors into a rounded 0-100 match score.
func Aggregate(f entity.Factors, w Weights) int {
	sum := w.ProductMatch*f.ProductMatch +
		w.GeographicProximity*f.GeographicProximity +
		w.QualityMatch*f.QualityMatch +
		w.VolumeMatch*f.VolumeMatch +
		w.HistoricalSuccess*f.HistoricalSuccess +
		w.PriceMatch*f.PriceMatch

	return int(math.Round(clamp(sum)))
}

// DistanceCalculator resolves the distance between two named regions.
type DistanceCalculator interface {
	Distance(from, to string) (km float64, ok bool)
}

// Settings tune candidate evaluation.
type Settings struct {
	// Candidates must score strictly above MinScore
	MinScore           int
	ProximityRadiusKm  float64
	TransportCostPerKm float64
}

// Pair is one producer-buyer combination with the data needed to score it.
type Pair struct {
	Producer *entity.Party
	Buyer    *entity.Party
	// Approved offerings of the producer
	Offerings       []entity.Offering
	CompletedOrders int
}

// Scorer evaluates pairs into candidates. It holds no mutable state and is
// safe for concurrent use.
type Scorer struct {
	distance DistanceCalculator
	weights  Weights
	settings Settings
}

// NewScorer creates a scorer with the default weights.
func NewScorer(distance DistanceCalculator, settings Settings) *Scorer {
	return &Scorer{
		distance: distance,
		weights:  DefaultWeights,
		settings: settings,
	}
}

// Factors computes the six sub-scores of a pair along with the distance used.
func (s *Scorer) Factors(p Pair) (f entity.Factors, distanceKm float64, known bool) {
	prefs := p.Buyer.Preferences
	distanceKm, known = s.distance.Distance(p.Producer.Region, p.Buyer.Region)

	f = entity.Factors{
		ProductMatch:        ProductMatch(p.Offerings, prefs),
		GeographicProximity: GeographicProximity(distanceKm, known, s.settings.ProximityRadiusKm),
		QualityMatch:        QualityMatch(p.Offerings),
		VolumeMatch:         VolumeMatch(p.Offerings, prefs),
		HistoricalSuccess:   HistoricalSuccess(p.CompletedOrders),
		PriceMatch:          PriceMatch(p.Offerings, prefs),
	}
	if !known {
		distanceKm = 0
	}

	return f, distanceKm, known
}

// Evaluate scores the pair and reports whether it clears the threshold.
// The returned candidate's counterpart is left for the caller to set.
func (s *Scorer) Evaluate(p Pair) (entity.Candidate, bool) {
	factors, distanceKm, known := s.Factors(p)
	score := Aggregate(factors, s.weights)
	if score <= s.settings.MinScore {
		return entity.Candidate{}, false
	}

	matched := MatchedOfferings(p.Offerings, p.Buyer.Preferences)

	return entity.Candidate{
		ProducerID:             p.Producer.ID,
		BuyerID:                p.Buyer.ID,
		MatchScore:             score,
		Factors:                factors,
		MatchedOfferings:       matched,
		DistanceKm:             distanceKm,
		DistanceKnown:          known,
		EstimatedTransportCost: math.Round(distanceKm * s.settings.TransportCostPerKm),
		PotentialRevenue:       PotentialRevenue(matched),
	}, true
}

// MatchedOfferings snapshots the offerings whose category the buyer prefers.
func MatchedOfferings(offerings []entity.Offering, prefs *entity.BuyerPreferences) []entity.MatchedOffering {
	wanted := make(map[string]struct{})
	for _, c := range prefs.Categories() {
		wanted[entity.NormalizeCategory(c)] = struct{}{}
	}

	out := make([]entity.MatchedOffering, 0, len(offerings))
	for _, o := range offerings {
		if _, ok := wanted[entity.NormalizeCategory(o.Category)]; ok {
			out = append(out, o.Snapshot())
		}
	}

	return out
}

// PotentialRevenue sums quantity times price over the matched offerings.
func PotentialRevenue(matched []entity.MatchedOffering) float64 {
	var sum float64
	for _, m := range matched {
		sum += m.Quantity * m.Price
	}

	return sum
}

// Rank sorts candidates by descending score. Ties keep their input order.
func Rank(candidates []entity.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].MatchScore > candidates[j].MatchScore
	})
}
