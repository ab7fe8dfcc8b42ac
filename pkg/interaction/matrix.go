// Package interaction cross-references herbal remedies against medications
// using a static contraindication matrix. The matrix is read-only after
// process start and shared across all users.
package interaction

// Severity ranks how dangerous a herb-medication combination is.
type Severity string

const (
	SeverityModerate Severity = "MODERATE"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// rank supports explicit severity sorting by callers; Evaluate itself keeps
// input order.
func (s Severity) rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityModerate:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s is at least as severe as other.
func (s Severity) AtLeast(other Severity) bool { return s.rank() >= other.rank() }

type matrixEntry struct {
	Drugs        []string
	Severity     Severity
	Rationale    string
	Alternatives []string
}

// matrixOrder fixes iteration order over the matrix so evaluation output is
// reproducible.
var matrixOrder = []string{
	"ginger", "turmeric", "garlic", "ashwagandha", "licorice", "ginseng",
	"st johns wort", "valerian", "kava", "ginkgo", "echinacea",
}

var matrix = map[string]matrixEntry{
	"ginger": {
		Drugs:        []string{"aspirin", "ibuprofen", "warfarin", "blood thinner", "coumadin", "plavix", "clopidogrel", "anticoagulant"},
		Severity:     SeverityHigh,
		Rationale:    "Ginger inhibits platelet aggregation (blood thinning effect). Combined with anticoagulants, this significantly increases bleeding risk - bruising, prolonged bleeding from cuts, or internal bleeding.",
		Alternatives: []string{"Peppermint oil (topical)", "Lavender aromatherapy", "Cold compress", "Chamomile tea"},
	},
	"turmeric": {
		Drugs:        []string{"aspirin", "warfarin", "blood thinner", "coumadin", "metformin", "diabetes medication", "insulin"},
		Severity:     SeverityHigh,
		Rationale:    "Curcumin has antiplatelet effects and can lower blood sugar. Risk of bleeding with anticoagulants and hypoglycemia with diabetes medications.",
		Alternatives: []string{"Boswellia (for inflammation)", "Cold compress", "Rest and elevation", "Omega-3 foods"},
	},
	"garlic": {
		Drugs:        []string{"aspirin", "warfarin", "blood thinner", "hiv medication", "saquinavir"},
		Severity:     SeverityModerate,
		Rationale:    "Garlic has blood-thinning properties. Use only small culinary amounts with blood thinners.",
		Alternatives: []string{"Onion (milder effect)", "Oregano", "Thyme"},
	},
	"ashwagandha": {
		Drugs:        []string{"thyroid medication", "levothyroxine", "synthroid", "sedative", "benzodiazepine", "immunosuppressant"},
		Severity:     SeverityHigh,
		Rationale:    "Ashwagandha stimulates thyroid function and has sedative properties. May interfere with thyroid medication dosing and compound sedative effects.",
		Alternatives: []string{"Chamomile tea (for stress)", "Lavender aromatherapy", "Deep breathing exercises", "Brahmi"},
	},
	"licorice": {
		Drugs:        []string{"blood pressure medication", "bp medicine", "antihypertensive", "diuretic", "digoxin", "heart medication"},
		Severity:     SeverityHigh,
		Rationale:    "Glycyrrhizin in licorice raises blood pressure and depletes potassium. Counteracts BP medications and can cause dangerous heart rhythms with digoxin.",
		Alternatives: []string{"Honey (for sore throat)", "Slippery elm", "Marshmallow root"},
	},
	"ginseng": {
		Drugs:        []string{"warfarin", "blood thinner", "diabetes medication", "metformin", "insulin", "antidepressant", "maoi"},
		Severity:     SeverityModerate,
		Rationale:    "Ginseng affects blood clotting and blood sugar levels. Has stimulant properties that may interact with MAOIs.",
		Alternatives: []string{"Green tea (moderate amounts)", "Peppermint tea", "Amla"},
	},
	"st johns wort": {
		Drugs:        []string{"antidepressant", "ssri", "birth control", "contraceptive", "hiv medication", "immunosuppressant", "warfarin"},
		Severity:     SeverityCritical,
		Rationale:    "St. John's Wort induces liver enzymes (CYP450), dramatically reducing effectiveness of many medications. Risk of serotonin syndrome with SSRIs.",
		Alternatives: []string{"Lavender", "Chamomile", "Exercise", "Light therapy"},
	},
	"valerian": {
		Drugs:        []string{"sedative", "benzodiazepine", "sleep medication", "ambien", "alcohol"},
		Severity:     SeverityHigh,
		Rationale:    "Valerian has sedative effects that compound with other CNS depressants, risking over-sedation or respiratory depression.",
		Alternatives: []string{"Chamomile tea", "Warm milk", "Lavender aromatherapy", "Sleep hygiene practices"},
	},
	"kava": {
		Drugs:        []string{"alcohol", "sedative", "benzodiazepine", "antidepressant", "levodopa"},
		Severity:     SeverityCritical,
		Rationale:    "Kava has significant hepatotoxicity risk and compounds with other sedatives. Can interfere with dopamine medications.",
		Alternatives: []string{"Chamomile", "Passionflower", "Lavender"},
	},
	"ginkgo": {
		Drugs:        []string{"aspirin", "warfarin", "blood thinner", "nsaid", "ibuprofen"},
		Severity:     SeverityHigh,
		Rationale:    "Ginkgo inhibits platelet activating factor, increasing bleeding risk with anticoagulants.",
		Alternatives: []string{"Brahmi (for cognitive support)", "Green tea", "Omega-3 fatty acids"},
	},
	"echinacea": {
		Drugs:        []string{"immunosuppressant", "cyclosporine", "corticosteroid"},
		Severity:     SeverityModerate,
		Rationale:    "Echinacea stimulates the immune system, potentially counteracting immunosuppressive therapy.",
		Alternatives: []string{"Vitamin C foods", "Zinc lozenges", "Rest and hydration"},
	},
}

// CoveredHerbs returns the herbs the matrix knows about, in matrix order.
func CoveredHerbs() []string {
	out := make([]string, len(matrixOrder))
	copy(out, matrixOrder)
	return out
}
