package lexicon

var conditions = []Entry{
	{Canonical: "headache", Keywords: []string{"headache", "head hurts", "head pain", "migraine", "head ache"}},
	{Canonical: "fever", Keywords: []string{"fever", "temperature", "feverish", "high temp"}},
	{Canonical: "cold", Keywords: []string{"cold", "runny nose", "sneezing", "stuffy nose", "congestion", "flu"}},
	{Canonical: "cough", Keywords: []string{"cough", "coughing", "dry cough", "wet cough", "persistent cough"}},
	{Canonical: "nausea", Keywords: []string{"nausea", "nauseous", "queasy", "want to vomit", "feeling sick"}},
	{Canonical: "indigestion", Keywords: []string{"indigestion", "bloating", "gas", "acidity", "heartburn", "acid reflux", "stomach upset"}},
	{Canonical: "sore throat", Keywords: []string{"sore throat", "throat pain", "throat hurts", "scratchy throat"}},
	{Canonical: "anxiety", Keywords: []string{"anxiety", "anxious", "worried", "nervous", "panic", "stressed"}},
	{Canonical: "stress", Keywords: []string{"stress", "stressed", "overwhelmed", "burnout", "tension"}},
	{Canonical: "insomnia", Keywords: []string{"insomnia", "cant sleep", "can't sleep", "trouble sleeping", "sleepless", "sleep problem"}},
	{Canonical: "fatigue", Keywords: []string{"fatigue", "tired", "exhausted", "no energy", "low energy", "weakness"}},
	{Canonical: "joint pain", Keywords: []string{"joint pain", "arthritis", "joints hurt", "knee pain", "joint ache"}},
	{Canonical: "back pain", Keywords: []string{"back pain", "backache", "back hurts", "lower back pain"}},
	{Canonical: "toothache", Keywords: []string{"toothache", "tooth pain", "tooth hurts", "dental pain"}},
	{Canonical: "acne", Keywords: []string{"acne", "pimples", "breakout", "zits", "skin breakout"}},
	{Canonical: "diarrhea", Keywords: []string{"diarrhea", "loose stools", "loose motions", "upset stomach"}},
	{Canonical: "constipation", Keywords: []string{"constipation", "constipated", "irregular bowel"}},
}
