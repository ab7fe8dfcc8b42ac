package lexicon

var medications = []Entry{
	{Canonical: "aspirin", Keywords: []string{"aspirin", "disprin", "ecosprin"}},
	{Canonical: "ibuprofen", Keywords: []string{"ibuprofen", "advil", "motrin", "brufen"}},
	{Canonical: "paracetamol", Keywords: []string{"paracetamol", "acetaminophen", "tylenol", "crocin", "dolo"}},
	{Canonical: "warfarin", Keywords: []string{"warfarin", "coumadin"}},
	{Canonical: "blood thinner", Keywords: []string{"blood thinner", "blood thinners", "anticoagulant"}},
	{Canonical: "metformin", Keywords: []string{"metformin", "glycomet", "glucophage"}},
	{Canonical: "insulin", Keywords: []string{"insulin"}},
	{Canonical: "blood pressure medication", Keywords: []string{"blood pressure", "bp medicine", "bp medication", "bp med", "antihypertensive", "amlodipine", "lisinopril"}},
	{Canonical: "thyroid medication", Keywords: []string{"thyroid", "levothyroxine", "synthroid", "thyroxine", "eltroxin"}},
	{Canonical: "antidepressant", Keywords: []string{"antidepressant", "ssri", "prozac", "zoloft", "lexapro", "sertraline", "fluoxetine"}},
	{Canonical: "sedative", Keywords: []string{"sedative", "sleeping pill", "sleep medication", "benzodiazepine", "alprazolam", "xanax"}},
	{Canonical: "statin", Keywords: []string{"statin", "atorvastatin", "cholesterol medicine", "lipitor"}},
	{Canonical: "pantoprazole", Keywords: []string{"pantoprazole", "pantop", "protonix", "pan d", "pan-d"}},
	{Canonical: "omeprazole", Keywords: []string{"omeprazole", "omez", "prilosec"}},
	{Canonical: "metoprolol", Keywords: []string{"metoprolol", "beta blocker"}},
	{Canonical: "prednisone", Keywords: []string{"prednisone", "steroid", "corticosteroid"}},
	{Canonical: "antibiotic", Keywords: []string{"antibiotic", "amoxicillin", "azithromycin", "ciprofloxacin"}},
	{Canonical: "immunosuppressant", Keywords: []string{"immunosuppressant", "cyclosporine", "tacrolimus"}},
}
