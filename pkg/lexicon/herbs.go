package lexicon

var herbs = []string{
	"ginger", "turmeric", "peppermint", "mint", "garlic", "honey", "tulsi", "basil",
	"ashwagandha", "chamomile", "cinnamon", "clove", "licorice", "ginseng", "valerian",
	"neem", "amla", "fennel", "cumin", "coriander", "fenugreek", "ajwain", "cardamom",
	"lavender", "eucalyptus", "tea tree", "aloe vera", "aloe", "coconut oil",
	"ginkgo", "echinacea", "elderberry", "brahmi", "giloy", "triphala", "moringa",
	"shatavari", "black pepper", "cayenne", "oregano", "thyme", "rosemary",
	"st johns wort", "kava",
}
