package search

// Synonyms maps a normalized single-word query term to its cluster of
// related normalized terms across pt/en/fr/de and informal variants.
// Lookup is exact-key over the whole normalized query, never per token.
var Synonyms = map[string][]string{
	// bags
	"mala":   {"mala", "bolsa", "bag", "sac", "tasche"},
	"malas":  {"mala", "bolsa", "bag", "sac", "tasche"},
	"bolsa":  {"mala", "bolsa", "bag", "sac", "tasche"},
	"bolsas": {"mala", "bolsa", "bag", "sac", "tasche"},
	"bag":    {"mala", "bolsa", "bag", "sac", "tasche"},
	"sac":    {"mala", "bolsa", "bag", "sac", "tasche"},

	// dresses
	"vestido":  {"vestido", "dress", "robe", "kleid"},
	"vestidos": {"vestido", "dress", "robe", "kleid"},
	"dress":    {"vestido", "dress", "robe", "kleid"},
	"robe":     {"vestido", "dress", "robe", "kleid"},

	// shoes and sneakers
	"tenis":    {"tenis", "sapatilha", "sneaker", "sneakers", "basket", "turnschuh"},
	"sapato":   {"sapato", "tenis", "shoe", "shoes", "chaussure", "schuh"},
	"sapatos":  {"sapato", "tenis", "shoe", "shoes", "chaussure", "schuh"},
	"sneaker":  {"tenis", "sapatilha", "sneaker", "basket"},
	"sneakers": {"tenis", "sapatilha", "sneaker", "basket"},
	"shoe":     {"sapato", "tenis", "shoe", "chaussure", "schuh"},
	"shoes":    {"sapato", "tenis", "shoe", "chaussure", "schuh"},

	// shirts
	"camisa":  {"camisa", "camiseta", "shirt", "chemise", "hemd"},
	"camisas": {"camisa", "camiseta", "shirt", "chemise", "hemd"},
	"shirt":   {"camisa", "camiseta", "shirt", "chemise", "hemd"},
	"tshirt":  {"camiseta", "t-shirt", "tshirt", "tee"},

	// trousers
	"calca":  {"calca", "calcas", "pants", "trousers", "pantalon", "hose"},
	"calcas": {"calca", "calcas", "pants", "trousers", "pantalon", "hose"},
	"pants":  {"calca", "calcas", "pants", "trousers", "pantalon", "hose"},

	// coats and jackets
	"casaco":  {"casaco", "jaqueta", "coat", "jacket", "manteau", "jacke"},
	"casacos": {"casaco", "jaqueta", "coat", "jacket", "manteau", "jacke"},
	"jaqueta": {"casaco", "jaqueta", "coat", "jacket", "blouson"},
	"jacket":  {"casaco", "jaqueta", "coat", "jacket", "blouson"},
	"coat":    {"casaco", "coat", "manteau", "mantel"},

	// skirts
	"saia":  {"saia", "skirt", "jupe", "rock"},
	"saias": {"saia", "skirt", "jupe", "rock"},
	"skirt": {"saia", "skirt", "jupe", "rock"},

	// belts
	"cinto":  {"cinto", "belt", "ceinture", "guertel"},
	"cintos": {"cinto", "belt", "ceinture", "guertel"},
	"belt":   {"cinto", "belt", "ceinture", "guertel"},

	// scarves
	"cachecol": {"cachecol", "lenco", "scarf", "echarpe", "schal"},
	"lenco":    {"cachecol", "lenco", "scarf", "echarpe", "schal"},
	"scarf":    {"cachecol", "lenco", "scarf", "echarpe", "schal"},

	// hats
	"chapeu":  {"chapeu", "bone", "hat", "cap", "chapeau", "hut"},
	"chapeus": {"chapeu", "bone", "hat", "cap", "chapeau", "hut"},
	"bone":    {"chapeu", "bone", "hat", "cap", "casquette"},
	"hat":     {"chapeu", "bone", "hat", "chapeau", "hut"},

	// wallets
	"carteira":  {"carteira", "wallet", "portefeuille", "geldboerse"},
	"carteiras": {"carteira", "wallet", "portefeuille", "geldboerse"},
	"wallet":    {"carteira", "wallet", "portefeuille", "geldboerse"},
}

// ExpandSynonyms returns the synonym cluster for a normalized single-word
// term. The key must equal the whole normalized query; a miss returns an
// empty slice, never an error.
func ExpandSynonyms(term string) []string {
	if term == "" {
		return []string{}
	}
	v, ok := Synonyms[term]
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(v))
	out = append(out, v...)
	return out
}
