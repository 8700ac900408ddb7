// Package sitedata holds the static page content of the site. It is rendered
// by the public handlers and never written at runtime; the database-backed
// collections (projects, listings) live in dao instead.
package sitedata

type Company struct {
	Name            string  `json:"name"`
	AltName         string  `json:"altName"`
	Tagline         string  `json:"tagline"`
	Address         string  `json:"address"`
	PhoneJoinery    string  `json:"phoneJoinery"`
	PhoneRealEstate string  `json:"phoneRealEstate"`
	Email           string  `json:"email"`
	MapsLat         float64 `json:"mapsLat"`
	MapsLng         float64 `json:"mapsLng"`
	MapsLink        string  `json:"mapsLink"`
}

type Pillar struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type Person struct {
	Name string `json:"name"`
	Role string `json:"role"`
	Note string `json:"note"`
}

type About struct {
	Title   string   `json:"title"`
	Story   string   `json:"story"`
	Mission string   `json:"mission"`
	Pillars []Pillar `json:"pillars"`
	People  []Person `json:"people"`
}

type Service struct {
	Title   string   `json:"title"`
	Intro   string   `json:"intro"`
	Bullets []string `json:"bullets"`
}

type ProductCategory struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Short       string   `json:"short"`
	Highlights  []string `json:"highlights"`
	USFASummary string   `json:"usfaSummary,omitempty"`
	USFABullets []string `json:"usfaBullets,omitempty"`
}

// USFAProductsURL links the stock product families to the association catalog.
const USFAProductsURL = "https://www.usfa.ch/it/prodotti"

var CompanyInfo = Company{
	Name:            "Fernando Curti SA",
	AltName:         "Falegnameria Curti SA",
	Tagline:         "Falegnameria • Serramenti • Porte • Mobili su misura",
	Address:         "Via Mastri Ligornettesi 32A, 6853 Ligornetto (TI) — Svizzera",
	PhoneJoinery:    "+41 91 647 24 35",
	PhoneRealEstate: "+41 91 210 21 91",
	Email:           "info@fernandocurti.ch",
	MapsLat:         45.8610357,
	MapsLng:         8.9463414,
	MapsLink:        "https://www.google.com/maps/place/Fernando+Curti+SA/@45.8610394,8.9437665,17z",
}

var AboutInfo = About{
	Title: "Una falegnameria di famiglia, un metodo contemporaneo.",
	Story: "Nel 1974 Fernando Curti avvia la sua attività di falegname, curando ogni fase della lavorazione di porte, armadi, finestre e cucine. " +
		"L'attuale officina in Via Mastri Ligornettesi viene costruita pochi anni dopo e nel 1988 nasce la Fernando Curti SA. " +
		"Nel tempo l'azienda cresce rimanendo a conduzione famigliare, oggi portata avanti dalle figlie di Fernando: Paola e Valentina.",
	Mission: "Un unico interlocutore affidabile per un servizio completo: supporto in progettazione, produzione, posa, assistenza post-vendita e — quando necessario — " +
		"supporto per pratiche burocratiche.",
	Pillars: []Pillar{
		{Title: "Progetto e misure", Text: "Rilievi accurati, consulenza tecnica e scelte guidate: dal dettaglio di ferramenta alla stratigrafia."},
		{Title: "Materiali e finiture", Text: "Essenza, verniciatura, trattamenti e manutenzione: estetica e durata devono convivere."},
		{Title: "Produzione e posa", Text: "Organizzazione chiara: produzione in officina, posa pulita e regolazioni finali su cantiere."},
		{Title: "Assistenza", Text: "Post-vendita e interventi: un riferimento unico anche dopo la consegna."},
	},
	People: []Person{
		{Name: "Paola Curti", Role: "Direzione", Note: "Coordinamento, relazione con il cliente e gestione delle fasi progettuali."},
		{Name: "Valentina Curti", Role: "Direzione", Note: "Gestione operativa, pianificazione e qualità del processo fino alla posa."},
	},
}

var Services = []Service{
	{
		Title:   "Porte interne e portoncini",
		Intro:   "Porte su misura con dettagli curati e posa pulita.",
		Bullets: []string{"Su misura", "Ferramenta e dettagli tecnici", "Posa e assistenza post-vendita"},
	},
	{
		Title:   "Serramenti e gelosie",
		Intro:   "Sistemi in legno con focus su risanamento e interventi energetici.",
		Bullets: []string{"Risanamento energetico", "Riduzione dispersioni", "Interventi il meno invasivi possibile"},
	},
	{
		Title:   "Cucine",
		Intro:   "Cucine su misura progettate sullo spazio reale e sull'uso quotidiano.",
		Bullets: []string{"Progettazione e rilievi", "Materiali e finiture", "Produzione e posa"},
	},
	{
		Title:   "Armadi e mobili su misura",
		Intro:   "Armadi, contenitori e arredi su misura per privati e professionisti.",
		Bullets: []string{"Per nicchie e fuori squadro", "Accessori e allestimenti interni", "Durabilità e manutenzione semplice"},
	},
}

var Products = []ProductCategory{
	{
		Slug:        "windows",
		Title:       "Finestre (legno)",
		Short:       "Finestre in legno con posa curata: comfort, prestazioni e dettaglio costruttivo.",
		Highlights:  []string{"Configurazione su progetto", "Vetri e guarnizioni su specifica", "Posa e sigillature curate"},
		USFASummary: "Famiglia prodotto certificabile con configurazione su specifica (materiali, vetri, ferramenta).",
		USFABullets: []string{"Profili e materiali su progetto", "Vetraggi e guarnizioni su specifica", "Posa e regolazioni"},
	},
	{
		Slug:       "shutters",
		Title:      "Gelosie / persiane",
		Short:      "Elementi esterni in legno per protezione e identità architettonica.",
		Highlights: []string{"Geometrie su misura", "Trattamenti protettivi", "Manutenzione e ripristini"},
	},
	{
		Slug:        "entrance-doors",
		Title:       "Portoncini d'entrata",
		Short:       "Ingressi su misura con dettagli tecnici curati.",
		Highlights:  []string{"Ferramenta e chiusure", "Soglie e battute", "Posa accurata"},
		USFASummary: "Portoncini configurabili (sicurezza, isolamento, finiture) con posa coordinata.",
		USFABullets: []string{"Pannelli e strutture su specifica", "Soglie e ferramenta su progetto", "Assistenza e manutenzione"},
	},
	{
		Slug:        "interior-doors",
		Title:       "Porte interne",
		Short:       "Porte interne con linee pulite, chiusure precise e finiture durevoli.",
		Highlights:  []string{"A battente o scorrevoli", "Finiture coordinate", "Posa e messa a punto"},
		USFASummary: "Famiglia porte interne su misura (tipologie, finiture e accessori).",
		USFABullets: []string{"Tipologia e apertura su specifica", "Maniglie e finiture", "Posa e regolazioni finali"},
	},
	{
		Slug:       "wardrobes",
		Title:      "Armadi su misura",
		Short:      "Spazi ottimizzati e fruibilità reale: composizioni su misura per nicchie e pareti attrezzate.",
		Highlights: []string{"Interni modulari", "Accessori su richiesta", "Ante battenti o scorrevoli"},
	},
	{
		Slug:       "usfa-stock",
		Title:      "Prodotti a stock (USFA)",
		Short:      "Prodotti a stock e disponibilità veloce dal circuito USFA (quando possibile).",
		Highlights: []string{"Disponibilità variabile", "Soluzioni pronte", "Supporto scelta e posa"},
	},
}

// Images used by the hero and card sections of the static pages.
var Images = map[string]map[string]string{
	"hero": {
		"default": "https://images.unsplash.com/photo-1505798577917-a65157d3320a?auto=format&fit=crop&w=2400&q=80",
	},
	"services": {
		"arredi":     "https://images.unsplash.com/photo-1615876234886-fd9a39fda97f?auto=format&fit=crop&w=1600&q=80",
		"serramenti": "https://images.unsplash.com/photo-1523413651479-597eb2da0ad6?auto=format&fit=crop&w=1600&q=80",
		"porte":      "https://images.unsplash.com/photo-1600585154340-be6161a56a0c?auto=format&fit=crop&w=1600&q=80",
	},
	"projects": {
		"cucina":     "https://images.unsplash.com/photo-1556912172-45b7abe8b7e1?auto=format&fit=crop&w=1600&q=80",
		"portoncino": "https://images.unsplash.com/photo-1520607162513-77705c0f0d4a?auto=format&fit=crop&w=1600&q=80",
		"armadio":    "https://images.unsplash.com/photo-1618221195710-dd6b41faaea6?auto=format&fit=crop&w=1600&q=80",
	},
}
