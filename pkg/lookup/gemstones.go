package lookup

import "github.com/de-tools/destiny-report/pkg/models/domain"

type Gemstone struct {
	English string
	Hindi   string
	// HindiPlanet is the planet's own name in Devanagari with transliteration.
	HindiPlanet string
}

var gemstones = map[domain.Planet]Gemstone{
	domain.PlanetSun:     {English: "Ruby", Hindi: "माणिक्य (Maanikya)", HindiPlanet: "सूर्य (Surya)"},
	domain.PlanetMoon:    {English: "Pearl", Hindi: "मोती (Moti)", HindiPlanet: "चंद्र (Chandra)"},
	domain.PlanetMars:    {English: "Red Coral", Hindi: "मूंगा (Moonga)", HindiPlanet: "मंगल (Mangal)"},
	domain.PlanetMercury: {English: "Emerald", Hindi: "पन्ना (Panna)", HindiPlanet: "बुध (Budh)"},
	domain.PlanetJupiter: {English: "Yellow Sapphire", Hindi: "पुखराज (Pukhraj)", HindiPlanet: "बृहस्पति / गुरु (Brihaspati / Guru)"},
	domain.PlanetVenus:   {English: "Diamond", Hindi: "हीरा (Heera)", HindiPlanet: "शुक्र (Shukra)"},
	domain.PlanetSaturn:  {English: "Blue Sapphire", Hindi: "नीलम (Neelam)", HindiPlanet: "शनि (Shani)"},
	domain.PlanetRahu:    {English: "Hessonite (Gomed)", Hindi: "गोमेद (Gomed)", HindiPlanet: "राहु (Rahu)"},
	domain.PlanetKetu:    {English: "Cat's Eye", Hindi: "लहसुनिया (Lahsunia)", HindiPlanet: "केतु (Ketu)"},
}

func GemstoneFor(p domain.Planet) (Gemstone, bool) {
	g, ok := gemstones[p]
	return g, ok
}

type Mantra struct {
	Deity string
	Text  string
}

var mantras = map[domain.Planet]Mantra{
	domain.PlanetSun:     {Deity: "Lord Surya", Text: "Om Hram Hreem Hroum Sah Suryaya Namah"},
	domain.PlanetMoon:    {Deity: "Lord Shiva", Text: "Om Shram Shreem Shroum Sah Chandraya Namah"},
	domain.PlanetMars:    {Deity: "Lord Hanuman (or Kartikeya)", Text: "Om Kram Kreem Kroum Sah Bhaumaya Namah"},
	domain.PlanetMercury: {Deity: "Lord Vishnu", Text: "Om Bram Breem Broum Sah Budhaya Namah"},
	domain.PlanetJupiter: {Deity: "Lord Brihaspati or Lord Dakshinamurthy", Text: "Om Gram Greem Groum Sah Gurave Namah"},
	domain.PlanetVenus:   {Deity: "Goddess Lakshmi", Text: "Om Dram Dreem Droum Sah Shukraya Namah"},
	domain.PlanetSaturn:  {Deity: "Lord Shani Dev (or Lord Hanuman)", Text: "Om Pram Preem Proum Sah Shanaye Namah"},
	domain.PlanetRahu:    {Deity: "Goddess Durga / Lord Bhairava", Text: "Om Bhram Bhreem Bhroum Sah Rahave Namah"},
	domain.PlanetKetu:    {Deity: "Lord Ganesha", Text: "Om Stram Streem Stroum Sah Ketave Namah"},
}

func MantraFor(p domain.Planet) (Mantra, bool) {
	m, ok := mantras[p]
	return m, ok
}
