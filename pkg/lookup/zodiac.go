package lookup

import "github.com/de-tools/destiny-report/pkg/models/domain"

// BodyZone is the part of the body a zodiac sign governs and what can be worn there.
type BodyZone struct {
	Sign        string
	BodyPart    string
	Accessories []string
}

var zodiacSigns = []string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

var bodyZones = map[string]BodyZone{
	"Aries":       {BodyPart: "Head / Hair region", Accessories: []string{"Ear pins", "Hairpins", "Headband"}},
	"Taurus":      {BodyPart: "Neck", Accessories: []string{"Necklace"}},
	"Gemini":      {BodyPart: "Shoulders / Arms", Accessories: []string{"Mobile", "Ring", "Bracelet", "Wristwatch", "Pens"}},
	"Cancer":      {BodyPart: "Chest (Center)", Accessories: []string{"Long pendant"}},
	"Leo":         {BodyPart: "Chest (Left side)", Accessories: []string{"Broach"}},
	"Virgo":       {BodyPart: "Waist / Pockets", Accessories: []string{"Pocket emulates", "Charms (kept in side pocket)"}},
	"Libra":       {BodyPart: "Waist", Accessories: []string{"Belt", "Waistband", "Kamarbandh"}},
	"Scorpio":     {BodyPart: "Private / inner clothing area", Accessories: []string{"Color of undergarments"}},
	"Sagittarius": {BodyPart: "Thighs", Accessories: []string{"Shorts", "Trouser pockets"}},
	"Capricorn":   {BodyPart: "Knees / lower legs", Accessories: []string{"Trousers", "Lowers"}},
	"Aquarius":    {BodyPart: "Ankles", Accessories: []string{"Anklet"}},
	"Pisces":      {BodyPart: "Feet", Accessories: []string{"Shoes", "Footwear", "Toe rings"}},
}

// Rahu and Ketu are listed as co-rulers.
var rulership = map[domain.Planet][]string{
	domain.PlanetSun:     {"Leo"},
	domain.PlanetMoon:    {"Cancer"},
	domain.PlanetMars:    {"Aries", "Scorpio"},
	domain.PlanetMercury: {"Gemini", "Virgo"},
	domain.PlanetJupiter: {"Sagittarius", "Pisces"},
	domain.PlanetVenus:   {"Taurus", "Libra"},
	domain.PlanetSaturn:  {"Capricorn", "Aquarius"},
	domain.PlanetRahu:    {"Aquarius"},
	domain.PlanetKetu:    {"Scorpio"},
}

func ZodiacSigns() []string {
	return copyOf(zodiacSigns)
}

func SignsRuledBy(p domain.Planet) []string {
	return copyOf(rulership[p])
}

func BodyZoneFor(sign string) (BodyZone, bool) {
	z, ok := bodyZones[sign]
	if !ok {
		return BodyZone{}, false
	}
	z.Sign = sign
	z.Accessories = copyOf(z.Accessories)
	return z, true
}

// BodyZonesForDirection walks direction -> ruling planets -> ruled signs ->
// body zones. Signs reached twice are reported once, in first-seen order.
func BodyZonesForDirection(d domain.Direction) []BodyZone {
	var zones []BodyZone
	seen := make(map[string]bool)
	for _, p := range PlanetsFor(d) {
		for _, sign := range rulership[p] {
			if seen[sign] {
				continue
			}
			seen[sign] = true
			if z, ok := BodyZoneFor(sign); ok {
				zones = append(zones, z)
			}
		}
	}
	return zones
}
