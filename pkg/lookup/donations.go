package lookup

import "github.com/de-tools/destiny-report/pkg/models/domain"

type Donation struct {
	Day           string
	Items         string
	Beneficiaries string
}

var donations = map[domain.Planet]Donation{
	domain.PlanetSun: {
		Day:           "Sunday",
		Items:         "Wheat, Jaggery, Copper, Red cloth, Ruby, Kumkum/Red sandalwood",
		Beneficiaries: "Brahmins, the poor, or temples",
	},
	domain.PlanetMoon: {
		Day:           "Monday",
		Items:         "Rice, Milk, curd, white sugar, White cloth, Silver, Pearls, Conch shell/white flowers",
		Beneficiaries: "Women, mothers, or temple priests",
	},
	domain.PlanetMars: {
		Day:           "Tuesday",
		Items:         "Red lentils (masoor dal), Red cloth, Copper/red coral, Jaggery, Weapons/iron tools",
		Beneficiaries: "Soldiers, laborers, temple caretakers",
	},
	domain.PlanetMercury: {
		Day:           "Wednesday",
		Items:         "Green vegetables, Whole green moong dal, Green cloth, Bronze utensils, Emerald, Tulsi plant",
		Beneficiaries: "Students, scholars, young people",
	},
	domain.PlanetJupiter: {
		Day:           "Thursday",
		Items:         "Turmeric (haldi), Yellow sweets/chana dal, Yellow cloth, Gold/brass, Banana/yellow flowers, Pukhraj",
		Beneficiaries: "Teachers, priests, spiritual people",
	},
	domain.PlanetVenus: {
		Day:           "Friday",
		Items:         "White sweets (kheer, mishri, sugar), White clothes, Silver, Fragrant items (itr/sandalwood), Diamond, Cow donation",
		Beneficiaries: "Women, artists, or the poor",
	},
	domain.PlanetSaturn: {
		Day:           "Saturday",
		Items:         "Black sesame seeds (til), Black cloth, Mustard oil, Iron, Urad dal (black gram), Blue sapphire",
		Beneficiaries: "Poor, handicapped, old people, sweepers",
	},
	domain.PlanetRahu: {
		Day:           "Saturday or Wednesday",
		Items:         "Black sesame, Mustard oil, Blue/black cloth, Coconut, Blanket, Mixed grains",
		Beneficiaries: "Orphanages, poor people, or temples",
	},
	domain.PlanetKetu: {
		Day:           "Tuesday or Thursday",
		Items:         "Brown blanket, Sesame, Dog food (feeding dogs), Multi-grain food, Flag at temple",
		Beneficiaries: "Temples, stray animals, poor",
	},
}

func DonationFor(p domain.Planet) (Donation, bool) {
	d, ok := donations[p]
	return d, ok
}
