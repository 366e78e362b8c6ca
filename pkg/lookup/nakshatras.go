package lookup

import "github.com/de-tools/destiny-report/pkg/models/domain"

// Nakshatra holds the six symbol blocks copied into the form when a birth
// nakshatra is chosen. Each block is a list of "• " bullet lines.
type Nakshatra struct {
	MobileDisplayPicture string
	Beneficial           string
	Prosperity           string
	MentalPhysical       string
	Accomplishments      string
	Avoid                string
}

// Symbols converts the entry into the form's symbol fields.
func (n Nakshatra) Symbols() domain.NakshatraSymbols {
	return domain.NakshatraSymbols{
		MobileDisplayPicture: n.MobileDisplayPicture,
		Beneficial:           n.Beneficial,
		Prosperity:           n.Prosperity,
		MentalPhysical:       n.MentalPhysical,
		Accomplishments:      n.Accomplishments,
		Avoid:                n.Avoid,
	}
}

// NakshatraNames lists the 27 lunar mansions from Ashvini to Revati.
var NakshatraNames = []string{
	"Ashvini",
	"Bharani",
	"Krittika",
	"Rohini",
	"Mrigashira",
	"Ardra",
	"Punarvasu",
	"Pushya",
	"Ashlesha",
	"Magha",
	"Purva Phalguni",
	"Uttara Phalguni",
	"Hasta",
	"Chitra",
	"Swati",
	"Vishakha",
	"Anuradha",
	"Jyeshtha",
	"Mula",
	"Purva Ashadha",
	"Uttara Ashadha",
	"Shravana",
	"Dhanishta",
	"Shatabhisha",
	"Purva Bhadrapada",
	"Uttara Bhadrapada",
	"Revati",
}

var nakshatras = map[string]Nakshatra{
	"Ashvini": {
		MobileDisplayPicture: "• Drum/Pair of fish\n• Coiled serpent/Female cat/Owl/Blue sparrow",
		Beneficial:           "• Drum/Pair of fish\n• Coiled serpent/Female cat/Owl/Blue sparrow",
		Prosperity:           "• Inverted triangle/ELEPHANT/CROW\n• Winnowing Basket/MALE MONKEY",
		MentalPhysical:       "• Hand/fist/FEMALE BUFFALO/FALCON",
		Accomplishments:      "• Shoot of a plant/MALE BUFFALO\n• Tears/FEMALE DOG\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Avoid:                "• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• POTTER'S WHEEL/MALE TIGER\n• SWORD/MALE LION/PIGEON\n• BOW AND ARROW/FEMALE CAT/SWAN\n• Deer's head/FEMALE SERPENT/HEN\n• A drum/flute/FEMALE LION/PEACOCK\n• Sharp knife/GOAT/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
	},
	"Bharani": {
		MobileDisplayPicture: "• Horse head/HORSE/EAGLE\n• ROYAL THRONE/PALANQUIN/MOUSE/EAGLE",
		Beneficial:           "• Horse head/HORSE/EAGLE\n• ROYAL THRONE/PALANQUIN/MOUSE/EAGLE",
		Prosperity:           "• SHARP KNIFE/GOAT/PEACOCK\n• ELEPHANT TUSK/MALE MANGOOSE/STORK",
		MentalPhysical:       "• Bright jewel/pearl/FEMALE TIGER/WOODPECKER",
		Accomplishments:      "• Potter's wheel/MALE TIGER\n• SWORD/MALE LION/PIGEON\n• BOW AND ARROW/FEMALE CAT/SWAN",
		Avoid:                "• LOTUS/FEMALE DEER/NIGHTINGALE\n• Three foot prints/FEMALE MONKEY\n• Hand or Fist/FEMALE BUFFALO/FALCON\n• Chariot/SERPENT/WHITE OWL\n• Shoot of a plant/MALE BUFFALO\n• Tears/FEMALE DOG\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL\n• UDDER OF A COW/GOAT/SEA CROW\n• SERPENT IN WATER/FEMALE COW",
	},
	"Krittika": {
		MobileDisplayPicture: "• Inverted triangle/ELEPHANT/crow",
		Beneficial:           "• Inverted triangle/ELEPHANT/crow",
		Prosperity:           "• Three foot prints/FEMALE MONKEY\n• CHARIOT/SERPENT/WHITE OWL",
		MentalPhysical:       "• SHOOT OF A PLANT/MALE BUFFALO",
		Accomplishments:      "• Udder of a cow/GOAT/SEA CROW\n• SERPENT IN WATER/FEMALE COW\n• Lotus/FEMALE DEER/NIGHTINGALE",
		Avoid:                "• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• COILED SERPENT/FEMALE CAT/OWL\n• Potter's wheel/MALE TIGER\n• Drum/pair of fish/FEMALE ELEPHANT\n• Circular amulet/umbrella/ear rings/MALE DEER\n• SWORD/MALE LION/PIGEON\n• BOW AND ARROW/FEMALE CAT/SWAN\n• Deer's head/FEMALE SERPENT/HEN\n• A drum/flute/FEMALE LION/PEACOCK",
	},
	"Rohini": {
		MobileDisplayPicture: "• Sharp knife/GOAT/PEACOCK\n• MALE COW(NANDI)/PEACOCK",
		Beneficial:           "• Sharp knife/GOAT/PEACOCK\n• MALE COW(NANDI)/PEACOCK",
		Prosperity:           "• DEER'S HEAD/FEMALE SERPENT/HEN\n• Drum/FLUTE/FEMALE LION/PEACOCK",
		MentalPhysical:       "• POTTER'S WHEEL/MALE TIGER",
		Accomplishments:      "• COILED SERPENT/FEMALE CAT/OWL\n• Drum/pair of fish/FEMALE ELEPHANT\n• Circular amulet/umbrella/ear rings/MALE DEER",
		Avoid:                "• SERPENT IN WATER/FEMALE COW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Shoot of a plant\n• Tears/FEMALE DOG\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL\n• Horse head/HORSE/EAGLE\n• RETICULATED ROOT/MALE DOG/RED VULTURE\n• ROYAL THRONE/PALANQUIN/MOUSE/EAGLE\n• UDDER OF A COW/GOAT/SEA CROW",
	},
	"Mrigashira": {
		MobileDisplayPicture: "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Beneficial:           "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Prosperity:           "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		MentalPhysical:       "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Accomplishments:      "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Avoid:                "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON\n• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT\n• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
	},
	"Ardra": {
		MobileDisplayPicture: "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Beneficial:           "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Prosperity:           "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		MentalPhysical:       "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Accomplishments:      "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Avoid:                "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW\n• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE\n• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
	},
	"Punarvasu": {
		MobileDisplayPicture: "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Beneficial:           "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Prosperity:           "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		MentalPhysical:       "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Accomplishments:      "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Avoid:                "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT\n• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY\n• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
	},
	"Pushya": {
		MobileDisplayPicture: "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Beneficial:           "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Prosperity:           "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		MentalPhysical:       "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Accomplishments:      "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Avoid:                "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE\n• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK\n• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
	},
	"Ashlesha": {
		MobileDisplayPicture: "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Beneficial:           "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Prosperity:           "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		MentalPhysical:       "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Accomplishments:      "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Avoid:                "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY\n• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY\n• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
	},
	"Magha": {
		MobileDisplayPicture: "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Beneficial:           "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Prosperity:           "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		MentalPhysical:       "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Accomplishments:      "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Avoid:                "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK\n• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK\n• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
	},
	"Purva Phalguni": {
		MobileDisplayPicture: "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Beneficial:           "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Prosperity:           "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		MentalPhysical:       "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Accomplishments:      "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Avoid:                "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY\n• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL\n• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
	},
	"Uttara Phalguni": {
		MobileDisplayPicture: "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Beneficial:           "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Prosperity:           "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		MentalPhysical:       "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Accomplishments:      "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Avoid:                "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK\n• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON\n• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
	},
	"Hasta": {
		MobileDisplayPicture: "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Beneficial:           "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Prosperity:           "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		MentalPhysical:       "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Accomplishments:      "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Avoid:                "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL\n• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW\n• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
	},
	"Chitra": {
		MobileDisplayPicture: "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Beneficial:           "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Prosperity:           "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		MentalPhysical:       "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Accomplishments:      "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Avoid:                "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON\n• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT\n• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
	},
	"Swati": {
		MobileDisplayPicture: "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Beneficial:           "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Prosperity:           "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		MentalPhysical:       "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Accomplishments:      "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Avoid:                "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW\n• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE\n• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
	},
	"Vishakha": {
		MobileDisplayPicture: "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Beneficial:           "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Prosperity:           "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		MentalPhysical:       "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Accomplishments:      "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Avoid:                "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT\n• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY\n• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
	},
	"Anuradha": {
		MobileDisplayPicture: "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Beneficial:           "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Prosperity:           "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		MentalPhysical:       "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Accomplishments:      "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Avoid:                "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE\n• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK\n• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
	},
	"Jyeshtha": {
		MobileDisplayPicture: "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Beneficial:           "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Prosperity:           "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		MentalPhysical:       "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Accomplishments:      "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Avoid:                "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY\n• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY\n• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
	},
	"Mula": {
		MobileDisplayPicture: "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Beneficial:           "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Prosperity:           "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		MentalPhysical:       "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Accomplishments:      "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Avoid:                "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK\n• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK\n• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
	},
	"Purva Ashadha": {
		MobileDisplayPicture: "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Beneficial:           "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Prosperity:           "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		MentalPhysical:       "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Accomplishments:      "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Avoid:                "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY\n• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL\n• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
	},
	"Uttara Ashadha": {
		MobileDisplayPicture: "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Beneficial:           "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Prosperity:           "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		MentalPhysical:       "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Accomplishments:      "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Avoid:                "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK\n• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON\n• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
	},
	"Shravana": {
		MobileDisplayPicture: "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Beneficial:           "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Prosperity:           "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		MentalPhysical:       "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Accomplishments:      "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Avoid:                "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL\n• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW\n• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
	},
	"Dhanishta": {
		MobileDisplayPicture: "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Beneficial:           "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Prosperity:           "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		MentalPhysical:       "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Accomplishments:      "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Avoid:                "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON\n• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT\n• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
	},
	"Shatabhisha": {
		MobileDisplayPicture: "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Beneficial:           "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Prosperity:           "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		MentalPhysical:       "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		Accomplishments:      "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Avoid:                "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW\n• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE\n• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
	},
	"Purva Bhadrapada": {
		MobileDisplayPicture: "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Beneficial:           "• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
		Prosperity:           "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		MentalPhysical:       "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		Accomplishments:      "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Avoid:                "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT\n• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY\n• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
	},
	"Uttara Bhadrapada": {
		MobileDisplayPicture: "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Beneficial:           "• Bow and arrow/FEMALE CAT/SWAN\n• Potter's wheel/MALE TIGER\n• Sword/MALE LION/PIGEON",
		Prosperity:           "• Coiled serpent/FEMALE CAT/OWL\n• Circular amulet/umbrella/ear rings/MALE DEER\n• Drum/pair of fish/FEMALE ELEPHANT",
		MentalPhysical:       "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY",
		Accomplishments:      "• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY",
		Avoid:                "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE\n• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK\n• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
	},
	"Revati": {
		MobileDisplayPicture: "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Beneficial:           "• Udder of a cow/GOAT/SEA CROW\n• Lotus/FEMALE DEER/NIGHTINGALE\n• Serpent in water/FEMALE COW",
		Prosperity:           "• Horse head/HORSE/EAGLE\n• Royal throne/palanquin/MOUSE/EAGLE\n• Reticulated root/MALE DOG/RED VULTURE",
		MentalPhysical:       "• Sharp knife/GOAT/PEACOCK\n• Back legs of a cot/MALE COW(NANDI)/PEACOCK\n• Elephants tusks/MALE MANGOOSE/STORK",
		Accomplishments:      "• Deer's head/FEMALE SERPENT/HEN\n• Bright jewel/pearl/FEMALE TIGER/WOODPECKER\n• A drum/flute/FEMALE LION/PEACOCK",
		Avoid:                "• Inverted triangle/ELEPHANT/CROW\n• Hammock/front legs of a cot/FEMALE RAT\n• Winnowing basket/MALE MONKEY\n• Chariot/SERPENT/WHITE OWL\n• Hand/fist/FEMALE BUFFALO/FALCON\n• Three foot prints/FEMALE MONKEY\n• Tears/FEMALE DOG\n• Shoot of a plant/MALE BUFFALO\n• Empty circles of ring/FEMALE HORSE/ASIAN KOEL",
	},
}

// NakshatraByName matches name exactly, including case.
func NakshatraByName(name string) (Nakshatra, bool) {
	n, ok := nakshatras[name]
	return n, ok
}
