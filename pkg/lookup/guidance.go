package lookup

import "github.com/de-tools/destiny-report/pkg/models/domain"

var books = map[domain.Planet][]string{
	domain.PlanetSun: {
		"Aditya Hridayam (with commentary)",
		"The 7 Habits of Highly Effective People - Stephen R. Covey",
		"Autobiography of a Yogi - Paramahansa Yogananda",
		"Leaders Eat Last - Simon Sinek",
	},
	domain.PlanetMoon: {
		"Shiva Purana (abridged)",
		"The Power of Now - Eckhart Tolle",
		"Emotional Intelligence - Daniel Goleman",
		"Wings of Fire - A. P. J. Abdul Kalam",
	},
	domain.PlanetMars: {
		"Hanuman Chalisa (with meaning)",
		"The Art of War - Sun Tzu",
		"Can't Hurt Me - David Goggins",
		"Discipline Is Destiny - Ryan Holiday",
	},
	domain.PlanetMercury: {
		"Vishnu Sahasranama (with meaning)",
		"How to Win Friends and Influence People - Dale Carnegie",
		"Thinking, Fast and Slow - Daniel Kahneman",
		"Rich Dad Poor Dad - Robert Kiyosaki",
	},
	domain.PlanetJupiter: {
		"Bhagavad Gita As It Is",
		"Man's Search for Meaning - Viktor E. Frankl",
		"The Monk Who Sold His Ferrari - Robin Sharma",
		"Think and Grow Rich - Napoleon Hill",
	},
	domain.PlanetVenus: {
		"Shri Suktam (with meaning)",
		"The Psychology of Money - Morgan Housel",
		"The Alchemist - Paulo Coelho",
		"The Five Love Languages - Gary Chapman",
	},
	domain.PlanetSaturn: {
		"Shani Mahatmya",
		"Atomic Habits - James Clear",
		"Meditations - Marcus Aurelius",
		"The Obstacle Is the Way - Ryan Holiday",
	},
	domain.PlanetRahu: {
		"Durga Saptashati",
		"The Subtle Art of Not Giving a F*ck - Mark Manson",
		"Zero to One - Peter Thiel",
		"Ikigai - Hector Garcia and Francesc Miralles",
	},
	domain.PlanetKetu: {
		"Ganesha Atharvashirsha (with meaning)",
		"Be Here Now - Ram Dass",
		"The Untethered Soul - Michael A. Singer",
		"Siddhartha - Hermann Hesse",
	},
}

// BooksFor returns up to n recommended books for p. A non-positive n
// returns the whole list.
func BooksFor(p domain.Planet, n int) []string {
	list := books[p]
	if n > 0 {
		list = firstN(list, n)
	}
	return copyOf(list)
}

var gifts = map[domain.Planet][]string{
	domain.PlanetSun: {
		"Wheat or whole-grain hampers",
		"Copper vessels or a copper water bottle",
		"Red or saffron clothing",
		"Framed picture of a rising sun",
		"Books on leadership",
	},
	domain.PlanetMoon: {
		"Silver jewellery or a silver coin",
		"White flowers",
		"Pearls",
		"Milk sweets",
		"A conch shell",
	},
	domain.PlanetMars: {
		"Red clothing",
		"Sports or fitness equipment",
		"Tools or a toolkit",
		"Jaggery sweets",
		"Red coral",
	},
	domain.PlanetMercury: {
		"Books or stationery",
		"Green plants (a Tulsi plant)",
		"Pens",
		"Green clothing",
		"Educational games or puzzles",
	},
	domain.PlanetJupiter: {
		"Religious or spiritual books",
		"Yellow sweets",
		"Gold or brass items",
		"Yellow clothing",
		"Turmeric or saffron",
	},
	domain.PlanetVenus: {
		"Perfume or attar",
		"White or pastel clothing",
		"Silver jewellery",
		"Cosmetics or beauty products",
		"Artwork or decor pieces",
	},
	domain.PlanetSaturn: {
		"Iron utensils",
		"Black or navy clothing",
		"Mustard oil",
		"Leather footwear",
		"Blankets",
	},
	domain.PlanetRahu: {
		"Electronic gadgets",
		"Blue or smoky clothing",
		"Coconut",
		"Blankets",
		"Mixed grains",
	},
	domain.PlanetKetu: {
		"Multi-coloured blankets",
		"Spiritual books",
		"Sesame sweets",
		"Brown or grey clothing",
		"Flags for temples",
	},
}

// GiftsFor returns the full gift list for p.
func GiftsFor(p domain.Planet) []string {
	return copyOf(gifts[p])
}
