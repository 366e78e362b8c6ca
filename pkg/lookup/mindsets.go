package lookup

import "github.com/de-tools/destiny-report/pkg/models/domain"

// Professional mindset keyed by the planet Saturn follows in the
// Bhrigunanda Nadi chain.
var professionalMindsets = map[domain.Planet]string{
	domain.PlanetSun: "Saturn following the Sun points to a career shaped by authority and public responsibility. " +
		"You work best in government, administration or leadership roles where your decisions carry weight. " +
		"Recognition comes later in life and through steady service; friction with superiors or the father " +
		"eases when you respect hierarchy while keeping your own integrity.",
	domain.PlanetMoon: "Saturn following the Moon ties your work to the public, to care and to fluctuating conditions. " +
		"Hospitality, healthcare, food, liquids, travel or any field that serves people directly suits you. " +
		"Your mood strongly colours your productivity, so fixed routines and a calm workplace are essential. " +
		"Avoid changing jobs on emotional impulse.",
	domain.PlanetMars: "Saturn following Mars gives a technical, engineering or property-oriented career. " +
		"You have the stamina for hard, physical or high-pressure work such as construction, machinery, " +
		"defence, surgery or real estate. Anger at work is your main risk; channel drive into discipline " +
		"and long projects rather than confrontation.",
	domain.PlanetMercury: "Saturn following Mercury favours careers in commerce, accounting, writing, communication, " +
		"IT and analysis. You are a methodical planner and a careful negotiator. Success grows through " +
		"skill-building, documentation and networks; keep agreements in writing and avoid speculative shortcuts.",
	domain.PlanetJupiter: "Saturn following Jupiter indicates work guided by knowledge and ethics: teaching, law, finance, " +
		"consulting, counselling or religious and charitable institutions. You are trusted for advice and " +
		"tend to rise into advisory or management positions. Keep learning formally; qualifications open doors.",
	domain.PlanetVenus: "Saturn following Venus brings a career in the arts, design, luxury goods, beauty, hospitality, " +
		"media or finance. Aesthetics and client relationships are your strengths. Partnerships, often " +
		"with women or spouses, strongly influence professional growth; choose collaborators carefully.",
	domain.PlanetSaturn: "Saturn following Saturn doubles the karmic emphasis on labour. Progress is slow, steady and " +
		"permanent. Manufacturing, mining, oil, logistics, labour management and large organisations suit you. " +
		"Patience is your capital; shortcuts rarely work, but persistent effort is always rewarded.",
	domain.PlanetRahu: "Saturn following Rahu gives an unconventional career path with sudden turns. Technology, " +
		"foreign companies, research, aviation, politics and mass media suit you. You can rise quickly by " +
		"taking calculated risks, but must stay transparent; avoid shortcuts that bend rules.",
	domain.PlanetKetu: "Saturn following Ketu points to specialised, research-driven or spiritual work: coding, " +
		"investigation, alternative healing, astrology or any niche discipline. Recognition may feel delayed " +
		"and detachment from results helps. Frequent changes in direction are likely until you commit to mastery.",
}

// Financial mindset keyed by the planet Venus follows.
var financialMindsets = map[domain.Planet]string{
	domain.PlanetSun: "Venus following the Sun links money to status and the father's side of the family. " +
		"Income grows through government, authority or a respected position. Spending on prestige can " +
		"drain savings; invest in stable, long-term instruments.",
	domain.PlanetMoon: "Venus following the Moon makes finances fluctuate with emotions. Money comes through women, " +
		"the public, food, liquids or hospitality. Keep an emergency fund and avoid emotional purchases; " +
		"regular saving in small amounts suits you best.",
	domain.PlanetMars: "Venus following Mars brings gains through property, land, machinery and courage-driven ventures. " +
		"You earn aggressively and may spend the same way. Disputes over money with siblings or partners " +
		"are possible; document every joint investment.",
	domain.PlanetMercury: "Venus following Mercury favours trade, brokerage, writing and intellectual property. " +
		"Multiple small income streams work better than one large one. Careful budgeting and analysis " +
		"protect you from losses in speculation.",
	domain.PlanetJupiter: "Venus following Jupiter is a blessed combination for wealth through knowledge, advice, banking " +
		"and ethical business. Generosity returns to you; charity and gold tend to increase fortune. " +
		"Avoid over-optimism in loans given to others.",
	domain.PlanetVenus: "Venus following Venus intensifies comfort and luxury. Money comes through art, beauty, fashion, " +
		"vehicles or a spouse. Spending on pleasure is the main leak; a fixed savings ratio keeps " +
		"prosperity stable.",
	domain.PlanetSaturn: "Venus following Saturn gives slow but lasting wealth. Money is earned through hard work, " +
		"real estate, old assets or inheritance. Frugality comes naturally; learn to spend on quality " +
		"so that savings also improve life.",
	domain.PlanetRahu: "Venus following Rahu shows sudden gains and sudden losses: foreign sources, technology, " +
		"shares and speculation. Diversify, avoid debt-funded risk and keep money matters confidential.",
	domain.PlanetKetu: "Venus following Ketu reduces attachment to money. Finances may feel uncertain despite " +
		"ability, and expenses on spiritual pursuits, health or travel are likely. Simple living and " +
		"systematic investment bring peace of mind.",
}

func ProfessionalMindset(p domain.Planet) (string, bool) {
	m, ok := professionalMindsets[p]
	return m, ok
}

func FinancialMindset(p domain.Planet) (string, bool) {
	m, ok := financialMindsets[p]
	return m, ok
}
