package domain

import "sort"

// Field names a single form input. Names match the keys the report service
// expects in formData.
type Field string

const (
	FieldName         Field = "name"
	FieldDateOfBirth  Field = "dateOfBirth"
	FieldTimeOfBirth  Field = "timeOfBirth"
	FieldPlaceOfBirth Field = "placeOfBirth"

	FieldMapOfHouse    Field = "mapOfHouse"
	FieldVastuAnalysis Field = "vastuAnalysis"
	FieldVastuRemedies Field = "vastuRemedies"

	FieldMahadashaPlanet          Field = "mahadasha_planet"
	FieldMahadashaSource          Field = "mahadasha_source"
	FieldMahadashaNL              Field = "mahadasha_nl"
	FieldMahadashaNLSource        Field = "mahadasha_nl_source"
	FieldMahadashaAdditionalHouse Field = "mahadasha_additional_house"
	FieldMahadashaSL              Field = "mahadasha_sl"
	FieldMahadashaSLSource        Field = "mahadasha_sl_source"
	FieldMahadashaNoStar          Field = "mahadasha_no_star"

	FieldAntardashaPlanet          Field = "antardasha_planet"
	FieldAntardashaSource          Field = "antardasha_source"
	FieldAntardashaNL              Field = "antardasha_nl"
	FieldAntardashaNLSource        Field = "antardasha_nl_source"
	FieldAntardashaAdditionalHouse Field = "antardasha_additional_house"
	FieldAntardashaSL              Field = "antardasha_sl"
	FieldAntardashaSLSource        Field = "antardasha_sl_source"
	FieldAntardashaNoStar          Field = "antardasha_no_star"

	FieldPratyantardashaPlanet          Field = "pratyantardasha_planet"
	FieldPratyantardashaSource          Field = "pratyantardasha_source"
	FieldPratyantardashaNL              Field = "pratyantardasha_nl"
	FieldPratyantardashaNLSource        Field = "pratyantardasha_nl_source"
	FieldPratyantardashaAdditionalHouse Field = "pratyantardasha_additional_house"
	FieldPratyantardashaSL              Field = "pratyantardasha_sl"
	FieldPratyantardashaSLSource        Field = "pratyantardasha_sl_source"
	FieldPratyantardashaNoStar          Field = "pratyantardasha_no_star"
	FieldPratyantardashaPeriodFrom      Field = "pratyantardasha_period_from"
	FieldPratyantardashaPeriodTo        Field = "pratyantardasha_period_to"

	FieldDonationsToDo   Field = "donationsToDo"
	FieldDonationsToWhom Field = "donationsToWhom"
	FieldGemstonePlanet  Field = "gemstone_planet"
	FieldGemstones       Field = "gemstones"
	FieldMantraPlanet    Field = "mantra_planet"
	FieldMantra          Field = "mantra"

	FieldBirthNakshatra                   Field = "birthNakshatra"
	FieldMobileDisplayPicture             Field = "mobileDisplayPicture"
	FieldBeneficialSymbols                Field = "beneficialSymbols"
	FieldNakshatraProsperitySymbols       Field = "nakshatraProsperitySymbols"
	FieldNakshatraMentalPhysicalWellbeing Field = "nakshatraMentalPhysicalWellbeing"
	FieldNakshatraAccomplishments         Field = "nakshatraAccomplishments"
	FieldNakshatraAvoidSymbols            Field = "nakshatraAvoidSymbols"

	FieldAstroVastuRemediesHouse Field = "astroVastuRemediesHouse"
	FieldWhatToRemove            Field = "whatToRemove"
	FieldWhatToPlace             Field = "whatToPlace"
	FieldAstroVastuRemediesBody  Field = "astroVastuRemediesBody"
	FieldColorObjectsToUse       Field = "colorObjectsToUse"
	FieldColorObjectsNotToUse    Field = "colorObjectsNotToUse"
	FieldLockerLocation          Field = "lockerLocation"
	FieldLaughingBuddhaDirection Field = "laughingBuddhaDirection"
	FieldWishListInkColor        Field = "wishListInkColor"

	FieldNeverCriticize       Field = "neverCriticize"
	FieldImportantBooks       Field = "importantBooks"
	FieldGiftsToGivePlanet    Field = "giftsToGivePlanet"
	FieldGiftsToGive          Field = "giftsToGive"
	FieldGiftsToReceivePlanet Field = "giftsToReceivePlanet"
	FieldGiftsToReceive       Field = "giftsToReceive"

	FieldSaturnRelation      Field = "saturnRelation"
	FieldSaturnFollowing     Field = "saturnFollowing"
	FieldProfessionalMindset Field = "professionalMindset"
	FieldVenusRelation       Field = "venusRelation"
	FieldVenusFollowing      Field = "venusFollowing"
	FieldFinancialMindset    Field = "financialMindset"

	FieldReportType Field = "reportType"
)

// List-valued parts of the form. They cannot be written with SetField but
// are used as change notifications for derivation rules.
const (
	FieldAspectsOnHouses       Field = "aspectsOnHouses"
	FieldAspectsOnPlanets      Field = "aspectsOnPlanets"
	FieldRemovalItems          Field = "removalItems"
	FieldPlacementItems        Field = "placementItems"
	FieldSaturnRelationPlanets Field = "saturnRelationPlanets"
	FieldVenusRelationPlanets  Field = "venusRelationPlanets"
	FieldHouseMaps             Field = "houseMaps"
	FieldKundli                Field = "kundli"
)

// RequiredFields must be non-empty before a preview can be built.
var RequiredFields = []Field{
	FieldName,
	FieldDateOfBirth,
	FieldTimeOfBirth,
	FieldPlaceOfBirth,
	FieldReportType,
}

// FieldKind tells how a scalar field's string value is interpreted.
type FieldKind int

const (
	KindText FieldKind = iota
	KindPlanet
	KindDirection
	KindReportType
	KindFlag
)

type fieldSpec struct {
	kind FieldKind
	text func(*ReportFormData) *string
	flag func(*ReportFormData) *bool
}

func textField(get func(*ReportFormData) *string) fieldSpec {
	return fieldSpec{kind: KindText, text: get}
}

func planetField(get func(*ReportFormData) *Planet) fieldSpec {
	return fieldSpec{kind: KindPlanet, text: func(f *ReportFormData) *string { return (*string)(get(f)) }}
}

func directionField(get func(*ReportFormData) *Direction) fieldSpec {
	return fieldSpec{kind: KindDirection, text: func(f *ReportFormData) *string { return (*string)(get(f)) }}
}

func dashaFields(level DashaLevel, planet, source, nl, nlSource, house, sl, slSource, noStar Field) map[Field]fieldSpec {
	d := func(f *ReportFormData) *Dasha { return f.Dasha(level) }
	return map[Field]fieldSpec{
		planet:   planetField(func(f *ReportFormData) *Planet { return &d(f).Planet }),
		source:   textField(func(f *ReportFormData) *string { return &d(f).Source }),
		nl:       planetField(func(f *ReportFormData) *Planet { return &d(f).NL }),
		nlSource: textField(func(f *ReportFormData) *string { return &d(f).NLSource }),
		house:    textField(func(f *ReportFormData) *string { return &d(f).AdditionalHouse }),
		sl:       planetField(func(f *ReportFormData) *Planet { return &d(f).SL }),
		slSource: textField(func(f *ReportFormData) *string { return &d(f).SLSource }),
		noStar:   {kind: KindFlag, flag: func(f *ReportFormData) *bool { return &d(f).NoStar }},
	}
}

var fieldSpecs = func() map[Field]fieldSpec {
	specs := map[Field]fieldSpec{
		FieldName:         textField(func(f *ReportFormData) *string { return &f.Client.Name }),
		FieldDateOfBirth:  textField(func(f *ReportFormData) *string { return &f.Client.DateOfBirth }),
		FieldTimeOfBirth:  textField(func(f *ReportFormData) *string { return &f.Client.TimeOfBirth }),
		FieldPlaceOfBirth: textField(func(f *ReportFormData) *string { return &f.Client.PlaceOfBirth }),

		FieldMapOfHouse:    textField(func(f *ReportFormData) *string { return &f.MapOfHouse }),
		FieldVastuAnalysis: textField(func(f *ReportFormData) *string { return &f.VastuAnalysis }),
		FieldVastuRemedies: textField(func(f *ReportFormData) *string { return &f.VastuRemedies }),

		FieldPratyantardashaPeriodFrom: textField(func(f *ReportFormData) *string { return &f.Pratyantardasha.PeriodFrom }),
		FieldPratyantardashaPeriodTo:   textField(func(f *ReportFormData) *string { return &f.Pratyantardasha.PeriodTo }),

		FieldDonationsToDo:   textField(func(f *ReportFormData) *string { return &f.DonationsToDo }),
		FieldDonationsToWhom: textField(func(f *ReportFormData) *string { return &f.DonationsToWhom }),
		FieldGemstonePlanet:  planetField(func(f *ReportFormData) *Planet { return &f.GemstonePlanet }),
		FieldGemstones:       textField(func(f *ReportFormData) *string { return &f.Gemstones }),
		FieldMantraPlanet:    planetField(func(f *ReportFormData) *Planet { return &f.MantraPlanet }),
		FieldMantra:          textField(func(f *ReportFormData) *string { return &f.Mantra }),

		FieldBirthNakshatra:                   textField(func(f *ReportFormData) *string { return &f.BirthNakshatra }),
		FieldMobileDisplayPicture:             textField(func(f *ReportFormData) *string { return &f.Symbols.MobileDisplayPicture }),
		FieldBeneficialSymbols:                textField(func(f *ReportFormData) *string { return &f.Symbols.Beneficial }),
		FieldNakshatraProsperitySymbols:       textField(func(f *ReportFormData) *string { return &f.Symbols.Prosperity }),
		FieldNakshatraMentalPhysicalWellbeing: textField(func(f *ReportFormData) *string { return &f.Symbols.MentalPhysical }),
		FieldNakshatraAccomplishments:         textField(func(f *ReportFormData) *string { return &f.Symbols.Accomplishments }),
		FieldNakshatraAvoidSymbols:            textField(func(f *ReportFormData) *string { return &f.Symbols.Avoid }),

		FieldAstroVastuRemediesHouse: textField(func(f *ReportFormData) *string { return &f.AstroVastuRemediesHouse }),
		FieldWhatToRemove:            textField(func(f *ReportFormData) *string { return &f.WhatToRemove }),
		FieldWhatToPlace:             textField(func(f *ReportFormData) *string { return &f.WhatToPlace }),
		FieldAstroVastuRemediesBody:  textField(func(f *ReportFormData) *string { return &f.AstroVastuRemediesBody }),
		FieldColorObjectsToUse:       textField(func(f *ReportFormData) *string { return &f.ColorObjectsToUse }),
		FieldColorObjectsNotToUse:    textField(func(f *ReportFormData) *string { return &f.ColorObjectsNotToUse }),
		FieldLockerLocation:          directionField(func(f *ReportFormData) *Direction { return &f.LockerLocation }),
		FieldLaughingBuddhaDirection: directionField(func(f *ReportFormData) *Direction { return &f.LaughingBuddhaDirection }),
		FieldWishListInkColor:        textField(func(f *ReportFormData) *string { return &f.WishListInkColor }),

		FieldNeverCriticize:       textField(func(f *ReportFormData) *string { return &f.NeverCriticize }),
		FieldImportantBooks:       textField(func(f *ReportFormData) *string { return &f.ImportantBooks }),
		FieldGiftsToGivePlanet:    planetField(func(f *ReportFormData) *Planet { return &f.GiftsToGivePlanet }),
		FieldGiftsToGive:          textField(func(f *ReportFormData) *string { return &f.GiftsToGive }),
		FieldGiftsToReceivePlanet: planetField(func(f *ReportFormData) *Planet { return &f.GiftsToReceivePlanet }),
		FieldGiftsToReceive:       textField(func(f *ReportFormData) *string { return &f.GiftsToReceive }),

		FieldSaturnRelation:      textField(func(f *ReportFormData) *string { return &f.SaturnRelation }),
		FieldSaturnFollowing:     planetField(func(f *ReportFormData) *Planet { return &f.SaturnFollowing }),
		FieldProfessionalMindset: textField(func(f *ReportFormData) *string { return &f.ProfessionalMindset }),
		FieldVenusRelation:       textField(func(f *ReportFormData) *string { return &f.VenusRelation }),
		FieldVenusFollowing:      planetField(func(f *ReportFormData) *Planet { return &f.VenusFollowing }),
		FieldFinancialMindset:    textField(func(f *ReportFormData) *string { return &f.FinancialMindset }),

		FieldReportType: {
			kind: KindReportType,
			text: func(f *ReportFormData) *string { return (*string)(&f.ReportType) },
		},
	}

	for _, group := range []map[Field]fieldSpec{
		dashaFields(DashaMaha,
			FieldMahadashaPlanet, FieldMahadashaSource, FieldMahadashaNL, FieldMahadashaNLSource,
			FieldMahadashaAdditionalHouse, FieldMahadashaSL, FieldMahadashaSLSource, FieldMahadashaNoStar),
		dashaFields(DashaAntar,
			FieldAntardashaPlanet, FieldAntardashaSource, FieldAntardashaNL, FieldAntardashaNLSource,
			FieldAntardashaAdditionalHouse, FieldAntardashaSL, FieldAntardashaSLSource, FieldAntardashaNoStar),
		dashaFields(DashaPratyantar,
			FieldPratyantardashaPlanet, FieldPratyantardashaSource, FieldPratyantardashaNL,
			FieldPratyantardashaNLSource, FieldPratyantardashaAdditionalHouse, FieldPratyantardashaSL,
			FieldPratyantardashaSLSource, FieldPratyantardashaNoStar),
	} {
		for name, spec := range group {
			specs[name] = spec
		}
	}
	return specs
}()

// Kind reports how the field is typed; ok is false for unknown and list fields.
func (f Field) Kind() (kind FieldKind, ok bool) {
	spec, ok := fieldSpecs[f]
	return spec.kind, ok
}

func (f Field) String() string {
	return string(f)
}

// Text returns a pointer to the string-backed storage of field, or nil when
// the field is unknown or boolean.
func (r *ReportFormData) Text(field Field) *string {
	spec, ok := fieldSpecs[field]
	if !ok || spec.text == nil {
		return nil
	}
	return spec.text(r)
}

// Flag returns a pointer to a boolean field, or nil.
func (r *ReportFormData) Flag(field Field) *bool {
	spec, ok := fieldSpecs[field]
	if !ok || spec.flag == nil {
		return nil
	}
	return spec.flag(r)
}

// ScalarFields lists every scalar field in a stable order.
func ScalarFields() []Field {
	fields := make([]Field, 0, len(fieldSpecs))
	for name := range fieldSpecs {
		fields = append(fields, name)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i] < fields[j] })
	return fields
}

// DashaPair ties a dasha planet field to the field holding its source text.
type DashaPair struct {
	Planet Field
	Source Field
}

// DashaPairs lists the nine planet/source pairs, mahadasha first and within
// each level planet, NL, SL.
var DashaPairs = []DashaPair{
	{FieldMahadashaPlanet, FieldMahadashaSource},
	{FieldMahadashaNL, FieldMahadashaNLSource},
	{FieldMahadashaSL, FieldMahadashaSLSource},
	{FieldAntardashaPlanet, FieldAntardashaSource},
	{FieldAntardashaNL, FieldAntardashaNLSource},
	{FieldAntardashaSL, FieldAntardashaSLSource},
	{FieldPratyantardashaPlanet, FieldPratyantardashaSource},
	{FieldPratyantardashaNL, FieldPratyantardashaNLSource},
	{FieldPratyantardashaSL, FieldPratyantardashaSLSource},
}
