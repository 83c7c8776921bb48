package classification

import (
	"math"
	"strings"
)

const (
	CoarseSchueler       = "Schüler"
	CoarseJung           = "Jung"
	CoarseErwachsen      = "Erwachsen"
	CoarseSenior         = "Senior"
	CoarseSenioren0      = "Senioren0"
	CoarseSeniorenI_II   = "SeniorenI_II"
	CoarseSeniorenIII_VI = "SeniorenIII_VI"
)

// YouthCarveOutCode is the SpoNummer of the only rest-supported discipline
// that admits shooters aged 15 to 40 to the team ladder.
const YouthCarveOutCode = "1.41"

// ageBand covers all ages up to and including maxAge that are not covered by
// an earlier band of the same table. An empty coarseKey marks ages that are
// not eligible for team competition.
type ageBand struct {
	maxAge    int
	coarseKey string
	male      string
	female    string
}

func (b ageBand) eligible() bool {
	return b.coarseKey != ""
}

func (b ageBand) fineLabel(gender Gender) string {
	if gender == Female {
		return b.female
	}
	return b.male
}

type bandTable []ageBand

func (t bandTable) lookup(age int) ageBand {
	for _, band := range t {
		if age <= band.maxAge {
			return band
		}
	}
	return t[len(t)-1]
}

var schuelerBand = ageBand{maxAge: 14, coarseKey: CoarseSchueler, male: "Schüler m", female: "Schüler w"}

var freeStandingBands = bandTable{
	{maxAge: 14, coarseKey: CoarseJung, male: "Schüler m", female: "Schüler w"},
	{maxAge: 16, coarseKey: CoarseJung, male: "Jugend m", female: "Jugend w"},
	{maxAge: 18, coarseKey: CoarseJung, male: "Junioren II m", female: "Junioren II w"},
	{maxAge: 20, coarseKey: CoarseJung, male: "Junioren I m", female: "Junioren I w"},
	{maxAge: 40, coarseKey: CoarseErwachsen, male: "Herren I", female: "Damen I"},
	{maxAge: 50, coarseKey: CoarseSenior, male: "Herren II", female: "Damen II"},
	{maxAge: 60, coarseKey: CoarseSenior, male: "Herren III", female: "Damen III"},
	{maxAge: 70, coarseKey: CoarseSenior, male: "Herren IV", female: "Damen IV"},
	{maxAge: math.MaxInt, coarseKey: CoarseSenior, male: "Herren V", female: "Damen V"},
}

var restSupportedSeniorBands = bandTable{
	{maxAge: 50, coarseKey: CoarseSenioren0, male: "Senioren 0 m", female: "Senioren 0 w"},
	{maxAge: 60, coarseKey: CoarseSeniorenI_II, male: "Senioren I m", female: "Senioren I w"},
	{maxAge: 65, coarseKey: CoarseSeniorenI_II, male: "Senioren II m", female: "Senioren II w"},
	{maxAge: 70, coarseKey: CoarseSeniorenIII_VI, male: "Senioren III m", female: "Senioren III w"},
	{maxAge: 75, coarseKey: CoarseSeniorenIII_VI, male: "Senioren IV m", female: "Senioren IV w"},
	{maxAge: 80, coarseKey: CoarseSeniorenIII_VI, male: "Senioren V m", female: "Senioren V w"},
	{maxAge: math.MaxInt, coarseKey: CoarseSeniorenIII_VI, male: "Senioren VI m", female: "Senioren VI w"},
}

var restSupportedBands = concatBands(
	bandTable{
		schuelerBand,
		{maxAge: 40},
	},
	restSupportedSeniorBands,
)

var restSupportedCarveOutBands = concatBands(
	bandTable{
		schuelerBand,
		{maxAge: 16, coarseKey: CoarseJung, male: "Jugend m", female: "Jugend w"},
		{maxAge: 18, coarseKey: CoarseJung, male: "Junioren II m", female: "Junioren II w"},
		{maxAge: 20, coarseKey: CoarseJung, male: "Junioren I m", female: "Junioren I w"},
		{maxAge: 40, coarseKey: CoarseJung, male: "Herren I", female: "Damen I"},
	},
	restSupportedSeniorBands,
)

func concatBands(tables ...bandTable) bandTable {
	out := make(bandTable, 0)
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}

func hasYouthCarveOut(discipline *Discipline) bool {
	return discipline.RestSupported && strings.TrimSpace(discipline.Code) == YouthCarveOutCode
}

// bandsFor selects the one table that both the coarse key and the fine label
// are read from.
func bandsFor(discipline *Discipline) bandTable {
	switch {
	case !discipline.RestSupported:
		return freeStandingBands
	case hasYouthCarveOut(discipline):
		return restSupportedCarveOutBands
	default:
		return restSupportedBands
	}
}
