package generate

import (
	"math/rand"

	"github.com/edelooff/smallville/internal/model"
	"github.com/edelooff/smallville/internal/seeddata"
)

// CityPlan is a generated city together with the parameters that drive the
// rest of the seeding run: how many companies to settle there and how many
// people to put in them. The plan fields never reach the database.
type CityPlan struct {
	City           *model.City
	CompanyCount   int
	PopulationSize int
}

// CityGenerator creates CityPlans from the configured population and
// company density distributions.
type CityGenerator struct {
	params *seeddata.CityParams
	rng    *rand.Rand
}

func NewCityGenerator(params *seeddata.CityParams, rng *rand.Rand) *CityGenerator {
	return &CityGenerator{params: params, rng: rng}
}

// Generate returns a plan for a named city of the given size. The city ID
// is left for the caller to assign.
func (g *CityGenerator) Generate(name string, size model.SizeCode) *CityPlan {
	population := gauss(g.rng, g.params.PopulationRanges[size])
	density := gauss(g.rng, g.params.CompanyDensityRange)
	plan := &CityPlan{
		City:           &model.City{Name: name, SizeCode: size},
		CompanyCount:   round(population / density),
		PopulationSize: round(population),
	}
	// Tail draws on the smallest towns can dip below sense: every city has
	// at least one company (self-employment income derives from it) and a
	// non-negative population.
	if plan.CompanyCount < 1 {
		plan.CompanyCount = 1
	}
	if plan.PopulationSize < 0 {
		plan.PopulationSize = 0
	}
	return plan
}
