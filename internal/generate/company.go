package generate

import (
	"math"
	"math/rand"
	"strings"

	"github.com/edelooff/smallville/internal/model"
	"github.com/edelooff/smallville/internal/seeddata"
)

// Company wraps a company model with its seeding parameters: a salary
// sampler tuned to the host city's size band and a hiring chance that drops
// off as the company grows.
type Company struct {
	*model.Company

	rng          *rand.Rand
	salaryBand   seeddata.Gauss
	slowdown     float64
	employees    int
	hiringChance float64
}

// Salary draws a salary from the company's band.
func (c *Company) Salary() int {
	return round(gauss(c.rng, c.salaryBand))
}

// Hire rolls against the current hiring chance. On a successful hire the
// chance for the next one is reduced to slowdown^-employeeCount.
func (c *Company) Hire() bool {
	if c.rng.Float64() >= c.hiringChance {
		return false
	}
	c.employees++
	c.hiringChance = math.Pow(c.slowdown, -float64(c.employees))
	return true
}

// CompanyGenerator creates companies with a generated name, a uniformly
// picked industry and size-band seeding parameters.
type CompanyGenerator struct {
	params *seeddata.BusinessParams
	rng    *rand.Rand
}

func NewCompanyGenerator(params *seeddata.BusinessParams, rng *rand.Rand) *CompanyGenerator {
	return &CompanyGenerator{params: params, rng: rng}
}

// Generate returns a company for a city of the given size. The company and
// city IDs are left for the caller to assign.
func (g *CompanyGenerator) Generate(size model.SizeCode) *Company {
	return &Company{
		Company: &model.Company{
			Name:     g.RandomName(),
			Industry: g.params.Industries[g.rng.Intn(len(g.params.Industries))],
		},
		rng:          g.rng,
		salaryBand:   g.params.SalaryBands[size],
		slowdown:     gauss(g.rng, g.params.HiringSlowdown[size]),
		hiringChance: 1,
	}
}

// RandomName builds a company name from a prefix and suffix part, finished
// off with a finalizer about two thirds of the time.
func (g *CompanyGenerator) RandomName() string {
	names := g.params.Names
	parts := []string{
		names.Prefix[g.rng.Intn(len(names.Prefix))],
		names.Suffix[g.rng.Intn(len(names.Suffix))],
	}
	if g.rng.Float64() > 0.33 {
		parts = append(parts, names.Finalizer[g.rng.Intn(len(names.Finalizer))])
	}
	return strings.Join(parts, " ")
}
