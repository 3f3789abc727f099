package generate

import (
	"math"
	"math/rand"
	"time"

	"github.com/edelooff/smallville/internal/model"
)

// Birthdate range for generated people, yielding an adult population.
var (
	birthEpoch = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)
	birthLimit = time.Date(1998, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// PopulationGenerator creates people with a gendered first name, a last
// name drawn from a per-population pool and a random adult birthday.
type PopulationGenerator struct {
	lastNames  []string
	firstNames map[model.Gender][]string
	birthEpoch time.Time
	birthRange int64
	rng        *rand.Rand
}

func NewPopulationGenerator(lastNames, feminine, masculine []string, rng *rand.Rand) *PopulationGenerator {
	return &PopulationGenerator{
		lastNames: lastNames,
		firstNames: map[model.Gender][]string{
			model.GenderFeminine:  feminine,
			model.GenderMasculine: masculine,
			model.GenderNonBinary: append(append([]string{}, feminine...), masculine...),
		},
		birthEpoch: birthEpoch,
		birthRange: int64(birthLimit.Sub(birthEpoch).Seconds()),
		rng:        rng,
	}
}

// Generate returns a population of the given size. Person IDs and city
// assignment are left for the caller. Last names are drawn from a pool
// sized to the population, so that small towns share few family names.
func (g *PopulationGenerator) Generate(size int) []*model.Person {
	pool := g.LastNamePool(size)
	people := make([]*model.Person, size)
	for i := range people {
		gender := g.RandomGender()
		names := g.firstNames[gender]
		people[i] = &model.Person{
			FirstName: names[g.rng.Intn(len(names))],
			LastName:  pickMember(g.rng, pool),
			Birthday:  g.RandomBirthday(),
			Gender:    gender,
		}
	}
	return people
}

// LastNamePool samples a pool of last names, sized to the population by
// raising it to a density exponent of 0.65 and capped at the full list.
func (g *PopulationGenerator) LastNamePool(populationSize int) []string {
	size := int(math.Ceil(math.Pow(float64(populationSize), 0.65)))
	if size > len(g.lastNames) {
		size = len(g.lastNames)
	}
	return sample(g.rng, g.lastNames, size)
}

// RandomBirthday returns a uniformly distributed date in the configured
// birthdate range.
func (g *PopulationGenerator) RandomBirthday() time.Time {
	offset := g.rng.Int63n(g.birthRange)
	return g.birthEpoch.Add(time.Duration(offset) * time.Second)
}

// RandomGender returns a random gender with a slight bias towards the
// feminine, as observed in Dutch census data (2018). Non-binary genders
// occur at a rate of 1 in ~400, following estimated prevalence for the US
// and UK.
func (g *PopulationGenerator) RandomGender() model.Gender {
	switch roll := g.rng.Float64() * 1002.5; {
	case roll < 496:
		return model.GenderMasculine
	case roll < 1000:
		return model.GenderFeminine
	default:
		return model.GenderNonBinary
	}
}
