package generate

import (
	"math"
	"math/rand"
	"testing"

	"github.com/edelooff/smallville/internal/model"
)

var (
	testFeminine  = []string{"Anna", "Eva", "Lotte", "Roos", "Sanne"}
	testMasculine = []string{"Bram", "Daan", "Jesse", "Sem", "Thijs"}
	testLastNames = []string{
		"Bakker", "de Vries", "Jansen", "Mulder", "Smit",
		"van den Berg", "van Dijk", "Visser", "Vos", "de Wit"}
)

func newPopulationGenerator(seed int64) *PopulationGenerator {
	rng := rand.New(rand.NewSource(seed))
	return NewPopulationGenerator(testLastNames, testFeminine, testMasculine, rng)
}

func TestGeneratePopulation(t *testing.T) {
	people := newPopulationGenerator(1).Generate(250)
	if len(people) != 250 {
		t.Fatalf("Expected 250 people, got %d", len(people))
	}
	for _, person := range people {
		if person.FirstName == "" || person.LastName == "" {
			t.Errorf("Person with missing name: %+v", person)
		}
		if person.Birthday.Before(birthEpoch) || !person.Birthday.Before(birthLimit) {
			t.Errorf("Birthday %v outside configured range", person.Birthday)
		}
		switch person.Gender {
		case model.GenderFeminine, model.GenderMasculine, model.GenderNonBinary:
		default:
			t.Errorf("Invalid gender: %q", person.Gender)
		}
	}
}

func TestGenderedFirstNames(t *testing.T) {
	inList := func(name string, list []string) bool {
		for _, entry := range list {
			if entry == name {
				return true
			}
		}
		return false
	}

	for _, person := range newPopulationGenerator(2).Generate(500) {
		switch person.Gender {
		case model.GenderFeminine:
			if !inList(person.FirstName, testFeminine) {
				t.Errorf("Feminine person with first name %q", person.FirstName)
			}
		case model.GenderMasculine:
			if !inList(person.FirstName, testMasculine) {
				t.Errorf("Masculine person with first name %q", person.FirstName)
			}
		}
	}
}

func TestFirstNamesUniform(t *testing.T) {
	counts := make(map[string]int)
	feminine := 0
	for _, person := range newPopulationGenerator(6).Generate(50000) {
		if person.Gender == model.GenderFeminine {
			counts[person.FirstName]++
			feminine++
		}
	}

	// First names are drawn uniformly from the gendered list; names at the
	// edges of the list occur as often as those in the middle.
	for _, name := range testFeminine {
		if ratio := float64(counts[name]) / float64(feminine); ratio < 0.17 || ratio > 0.23 {
			t.Errorf("First name %q drawn at ratio %f, expected ~0.2", name, ratio)
		}
	}
}

func TestRandomGenderDistribution(t *testing.T) {
	generator := newPopulationGenerator(3)
	counts := make(map[model.Gender]int)
	const draws = 200000
	for i := 0; i < draws; i++ {
		counts[generator.RandomGender()]++
	}

	// Expected rates: ~49.5% masculine, ~50.3% feminine, ~0.25% non-binary.
	if ratio := float64(counts[model.GenderMasculine]) / draws; ratio < 0.47 || ratio > 0.52 {
		t.Errorf("Masculine ratio %f outside expected bounds", ratio)
	}
	if ratio := float64(counts[model.GenderFeminine]) / draws; ratio < 0.48 || ratio > 0.53 {
		t.Errorf("Feminine ratio %f outside expected bounds", ratio)
	}
	if ratio := float64(counts[model.GenderNonBinary]) / draws; ratio < 0.001 || ratio > 0.006 {
		t.Errorf("Non-binary ratio %f outside expected bounds", ratio)
	}
	if counts[model.GenderFeminine] <= counts[model.GenderMasculine] {
		t.Error("Expected feminine bias in gender distribution")
	}
}

func TestLastNamePool(t *testing.T) {
	generator := newPopulationGenerator(4)

	// ceil(8^0.65) = 4 names out of the list of 10.
	if pool := generator.LastNamePool(8); len(pool) != int(math.Ceil(math.Pow(8, 0.65))) {
		t.Errorf("Expected pool of 4 for population 8, got %d", len(pool))
	}
	// Large populations are capped at the full list.
	if pool := generator.LastNamePool(100000); len(pool) != len(testLastNames) {
		t.Errorf("Expected pool capped at %d, got %d", len(testLastNames), len(pool))
	}

	// Pool members are unique and come from the source list.
	pool := generator.LastNamePool(100000)
	seen := make(map[string]bool)
	for _, name := range pool {
		if seen[name] {
			t.Errorf("Duplicate name in pool: %s", name)
		}
		seen[name] = true
	}
}

func TestPickMemberStaysInBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	collection := []string{"a", "b", "c"}
	counts := make(map[string]int)
	for i := 0; i < 10000; i++ {
		counts[pickMember(rng, collection)]++
	}
	// The near-normal distribution favours the middle of the collection.
	if counts["b"] <= counts["a"] || counts["b"] <= counts["c"] {
		t.Errorf("Expected middle member to dominate, got %v", counts)
	}
}
