package seeder

import (
	"sort"

	"github.com/edelooff/smallville/internal/generate"
	"github.com/edelooff/smallville/internal/model"
	"github.com/edelooff/smallville/internal/pathfind"
)

// employPerson attempts to employ a person at one of the given companies,
// in order, each rolling its own (decaying) hiring chance. Returns nil when
// no company hires.
func (s *Seeder) employPerson(person *model.Person, companies []*generate.Company) *model.Employment {
	for _, company := range companies {
		if !company.Hire() {
			continue
		}
		role, salary := s.roleAndSalary(company)
		return &model.Employment{
			PersonID:  person.ID,
			CompanyID: company.ID,
			Role:      role,
			Salary:    salary,
		}
	}
	return nil
}

// roleAndSalary picks a role by percentile: 85% worker, 13% manager and 2%
// director. Managers get the better of two salary draws, directors both.
func (s *Seeder) roleAndSalary(company *generate.Company) (model.Role, int) {
	percentile := s.rng.Float64() * 100
	if percentile < 85 {
		return model.RoleWorker, company.Salary()
	}
	first, second := company.Salary(), company.Salary()
	if percentile < 98 {
		if second > first {
			first = second
		}
		return model.RoleManager, first
	}
	return model.RoleDirector, first + second
}

// createCommuters searches employment in nearby cities for everyone still
// out of work. The candidate cities are the closestN nearest by transport
// network distance, found with Dijkstra's algorithm and cached per home
// city; an employment attempt is made at each of their companies in turn.
func (s *Seeder) createCommuters(
	people []*model.Person,
	employed map[int]bool,
	links []*model.TransportLink,
	companiesByCity map[int][]*generate.Company,
	closestN int,
) []*model.Employment {
	graph := transportGraph(links)
	neighbouring := make(map[int][]int)

	var commutes []*model.Employment
	for _, person := range people {
		if employed[person.ID] {
			continue
		}
		neighbours, cached := neighbouring[person.CityID]
		if !cached {
			neighbours = nearestCities(graph, person.CityID, closestN)
			neighbouring[person.CityID] = neighbours
		}
		for _, cityID := range neighbours {
			if employment := s.employPerson(person, companiesByCity[cityID]); employment != nil {
				commutes = append(commutes, employment)
				employed[person.ID] = true
				break
			}
		}
	}
	return commutes
}

// nearestCities returns up to limit cities closest to start by network
// distance, excluding start itself. Ties break on city ID to keep seeded
// runs reproducible.
func nearestCities(graph pathfind.Graph, start, limit int) []int {
	distance, _ := pathfind.Dijkstra(graph, start)
	cities := make([]int, 0, len(distance))
	for cityID := range distance {
		if cityID != start {
			cities = append(cities, cityID)
		}
	}
	sort.Slice(cities, func(i, j int) bool {
		if distance[cities[i]] != distance[cities[j]] {
			return distance[cities[i]] < distance[cities[j]]
		}
		return cities[i] < cities[j]
	})
	if len(cities) > limit {
		cities = cities[:limit]
	}
	return cities
}

// createSelfEmployment assigns income from self-employment to about half
// of the people without an employer. The income is a salary draw from the
// home city's first company, scaled by a factor between 0.5 and 1.2.
func (s *Seeder) createSelfEmployment(
	people []*model.Person,
	employed map[int]bool,
	companiesByCity map[int][]*generate.Company,
) int {
	var count int
	for _, person := range people {
		if employed[person.ID] || s.rng.Float64() <= 0.5 {
			continue
		}
		companies := companiesByCity[person.CityID]
		if len(companies) == 0 {
			continue
		}
		multiplier := 0.5 + s.rng.Float64()*0.7
		income := int(float64(companies[0].Salary()) * multiplier)
		person.SelfEmploymentIncome = &income
		count++
	}
	return count
}
