// Package seeder generates a smallville society and writes it to the
// database: cities with companies, a transport network connecting them, and
// a population with employment contracts spread over home towns and
// commuter destinations.
package seeder

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/edelooff/smallville/internal/config"
	"github.com/edelooff/smallville/internal/db"
	"github.com/edelooff/smallville/internal/generate"
	"github.com/edelooff/smallville/internal/model"
	"github.com/edelooff/smallville/internal/schema"
	"github.com/edelooff/smallville/internal/seeddata"
)

type Seeder struct {
	conn *db.Connection
	cfg  *config.Config
	rng  *rand.Rand
}

func New(conn *db.Connection, cfg *config.Config, rng *rand.Rand) *Seeder {
	return &Seeder{conn: conn, cfg: cfg, rng: rng}
}

// Run recreates the schema and populates it with a generated society. All
// rows are written inside a single transaction; any failure rolls back,
// leaving no partial dataset behind.
func (s *Seeder) Run(ctx context.Context) error {
	p := newProgress()

	p.step("(Re-)creating tables for smallville")
	dialect := schema.For(s.conn.Provider)
	for _, stmt := range append(dialect.DropStatements(), dialect.CreateStatements()...) {
		if _, err := s.conn.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to recreate schema: %w", err)
		}
	}

	p.step("Creating cities and companies ..")
	plans, companiesByCity, err := s.createCities()
	if err != nil {
		return err
	}
	var companyCount, populationSize int
	for _, plan := range plans {
		companyCount += plan.CompanyCount
		populationSize += plan.PopulationSize
	}
	p.detail("Number of cities: %d", len(plans))
	p.detail("Total company count: %d", companyCount)
	p.detail("Total population size: %d", populationSize)

	p.step("Creating transport network ..")
	transportParams, err := seeddata.Transport()
	if err != nil {
		return err
	}
	links := s.createTransportNetwork(transportParams, plans)
	p.detail("Number of transport links: %d", len(links))

	p.step("Creating population and employment ..")
	people, employments, err := s.createPopulation(plans, companiesByCity)
	if err != nil {
		return err
	}
	p.detail("Number of locally employed people: %d", len(employments))

	employed := make(map[int]bool, len(employments))
	for _, employment := range employments {
		employed[employment.PersonID] = true
	}
	commutes := s.createCommuters(people, employed, links, companiesByCity, s.cfg.Seed.ClosestCities)
	employments = append(employments, commutes...)
	p.detail("Number of commuters: %d", len(commutes))

	selfEmployed := s.createSelfEmployment(people, employed, companiesByCity)
	p.detail("Number of (partially) self-employed: %d", selfEmployed)

	p.step("Committing ..")
	if err := s.write(ctx, plans, companiesByCity, people, employments, links); err != nil {
		return err
	}
	p.step("All done!")
	return nil
}

// createCities generates a city for every bundled city entry, along with
// its companies. City and company IDs are assigned from serial counters.
func (s *Seeder) createCities() ([]*generate.CityPlan, map[int][]*generate.Company, error) {
	entries, err := seeddata.Cities()
	if err != nil {
		return nil, nil, err
	}
	cityParams, err := seeddata.CityGeneration()
	if err != nil {
		return nil, nil, err
	}
	businessParams, err := seeddata.Business()
	if err != nil {
		return nil, nil, err
	}

	cityGen := generate.NewCityGenerator(cityParams, s.rng)
	companyGen := generate.NewCompanyGenerator(businessParams, s.rng)

	plans := make([]*generate.CityPlan, 0, len(entries))
	companiesByCity := make(map[int][]*generate.Company, len(entries))
	var companySerial int
	for i, entry := range entries {
		plan := cityGen.Generate(entry.Name, entry.Size)
		plan.City.ID = i + 1
		companies := make([]*generate.Company, plan.CompanyCount)
		for j := range companies {
			companySerial++
			company := companyGen.Generate(entry.Size)
			company.ID = companySerial
			company.CityID = plan.City.ID
			companies[j] = company
		}
		companiesByCity[plan.City.ID] = companies
		plans = append(plans, plan)
	}
	return plans, companiesByCity, nil
}

// createPopulation generates each city's population and puts people to
// work at their home town's companies.
func (s *Seeder) createPopulation(
	plans []*generate.CityPlan,
	companiesByCity map[int][]*generate.Company,
) ([]*model.Person, []*model.Employment, error) {
	lastNames, err := seeddata.Entries("last_names")
	if err != nil {
		return nil, nil, err
	}
	for i, name := range lastNames {
		lastNames[i] = seeddata.ShuffleInfix(name)
	}
	feminine, err := seeddata.Entries("first_names_feminine")
	if err != nil {
		return nil, nil, err
	}
	masculine, err := seeddata.Entries("first_names_masculine")
	if err != nil {
		return nil, nil, err
	}

	popGen := generate.NewPopulationGenerator(lastNames, feminine, masculine, s.rng)

	var people []*model.Person
	var employments []*model.Employment
	var personSerial int
	for _, plan := range plans {
		for _, person := range popGen.Generate(plan.PopulationSize) {
			personSerial++
			person.ID = personSerial
			person.CityID = plan.City.ID
			people = append(people, person)
			if employment := s.employPerson(person, companiesByCity[plan.City.ID]); employment != nil {
				employments = append(employments, employment)
			}
		}
	}
	return people, employments, nil
}

// write inserts all generated rows in dependency order through a chunked
// bulk saver, in a single transaction.
func (s *Seeder) write(
	ctx context.Context,
	plans []*generate.CityPlan,
	companiesByCity map[int][]*generate.Company,
	people []*model.Person,
	employments []*model.Employment,
	links []*model.TransportLink,
) error {
	tx, err := s.conn.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	saver := NewBulkSaver(tx, s.conn.Provider, s.cfg.Seed.BatchSize)
	for _, plan := range plans {
		if err := saver.Add(ctx, plan.City); err != nil {
			return err
		}
		for _, company := range companiesByCity[plan.City.ID] {
			if err := saver.Add(ctx, company.Company); err != nil {
				return err
			}
		}
	}
	for _, person := range people {
		if err := saver.Add(ctx, person); err != nil {
			return err
		}
	}
	for _, employment := range employments {
		if err := saver.Add(ctx, employment); err != nil {
			return err
		}
	}
	for _, link := range links {
		if err := saver.Add(ctx, link); err != nil {
			return err
		}
	}
	if err := saver.Flush(ctx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
