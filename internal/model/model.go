package model

import "time"

// SizeCode classifies a city by its population bracket.
type SizeCode string

const (
	SizeSmall      SizeCode = "S"
	SizeMedium     SizeCode = "M"
	SizeLarge      SizeCode = "L"
	SizeExtraLarge SizeCode = "XL"
)

// Gender values match the ck_person_gender check constraint.
type Gender string

const (
	GenderFeminine  Gender = "f"
	GenderMasculine Gender = "m"
	GenderNonBinary Gender = "x"
)

// Role values match the ck_employment_role check constraint.
type Role string

const (
	RoleDirector Role = "director"
	RoleManager  Role = "manager"
	RoleWorker   Role = "worker"
)

// Row is the insertion contract shared by all models: every row type knows
// its table name, its column order and the values to insert. Mapping is
// explicit rather than reflection-based so that the generated SQL can be
// read straight off the struct definition.
type Row interface {
	Table() string
	Columns() []string
	Values() []interface{}
}

// City is a place for people to live and companies to settle.
type City struct {
	ID       int
	Name     string
	SizeCode SizeCode
}

func (City) Table() string { return "city" }

func (City) Columns() []string { return []string{"id", "name", "size_code"} }

func (c *City) Values() []interface{} {
	return []interface{}{c.ID, c.Name, string(c.SizeCode)}
}

// Company employs people and is located in a single city.
type Company struct {
	ID       int
	Name     string
	Industry string
	CityID   int
}

func (Company) Table() string { return "company" }

func (Company) Columns() []string { return []string{"id", "name", "industry", "city_id"} }

func (c *Company) Values() []interface{} {
	return []interface{}{c.ID, c.Name, c.Industry, c.CityID}
}

// Person lives in a city and may hold an employment contract or an income
// from self-employment (or neither).
type Person struct {
	ID                   int
	FirstName            string
	LastName             string
	Birthday             time.Time
	Gender               Gender
	CityID               int
	SelfEmploymentIncome *int
}

func (Person) Table() string { return "person" }

func (Person) Columns() []string {
	return []string{
		"id", "first_name", "last_name", "birthday",
		"gender", "city_id", "self_employment_income"}
}

func (p *Person) Values() []interface{} {
	var income interface{}
	if p.SelfEmploymentIncome != nil {
		income = *p.SelfEmploymentIncome
	}
	return []interface{}{
		p.ID, p.FirstName, p.LastName, p.Birthday.Format("2006-01-02"),
		string(p.Gender), p.CityID, income}
}

// Employment links a person to a company, with a role and monthly salary.
// The (person, company) pair is the primary key.
type Employment struct {
	PersonID  int
	CompanyID int
	Role      Role
	Salary    int
}

func (Employment) Table() string { return "employment" }

func (Employment) Columns() []string {
	return []string{"person_id", "company_id", "role", "salary"}
}

func (e *Employment) Values() []interface{} {
	return []interface{}{e.PersonID, e.CompanyID, string(e.Role), e.Salary}
}

// TransportLink is an undirected edge between two cities. Links are stored
// with the lower city ID first so that each city pair occurs at most once.
type TransportLink struct {
	LowerCityID  int
	HigherCityID int
	Distance     int
}

func (TransportLink) Table() string { return "transport_link" }

func (TransportLink) Columns() []string {
	return []string{"lower_city_id", "higher_city_id", "distance"}
}

func (t *TransportLink) Values() []interface{} {
	return []interface{}{t.LowerCityID, t.HigherCityID, t.Distance}
}
