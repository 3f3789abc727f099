// Package schema declares the smallville tables and renders their DDL for
// the supported database providers. Constraint names follow a fixed
// convention: pk_, uq_, ck_, fk_ and ix_ prefixes.
package schema

import "fmt"

// Tables lists all smallville tables in insertion (dependency) order:
// every table appears after the tables its foreign keys reference. Dropping
// happens in the reverse order.
var Tables = []string{"city", "company", "person", "employment", "transport_link"}

// Dialect renders provider-specific DDL. All primary keys are assigned
// client-side during seeding, so ID columns are plain integers on every
// provider.
type Dialect struct {
	provider string
	text     string
}

// For returns the dialect for a database provider. MySQL cannot place
// unique constraints on unsized TEXT columns, so it gets sized VARCHARs.
func For(provider string) Dialect {
	text := "TEXT"
	if provider == "mysql" {
		text = "VARCHAR(255)"
	}
	return Dialect{provider: provider, text: text}
}

// CreateStatements returns the CREATE TABLE and CREATE INDEX statements for
// all smallville tables, in execution order.
func (d Dialect) CreateStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE city (
	id INTEGER NOT NULL,
	name %[1]s NOT NULL,
	size_code %[1]s NOT NULL,
	CONSTRAINT pk_city PRIMARY KEY (id),
	CONSTRAINT uq_city_name UNIQUE (name),
	CONSTRAINT ck_city_size_code CHECK (size_code IN ('S', 'M', 'L', 'XL'))
)`, d.text),
		fmt.Sprintf(`CREATE TABLE company (
	id INTEGER NOT NULL,
	name %[1]s NOT NULL,
	industry %[1]s NOT NULL,
	city_id INTEGER NOT NULL,
	CONSTRAINT pk_company PRIMARY KEY (id),
	CONSTRAINT fk_company_city_id_city FOREIGN KEY (city_id)
		REFERENCES city (id) ON UPDATE CASCADE ON DELETE CASCADE
)`, d.text),
		fmt.Sprintf(`CREATE TABLE person (
	id INTEGER NOT NULL,
	first_name %[1]s NOT NULL,
	last_name %[1]s NOT NULL,
	birthday DATE NOT NULL,
	gender %[1]s NOT NULL,
	city_id INTEGER NOT NULL,
	self_employment_income INTEGER,
	CONSTRAINT pk_person PRIMARY KEY (id),
	CONSTRAINT ck_person_gender CHECK (gender IN ('f', 'm', 'x')),
	CONSTRAINT fk_person_city_id_city FOREIGN KEY (city_id)
		REFERENCES city (id) ON UPDATE CASCADE ON DELETE CASCADE
)`, d.text),
		fmt.Sprintf(`CREATE TABLE employment (
	person_id INTEGER NOT NULL,
	company_id INTEGER NOT NULL,
	role %[1]s NOT NULL,
	salary INTEGER NOT NULL,
	CONSTRAINT pk_employment PRIMARY KEY (person_id, company_id),
	CONSTRAINT ck_employment_role CHECK (role IN ('director', 'manager', 'worker')),
	CONSTRAINT fk_employment_person_id_person FOREIGN KEY (person_id)
		REFERENCES person (id) ON UPDATE CASCADE ON DELETE CASCADE,
	CONSTRAINT fk_employment_company_id_company FOREIGN KEY (company_id)
		REFERENCES company (id) ON UPDATE CASCADE ON DELETE CASCADE
)`, d.text),
		`CREATE TABLE transport_link (
	lower_city_id INTEGER NOT NULL,
	higher_city_id INTEGER NOT NULL,
	distance INTEGER NOT NULL,
	CONSTRAINT pk_transport_link PRIMARY KEY (lower_city_id, higher_city_id),
	CONSTRAINT fk_transport_link_lower_city_id_city FOREIGN KEY (lower_city_id)
		REFERENCES city (id) ON UPDATE CASCADE ON DELETE CASCADE,
	CONSTRAINT fk_transport_link_higher_city_id_city FOREIGN KEY (higher_city_id)
		REFERENCES city (id) ON UPDATE CASCADE ON DELETE CASCADE
)`,
		// Foreign keys are indexed, except the leading column of composite
		// primary keys, which the PK index already covers.
		"CREATE INDEX ix_company_city_id ON company (city_id)",
		"CREATE INDEX ix_person_city_id ON person (city_id)",
		"CREATE INDEX ix_employment_company_id ON employment (company_id)",
		"CREATE INDEX ix_transport_link_higher_city_id ON transport_link (higher_city_id)",
	}
}

// DropStatements returns DROP TABLE statements in reverse dependency order.
func (d Dialect) DropStatements() []string {
	cascade := ""
	if d.provider == "postgresql" || d.provider == "postgres" {
		cascade = " CASCADE"
	}
	statements := make([]string, 0, len(Tables))
	for i := len(Tables) - 1; i >= 0; i-- {
		statements = append(statements,
			fmt.Sprintf("DROP TABLE IF EXISTS %s%s", Tables[i], cascade))
	}
	return statements
}
