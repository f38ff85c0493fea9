package synth

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"pkg.jsn.cam/csvforge/internal/config"
)

var payrollHeader = []string{
	"EmployeeID",
	"FullName",
	"Department",
	"Position",
	"MonthlySalary",
	"HoursWorkedPerWeek",
	"DateOfJoining",
	"EmailAddress",
}

// joiningWindowDays bounds DateOfJoining to the trailing five years.
const joiningWindowDays = 5 * 365

// PayrollGenerator produces employee rows. Department is a weighted
// draw; position is drawn only from the chosen department's configured
// set, and salary only from that position's band. That chain is the
// one invariant the whole tool exists to uphold.
type PayrollGenerator struct {
	cfg    config.PayrollConfig
	rand   *rand.Rand
	faker  *gofakeit.Faker
	nextID int
	now    time.Time
}

// NewPayrollGenerator creates a generator over the configured
// department table. An empty table or a department with no positions is
// a configuration defect and fails here, never at row time.
func NewPayrollGenerator(cfg config.PayrollConfig) (*PayrollGenerator, error) {
	if len(cfg.Departments) == 0 {
		return nil, ErrNoDepartments
	}
	for _, dept := range cfg.Departments {
		if len(dept.Positions) == 0 {
			return nil, fmt.Errorf("department %s: %w", dept.Name, ErrNoPositions)
		}
	}
	return &PayrollGenerator{cfg: cfg}, nil
}

func (g *PayrollGenerator) Init(r *rand.Rand) {
	g.rand = r
	g.faker = gofakeit.New(r.Uint64())
	g.nextID = 1
	g.now = time.Now()
}

func (g *PayrollGenerator) Header() []string {
	return payrollHeader
}

// NextRecord samples a single employee record with a sequential ID.
func (g *PayrollGenerator) NextRecord() PayrollRecord {
	id := g.nextID
	g.nextID++

	dept := g.pickDepartment()
	pos := g.pickPosition(dept)
	salary := pos.MinSalary + g.rand.IntN(pos.MaxSalary-pos.MinSalary+1)

	first := g.faker.FirstName()
	last := g.faker.LastName()

	return PayrollRecord{
		EmployeeID:         id,
		FullName:           first + " " + last,
		Department:         dept.Name,
		Position:           pos.Title,
		MonthlySalary:      salary,
		HoursWorkedPerWeek: 35 + g.rand.IntN(11),
		DateOfJoining:      g.now.AddDate(0, 0, -(1 + g.rand.IntN(joiningWindowDays))),
		EmailAddress:       EmailAddress(first, last, g.cfg.EmailDomain),
	}
}

func (g *PayrollGenerator) Next() ([]string, error) {
	return g.NextRecord().Row(), nil
}

func (g *PayrollGenerator) pickDepartment() config.Department {
	var total float64
	for _, dept := range g.cfg.Departments {
		total += dept.Weight
	}

	x := g.rand.Float64() * total
	for _, dept := range g.cfg.Departments {
		x -= dept.Weight
		if x < 0 {
			return dept
		}
	}
	// Float accumulation can land exactly on total
	return g.cfg.Departments[len(g.cfg.Departments)-1]
}

func (g *PayrollGenerator) pickPosition(dept config.Department) config.Position {
	var total float64
	for _, pos := range dept.Positions {
		total += pos.Weight
	}

	x := g.rand.Float64() * total
	for _, pos := range dept.Positions {
		x -= pos.Weight
		if x < 0 {
			return pos
		}
	}
	return dept.Positions[len(dept.Positions)-1]
}

func (g *PayrollGenerator) Description() string {
	return "Employee payroll: department-consistent positions and salary bands"
}

// EmailAddress derives a lower-cased, dot-joined address from a name.
func EmailAddress(first, last, domain string) string {
	return sanitizeLocalPart(first) + "." + sanitizeLocalPart(last) + "@" + domain
}

// sanitizeLocalPart lower-cases a name token and strips anything
// outside [a-z0-9]; fake names occasionally carry apostrophes or
// spaces.
func sanitizeLocalPart(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	if b.Len() == 0 {
		return "x"
	}
	return b.String()
}

// ValidEmail reports whether addr has a non-empty local part, a single
// "@", and a non-empty domain containing a dot.
func ValidEmail(addr string) bool {
	local, domain, ok := strings.Cut(addr, "@")
	if !ok || strings.Contains(domain, "@") {
		return false
	}
	if local == "" || domain == "" {
		return false
	}
	return strings.Contains(strings.Trim(domain, "."), ".")
}
