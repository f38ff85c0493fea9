package synth

import (
	"strconv"
	"time"
)

const dateFormat = "2006-01-02"

// ServerRecord is one synthetic server-inventory row. Rows are
// independent; identifier uniqueness holds within a single batch only.
type ServerRecord struct {
	ID                   string
	Name                 string
	OSType               string
	CPUCores             int
	RAMGB                int
	StorageGB            int
	IPAddress            string
	DatacenterLocation   string
	ApplicationName      string
	Environment          string
	MigrationStatus      string
	TargetCloudProvider  string
	MigrationWave        int
	PlannedMigrationDate time.Time
	BusinessCriticality  string
	LastPatchDate        time.Time
}

// Row returns the record as CSV cells in serverHeader order.
func (r ServerRecord) Row() []string {
	return []string{
		r.ID,
		r.Name,
		r.OSType,
		strconv.Itoa(r.CPUCores),
		strconv.Itoa(r.RAMGB),
		strconv.Itoa(r.StorageGB),
		r.IPAddress,
		r.DatacenterLocation,
		r.ApplicationName,
		r.Environment,
		r.MigrationStatus,
		r.TargetCloudProvider,
		strconv.Itoa(r.MigrationWave),
		r.PlannedMigrationDate.Format(dateFormat),
		r.BusinessCriticality,
		r.LastPatchDate.Format(dateFormat),
	}
}

// PayrollRecord is one synthetic employee row. Position is always a
// member of the department's configured position set, and MonthlySalary
// falls within that position's salary band.
type PayrollRecord struct {
	EmployeeID         int
	FullName           string
	Department         string
	Position           string
	MonthlySalary      int
	HoursWorkedPerWeek int
	DateOfJoining      time.Time
	EmailAddress       string
}

// Row returns the record as CSV cells in payrollHeader order.
func (r PayrollRecord) Row() []string {
	return []string{
		strconv.Itoa(r.EmployeeID),
		r.FullName,
		r.Department,
		r.Position,
		strconv.Itoa(r.MonthlySalary),
		strconv.Itoa(r.HoursWorkedPerWeek),
		r.DateOfJoining.Format(dateFormat),
		r.EmailAddress,
	}
}
