package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds every fixed table the generators sample from. Values are
// compiled-in defaults, optionally overridden by a YAML file.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Payroll PayrollConfig `yaml:"payroll"`
}

// ServerConfig holds the vocabularies and numeric option sets for
// server-inventory rows.
type ServerConfig struct {
	NamePrefixes         []string `yaml:"namePrefixes"`
	OSTypes              []string `yaml:"osTypes"`
	CPUCoreOptions       []int    `yaml:"cpuCoreOptions"`
	RAMGBOptions         []int    `yaml:"ramGBOptions"`
	StorageGBOptions     []int    `yaml:"storageGBOptions"`
	DatacenterLocations  []string `yaml:"datacenterLocations"`
	ApplicationNames     []string `yaml:"applicationNames"`
	Environments         []string `yaml:"environments"`
	MigrationStatuses    []string `yaml:"migrationStatuses"`
	TargetCloudProviders []string `yaml:"targetCloudProviders"`
	MigrationWaves       []int    `yaml:"migrationWaves"`
	CriticalityLevels    []string `yaml:"criticalityLevels"`
}

// PayrollConfig holds the department table and batch parameters for
// payroll rows.
type PayrollConfig struct {
	BatchSize   int          `yaml:"batchSize"`
	EmailDomain string       `yaml:"emailDomain"`
	Departments []Department `yaml:"departments"`
}

// Department maps a department name to its selection weight and the
// positions valid within it. A department with no positions is a
// configuration defect, rejected at load time.
type Department struct {
	Name      string     `yaml:"name"`
	Weight    float64    `yaml:"weight"`
	Positions []Position `yaml:"positions"`
}

// Position couples a title with its selection weight and salary band.
type Position struct {
	Title     string  `yaml:"title"`
	Weight    float64 `yaml:"weight"`
	MinSalary int     `yaml:"minSalary"`
	MaxSalary int     `yaml:"maxSalary"`
}

// Load initialises Config from compiled-in defaults, then applies the
// YAML file at path (or $CSVFORGE_CONFIG when path is empty) if one is
// set. The result is validated before it is returned.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv("CSVFORGE_CONFIG")
	}

	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("config file %s not found: %w", path, err)
			}
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{
			NamePrefixes: []string{"web", "app", "db", "cache", "rpt", "aux"},
			OSTypes: []string{
				"Ubuntu 22.04 LTS",
				"RHEL 8",
				"Windows Server 2019",
				"CentOS 7",
				"Debian 11",
			},
			CPUCoreOptions:   []int{2, 4, 8, 16, 32, 64},
			RAMGBOptions:     []int{8, 16, 32, 64, 128, 256},
			StorageGBOptions: []int{250, 500, 1000, 2000, 4000, 8000},
			DatacenterLocations: []string{
				"us-east-1",
				"us-west-2",
				"eu-central-1",
				"ap-southeast-1",
				"eu-west-1",
			},
			ApplicationNames: []string{
				"E-commerce Backend",
				"CRM Suite",
				"Data Warehouse",
				"Internal Portal",
				"Payment API",
				"Reporting Service",
				"User Authentication",
			},
			Environments: []string{"Production", "Staging", "Development", "Test", "QA"},
			MigrationStatuses: []string{
				"Pending Assessment",
				"Planning",
				"Ready for Migration",
				"Migrating",
				"Completed",
				"On Hold",
				"Failed",
			},
			TargetCloudProviders: []string{"AWS", "Azure", "GCP", "OCI"},
			MigrationWaves:       []int{1, 2, 3, 4, 5},
			CriticalityLevels:    []string{"High", "Medium", "Low"},
		},
		Payroll: PayrollConfig{
			BatchSize:   200,
			EmailDomain: "example.com",
			Departments: []Department{
				{
					Name:   "HR",
					Weight: 0.15,
					Positions: []Position{
						{Title: "HR Specialist", Weight: 0.9, MinSalary: 3850, MaxSalary: 4150},
						{Title: "Manager", Weight: 0.1, MinSalary: 4350, MaxSalary: 4650},
					},
				},
				{
					Name:   "Marketing",
					Weight: 0.2,
					Positions: []Position{
						{Title: "Marketer", Weight: 0.9, MinSalary: 4450, MaxSalary: 4750},
						{Title: "Manager", Weight: 0.1, MinSalary: 4550, MaxSalary: 4850},
					},
				},
				{
					Name:   "Sales",
					Weight: 0.15,
					Positions: []Position{
						{Title: "Sales Rep", Weight: 0.9, MinSalary: 4850, MaxSalary: 5150},
						{Title: "Manager", Weight: 0.1, MinSalary: 5050, MaxSalary: 5350},
					},
				},
				{
					Name:   "IT",
					Weight: 0.3,
					Positions: []Position{
						{Title: "Developer", Weight: 0.9, MinSalary: 5850, MaxSalary: 6150},
						{Title: "Manager", Weight: 0.1, MinSalary: 5950, MaxSalary: 6250},
					},
				},
				{
					Name:   "Finance",
					Weight: 0.25,
					Positions: []Position{
						{Title: "Analyst", Weight: 0.9, MinSalary: 5350, MaxSalary: 5650},
						{Title: "Director", Weight: 0.1, MinSalary: 5650, MaxSalary: 5950},
					},
				},
			},
		},
	}
}

// Validate rejects configuration defects before any generation work
// begins.
func (c *Config) Validate() error {
	if err := c.Server.validate(); err != nil {
		return fmt.Errorf("server config: %w", err)
	}
	if err := c.Payroll.validate(); err != nil {
		return fmt.Errorf("payroll config: %w", err)
	}
	return nil
}

func (s *ServerConfig) validate() error {
	vocabularies := map[string]int{
		"namePrefixes":         len(s.NamePrefixes),
		"osTypes":              len(s.OSTypes),
		"cpuCoreOptions":       len(s.CPUCoreOptions),
		"ramGBOptions":         len(s.RAMGBOptions),
		"storageGBOptions":     len(s.StorageGBOptions),
		"datacenterLocations":  len(s.DatacenterLocations),
		"applicationNames":     len(s.ApplicationNames),
		"environments":         len(s.Environments),
		"migrationStatuses":    len(s.MigrationStatuses),
		"targetCloudProviders": len(s.TargetCloudProviders),
		"migrationWaves":       len(s.MigrationWaves),
		"criticalityLevels":    len(s.CriticalityLevels),
	}
	for name, n := range vocabularies {
		if n == 0 {
			return fmt.Errorf("vocabulary %s is empty", name)
		}
	}
	return nil
}

func (p *PayrollConfig) validate() error {
	if p.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive, got %d", p.BatchSize)
	}
	if !strings.Contains(p.EmailDomain, ".") || strings.Contains(p.EmailDomain, "@") {
		return fmt.Errorf("invalid email domain %q", p.EmailDomain)
	}
	if len(p.Departments) == 0 {
		return fmt.Errorf("no departments configured")
	}

	for _, dept := range p.Departments {
		if dept.Name == "" {
			return fmt.Errorf("department with empty name")
		}
		if dept.Weight <= 0 {
			return fmt.Errorf("department %s: weight must be positive, got %v", dept.Name, dept.Weight)
		}
		if len(dept.Positions) == 0 {
			return fmt.Errorf("department %s has no positions", dept.Name)
		}
		for _, pos := range dept.Positions {
			if pos.Title == "" {
				return fmt.Errorf("department %s: position with empty title", dept.Name)
			}
			if pos.Weight <= 0 {
				return fmt.Errorf("department %s: position %s: weight must be positive, got %v", dept.Name, pos.Title, pos.Weight)
			}
			if pos.MinSalary <= 0 || pos.MaxSalary < pos.MinSalary {
				return fmt.Errorf("department %s: position %s: invalid salary band [%d, %d]", dept.Name, pos.Title, pos.MinSalary, pos.MaxSalary)
			}
		}
	}
	return nil
}

// Department returns the configured department with the given name.
func (p *PayrollConfig) Department(name string) (Department, bool) {
	for _, dept := range p.Departments {
		if dept.Name == name {
			return dept, true
		}
	}
	return Department{}, false
}

// Position returns the configured position with the given title.
func (d Department) Position(title string) (Position, bool) {
	for _, pos := range d.Positions {
		if pos.Title == title {
			return pos, true
		}
	}
	return Position{}, false
}
