package synth

import (
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"

	"pkg.jsn.cam/csvforge/internal/config"
)

// newTestServerGenerator creates an initialized generator over the
// default vocabularies
func newTestServerGenerator(t *testing.T) (*ServerGenerator, config.ServerConfig) {
	t.Helper()
	t.Setenv("CSVFORGE_CONFIG", "")

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load default config: %v", err)
	}

	g := NewServerGenerator(cfg.Server)
	g.Init(rand.New(rand.NewPCG(1, 2)))
	return g, cfg.Server
}

func stringSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func intSet(values []int) map[int]bool {
	set := make(map[int]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func TestServerGenerator_FieldsFromVocabularies(t *testing.T) {
	g, cfg := newTestServerGenerator(t)

	osTypes := stringSet(cfg.OSTypes)
	cpus := intSet(cfg.CPUCoreOptions)
	rams := intSet(cfg.RAMGBOptions)
	storages := intSet(cfg.StorageGBOptions)
	locations := stringSet(cfg.DatacenterLocations)
	apps := stringSet(cfg.ApplicationNames)
	envs := stringSet(cfg.Environments)
	statuses := stringSet(cfg.MigrationStatuses)
	providers := stringSet(cfg.TargetCloudProviders)
	waves := intSet(cfg.MigrationWaves)
	criticalities := stringSet(cfg.CriticalityLevels)

	for i := 0; i < 1000; i++ {
		rec := g.NextRecord()

		if !osTypes[rec.OSType] {
			t.Fatalf("record %d: os_type %q not in vocabulary", i, rec.OSType)
		}
		if !cpus[rec.CPUCores] {
			t.Fatalf("record %d: cpu_cores %d not in option set", i, rec.CPUCores)
		}
		if !rams[rec.RAMGB] {
			t.Fatalf("record %d: ram_gb %d not in option set", i, rec.RAMGB)
		}
		if !storages[rec.StorageGB] {
			t.Fatalf("record %d: storage_gb %d not in option set", i, rec.StorageGB)
		}
		if !locations[rec.DatacenterLocation] {
			t.Fatalf("record %d: datacenter_location %q not in vocabulary", i, rec.DatacenterLocation)
		}
		if !apps[rec.ApplicationName] {
			t.Fatalf("record %d: application_name %q not in vocabulary", i, rec.ApplicationName)
		}
		if !envs[rec.Environment] {
			t.Fatalf("record %d: environment %q not in vocabulary", i, rec.Environment)
		}
		if !statuses[rec.MigrationStatus] {
			t.Fatalf("record %d: migration_status %q not in vocabulary", i, rec.MigrationStatus)
		}
		if !providers[rec.TargetCloudProvider] {
			t.Fatalf("record %d: target_cloud_provider %q not in vocabulary", i, rec.TargetCloudProvider)
		}
		if !waves[rec.MigrationWave] {
			t.Fatalf("record %d: migration_wave %d not in option set", i, rec.MigrationWave)
		}
		if !criticalities[rec.BusinessCriticality] {
			t.Fatalf("record %d: business_criticality %q not in vocabulary", i, rec.BusinessCriticality)
		}
	}
}

func TestServerGenerator_UniqueValidIDs(t *testing.T) {
	g, _ := newTestServerGenerator(t)

	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		rec := g.NextRecord()

		if _, err := uuid.Parse(rec.ID); err != nil {
			t.Fatalf("record %d: server_id %q is not a valid UUID: %v", i, rec.ID, err)
		}
		if seen[rec.ID] {
			t.Fatalf("record %d: duplicate server_id %q", i, rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestServerGenerator_NameFormat(t *testing.T) {
	g, _ := newTestServerGenerator(t)

	nameRe := regexp.MustCompile(`^[a-z]+-[a-z]+-[a-z0-9]+-\d{2}$`)
	for i := 0; i < 200; i++ {
		rec := g.NextRecord()
		if !nameRe.MatchString(rec.Name) {
			t.Fatalf("record %d: server_name %q does not match prefix-env-word-NN", i, rec.Name)
		}
	}
}

func TestServerGenerator_DateWindows(t *testing.T) {
	before := time.Now()
	g, _ := newTestServerGenerator(t)

	plannedMin := before.AddDate(0, 0, -31)
	plannedMax := before.AddDate(0, 0, 181)
	patchMin := before.AddDate(0, 0, -366)
	patchMax := before.AddDate(0, 0, 1)

	for i := 0; i < 500; i++ {
		rec := g.NextRecord()

		if rec.PlannedMigrationDate.Before(plannedMin) || rec.PlannedMigrationDate.After(plannedMax) {
			t.Fatalf("record %d: planned_migration_date %v outside [-30d, +180d]", i, rec.PlannedMigrationDate)
		}
		if rec.LastPatchDate.Before(patchMin) || rec.LastPatchDate.After(patchMax) {
			t.Fatalf("record %d: last_patch_date %v outside trailing year", i, rec.LastPatchDate)
		}
	}
}

func TestServerGenerator_RowMatchesHeader(t *testing.T) {
	g, _ := newTestServerGenerator(t)

	header := g.Header()
	if len(header) != 16 {
		t.Fatalf("header has %d columns, want 16", len(header))
	}
	if header[0] != "server_id" || header[15] != "last_patch_date" {
		t.Errorf("unexpected header order: %v", header)
	}

	row, err := g.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if len(row) != len(header) {
		t.Fatalf("row has %d cells, header has %d columns", len(row), len(header))
	}
}
