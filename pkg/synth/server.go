package synth

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"pkg.jsn.cam/csvforge/internal/config"
)

var serverHeader = []string{
	"server_id",
	"server_name",
	"os_type",
	"cpu_cores",
	"ram_gb",
	"storage_gb",
	"ip_address",
	"datacenter_location",
	"application_name",
	"environment",
	"migration_status",
	"target_cloud_provider",
	"migration_wave",
	"planned_migration_date",
	"business_criticality",
	"last_patch_date",
}

// ServerGenerator produces server-migration inventory rows by sampling
// fixed vocabularies and numeric option sets. Every field is an
// independent draw; CPU, RAM, and storage are deliberately
// uncorrelated.
type ServerGenerator struct {
	cfg   config.ServerConfig
	rand  *rand.Rand
	faker *gofakeit.Faker
	now   time.Time
}

// NewServerGenerator creates a generator over the given vocabularies.
func NewServerGenerator(cfg config.ServerConfig) *ServerGenerator {
	return &ServerGenerator{cfg: cfg}
}

func (g *ServerGenerator) Init(r *rand.Rand) {
	g.rand = r
	g.faker = gofakeit.New(r.Uint64())
	g.now = time.Now()
}

func (g *ServerGenerator) Header() []string {
	return serverHeader
}

// NextRecord samples a single server record.
func (g *ServerGenerator) NextRecord() ServerRecord {
	return ServerRecord{
		ID:                  uuid.NewString(),
		Name:                g.serverName(),
		OSType:              choice(g.rand, g.cfg.OSTypes),
		CPUCores:            choice(g.rand, g.cfg.CPUCoreOptions),
		RAMGB:               choice(g.rand, g.cfg.RAMGBOptions),
		StorageGB:           choice(g.rand, g.cfg.StorageGBOptions),
		IPAddress:           g.faker.IPv4Address(),
		DatacenterLocation:  choice(g.rand, g.cfg.DatacenterLocations),
		ApplicationName:     choice(g.rand, g.cfg.ApplicationNames),
		Environment:         choice(g.rand, g.cfg.Environments),
		MigrationStatus:     choice(g.rand, g.cfg.MigrationStatuses),
		TargetCloudProvider: choice(g.rand, g.cfg.TargetCloudProviders),
		MigrationWave:       choice(g.rand, g.cfg.MigrationWaves),
		// Planned date falls in [-30d, +180d] around the run time,
		// last patch in the trailing year.
		PlannedMigrationDate: g.now.AddDate(0, 0, -30+g.rand.IntN(211)),
		BusinessCriticality:  choice(g.rand, g.cfg.CriticalityLevels),
		LastPatchDate:        g.now.AddDate(0, 0, -g.rand.IntN(366)),
	}
}

func (g *ServerGenerator) Next() ([]string, error) {
	return g.NextRecord().Row(), nil
}

// serverName builds "{prefix}-{environment}-{word}-{NN}". The name is
// cosmetic; no uniqueness is guaranteed.
func (g *ServerGenerator) serverName() string {
	prefix := choice(g.rand, g.cfg.NamePrefixes)
	env := strings.ToLower(choice(g.rand, g.cfg.Environments))
	word := strings.ToLower(g.faker.Word())
	return fmt.Sprintf("%s-%s-%s-%02d", prefix, env, word, 1+g.rand.IntN(99))
}

func (g *ServerGenerator) Description() string {
	return "Server migration inventory: vocab-sampled specs, one row per server"
}
