package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/abdidvp/growthcheck/internal/adapters/outbound/config"
	"github.com/abdidvp/growthcheck/internal/adapters/outbound/history"
	"github.com/abdidvp/growthcheck/internal/adapters/outbound/profile"
	"github.com/abdidvp/growthcheck/internal/adapters/outbound/reference"
	"github.com/abdidvp/growthcheck/internal/application"
)

// Version is reported to MCP clients during initialization.
var Version = "dev"

// handlers carries the services shared by every tool and resource.
type handlers struct {
	dataDir    string
	configs    *config.YAMLLoader
	references *reference.Loader
	evaluate   *application.EvaluateService
	profiles   *application.ProfileService
	now        func() time.Time
}

func newHandlers(dataDir string, logger *zap.Logger) *handlers {
	configs := config.New()
	references := reference.New()
	return &handlers{
		dataDir:    dataDir,
		configs:    configs,
		references: references,
		evaluate:   application.NewEvaluateService(configs, references, history.New(), logger),
		profiles:   application.NewProfileService(profile.New()),
		now:        time.Now,
	}
}

// NewGrowthCheckMCPServer creates a new MCP server with all growthcheck tools
// and resources registered. dataDir holds the configuration, profile and
// history that the tools read and write.
func NewGrowthCheckMCPServer(dataDir string, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"growthcheck",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	h := newHandlers(dataDir, logger)
	registerTools(s, h)
	registerResources(s, h)

	return s
}
