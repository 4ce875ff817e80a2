package httpapi

import (
	"context"
	"sync/atomic"

	"hirepath-engine/internal/apps"
	"hirepath-engine/internal/config"
	"hirepath-engine/internal/events"
	"hirepath-engine/internal/feed"
	"hirepath-engine/internal/resume"
	"hirepath-engine/internal/savedjobs"
	"hirepath-engine/internal/tailor"

	"github.com/rs/zerolog"
)

type Deps struct {
	Apps   *apps.Repo
	Saved  *savedjobs.Repo
	Resume *resume.Holder
	Feed   *feed.Client
	Tailor *tailor.Gateway
	Hub    *events.Hub

	// CfgVal stores config.Config; handlers read the live value so config
	// saves apply without a restart.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Mail scan entrypoint (nil when disabled); injected for testability.
	RunMailScan func(ctx context.Context, cfg config.Config) (added int, err error)

	Log zerolog.Logger
}
