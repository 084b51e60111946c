package cli

import (
	"go.uber.org/zap"

	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/engine"
	"github.com/TeriyakiSecky/android-sdk/internal/logger"
)

// progressListener logs driver progress events through zap.
type progressListener struct{}

func (progressListener) Update(d *engine.Driver, event engine.EventType, ctx *detector.Context) {
	switch event {
	case engine.EventScanningProject:
		logger.Log.Info("Scanning project", zap.String("dir", ctx.Project.Dir))
	case engine.EventScanningLibraryProject:
		logger.Log.Info("Scanning library project",
			zap.String("dir", ctx.Project.Dir),
			zap.String("for", ctx.MainProject().Dir))
	case engine.EventScanningFile:
		logger.Log.Debug("Scanning file", zap.String("file", ctx.File))
	case engine.EventNewPhase:
		logger.Log.Info("Starting new phase", zap.Int("phase", d.Phase()))
	default:
		logger.Log.Info("Lint " + event.String())
	}
}
