package plugins

import (
	"strings"

	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
)

// proguardConfig inspects the shrinker configuration for directives that
// hide problems instead of fixing them.
type proguardConfig struct {
	detector.Base
}

func newProguardConfig() detector.Detector { return &proguardConfig{} }

func (d *proguardConfig) Kind() string { return "proguard-config" }

func (d *proguardConfig) Run(ctx *detector.Context) {
	contents, err := ctx.Driver.Client().ReadFile(ctx.File)
	if err != nil {
		ctx.Driver.Client().Log(err, "Could not read %s", ctx.File)
		return
	}
	for i, line := range strings.Split(string(contents), "\n") {
		directive := strings.TrimSpace(line)
		if directive == "-ignorewarnings" || strings.HasPrefix(directive, "-dontwarn **") {
			ctx.Report(IssueIgnoreWarnings,
				&model.Location{File: ctx.File, StartLine: i + 1},
				"Silencing all shrinker warnings can hide real problems", nil)
		}
	}
}
