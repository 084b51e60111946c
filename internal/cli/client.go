package cli

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/TeriyakiSecky/android-sdk/internal/classfile"
	"github.com/TeriyakiSecky/android-sdk/internal/detector"
	"github.com/TeriyakiSecky/android-sdk/internal/logger"
	"github.com/TeriyakiSecky/android-sdk/internal/model"
	"github.com/TeriyakiSecky/android-sdk/internal/project"
)

// Client is the CLI's embedding of the lint driver: it collects findings
// in memory, logs diagnostics through zap and serves projects from a
// directory-keyed cache. Source and bytecode parsers are not wired up, so
// those scopes degrade to the driver's documented skip paths.
type Client struct {
	findings []model.Finding
	projects *project.Cache
	parser   markupParser
}

func NewClient() *Client {
	return &Client{projects: project.NewCache()}
}

// Findings returns everything reported so far, in report order.
func (c *Client) Findings() []model.Finding { return c.findings }

func (c *Client) Report(ctx *detector.Context, issue *model.Issue,
	location *model.Location, message string, _ any) {
	f := model.Finding{
		IssueID:  issue.ID,
		Severity: ctx.Config().Severity(issue),
		File:     ctx.File,
		Message:  message,
	}
	if location != nil {
		f.File = location.File
		f.Line = location.StartLine
	}
	c.findings = append(c.findings, f)
}

func (c *Client) Log(err error, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if err != nil {
		logger.Log.Warn(msg, zap.Error(err))
	} else {
		logger.Log.Info(msg)
	}
}

func (c *Client) GetProject(dir, referenceDir string) *project.Project {
	return c.projects.Get(dir, referenceDir)
}

func (c *Client) MarkupParser() detector.MarkupParser { return &c.parser }
func (c *Client) SourceParser() detector.SourceParser { return nil }
func (c *Client) ClassParser() classfile.Parser       { return nil }

func (c *Client) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
