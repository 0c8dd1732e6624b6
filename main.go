package main

import (
	"github.com/bnema/daisy/cmd"
	"github.com/bnema/daisy/pkg/logger"
	buildinfo "github.com/bnema/daisy/pkg/version"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version string
	commit  string
	date    string
)

func main() {
	buildinfo.Set(version, commit, date)
	if err := cmd.Execute(); err != nil {
		logger.Fatal("daisy failed", "err", err)
	}
}
