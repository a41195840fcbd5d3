package ch

import (
	"os"
	"runtime"
	"runtime/debug"

	"github.com/ClickHouse/clickhouse-go/v2"
)

// BuildClientInfo names the caller in system.query_log: app@revision, the component, the go runtime and the host
func BuildClientInfo(app, component string) clickhouse.ClientInfo {
	host, err := os.Hostname()
	if err != nil {
		host = "unknown"
	}
	info := clickhouse.ClientInfo{}
	for _, p := range [][2]string{
		{app, revision()},
		{"component", component},
		{"go", runtime.Version()},
		{"host", host},
	} {
		info.Products = append(info.Products, struct{ Name, Version string }{p[0], p[1]})
	}
	return info
}

// revision is the short vcs hash stamped by go build, or "dev"
func revision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 7 {
			return s.Value[:7]
		}
	}
	return "dev"
}
