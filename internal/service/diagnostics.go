package service

import (
	"context"

	"github.com/lvfrd/lvfrd-api/internal/repository"
)

const (
	maxReportedCollections = 10
	maxReportedErrorLen    = 50
)

// Diagnostics status strings reported to the frontend
const (
	BackendRunning         = "✅ Running"
	DatabaseNotAvailable   = "❌ Not Available"
	DatabaseWorking        = "✅ Connected & Working"
	DatabaseErrorPrefix    = "⚠️  Connected but Error: "
	ConnectionConnected    = "Connected"
	ConnectionNotConnected = "Not Connected"
	SettingSet             = "✅ Set"
	SettingNotSet          = "❌ Not Set"
)

// DiagnosticsReport represents the /test response
type DiagnosticsReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// DiagnosticsService reports store availability without exposing credentials
type DiagnosticsService struct {
	store   repository.StoreDiagnostics
	urlSet  bool
	nameSet bool
}

// NewDiagnosticsService creates a DiagnosticsService.
// urlSet and nameSet tell whether the connection settings were provided at all.
func NewDiagnosticsService(store repository.StoreDiagnostics, urlSet, nameSet bool) *DiagnosticsService {
	return &DiagnosticsService{
		store:   store,
		urlSet:  urlSet,
		nameSet: nameSet,
	}
}

// Report collects the diagnostics. It never fails: errors end up in the report text.
func (s *DiagnosticsService) Report(ctx context.Context) *DiagnosticsReport {
	report := &DiagnosticsReport{
		Backend:          BackendRunning,
		Database:         DatabaseNotAvailable,
		DatabaseURL:      setting(s.urlSet),
		DatabaseName:     setting(s.nameSet),
		ConnectionStatus: ConnectionNotConnected,
		Collections:      []string{},
	}

	if s.store == nil || !s.store.Available() {
		return report
	}

	report.ConnectionStatus = ConnectionConnected

	names, err := s.store.CollectionNames(ctx)
	if err != nil {
		report.Database = DatabaseErrorPrefix + truncate(err.Error(), maxReportedErrorLen)
		return report
	}

	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	report.Collections = append(report.Collections, names...)
	report.Database = DatabaseWorking

	return report
}

func setting(present bool) string {
	if present {
		return SettingSet
	}
	return SettingNotSet
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
