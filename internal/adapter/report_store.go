package adapter

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/dystudio/try/internal/model"
)

const (
	reportExt       = ".yaml"
	reportIndexFile = "_index.yaml"
	reportFileMode  = 0o600
	reportDirMode   = 0o750
)

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
	RegenerateIndex(path m.Path) error
	CleanReports(path m.Path, requests []m.Path) error
}

// LocalReportStore keeps one YAML file per request under a reports
// directory, named after a hash of the request path.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportYAML struct {
	Request   string        `yaml:"request"`
	Workspace string        `yaml:"workspace"`
	Result    runResultYAML `yaml:"result"`
}

type runResultYAML struct {
	RequestID   string           `yaml:"requestId"`
	Succeeded   bool             `yaml:"succeeded"`
	Output      []string         `yaml:"output,omitempty"`
	Exception   string           `yaml:"exception,omitempty"`
	ReturnValue any              `yaml:"returnValue,omitempty"`
	Diagnostics []diagnosticYAML `yaml:"diagnostics,omitempty"`
	Suppressed  []diagnosticYAML `yaml:"suppressed,omitempty"`
}

type diagnosticYAML struct {
	Buffer   string     `yaml:"buffer"`
	Offset   int        `yaml:"offset"`
	Position m.Position `yaml:"position"`
	Severity string     `yaml:"severity"`
	ID       string     `yaml:"id"`
	Message  string     `yaml:"message"`
	Mapping  string     `yaml:"mapping"`
}

type indexYAML struct {
	Reports []indexEntryYAML `yaml:"reports"`
}

type indexEntryYAML struct {
	Hash        string `yaml:"hash"`
	Request     string `yaml:"request"`
	Succeeded   bool   `yaml:"succeeded"`
	Diagnostics int    `yaml:"diagnostics"`
}

// SaveReports writes every report to path, creating the directory if needed.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	if err := os.MkdirAll(string(path), reportDirMode); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	for _, report := range reports {
		data, err := yaml.Marshal(toReportYAML(report))
		if err != nil {
			return fmt.Errorf("marshal report for %s: %w", report.Request, err)
		}

		file := filepath.Join(string(path), rs.computeReportHash(report.Request)+reportExt)
		if err := os.WriteFile(file, data, reportFileMode); err != nil {
			return fmt.Errorf("write report %s: %w", file, err)
		}
	}

	return nil
}

// LoadReports reads every report under path, ordered by request.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	if path == "" {
		return nil, errors.New("reports path is empty")
	}

	files, err := rs.reportFiles(path)
	if err != nil {
		return nil, err
	}

	reports := make([]m.Report, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read report %s: %w", file, err)
		}

		var decoded reportYAML
		if err := yaml.Unmarshal(data, &decoded); err != nil {
			return nil, fmt.Errorf("decode report %s: %w", file, err)
		}

		report, err := fromReportYAML(decoded)
		if err != nil {
			return nil, fmt.Errorf("decode report %s: %w", file, err)
		}

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Request < reports[j].Request })

	return reports, nil
}

// RegenerateIndex rewrites _index.yaml from the reports under path.
func (rs *LocalReportStore) RegenerateIndex(path m.Path) error {
	reports, err := rs.LoadReports(path)
	if err != nil {
		return err
	}

	indexPath := filepath.Join(string(path), reportIndexFile)

	if len(reports) == 0 {
		if err := os.Remove(indexPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove index: %w", err)
		}

		return nil
	}

	var index indexYAML
	for _, report := range reports {
		index.Reports = append(index.Reports, indexEntryYAML{
			Hash:        rs.computeReportHash(report.Request),
			Request:     string(report.Request),
			Succeeded:   report.Result.Succeeded,
			Diagnostics: len(report.Result.Diagnostics),
		})
	}

	data, err := yaml.Marshal(index)
	if err != nil {
		return fmt.Errorf("marshal index: %w", err)
	}

	if err := os.WriteFile(indexPath, data, reportFileMode); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	return nil
}

// CleanReports deletes the reports of the given requests and refreshes the
// index.
func (rs *LocalReportStore) CleanReports(path m.Path, requests []m.Path) error {
	if path == "" {
		return errors.New("reports path is empty")
	}

	for _, request := range requests {
		file := filepath.Join(string(path), rs.computeReportHash(request)+reportExt)
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove report %s: %w", file, err)
		}
	}

	return rs.RegenerateIndex(path)
}

func (rs *LocalReportStore) reportFiles(path m.Path) ([]string, error) {
	info, err := os.Stat(string(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("stat reports dir: %w", err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("reports path %s is not a directory", path)
	}

	entries, err := os.ReadDir(string(path))
	if err != nil {
		return nil, fmt.Errorf("read reports dir: %w", err)
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || name == reportIndexFile || !strings.HasSuffix(name, reportExt) {
			continue
		}

		files = append(files, filepath.Join(string(path), name))
	}

	return files, nil
}

// computeReportHash names a report file: the first 8 bytes of the SHA-256 of
// the request path, hex encoded.
func (rs *LocalReportStore) computeReportHash(request m.Path) string {
	sum := sha256.Sum256([]byte(request))

	return hex.EncodeToString(sum[:8])
}

func toReportYAML(report m.Report) reportYAML {
	return reportYAML{
		Request:   string(report.Request),
		Workspace: report.Workspace,
		Result: runResultYAML{
			RequestID:   report.Result.RequestID,
			Succeeded:   report.Result.Succeeded,
			Output:      report.Result.Output,
			Exception:   report.Result.Exception,
			ReturnValue: report.Result.ReturnValue,
			Diagnostics: toDiagnosticsYAML(report.Result.Diagnostics),
			Suppressed:  toDiagnosticsYAML(report.Result.Suppressed),
		},
	}
}

func toDiagnosticsYAML(diags []m.Diagnostic) []diagnosticYAML {
	if len(diags) == 0 {
		return nil
	}

	out := make([]diagnosticYAML, 0, len(diags))
	for _, d := range diags {
		out = append(out, diagnosticYAML{
			Buffer:   d.BufferID.String(),
			Offset:   d.Offset,
			Position: d.Position,
			Severity: d.Severity.String(),
			ID:       d.ID,
			Message:  d.Message,
			Mapping:  string(d.Mapping),
		})
	}

	return out
}

func fromReportYAML(r reportYAML) (m.Report, error) {
	diags, err := fromDiagnosticsYAML(r.Result.Diagnostics)
	if err != nil {
		return m.Report{}, err
	}

	suppressed, err := fromDiagnosticsYAML(r.Result.Suppressed)
	if err != nil {
		return m.Report{}, err
	}

	return m.Report{
		Request:   m.Path(r.Request),
		Workspace: r.Workspace,
		Result: m.RunResult{
			RequestID:   r.Result.RequestID,
			Succeeded:   r.Result.Succeeded,
			Output:      r.Result.Output,
			Exception:   r.Result.Exception,
			ReturnValue: r.Result.ReturnValue,
			Diagnostics: diags,
			Suppressed:  suppressed,
		},
	}, nil
}

func fromDiagnosticsYAML(in []diagnosticYAML) ([]m.Diagnostic, error) {
	if len(in) == 0 {
		return nil, nil
	}

	out := make([]m.Diagnostic, 0, len(in))

	for _, d := range in {
		id, err := m.ParseBufferID(d.Buffer)
		if err != nil {
			return nil, err
		}

		out = append(out, m.Diagnostic{
			BufferID: id,
			Offset:   d.Offset,
			Position: d.Position,
			Severity: m.ParseSeverity(d.Severity),
			ID:       d.ID,
			Message:  d.Message,
			Mapping:  m.MappingKind(d.Mapping),
		})
	}

	return out, nil
}
