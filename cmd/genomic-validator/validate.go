package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/farmerpiki/genomic-validator/internal/history"
	"github.com/farmerpiki/genomic-validator/internal/output"
	"github.com/farmerpiki/genomic-validator/internal/vcf"
)

func (a *app) reportWriter() (output.ReportWriter, error) {
	switch format := a.v.GetString("output.format"); format {
	case "text":
		return output.NewTextWriter(a.stdout, a.stderr, a.v.GetBool("output.color")), nil
	case "json":
		return output.NewJSONWriter(a.stdout), nil
	default:
		return nil, usageError{fmt.Errorf("unknown output format %q", format)}
	}
}

// runValidate validates the file at path and reports the verdict.
// It returns errInvalid when the file is not valid VCF.
func (a *app) runValidate(path string) error {
	writer, err := a.reportWriter()
	if err != nil {
		return err
	}

	rec := a.openRecorder(path)
	defer rec.close()

	if prev := rec.previousValid(a.v.GetBool("history.skip-unchanged")); prev != nil {
		a.logger.Info("skipping unchanged file",
			zap.String("path", path),
			zap.String("previous_run", prev.ID.String()))
		return writer.Write(output.Report{
			Path:      path,
			Valid:     true,
			Skipped:   true,
			Lines:     prev.Lines,
			MetaLines: prev.MetaLines,
			Records:   prev.Records,
		})
	}

	sum, verr := a.validateFile(path)
	report := output.NewReport(path, sum, verr)
	if err := writer.Write(report); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	rec.record(report)

	if !report.Valid {
		return errInvalid
	}
	return nil
}

func (a *app) validateFile(path string) (vcf.Summary, error) {
	src, err := vcf.Open(path)
	if err != nil {
		return vcf.Summary{}, err
	}
	defer src.Close()

	validator := vcf.NewValidator()
	validator.SetLogger(a.logger)
	return validator.Validate(src)
}

// recorder writes runs to the history store. A disabled or unavailable
// store turns every method into a no-op.
type recorder struct {
	store  *history.Store
	file   history.FileFingerprint
	logger *zap.Logger
}

func (a *app) openRecorder(path string) *recorder {
	rec := &recorder{logger: a.logger}
	// Skipping unchanged files needs recorded runs, so it turns history on.
	if !a.v.GetBool("history.enabled") && !a.v.GetBool("history.skip-unchanged") {
		return rec
	}
	if path == "-" {
		a.logger.Warn("history is not recorded for stdin")
		return rec
	}

	fp, err := history.StatFile(path)
	if err != nil {
		a.logger.Debug("not recording history", zap.String("path", path), zap.Error(err))
		return rec
	}

	dbPath, err := a.historyPath()
	if err != nil {
		a.logger.Warn("history disabled", zap.Error(err))
		return rec
	}
	store, err := history.Open(dbPath)
	if err != nil {
		a.logger.Warn("could not open history database", zap.String("path", dbPath), zap.Error(err))
		return rec
	}

	rec.store = store
	rec.file = fp
	return rec
}

func (r *recorder) previousValid(enabled bool) *history.Run {
	if r.store == nil || !enabled {
		return nil
	}
	run, err := r.store.LastValid(r.file)
	if err != nil {
		r.logger.Warn("could not query history", zap.Error(err))
		return nil
	}
	return run
}

func (r *recorder) record(report output.Report) {
	if r.store == nil {
		return
	}
	run := history.NewRun(r.file)
	run.Valid = report.Valid
	run.Kind = report.Kind
	run.Line = report.Line
	run.Reason = report.Reason
	run.Lines = report.Lines
	run.MetaLines = report.MetaLines
	run.Records = report.Records
	if err := r.store.WriteRuns(run); err != nil {
		r.logger.Warn("could not record run", zap.Error(err))
	}
}

func (r *recorder) close() {
	if r.store != nil {
		r.store.Close()
	}
}
