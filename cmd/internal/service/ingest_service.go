package service

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"accredparser/cmd/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
	"golang.org/x/text/encoding/charmap"
)

// Mode selects which organizations end up in the store. The registry export
// is used for two different purposes, so both behaviors are kept.
type Mode string

const (
	// ModeFull persists every organization hierarchy in the document.
	ModeFull Mode = "full"
	// ModeHigherOnly persists only higher-education organizations and
	// branches.
	ModeHigherOnly Mode = "higher"
)

// IngestStore is the transactional sink the driver writes into. The driver
// owns exactly one open transaction at a time; Stage inserts into it,
// Commit/Rollback close it.
type IngestStore interface {
	Begin() error
	Stage(value any) error
	ResolveParent(headID string) (*int, error)
	SetParent(orgID, parentID int) error
	Commit() error
	Rollback() error
}

// IngestService streams one registry XML document into the store. Single
// threaded: records are processed and persisted strictly in document order,
// since branch records look up their head organization among rows persisted
// earlier in the same run.
type IngestService struct {
	store     IngestStore
	refs      *ReferenceCache
	mode      Mode
	batchSize int
}

// RunReport summarizes one ingestion run.
type RunReport struct {
	RunID     string
	Records   int
	Persisted int
	Skipped   int
	Failed    int
	Duration  time.Duration
}

func NewIngestService(store IngestStore, refs *ReferenceCache, mode Mode, batchSize int) *IngestService {
	return &IngestService{
		store:     store,
		refs:      refs,
		mode:      mode,
		batchSize: batchSize,
	}
}

// Run walks the document element by element and persists every Certificate
// record it closes over. Record-level failures roll back the open batch and
// processing continues; a malformed stream or a lost store session aborts
// the run, leaving previously committed batches intact.
func (s *IngestService) Run(xmlPath string) (*RunReport, error) {
	report := &RunReport{RunID: uuid.NewString()}
	start := time.Now()
	defer func() { report.Duration = time.Since(start) }()

	f, err := os.Open(xmlPath)
	if err != nil {
		return report, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	if info, err := f.Stat(); err == nil {
		log.Infof("Run %s: processing %s (%.2f MB)", report.RunID, xmlPath,
			float64(info.Size())/(1024*1024))
	}

	if err := s.store.Begin(); err != nil {
		return report, fmt.Errorf("opening transaction: %w", err)
	}

	dec := xml.NewDecoder(f)
	dec.CharsetReader = charsetReader

	staged := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			_ = s.store.Rollback()
			return report, fmt.Errorf("reading document: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "Certificate" {
			continue
		}

		// The record struct goes out of scope after this iteration, so the
		// subtree's memory is released before the cursor advances. Peak
		// memory stays bounded by one record regardless of document size.
		var rec certificateRecord
		if err := dec.DecodeElement(&rec, &se); err != nil {
			_ = s.store.Rollback()
			return report, fmt.Errorf("decoding record: %w", err)
		}
		report.Records++

		if err := s.processRecord(&rec, report, &staged); err != nil {
			return report, err
		}
	}

	// Final flush of whatever is still staged, regardless of earlier
	// per-record failures.
	if err := s.store.Commit(); err != nil {
		_ = s.store.Rollback()
		return report, fmt.Errorf("final commit: %w", err)
	}

	return report, nil
}

// processRecord builds and stages one record's graph. Only errors that mean
// the run cannot continue (a dead store session) are returned; everything
// record-local is logged and absorbed.
func (s *IngestService) processRecord(rec *certificateRecord, report *RunReport, staged *int) error {
	graph, err := buildRecord(rec, s.refs)
	if errors.Is(err, ErrMissingOrganization) || errors.Is(err, ErrUnseededOrgType) {
		log.Warnf("Skipping record: %v", err)
		report.Skipped++
		return nil
	}
	if err != nil {
		log.Errorf("Failed to build record: %v", err)
		report.Failed++
		return s.restartBatch(staged)
	}

	if s.mode == ModeHigherOnly && graph.OrgTypeCode != entity.OrgTypeHigher && !graph.IsBranch() {
		log.Debugf("Skipping %q: type %s, not a branch",
			graph.Organization.EduOrgFullName, graph.OrgTypeCode)
		report.Skipped++
		return nil
	}

	if err := s.stageRecord(graph, staged); err != nil {
		log.Errorf("Failed to persist record for %q: %v",
			graph.Organization.EduOrgFullName, err)
		report.Failed++
		return s.restartBatch(staged)
	}
	report.Persisted++

	if *staged >= s.batchSize {
		if err := s.store.Commit(); err != nil {
			// A failed commit loses this batch but not the run.
			log.Errorf("Batch commit failed, rolling back %d staged entities: %v", *staged, err)
			return s.restartBatch(staged)
		}
		*staged = 0
		if err := s.store.Begin(); err != nil {
			return fmt.Errorf("opening transaction: %w", err)
		}
	}
	return nil
}

// stageRecord inserts the graph in document order, wiring foreign keys from
// the auto-assigned ids as it goes.
func (s *IngestService) stageRecord(graph *RecordGraph, staged *int) error {
	org := graph.Organization
	if err := s.store.Stage(org); err != nil {
		return err
	}

	// A branch points at its head organization via HeadEduOrgId, which the
	// registry fills with either the head's record id or its INN. No match
	// is not an error: the branch is kept without a parent link.
	if graph.IsBranch() && org.HeadEduOrgID != "" {
		parentID, err := s.store.ResolveParent(org.HeadEduOrgID)
		if err != nil {
			return err
		}
		if parentID != nil {
			if err := s.store.SetParent(org.ID, *parentID); err != nil {
				return err
			}
			org.ParentID = parentID
		}
	}

	cert := graph.Certificate
	cert.OrganizationID = org.ID
	if err := s.store.Stage(cert); err != nil {
		return err
	}

	if ip := graph.Entrepreneur; ip != nil {
		ip.CertificateID = cert.ID
		if err := s.store.Stage(ip); err != nil {
			return err
		}
	}

	for _, sg := range graph.Supplements {
		supp := sg.Supplement
		supp.CertificateID = cert.ID
		supp.OrganizationID = org.ID
		if err := s.store.Stage(supp); err != nil {
			return err
		}
		for _, prog := range sg.Programs {
			prog.SupplementID = &supp.ID
			prog.OrganizationID = &org.ID
			if err := s.store.Stage(prog); err != nil {
				return err
			}
		}
	}

	for _, decision := range graph.Decisions {
		decision.CertificateID = cert.ID
		if err := s.store.Stage(decision); err != nil {
			return err
		}
	}

	*staged += graph.Entities()
	return nil
}

// restartBatch discards the open transaction and starts a fresh one. Failing
// to reopen means the store session is gone, which is fatal.
func (s *IngestService) restartBatch(staged *int) error {
	if err := s.store.Rollback(); err != nil {
		return fmt.Errorf("rolling back batch: %w", err)
	}
	*staged = 0
	if err := s.store.Begin(); err != nil {
		return fmt.Errorf("reopening transaction: %w", err)
	}
	return nil
}

// charsetReader handles the encodings the registry has shipped over the
// years: UTF-8 and windows-1251.
func charsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "", "utf-8":
		return input, nil
	case "windows-1251", "cp1251":
		return charmap.Windows1251.NewDecoder().Reader(input), nil
	}
	return nil, fmt.Errorf("unsupported document charset %q", charset)
}
