package turing_machine

import (
	"fmt"
	"path/filepath"
	"strings"

	sqlite "github.com/glebarez/sqlite"
	log "github.com/sirupsen/logrus"
	gorm "gorm.io/gorm"
)

type PersistenceConfig struct {
	Name          string   `toml:"name"`
	Path          string   `toml:"path"`
	SQLitePragmas []string `toml:"sqlite_pragmas"`
	SQLiteOptions []string `toml:"sqlite_options"`
	BatchSize     uint     `toml:"batch_size"`
}

// Persistence is the run archive: every finished RunRecord lands in SQLite.
// Only results are archived, never in-flight machine state -- runs are not
// resumable.
type Persistence struct {
	Config *PersistenceConfig
	DB     *gorm.DB
}

func NewPersistence(config *PersistenceConfig) (*Persistence, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	if len(config.Path) == 0 {
		return nil, fmt.Errorf("Path to database must be defined")
	}

	if len(config.Name) == 0 {
		return nil, fmt.Errorf("Name of database must be defined")
	}

	var params strings.Builder
	for i, prag := range config.SQLitePragmas {
		if i > 0 {
			params.WriteRune('&')
		}
		params.WriteString(fmt.Sprintf("_pragma=%s", prag))
	}
	for _, opt := range config.SQLiteOptions {
		if params.Len() > 0 {
			params.WriteRune('&')
		}
		params.WriteString(opt)
	}

	var path strings.Builder
	path.WriteString(filepath.Join(config.Path, config.Name))
	if params.Len() > 0 {
		path.WriteRune('?')
		path.WriteString(params.String())
	}

	db, err := gorm.Open(sqlite.Open(path.String()), &gorm.Config{})

	if err != nil {
		return nil, err
	}

	db = db.Session(&gorm.Session{PrepareStmt: true, CreateBatchSize: 1000})

	p := &Persistence{Config: config, DB: db}
	if err = p.initialize(); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Persistence) initialize() error {
	if err := p.DB.AutoMigrate(
		&RunRecord{},
	); err != nil {
		return err
	}

	return nil
}

func (p *Persistence) Shutdown() {
	if sqldb, err := p.DB.DB(); err != nil {
		log.Fatalf("Failed to retrieve raw DB: %v", err)
	} else {
		sqldb.Close()
	}
}

// SaveRuns archives a batch of finished records.
func (p *Persistence) SaveRuns(records *[]*RunRecord) error {
	if records == nil || len(*records) == 0 {
		return nil
	}

	if result := p.DB.Create(records); result.Error != nil {
		return fmt.Errorf("Failed to call gorm.Create(): %w", result.Error)
	}

	return nil
}

// LoadRuns returns every archived record for the named program, oldest
// first.
func (p *Persistence) LoadRuns(programName string) ([]*RunRecord, error) {
	var records []*RunRecord
	if result := p.DB.Where("program_name = ?", programName).Order("id").Find(&records); result.Error != nil {
		return nil, fmt.Errorf("Failed to load runs for program [%s]: %w", programName, result.Error)
	}
	return records, nil
}

// GetRecordPersistor adapts the archive into a RecordPersistor for the run
// engine. Archive failures are fatal; losing results silently would defeat
// the archive.
func (p *Persistence) GetRecordPersistor() RecordPersistor {
	return func(records *[]*RunRecord) {
		if err := p.SaveRuns(records); err != nil {
			log.Fatalf("Persisting batch of run records failed: %v", err)
		}
	}
}
