package backtrack

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache persists lookup results in a local SQLite database so repeated
// invocations do not re-query the remote service. A row with found=0
// records a definitive miss.
type Cache struct {
	db *sql.DB
}

const cacheSchema = `
CREATE TABLE IF NOT EXISTS locations (
	accession  TEXT    NOT NULL,
	position   INTEGER NOT NULL,
	found      INTEGER NOT NULL,
	contig     TEXT,
	transcript TEXT,
	forward    INTEGER,
	start      INTEGER,
	stop       INTEGER,
	PRIMARY KEY (accession, position)
);`

// OpenCache opens (creating if needed) a lookup cache at path.
func OpenCache(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %s: %w", path, err)
	}
	if _, err := db.Exec(cacheSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize cache schema: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the cached codon for (accession, position). The second
// return is false when the pair has never been looked up; a cached miss
// returns (nil, true, nil).
func (c *Cache) Get(accession string, position int) (*Codon, bool, error) {
	row := c.db.QueryRow(
		`SELECT found, contig, transcript, forward, start, stop
		 FROM locations WHERE accession = ? AND position = ?`,
		accession, position,
	)

	var found int
	var contig, transcript sql.NullString
	var forward, start, stop sql.NullInt64
	err := row.Scan(&found, &contig, &transcript, &forward, &start, &stop)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache row: %w", err)
	}
	if found == 0 {
		return nil, true, nil
	}

	return &Codon{
		Contig:     contig.String,
		Transcript: transcript.String,
		Forward:    forward.Int64 != 0,
		Number:     position,
		Start:      int(start.Int64),
		Stop:       int(stop.Int64),
		TStart:     position * 3,
		TStop:      position*3 + 3,
	}, true, nil
}

// Put stores a lookup result. A nil codon records a definitive miss.
func (c *Cache) Put(accession string, position int, codon *Codon) error {
	var err error
	if codon == nil {
		_, err = c.db.Exec(
			`INSERT OR REPLACE INTO locations
			 (accession, position, found) VALUES (?, ?, 0)`,
			accession, position,
		)
	} else {
		forward := 0
		if codon.Forward {
			forward = 1
		}
		_, err = c.db.Exec(
			`INSERT OR REPLACE INTO locations
			 (accession, position, found, contig, transcript, forward, start, stop)
			 VALUES (?, ?, 1, ?, ?, ?, ?, ?)`,
			accession, position, codon.Contig, codon.Transcript,
			forward, codon.Start, codon.Stop,
		)
	}
	if err != nil {
		return fmt.Errorf("failed to write cache row: %w", err)
	}
	return nil
}
