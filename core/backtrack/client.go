// Package backtrack resolves single amino-acid positions to genomic
// codon coordinates via the EBI Proteins Coordinates API.
//
// Amino acids whose codon is split by a non-zero phased splice site are
// not supported: the service reports a genomic span wider than one
// codon, and Locate answers "not found" rather than guessing.
//
// This package has no dependency on the annotation parser; it is a
// standalone collaborator for curators cross-checking positions.
package backtrack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/seqcurate/mutagen/core/errors"
)

// DefaultBaseURL is the EBI Proteins API root.
const DefaultBaseURL = "https://www.ebi.ac.uk/proteins/api"

// Codon is the genomic location of one amino acid.
type Codon struct {
	// Contig is the containing chromosome or scaffold.
	Contig string

	// Transcript is the Ensembl translation identifier.
	Transcript string

	// Forward is the strand orientation.
	Forward bool

	// Number is the 0-based amino-acid position this codon encodes.
	Number int

	// Start and Stop are 0-based half-open genomic coordinates.
	Start int
	Stop  int

	// TStart and TStop are 0-based transcript coordinates
	// (Number*3 and Number*3+3).
	TStart int
	TStop  int
}

// Client queries the coordinates service, optionally through a local
// cache.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *Cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the service root (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithCache attaches a persistent lookup cache. Both hits and definitive
// misses are cached.
func WithCache(cache *Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// NewClient creates a coordinates client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// coordinatesResponse is the subset of the service payload we consume.
type coordinatesResponse struct {
	Locations []struct {
		Chromosome  string `json:"chromosome"`
		Translation string `json:"ensemblTranslationId"`
		GeneStart   int    `json:"geneStart"`
		GeneEnd     int    `json:"geneEnd"`
	} `json:"locations"`
}

// Locate resolves accession plus a 0-based amino-acid position to a
// genomic codon. The remote service is keyed by 1-based positions, so
// position+1 goes on the wire.
//
// A failed lookup, an incomplete location entry, or a codon split across
// a non-zero phased intron returns a NotFoundError (errors.ErrNotFound);
// transport and decode failures are reported as-is.
func (c *Client) Locate(ctx context.Context, accession string, position int) (*Codon, error) {
	key := fmt.Sprintf("%s:%d", accession, position)

	if c.cache != nil {
		codon, cached, err := c.cache.Get(accession, position)
		if err != nil {
			return nil, errors.Wrap(err, "cache lookup")
		}
		if cached {
			if codon == nil {
				return nil, errors.NewNotFound("codon location", key)
			}
			return codon, nil
		}
	}

	codon, err := c.fetch(ctx, accession, position)
	if err != nil {
		if c.cache != nil && errors.Is(err, errors.ErrNotFound) {
			if cerr := c.cache.Put(accession, position, nil); cerr != nil {
				return nil, errors.Wrap(cerr, "cache store")
			}
		}
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Put(accession, position, codon); err != nil {
			return nil, errors.Wrap(err, "cache store")
		}
	}
	return codon, nil
}

func (c *Client) fetch(ctx context.Context, accession string, position int) (*Codon, error) {
	key := fmt.Sprintf("%s:%d", accession, position)
	url := fmt.Sprintf("%s/coordinates/location/%s:%d", c.baseURL, accession, position+1)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewNotFound("codon location", key)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	var payload coordinatesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &errors.ParseError{
			Format:  "JSON",
			Message: "can't parse coordinates response",
			Err:     err,
		}
	}

	if len(payload.Locations) == 0 {
		return nil, errors.NewNotFound("codon location", key)
	}
	loc := payload.Locations[0]
	if loc.Chromosome == "" || loc.Translation == "" {
		return nil, errors.NewNotFound("codon location", key)
	}
	if abs(loc.GeneStart-loc.GeneEnd) > 3 {
		// The codon is formed by exons flanking a non-zero phased intron.
		return nil, errors.NewNotFound("codon location", key)
	}

	forward := loc.GeneStart < loc.GeneEnd
	start, stop := loc.GeneStart-1, loc.GeneEnd
	if !forward {
		start, stop = loc.GeneEnd-1, loc.GeneStart
	}

	return &Codon{
		Contig:     loc.Chromosome,
		Transcript: loc.Translation,
		Forward:    forward,
		Number:     position,
		Start:      start,
		Stop:       stop,
		TStart:     position * 3,
		TStop:      position*3 + 3,
	}, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
