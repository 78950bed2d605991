// Package id generates the ULID-based identifiers used by the service.
//
// IDs are prefixed by kind so logs stay readable:
//   - req_<ulid>: one tool execution request
//   - trc_<ulid>: one trace across the request path
//   - spn_<ulid>: one span within a trace
//
// ULIDs sort lexicographically by creation time, and the default generator
// uses monotonic entropy so IDs minted in the same millisecond still sort.
package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// RequestID identifies a tool execution request
type RequestID string

// TraceID identifies a trace
type TraceID string

// SpanID identifies a span
type SpanID string

const (
	RequestPrefix = "req"
	TracePrefix   = "trc"
	SpanPrefix    = "spn"
)

// Generator generates ULIDs with optional prefixes
type Generator struct {
	entropy   io.Reader
	entropyMu sync.Mutex
}

var (
	defaultGenerator *Generator
	once             sync.Once
)

// Default returns the shared generator
func Default() *Generator {
	once.Do(func() {
		defaultGenerator = NewGenerator()
	})
	return defaultGenerator
}

// NewGenerator creates a generator with monotonic, cryptographically secure entropy
func NewGenerator() *Generator {
	return &Generator{
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// NewGeneratorWithEntropy creates a generator with a custom entropy source.
// Useful for deterministic tests.
func NewGeneratorWithEntropy(entropy io.Reader) *Generator {
	return &Generator{
		entropy: entropy,
	}
}

// Generate creates a new ULID
func (g *Generator) Generate() ulid.ULID {
	g.entropyMu.Lock()
	defer g.entropyMu.Unlock()

	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy)
}

// GenerateString creates a new ULID as a string
func (g *Generator) GenerateString() string {
	return g.Generate().String()
}

// GenerateWithPrefix creates a prefixed ULID string
func (g *Generator) GenerateWithPrefix(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, g.GenerateString())
}

// NewRequestID generates a new request ID
func NewRequestID() RequestID {
	return RequestID(Default().GenerateWithPrefix(RequestPrefix))
}

// NewTraceID generates a new trace ID
func NewTraceID() TraceID {
	return TraceID(Default().GenerateWithPrefix(TracePrefix))
}

// NewSpanID generates a new span ID
func NewSpanID() SpanID {
	return SpanID(Default().GenerateWithPrefix(SpanPrefix))
}

func (id RequestID) String() string { return string(id) }
func (id TraceID) String() string   { return string(id) }
func (id SpanID) String() string    { return string(id) }

// Parse parses a ULID, with or without a kind prefix
func Parse(s string) (ulid.ULID, error) {
	if i := strings.LastIndexByte(s, '_'); i >= 0 {
		s = s[i+1:]
	}
	return ulid.Parse(s)
}

// IsValid reports whether s is a valid ULID, with or without a kind prefix
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Timestamp extracts the creation time from an ID
func Timestamp(s string) (time.Time, error) {
	parsed, err := Parse(s)
	if err != nil {
		return time.Time{}, err
	}
	return ulid.Time(parsed.Time()), nil
}
