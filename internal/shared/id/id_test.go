package id

import (
	"bytes"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	gen := NewGenerator()

	id1 := gen.Generate()
	id2 := gen.Generate()

	assert.NotEqual(t, id1, id2)
	assert.Len(t, gen.GenerateString(), 26)
}

func TestGenerateMonotonic(t *testing.T) {
	gen := NewGenerator()

	ids := make([]string, 500)
	for i := range ids {
		ids[i] = gen.GenerateString()
	}

	assert.True(t, sort.StringsAreSorted(ids), "ULIDs from one generator should sort in creation order")
}

func TestTypedIDs(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		prefix string
	}{
		{"request", NewRequestID().String(), RequestPrefix},
		{"trace", NewTraceID().String(), TracePrefix},
		{"span", NewSpanID().String(), SpanPrefix},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, strings.HasPrefix(tt.value, tt.prefix+"_"), tt.value)
			assert.True(t, IsValid(tt.value))
		})
	}
}

func TestParse(t *testing.T) {
	gen := NewGenerator()
	raw := gen.Generate()

	parsed, err := Parse("req_" + raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw, parsed)

	parsed, err = Parse(raw.String())
	require.NoError(t, err)
	assert.Equal(t, raw, parsed)

	_, err = Parse("req_not-a-ulid")
	assert.Error(t, err)
	assert.False(t, IsValid(""))
}

func TestTimestamp(t *testing.T) {
	before := time.Now().Add(-time.Second)
	ts, err := Timestamp(NewRequestID().String())
	require.NoError(t, err)

	assert.True(t, ts.After(before))
	assert.True(t, ts.Before(time.Now().Add(time.Second)))

	_, err = Timestamp("bogus")
	assert.Error(t, err)
}

func TestGeneratorWithEntropy(t *testing.T) {
	entropy := bytes.NewReader(bytes.Repeat([]byte{0x01}, 10))
	gen := NewGeneratorWithEntropy(entropy)

	got := gen.Generate()
	entropyBytes := got.Entropy()
	assert.Equal(t, bytes.Repeat([]byte{0x01}, 10), entropyBytes)
}

func TestConcurrentGeneration(t *testing.T) {
	const workers, perWorker = 8, 200

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				v := NewRequestID().String()
				mu.Lock()
				seen[v] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}
