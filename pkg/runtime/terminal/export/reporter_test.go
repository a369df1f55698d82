package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/de-tools/video-curator/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReporter_Handle(t *testing.T) {
	report := domain.NewBatchReport("run-1", 2)
	report.Record(domain.WorkItem{ID: 1, Topic: "Algebra", Subtopic: "Linear Equations"},
		domain.OutcomeSuccess, "Successfully saved 5 videos for Algebra - Linear Equations")
	report.Record(domain.WorkItem{ID: 2, Topic: "Geometry", Subtopic: "Circles"},
		domain.OutcomeError, "Failed to search videos")

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(report))

	out := buf.String()
	assert.Contains(t, out, "Batch run-1")
	assert.Contains(t, out, "Total: 2  Processed: 1  Errors: 1")
	assert.Contains(t, out, "| 1        | Algebra ")
	assert.Contains(t, out, "| success  |")
	assert.Contains(t, out, "Failed to search videos")

	var rows int
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| ") {
			rows++
		}
	}
	assert.Equal(t, 3, rows, "header plus one row per detail")
}

func TestReporter_Handle_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Handle(domain.NewBatchReport("run-2", 0)))
	assert.Contains(t, buf.String(), "Total: 0  Processed: 0  Errors: 0")
}

func TestReporter_Message(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Message("saved %d videos", 3))
	assert.Equal(t, "saved 3 videos\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", truncate("abcdef", 2))
}
