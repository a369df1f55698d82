package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/video-curator/pkg/models/domain"
)

type TableConfig struct {
	IDWidth       int
	TopicWidth    int
	SubtopicWidth int
	StatusWidth   int
	MessageWidth  int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		IDWidth:       8,
		TopicWidth:    24,
		SubtopicWidth: 28,
		StatusWidth:   8,
		MessageWidth:  60,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

const batchTemplate = `
Batch {{.RunID}}
Total: {{.Total}}  Processed: {{.Processed}}  Errors: {{.Errors}}

{{separator}}
{{formatRow "ID" "Topic" "Subtopic" "Status" "Message"}}
{{separator}}
{{range .Details}}{{formatRow .TopicID .Topic .Subtopic .Status .Message}}
{{end}}{{separator}}
`

// Handle writes the batch report as a fixed-width table.
func (c *Reporter) Handle(report *domain.BatchReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(id any, topic, subtopic string, status any, message string) string {
			return fmt.Sprintf("| %-*v | %-*s | %-*s | %-*v | %-*s |",
				c.config.IDWidth, id,
				c.config.TopicWidth, truncate(topic, c.config.TopicWidth),
				c.config.SubtopicWidth, truncate(subtopic, c.config.SubtopicWidth),
				c.config.StatusWidth, status,
				c.config.MessageWidth, truncate(message, c.config.MessageWidth))
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+%s+%s+",
				strings.Repeat("-", c.config.IDWidth+2),
				strings.Repeat("-", c.config.TopicWidth+2),
				strings.Repeat("-", c.config.SubtopicWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.MessageWidth+2))
		},
	}

	t, err := template.New("batch").Funcs(funcMap).Parse(batchTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}

// Message writes a single line, used for curate and migrate results.
func (c *Reporter) Message(format string, args ...any) error {
	_, err := fmt.Fprintf(c.writer, format+"\n", args...)
	return err
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}
