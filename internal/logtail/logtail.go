package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap/zapcore"
)

// Entry is one parsed log line.
type Entry struct {
	Raw       string
	Time      string
	Level     zapcore.Level
	Component string
	Message   string
}

// Tail returns at most n entries at or above min from the end of the file at
// path, oldest first. n <= 0 returns every matching entry.
func Tail(path string, n int, min zapcore.Level) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	var (
		all   []Entry
		ring  []Entry
		idx   int
		count int
	)
	if n > 0 {
		ring = make([]Entry, n)
	}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		e := Parse(line)
		if e.Level < min {
			continue
		}
		if n <= 0 {
			all = append(all, e)
			continue
		}
		ring[idx] = e
		idx = (idx + 1) % n
		if count < n {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	if n <= 0 {
		return all, nil
	}
	entries := make([]Entry, count)
	if count == n {
		for i := 0; i < count; i++ {
			entries[i] = ring[(idx+i)%n]
		}
	} else {
		copy(entries, ring[:count])
	}
	return entries, nil
}

// Parse decodes a console or JSON encoded zap line.
func Parse(line string) Entry {
	e := Entry{Raw: line, Level: zapcore.InfoLevel}
	if strings.HasPrefix(line, "{") {
		parseJSON(line, &e)
		return e
	}

	parts := strings.Split(line, "\t")
	if len(parts) < 3 {
		return e
	}
	level, err := zapcore.ParseLevel(strings.ToLower(parts[1]))
	if err != nil {
		return e
	}
	e.Time = parts[0]
	e.Level = level

	// time, level, [caller], message, [fields]
	rest := parts[2:]
	if len(rest) > 1 && !strings.HasPrefix(rest[1], "{") {
		rest = rest[1:]
	}
	e.Message = rest[0]
	if len(rest) > 1 {
		var fields struct {
			Component string `json:"component"`
		}
		if json.Unmarshal([]byte(rest[len(rest)-1]), &fields) == nil {
			e.Component = fields.Component
		}
	}
	return e
}

func parseJSON(line string, e *Entry) {
	var raw struct {
		Level     string          `json:"level"`
		Time      json.RawMessage `json:"ts"`
		Message   string          `json:"msg"`
		Component string          `json:"component"`
	}
	if json.Unmarshal([]byte(line), &raw) != nil {
		return
	}
	if level, err := zapcore.ParseLevel(raw.Level); err == nil {
		e.Level = level
	}
	e.Time = strings.Trim(string(raw.Time), `"`)
	e.Message = raw.Message
	e.Component = raw.Component
}

var (
	timeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	componentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6495ED"))
	levelStyles    = map[zapcore.Level]lipgloss.Style{
		zapcore.DebugLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		zapcore.InfoLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		zapcore.WarnLevel:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true),
		zapcore.ErrorLevel: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// Colorize renders e as "time LEVEL [component] message". Unparsed lines
// come back unchanged.
func Colorize(e Entry) string {
	if e.Message == "" {
		return e.Raw
	}

	style, ok := levelStyles[e.Level]
	if !ok {
		style = levelStyles[zapcore.ErrorLevel]
	}

	parts := make([]string, 0, 4)
	if e.Time != "" {
		parts = append(parts, timeStyle.Render(e.Time))
	}
	parts = append(parts, style.Render(e.Level.CapitalString()))
	if e.Component != "" {
		parts = append(parts, componentStyle.Render("["+e.Component+"]"))
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, " ")
}
