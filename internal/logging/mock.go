package logging

// MockLogger captures log entries for verification in tests.
type MockLogger struct {
	Entries []LogEntry
}

// LogEntry is a single captured log entry.
type LogEntry struct {
	Level   string
	Message string
	Fields  []Field
	Error   error
}

func (m *MockLogger) record(level, msg string, err error, fields []Field) {
	m.Entries = append(m.Entries, LogEntry{
		Level:   level,
		Message: msg,
		Fields:  fields,
		Error:   err,
	})
}

// Debug captures a debug-level entry.
func (m *MockLogger) Debug(msg string, fields ...Field) { m.record("DEBUG", msg, nil, fields) }

// Info captures an info-level entry.
func (m *MockLogger) Info(msg string, fields ...Field) { m.record("INFO", msg, nil, fields) }

// Warn captures a warning-level entry.
func (m *MockLogger) Warn(msg string, fields ...Field) { m.record("WARN", msg, nil, fields) }

// Error captures an error-level entry.
func (m *MockLogger) Error(msg string, fields ...Field) { m.record("ERROR", msg, nil, fields) }

// WithError returns a logger that attaches err to subsequent entries.
// Entries still land in the parent's Entries slice.
func (m *MockLogger) WithError(err error) Logger {
	return &childLogger{parent: m, err: err}
}

// WithField returns a logger that attaches a field to subsequent entries.
func (m *MockLogger) WithField(key string, value interface{}) Logger {
	return &childLogger{parent: m, fields: []Field{{Key: key, Value: value}}}
}

// MessagesAt returns the messages captured at the given level.
func (m *MockLogger) MessagesAt(level string) []string {
	var msgs []string
	for _, e := range m.Entries {
		if e.Level == level {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

// childLogger forwards entries to the parent MockLogger with extra context.
type childLogger struct {
	parent *MockLogger
	err    error
	fields []Field
}

func (c *childLogger) record(level, msg string, fields []Field) {
	allFields := append(append([]Field{}, c.fields...), fields...)
	c.parent.record(level, msg, c.err, allFields)
}

func (c *childLogger) Debug(msg string, fields ...Field) { c.record("DEBUG", msg, fields) }
func (c *childLogger) Info(msg string, fields ...Field)  { c.record("INFO", msg, fields) }
func (c *childLogger) Warn(msg string, fields ...Field)  { c.record("WARN", msg, fields) }
func (c *childLogger) Error(msg string, fields ...Field) { c.record("ERROR", msg, fields) }

func (c *childLogger) WithError(err error) Logger {
	return &childLogger{parent: c.parent, err: err, fields: c.fields}
}

func (c *childLogger) WithField(key string, value interface{}) Logger {
	fields := append(append([]Field{}, c.fields...), Field{Key: key, Value: value})
	return &childLogger{parent: c.parent, err: c.err, fields: fields}
}
