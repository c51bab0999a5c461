package audit

import (
    "bufio"
    "encoding/json"
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "sync"
    "time"
)

// ErrInvalidDate is returned by ReadDay for dates not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("audit: invalid date")

// Analytics outcomes recorded per relay call.
const (
    OutcomeForwarded = "forwarded"
    OutcomeSkipped   = "skipped"
    OutcomeError     = "error"
)

// Entry is one webhook relay call. Exactly one entry is appended per
// call, after the analytics step ran (or was skipped), so the line
// carries the outcome of every step.
type Entry struct {
    ID            string          `json:"id"`
    Timestamp     time.Time       `json:"timestamp"`
    Payload       json.RawMessage `json:"payload"`
    PayloadSHA256 string          `json:"payload_sha256"`
    TransactionID string          `json:"transaction_id,omitempty"`
    Analytics     string          `json:"analytics"`
    Error         string          `json:"error,omitempty"`
}

// Logger appends entries to one file per UTC day under dir
// (e.g. webhook-logs/2026-09-01.log), one JSON line per entry.
type Logger struct {
    dir string
    mu  sync.Mutex
}

func New(dir string) *Logger {
    return &Logger{dir: dir}
}

func (l *Logger) fileFor(t time.Time) string {
    return filepath.Join(l.dir, t.UTC().Format("2006-01-02")+".log")
}

// Append writes the entry to the log file of its timestamp's UTC day.
func (l *Logger) Append(e Entry) error {
    if e.Timestamp.IsZero() {
        e.Timestamp = time.Now().UTC()
    }
    line, err := json.Marshal(e)
    if err != nil {
        return err
    }
    l.mu.Lock()
    defer l.mu.Unlock()
    if err := os.MkdirAll(l.dir, 0o755); err != nil {
        return err
    }
    f, err := os.OpenFile(l.fileFor(e.Timestamp), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
    if err != nil {
        return err
    }
    defer f.Close()
    if _, err := f.Write(append(line, '\n')); err != nil {
        return err
    }
    return nil
}

// ReadDay returns all entries logged on the given UTC date
// ("2006-01-02"). A day without a log file yields an empty slice.
func (l *Logger) ReadDay(date string) ([]Entry, error) {
    day, err := time.Parse("2006-01-02", date)
    if err != nil {
        return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
    }
    f, err := os.Open(l.fileFor(day))
    if err != nil {
        if os.IsNotExist(err) {
            return []Entry{}, nil
        }
        return nil, err
    }
    defer f.Close()

    entries := []Entry{}
    sc := bufio.NewScanner(f)
    sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
    for sc.Scan() {
        var e Entry
        if err := json.Unmarshal(sc.Bytes(), &e); err != nil {
            // Skip lines that predate the JSON format.
            continue
        }
        entries = append(entries, e)
    }
    if err := sc.Err(); err != nil {
        return nil, err
    }
    return entries, nil
}
