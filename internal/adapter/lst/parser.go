// Package lst reads OMNIWeb .lst exports into the domain model.
//
// The format is column-aligned fixed-width text with 19 fields per line and
// no header row. Alignment is whitespace based, so tokenizing on runs of
// whitespace recovers the fields without hard-coding column offsets. Files
// with a .gz suffix are decompressed on the fly.
package lst

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/couchcryptid/omni-storm-viz/internal/domain"
)

// FieldCount is the number of whitespace-aligned fields per line.
const FieldCount = 19

// maxSkipsToLog throttles per-line warnings so a badly damaged file does not
// flood the log.
const maxSkipsToLog = 10

// ErrDatasetUnavailable reports that the file as a whole could not be turned
// into a dataset: unreadable, undecodable, or empty. Startup must treat it as
// terminal and never bring up the dashboard.
var ErrDatasetUnavailable = errors.New("dataset unavailable")

// Stats summarizes one parse run.
type Stats struct {
	Lines          int // non-blank input lines seen
	Rows           int // records decoded
	Skipped        int // lines dropped for a wrong field count
	NullTimestamps int // rows whose time components did not compose
}

// Parser decodes .lst files. The zero value is not usable; construct with
// NewParser.
type Parser struct {
	logger *slog.Logger
}

// NewParser creates a Parser that logs advisory diagnostics to logger.
func NewParser(logger *slog.Logger) *Parser {
	return &Parser{logger: logger}
}

// Parse reads the file at path into an immutable Dataset. Individual rows
// with undecodable time components are retained with a zero DateTime; lines
// with the wrong field count are skipped with a warning. If the file cannot
// be read or yields no rows at all, the error wraps ErrDatasetUnavailable.
func (p *Parser) Parse(path string) (domain.Dataset, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Dataset{}, Stats{}, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return domain.Dataset{}, Stats{}, fmt.Errorf("%w: gzip: %v", ErrDatasetUnavailable, err)
		}
		defer gz.Close()
		r = gz
	}

	records, stats, err := p.decode(r)
	if err != nil {
		return domain.Dataset{}, stats, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	if len(records) == 0 {
		return domain.Dataset{}, stats, fmt.Errorf("%w: no rows decoded from %s", ErrDatasetUnavailable, path)
	}

	ds := domain.Dataset{
		Records:    records,
		SourcePath: path,
		LoadedAt:   domain.Clock().Now(),
	}

	p.logger.Info("dataset loaded",
		"path", path,
		"rows", stats.Rows,
		"skipped", stats.Skipped,
		"null_timestamps", stats.NullTimestamps,
	)
	p.logHead(ds)

	return ds, stats, nil
}

func (p *Parser) decode(r io.Reader) ([]domain.Record, Stats, error) {
	var records []domain.Record
	var stats Stats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		stats.Lines++

		fields := strings.Fields(line)
		if len(fields) != FieldCount {
			stats.Skipped++
			if stats.Skipped <= maxSkipsToLog {
				p.logger.Warn("skipping malformed line",
					"line", lineNo, "fields", len(fields), "expected", FieldCount)
			}
			continue
		}

		rec := decodeRecord(fields)
		if rec.DateTime.IsZero() {
			stats.NullTimestamps++
		}
		records = append(records, rec)
		stats.Rows++
	}
	if err := sc.Err(); err != nil {
		return nil, stats, err
	}
	if stats.Skipped > maxSkipsToLog {
		p.logger.Warn("further malformed lines suppressed", "total_skipped", stats.Skipped)
	}

	return records, stats, nil
}

// decodeRecord converts one tokenized line. Measurement fields coerce to NaN
// when unparseable; time components must all parse and form a valid calendar
// instant or the row's DateTime stays zero.
func decodeRecord(fields []string) domain.Record {
	year, yearOK := parseInt(fields[0])
	day, dayOK := parseInt(fields[1])
	hour, hourOK := parseInt(fields[2])
	minute, minOK := parseInt(fields[3])

	rec := domain.Record{
		Year:   year,
		Day:    day,
		Hour:   hour,
		Minute: minute,

		FieldMagnitudeAvg: parseFloatOrNaN(fields[4]),
		BX:                parseFloatOrNaN(fields[5]),
		BY:                parseFloatOrNaN(fields[6]),
		BZ:                parseFloatOrNaN(fields[7]),
		Speed:             parseFloatOrNaN(fields[8]),
		ProtonDensity:     parseFloatOrNaN(fields[9]),
		ProtonTemperature: parseFloatOrNaN(fields[10]),
		ElectricField:     parseFloatOrNaN(fields[11]),
		PlasmaBeta:        parseFloatOrNaN(fields[12]),
		AlfvenMachNumber:  parseFloatOrNaN(fields[13]),
		AEIndex:           parseFloatOrNaN(fields[14]),
		ALIndex:           parseFloatOrNaN(fields[15]),
		AUIndex:           parseFloatOrNaN(fields[16]),
		SYMD:              parseFloatOrNaN(fields[17]),
		SYMH:              parseFloatOrNaN(fields[18]),
	}

	if yearOK && dayOK && hourOK && minOK {
		rec.DateTime = domain.ComposeDateTime(year, day, hour, minute)
	}
	return rec
}

func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFloatOrNaN(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// logHead emits a short preview of the first rows, mirroring the original
// tool's startup diagnostics.
func (p *Parser) logHead(ds domain.Dataset) {
	const headRows = 5
	for i, r := range ds.Records {
		if i == headRows {
			break
		}
		ts := "unknown"
		if !r.DateTime.IsZero() {
			ts = r.DateTime.Format("2006-01-02 15:04")
		}
		p.logger.Debug("head row",
			"index", i,
			"time", ts,
			"magnitude", r.FieldMagnitudeAvg,
			"bx", r.BX, "by", r.BY, "bz", r.BZ,
		)
	}
}
