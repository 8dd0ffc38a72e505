/*
Kompilasi manual:
  go build -o tools/gen_dummy/load_to_mysql tools/gen_dummy/load_to_mysql.go

Pakai contoh:
  ./tools/gen_dummy/load_to_mysql \
    -table production_entries \
    -csv tools/gen_dummy/sample_production.csv \
    -dsn "shop:secret@tcp(127.0.0.1:3306)/shopfloor?parseTime=true" \
    -batch 500 -truncate
*/

// [FILE] tools/gen_dummy/load_to_mysql.go
package main

import (
	"bufio"
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"shopfloor-tracker/internal/logging"
	"shopfloor-tracker/internal/timecalc"
)

var (
	csvPath   = flag.String("csv", "tools/gen_dummy/sample_production.csv", "CSV path")
	dsn       = flag.String("dsn", "root:password@tcp(127.0.0.1:3306)/shopfloor?parseTime=true", "MySQL DSN")
	table     = flag.String("table", "production_entries", "Target table (production_entries|admin_entries)")
	batchSize = flag.Int("batch", 500, "Insert batch size")
	truncate  = flag.Bool("truncate", false, "TRUNCATE target table first")
)

var log = logging.MustNew("info", "console")

func must(err error) {
	if err != nil {
		log.Fatal("load failed", zap.Error(err))
	}
}

func main() {
	flag.Parse()
	defer log.Sync() //nolint:errcheck

	loaders := map[string]func(*sql.DB, *csv.Reader, []string){
		"production_entries": loadEntries,
		"admin_entries":      loadAdmin,
	}
	load, ok := loaders[*table]
	if !ok {
		log.Fatal("unsupported table", zap.String("table", *table))
	}

	db, err := sql.Open("mysql", *dsn)
	must(err)
	defer db.Close()
	must(db.Ping())

	if *truncate {
		_, err := db.Exec("TRUNCATE TABLE " + *table)
		must(err)
		log.Info("truncated", zap.String("table", *table))
		if *csvPath == "/dev/null" {
			return
		}
	}

	f, err := os.Open(*csvPath)
	must(err)
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	head, err := r.Read()
	must(err)
	load(db, r, head)
}

/* ======================= Common Helpers ======================= */

func headerIndex(h []string) map[string]int {
	m := map[string]int{}
	for i, c := range h {
		c = strings.TrimSpace(strings.ToLower(c))
		c = strings.TrimPrefix(c, "\ufeff")
		m[c] = i
	}
	return m
}

func ensureColumns(idx map[string]int, need []string) {
	for _, c := range need {
		if _, ok := idx[c]; !ok {
			log.Fatal("missing column in CSV header", zap.String("column", c))
		}
	}
}

// col mengambil nilai kolom opsional; kolom tidak ada / kosong -> nil (NULL).
func col(rec []string, idx map[string]int, name string) any {
	i, ok := idx[name]
	if !ok || i >= len(rec) {
		return nil
	}
	v := strings.TrimSpace(rec[i])
	if v == "" {
		return nil
	}
	return v
}

func intCol(rec []string, idx map[string]int, name string) int {
	v, _ := col(rec, idx, name).(string)
	n, _ := strconv.Atoi(v)
	return n
}

func readRow(r *csv.Reader) ([]string, error) {
	rec, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	return rec, nil
}

func flush(db *sql.DB, insert string, width int, vals *[]any) {
	if len(*vals) == 0 {
		return
	}
	group := "(" + strings.TrimRight(strings.Repeat("?,", width), ",") + "),"
	placeholders := strings.TrimRight(strings.Repeat(group, len(*vals)/width), ",")
	_, err := db.Exec(insert+placeholders, *vals...)
	must(err)
	*vals = (*vals)[:0]
}

/* ======================= production_entries ======================= */

var entryCols = []string{
	"entry_date", "operator_name", "shift", "machine", "customer_name", "component_name",
	"opn", "prog_no", "qty", "additional_qty", "setting_time", "cycle_time", "handling_time",
	"idle_time", "start_time", "end_time", "total_working_hrs", "remarks",
}

var durationCols = []string{"setting_time", "cycle_time", "handling_time", "idle_time"}

func loadEntries(db *sql.DB, r *csv.Reader, head []string) {
	idx := headerIndex(head)
	ensureColumns(idx, []string{"entry_date", "machine", "component_name", "qty"})

	insert := "INSERT INTO production_entries(" + strings.Join(entryCols, ", ") + ") VALUES "
	width := len(entryCols)
	vals := make([]any, 0, *batchSize*width)
	rows, suspicious := 0, 0
	for {
		rec, err := readRow(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			must(err)
		}
		for _, c := range entryCols {
			switch c {
			case "qty", "additional_qty":
				vals = append(vals, intCol(rec, idx, c))
			default:
				vals = append(vals, col(rec, idx, c))
			}
		}
		// durasi disimpan apa adanya; hanya dihitung supaya operator tahu
		for _, c := range durationCols {
			if v, ok := col(rec, idx, c).(string); ok && !timecalc.IsWellFormedDuration(v) {
				suspicious++
				log.Debug("malformed duration", zap.Int("row", rows+2), zap.String("column", c), zap.String("value", v))
			}
		}
		rows++
		if rows%*batchSize == 0 {
			flush(db, insert, width, &vals)
		}
	}
	flush(db, insert, width, &vals)
	log.Info("inserted production_entries", zap.Int("rows", rows), zap.Int("malformed_durations", suspicious))
}

/* ======================= admin_entries ======================= */

func loadAdmin(db *sql.DB, r *csv.Reader, head []string) {
	idx := headerIndex(head)
	ensureColumns(idx, []string{"customer_name", "component_name"})

	const insert = "INSERT INTO admin_entries(customer_name, component_name, supplier_name) VALUES "
	vals := make([]any, 0, *batchSize*3)
	rows := 0
	for {
		rec, err := readRow(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			must(err)
		}
		vals = append(vals, col(rec, idx, "customer_name"), col(rec, idx, "component_name"), col(rec, idx, "supplier_name"))
		rows++
		if rows%*batchSize == 0 {
			flush(db, insert, 3, &vals)
		}
	}
	flush(db, insert, 3, &vals)
	log.Info("inserted admin_entries", zap.Int("rows", rows))
}
