// repositories/mysql/production_repo.go
// Repo untuk entri produksi harian (operator log)
package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"shopfloor-tracker/internal/timecalc"
)

var ErrNotFound = errors.New("not found")

type ProductionRepo struct{ DB *sql.DB }

type EntryRow struct {
	ID            int64
	EntryDate     time.Time
	OperatorName  sql.NullString
	Shift         sql.NullString
	Machine       string
	CustomerName  sql.NullString
	ComponentName string
	Opn           sql.NullString
	ProgNo        sql.NullString
	Qty           int
	AdditionalQty sql.NullInt64
	SettingTime   sql.NullString
	CycleTime     sql.NullString
	HandlingTime  sql.NullString
	IdleTime      sql.NullString
	StartTime     sql.NullString
	EndTime       sql.NullString
	WorkingHrs    sql.NullString
	Remarks       sql.NullString
}

type EntryFilter struct {
	Start    *time.Time // inclusive
	End      *time.Time // exclusive
	Machines []string
	Limit    int
	Offset   int
}

// Asumsi skema:
//
//	production_entries(id BIGINT, entry_date DATE, operator_name, shift, machine, customer_name,
//	  component_name, opn, prog_no, qty INT, additional_qty INT, setting_time, cycle_time,
//	  handling_time, idle_time, start_time, end_time, total_working_hrs, remarks)
//
// Semua kolom durasi/jam bertipe VARCHAR dan disimpan apa adanya dari form operator.
const entryColumns = `id, entry_date, operator_name, shift, machine, customer_name, component_name,
		opn, prog_no, qty, additional_qty, setting_time, cycle_time, handling_time, idle_time,
		start_time, end_time, total_working_hrs, remarks`

func (r *ProductionRepo) ListEntries(ctx context.Context, f EntryFilter) ([]EntryRow, error) {
	if f.Limit <= 0 || f.Limit > 5000 {
		f.Limit = 1000
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	ctx, cancel := withTimeout(ctx, 10*time.Second)
	defer cancel()

	q := `SELECT ` + entryColumns + `
		FROM production_entries
		WHERE 1=1`
	args := []any{}

	if f.Start != nil {
		q += ` AND entry_date >= ?`
		args = append(args, f.Start.Format("2006-01-02"))
	}
	if f.End != nil {
		q += ` AND entry_date < ?`
		args = append(args, f.End.Format("2006-01-02"))
	}
	if len(f.Machines) > 0 {
		q += ` AND machine IN (` + placeholders(len(f.Machines)) + `)`
		for _, m := range f.Machines {
			args = append(args, m)
		}
	}

	q += ` ORDER BY entry_date DESC, id DESC LIMIT ? OFFSET ?`
	args = append(args, f.Limit, f.Offset)

	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query production entries: %w", err)
	}
	defer rows.Close()

	var out []EntryRow
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan production entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ProductionRepo) GetEntry(ctx context.Context, id int64) (EntryRow, error) {
	ctx, cancel := withTimeout(ctx, 5*time.Second)
	defer cancel()

	row := r.DB.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM production_entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return EntryRow{}, ErrNotFound
	}
	if err != nil {
		return EntryRow{}, fmt.Errorf("get production entry %d: %w", id, err)
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (EntryRow, error) {
	var e EntryRow
	err := s.Scan(
		&e.ID, &e.EntryDate, &e.OperatorName, &e.Shift, &e.Machine, &e.CustomerName, &e.ComponentName,
		&e.Opn, &e.ProgNo, &e.Qty, &e.AdditionalQty, &e.SettingTime, &e.CycleTime, &e.HandlingTime,
		&e.IdleTime, &e.StartTime, &e.EndTime, &e.WorkingHrs, &e.Remarks,
	)
	return e, err
}

// Raw mengubah baris DB ke payload longgar engine (belum dinormalisasi).
func (e EntryRow) Raw() timecalc.RawRecord {
	return timecalc.RawRecord{
		ID:              strconv.FormatInt(e.ID, 10),
		Date:            e.EntryDate.Format("2006-01-02"),
		OperatorName:    e.OperatorName.String,
		Shift:           e.Shift.String,
		Machine:         e.Machine,
		CustomerName:    e.CustomerName.String,
		ComponentName:   e.ComponentName,
		Opn:             e.Opn.String,
		ProgNo:          e.ProgNo.String,
		Qty:             e.Qty,
		AdditionalQty:   int(e.AdditionalQty.Int64),
		SettingTime:     e.SettingTime.String,
		CycleTime:       e.CycleTime.String,
		HandlingTime:    e.HandlingTime.String,
		IdleTime:        e.IdleTime.String,
		StartTime:       e.StartTime.String,
		EndTime:         e.EndTime.String,
		TotalWorkingHrs: e.WorkingHrs.String,
		Remarks:         e.Remarks.String,
	}
}

// Records menormalisasi hasil ListEntries untuk engine agregasi.
func Records(rows []EntryRow) []timecalc.Record {
	out := make([]timecalc.Record, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Raw().Normalize())
	}
	return out
}

// Optional: pembungkus buat context timeout default repo
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
