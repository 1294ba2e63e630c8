package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// WriteCSV writes every series as four columns: timestamp (sample
// index), value, condition id and series id. Series are concatenated in
// build order under a single header row.
func WriteCSV(w io.Writer, ds *Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "value", "type", "series"}); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, s := range ds.Series {
		for i, v := range s.Values {
			rec := []string{
				strconv.Itoa(i),
				strconv.FormatFloat(v, 'g', -1, 64),
				s.Condition,
				s.ID,
			}
			if err := cw.Write(rec); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
