package postgres

import "database/sql"

// upsertChunkSize bounds multi-row inserts so a big event never builds a
// statement with tens of thousands of placeholders.
const upsertChunkSize = 200

func isNotFound(err error) bool {
	return err == sql.ErrNoRows
}

func chunked(total int, fn func(start, end int) error) error {
	for start := 0; start < total; start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > total {
			end = total
		}
		if err := fn(start, end); err != nil {
			return err
		}
	}
	return nil
}
