package export

import (
	"encoding/csv"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
)

func writeCSV(buf *bytebufferpool.ByteBuffer, header []string, rows [][]string) error {
	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatFloat keeps the shortest representation that round-trips, so 0.5
// exports as "0.5" and whole numbers stay bare.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinAgents(agents []string) string {
	return strings.Join(agents, "|")
}
