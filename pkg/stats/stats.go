// Package stats dumps the metrics collected by a prometheus registry.
package stats

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

// DumpMetrics appends to the given file every metric family collected by
// the gatherer, preceded by a timestamp line.
func DumpMetrics(gatherer prometheus.Gatherer, path string) error {
	metricFamilies, err := gatherer.Gather()
	if err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := fmt.Fprintf(
		writer, "# %s\n", time.Now().UTC().Format(time.RFC3339),
	); err != nil {
		return err
	}
	for _, v := range metricFamilies {
		if _, err := writer.WriteString(v.String() + "\n"); err != nil {
			return err
		}
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	log.Debugf("dumped %d metric families to %s", len(metricFamilies), path)
	return nil
}
