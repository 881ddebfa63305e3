package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/sirupsen/logrus"

	"github.com/rawbytedev/strview"
	"github.com/rawbytedev/strview/pkg/scan"
)

// Profiling harness: hammers the search and tokenization paths so the
// zero-allocation claim can be checked against a heap profile.
func main() {
	logrus.SetOutput(os.Stdout)

	go func() {
		logrus.Info(http.ListenAndServe("localhost:6060", nil))
	}()

	f, err := os.Create("mem.prof")
	if err != nil {
		logrus.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	doc := strview.OfString("GET /index.html HTTP/1.1\r\nHost: example.com\r\nAccept: text/html, application/json\r\n\r\n")
	sep := strview.OfString("\r\n")
	ws := strview.OfString(" \t")

	found := 0
	for i := 0; i < 100000; i++ {
		pos := 0
		for {
			j := doc.FindFrom(sep, pos)
			if j == strview.NotFound {
				break
			}
			line := scan.Trim(doc.Suffix(doc.Len()-pos).Prefix(j-pos), ws)
			if line.Contains(strview.OfString("example")) {
				found++
			}
			pos = j + sep.Len()
		}
	}
	logrus.WithField("matches", found).Info("workload done")

	if err := pprof.WriteHeapProfile(f); err != nil {
		logrus.Fatal(err)
	}
}
