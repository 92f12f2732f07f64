// Copyright (c) 2024. Sudeep Raj.
// SPDX-License-Identifier: MIT

// Package audit batch-assesses candidate password lists. Input files are
// streamed line by line and fanned out to a bounded worker pool; the report
// is a JSON-lines file that records strength data but never the passwords
// themselves.
package audit

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
	"os"
	"runtime"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/thinhdanggroup/executor"

	"github.com/sudeeprj-pks/SCT-CS-3/pkg/strength"
)

// Result is one line of the audit report.
type Result struct {
	Line        int                `json:"line"`
	Length      int                `json:"length"`
	Score       int                `json:"score"`
	Rating      strength.Rating    `json:"rating"`
	Entropy     float64            `json:"entropy"`
	Findings    []strength.Finding `json:"findings"`
	Suggestions []string           `json:"suggestions"`
}

type Auditor struct {
	parallelism int
	cfg         strength.Config
	in          *os.File
	wm          sync.Mutex
	writer      *bufio.Writer
	stat        *status
}

// NewAuditor audits the candidate list in the input file and writes a
// JSON-lines report to out. A parallelism below 1 defaults to the number of
// logical processors; assessment is CPU-bound, so more buys nothing.
func NewAuditor(in *os.File, out io.Writer, parallelism int, cfg strength.Config) *Auditor {
	return &Auditor{
		parallelism: parallelism,
		cfg:         cfg,
		in:          in,
		writer:      bufio.NewWriter(out),
	}
}

// Process assesses every line of the input file. Empty lines are assessed
// like any other candidate; an empty password is still a password.
func (a *Auditor) Process() error {
	threads := a.parallelism
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	pool, err := executor.New(executor.Config{
		ReqPerSeconds: 0,
		QueueSize:     2 * threads,
		NumWorkers:    threads,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	estimated := estimateFileLines(a.in)
	log.Info().Msgf("auditing candidate list %s with %d threads", a.in.Name(), threads)

	a.stat = newStatus(estimated)
	a.stat.BeginProgress()

	scanner := bufio.NewScanner(a.in)
	line := 0
	for scanner.Scan() {
		line++
		if err = pool.Publish(a.assessLine, scanner.Text(), line); err != nil {
			log.Panic().Err(err).Msgf("there is a programming error here.")
		}
	}

	pool.Wait()

	if err = scanner.Err(); err != nil {
		return err
	}

	if err = a.writer.Flush(); err != nil {
		return err
	}

	a.stat.Done()
	return nil
}

func (a *Auditor) assessLine(password string, line int) {
	res := strength.Assess(password, a.cfg)

	record := Result{
		Line:        line,
		Length:      len([]rune(password)),
		Score:       res.Score,
		Rating:      res.Rating,
		Entropy:     res.Entropy,
		Findings:    res.Findings,
		Suggestions: res.Suggestions,
	}

	data, err := json.Marshal(record)
	if err != nil {
		log.Error().Err(err).Msgf("error serializing result for line %d", line)
		return
	}

	// Synchronize report writes, we don't want intersected or incomplete
	// lines written to the file.
	a.wm.Lock()
	defer a.wm.Unlock()

	if _, err = a.writer.Write(append(data, '\n')); err != nil {
		log.Fatal().Err(err).Msgf("error during report write for line %d. Stopping process", line)
	}

	a.stat.Assessed(res.Rating)
}

// estimateFileLines samples the head of the file to estimate its line
// count. It's pretty accurate on uniform wordlists, <= 1% error rate.
func estimateFileLines(f *os.File) uint64 {
	// 16MiB
	const estimateLimit = 1024 * 1024 * 16

	info, err := f.Stat()
	if err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}

	size := info.Size()
	if size == 0 {
		return 0
	}

	sampleSize := math.Min(float64(size), estimateLimit)
	buffer := make([]byte, int64(sampleSize))
	if _, err = f.Read(buffer); err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}
	// Reset the file pointer to the start of the file so the actual read
	// will not be missing the sampled chunk
	if _, err = f.Seek(0, io.SeekStart); err != nil {
		log.Fatal().Err(err).Msg("Error estimating lines of file")
	}

	sample := uint64(0)
	for _, b := range buffer {
		if b == '\n' {
			sample++
		}
	}

	return sample * (uint64(size) / uint64(int64(sampleSize)))
}
