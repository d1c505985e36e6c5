package reader

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

type CSVReader struct {
	reader io.Reader
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

func (cr *CSVReader) Read() ([]map[string]string, error) {
	csvReader := newCSV(cr.reader)

	headers, err := readHeaders(csvReader)
	if err != nil {
		return nil, err
	}

	var records []map[string]string
	for {
		row, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		record, err := toRecord(headers, row)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// ReadParallel streams rows through workerCount goroutines. Row order is not preserved.
func (cr *CSVReader) ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelReaderResult, error) {
	if workerCount <= 0 {
		workerCount = 1
	}
	out := make(chan ParallelReaderResult)
	csvReader := newCSV(cr.reader)

	headers, err := readHeaders(csvReader)
	if err != nil {
		return nil, err
	}

	jobs := make(chan []string, workerCount*2)
	var wg sync.WaitGroup

	wg.Add(workerCount + 1)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case row, ok := <-jobs:
					if !ok {
						return
					}
					record, err := toRecord(headers, row)
					select {
					case out <- ParallelReaderResult{Record: record, Err: err}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer wg.Done()
		defer close(jobs)

		for {
			row, err := csvReader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				slog.Error("Error reading CSV row", "error", err)
				select {
				case out <- ParallelReaderResult{Err: err}:
					continue
				case <-ctx.Done():
					slog.Info("Context cancelled, stopping CSV read...")
					return
				}
			}
			select {
			case jobs <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}

func newCSV(r io.Reader) *csv.Reader {
	c := csv.NewReader(r)
	// row width is checked against the header in toRecord
	c.FieldsPerRecord = -1
	c.TrimLeadingSpace = true
	return c
}

func readHeaders(c *csv.Reader) ([]string, error) {
	headers, err := c.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return headers, nil
}

func toRecord(headers, row []string) (map[string]string, error) {
	if len(row) != len(headers) {
		return nil, fmt.Errorf("row has %d fields, header has %d: %w", len(row), len(headers), io.ErrUnexpectedEOF)
	}
	record := make(map[string]string, len(headers))
	for i, h := range headers {
		record[h] = row[i]
	}
	return record, nil
}
