package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Fires concurrent creates for the same (subject, courseNumber) pair against a running
// server. Exactly one request must win with 201; every other request must lose at the
// database uniqueness constraint with 400.

type createRequest struct {
	Subject      string `json:"subject"`
	CourseNumber string `json:"courseNumber"`
	Description  string `json:"description"`
}

type result struct {
	status int
	body   []byte
	err    error
}

func create(client *http.Client, url string, payload []byte) result {
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return result{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	return result{status: resp.StatusCode, body: body, err: err}
}

func main() {
	baseURL := flag.String("base_url", "http://localhost:5001", "server base URL")
	workers := flag.Int("workers", 50, "number of concurrent create requests")
	subject := flag.String("subject", "RACE", "subject used by every request")
	courseNumber := flag.String("course_number", "999", "course number used by every request")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	url := *baseURL + "/api/courses"
	client := &http.Client{Timeout: 10 * time.Second}

	var wg sync.WaitGroup
	results := make([]result, *workers)
	start := make(chan struct{})
	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			payload, _ := json.Marshal(createRequest{
				Subject:      *subject,
				CourseNumber: *courseNumber,
				Description:  fmt.Sprintf("Race worker %d", i),
			})
			<-start
			results[i] = create(client, url, payload)
		}(i)
	}

	logger.Info("Starting concurrent creates", zap.String("url", url), zap.Int("workers", *workers))
	close(start)
	wg.Wait()

	var created []string
	duplicates, failures := 0, 0
	for i, r := range results {
		switch {
		case r.err != nil:
			failures++
			logger.Error("Request failed", zap.Int("worker", i), zap.Error(r.err))
		case r.status == http.StatusCreated:
			var body struct {
				ID string `json:"id"`
			}
			if err := json.Unmarshal(r.body, &body); err == nil {
				created = append(created, body.ID)
			}
		case r.status == http.StatusBadRequest:
			duplicates++
		default:
			failures++
			logger.Error("Unexpected status", zap.Int("worker", i), zap.Int("status", r.status), zap.ByteString("body", r.body))
		}
	}

	for _, id := range created {
		req, err := http.NewRequest(http.MethodDelete, url+"/"+id, nil)
		if err != nil {
			logger.Warn("Failed to build cleanup request", zap.String("id", id), zap.Error(err))
			continue
		}
		resp, err := client.Do(req)
		if err != nil {
			logger.Warn("Failed to delete course", zap.String("id", id), zap.Error(err))
			continue
		}
		_ = resp.Body.Close()
	}

	logger.Info("Concurrent creates finished",
		zap.Int("created", len(created)),
		zap.Int("duplicates", duplicates),
		zap.Int("failures", failures),
	)

	if len(created) != 1 || failures > 0 {
		logger.Error("Uniqueness violated or requests failed")
		os.Exit(1)
	}
}
