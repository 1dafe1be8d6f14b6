// Command loadtest fires concurrent booking attempts at a running rental
// server and reports how the pipeline classified them. Many workers racing
// for the same small fleet is exactly the load that exercises the
// check-and-reserve guarantee.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"
)

type config struct {
	host     string
	requests int
	workers  int
	timeout  time.Duration
}

type bookingRequest struct {
	VIN              string     `json:"vin"`
	FromDate         *time.Time `json:"from_date"`
	ToDate           *time.Time `json:"to_date"`
	ForeignCountries []string   `json:"foreign_countries,omitempty"`
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type carList struct {
	Cars []struct {
		VIN string `json:"vin"`
	} `json:"cars"`
}

type report struct {
	StartedAt       time.Time        `json:"started_at"`
	DurationSeconds float64          `json:"duration_seconds"`
	Requests        int64            `json:"requests"`
	Booked          int64            `json:"booked"`
	Rejected        int64            `json:"rejected"`
	Failed          int64            `json:"failed"`
	RPS             float64          `json:"rps"`
	Outcomes        map[string]int64 `json:"outcomes"`
	LatencyMs       latencySummary   `json:"latency_ms"`
}

type latencySummary struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
	Avg float64 `json:"avg"`
	P95 float64 `json:"p95"`
}

type collector struct {
	mu        sync.Mutex
	booked    int64
	rejected  int64
	failed    int64
	outcomes  map[string]int64
	latencies []float64
}

func newCollector() *collector {
	return &collector{outcomes: make(map[string]int64)}
}

func (c *collector) record(outcome string, booked bool, latency time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.outcomes[outcome]++
	c.latencies = append(c.latencies, float64(latency.Milliseconds()))
	switch {
	case booked:
		c.booked++
	case outcome == "TRANSPORT_ERROR" || outcome == "NO_CARS_AVAILABLE":
		c.failed++
	default:
		c.rejected++
	}
}

func (c *collector) summary() latencySummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.latencies) == 0 {
		return latencySummary{}
	}
	sorted := append([]float64(nil), c.latencies...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	p95 := sorted[int(float64(len(sorted)-1)*0.95)]
	return latencySummary{
		Min: sorted[0],
		Max: sorted[len(sorted)-1],
		Avg: sum / float64(len(sorted)),
		P95: p95,
	}
}

func main() {
	cfg := config{}
	flag.StringVar(&cfg.host, "host", "127.0.0.1:8080", "host:port of the rental server")
	flag.IntVar(&cfg.requests, "requests", 100, "number of booking attempts to send")
	flag.IntVar(&cfg.workers, "workers", 30, "number of concurrent workers")
	flag.DurationVar(&cfg.timeout, "timeout", 30*time.Second, "per-request HTTP timeout")
	flag.Parse()

	base := "http://" + cfg.host
	client := &http.Client{Timeout: cfg.timeout}
	coll := newCollector()

	start := time.Now()
	jobs := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < cfg.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				runBookingAttempt(client, base, coll)
			}
		}()
	}
	for i := 0; i < cfg.requests; i++ {
		jobs <- struct{}{}
	}
	close(jobs)
	wg.Wait()
	elapsed := time.Since(start)

	rep := report{
		StartedAt:       start,
		DurationSeconds: elapsed.Seconds(),
		Requests:        int64(cfg.requests),
		Booked:          coll.booked,
		Rejected:        coll.rejected,
		Failed:          coll.failed,
		RPS:             float64(cfg.requests) / elapsed.Seconds(),
		Outcomes:        coll.outcomes,
		LatencyMs:       coll.summary(),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		fmt.Fprintln(os.Stderr, "failed to encode report:", err)
		os.Exit(1)
	}
}

func runBookingAttempt(client *http.Client, base string, coll *collector) {
	start := time.Now()

	cars, err := fetchAvailableCars(client, base)
	if err != nil {
		coll.record("TRANSPORT_ERROR", false, time.Since(start))
		return
	}
	if len(cars) == 0 {
		coll.record("NO_CARS_AVAILABLE", false, time.Since(start))
		return
	}

	vin := cars[rand.Intn(len(cars))]

	// Random future range, like a customer planning up to two years ahead.
	from := time.Now().AddDate(0, 0, 1+rand.Intn(729))
	to := from.AddDate(0, 0, rand.Intn(10))
	req := bookingRequest{
		VIN:              vin,
		FromDate:         &from,
		ToDate:           &to,
		ForeignCountries: randomCountries(rand.Intn(10)),
	}

	body, _ := json.Marshal(req)
	resp, err := client.Post(base+"/api/v1/bookings", "application/json", bytes.NewReader(body))
	if err != nil {
		coll.record("TRANSPORT_ERROR", false, time.Since(start))
		return
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		coll.record("TRANSPORT_ERROR", false, time.Since(start))
		return
	}

	if env.Success {
		coll.record("BOOKED", true, time.Since(start))
		return
	}
	outcome := "UNCLASSIFIED"
	if env.Error != nil && env.Error.Code != "" {
		outcome = env.Error.Code
	}
	coll.record(outcome, false, time.Since(start))
}

func fetchAvailableCars(client *http.Client, base string) ([]string, error) {
	resp, err := client.Get(base + "/api/v1/cars/available")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, err
	}
	var list carList
	if err := json.Unmarshal(env.Data, &list); err != nil {
		return nil, err
	}
	vins := make([]string, 0, len(list.Cars))
	for _, c := range list.Cars {
		vins = append(vins, c.VIN)
	}
	return vins, nil
}

// randomCountries generates n synthetic country names; the checker only
// cares about the count.
func randomCountries(n int) []string {
	if n == 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = "country-" + strconv.FormatInt(rand.Int63(), 36)
	}
	return out
}
