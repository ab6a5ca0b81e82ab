package news

import (
	"encoding/csv"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/edicola-dev/edicola/cmd/util"
	"github.com/edicola-dev/edicola/lib/news"
	"github.com/edicola-dev/edicola/rpc/common"
	gometrics "github.com/rcrowley/go-metrics"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	perfTestCmd = &cobra.Command{
		Use:     "perf",
		Short:   "Performance testing tool for edicola servers",
		Long:    "",
		RunE:    runPerf,
		PreRunE: processPerfConfig,
	}
	perfNumThreads = 10
	perfNumUsers   = 100
	perfSkip       = make([]string, 0)
)

func init() {
	// add flags
	key := "skip"
	perfTestCmd.Flags().String(key, "", util.WrapString("Benchmarks to skip (comma separated - e.g. submit,vote)"))
	key = "threads"
	perfTestCmd.Flags().Int(key, 10, util.WrapString("Number of threads to use for the benchmark"))
	key = "users"
	perfTestCmd.Flags().Int(key, 100, util.WrapString("How many test users to create for the benchmark"))
	key = "csv"
	perfTestCmd.Flags().String(key, "", util.WrapString("Optional path to save benchmark results as CSV"))
}

func processPerfConfig(cmd *cobra.Command, _ []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// Read the configuration from the command line flags and environment variables
	perfNumThreads = viper.GetInt("threads")
	perfNumUsers = viper.GetInt("users")
	perfSkip = strings.Split(viper.GetString("skip"), ",")

	return nil
}

func runPerf(_ *cobra.Command, _ []string) error {

	fmt.Println("Performance testing tool for edicola servers")

	// Print configuration
	fmt.Println()
	fmt.Println("Configuration:")
	fmt.Println(util.GetClientConfig().String())
	fmt.Printf("Threads: %d\n", perfNumThreads)
	fmt.Printf("Users: %d\n", perfNumUsers)
	fmt.Println()

	// Create the test users up front, submissions and votes need them
	fmt.Println("creating test users...")
	userIDs, err := createPerfUsers()
	if err != nil {
		return err
	}

	fmt.Println("starting tests...")

	// Create results map
	results := make(map[string]testing.BenchmarkResult)

	submittedIDs := make([]int64, 0)

	submitResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("submit") {
			return
		}

		b.ResetTimer()

		// Submissions feed the later benchmarks, so this one runs serially
		// and collects the created ids
		for i := 0; i < b.N; i++ {
			author := userIDs[i%len(userIDs)]
			target := fmt.Sprintf("https://perf.example.org/story-%d-%d", time.Now().UnixNano(), i)
			sub, err := rpcNews.CreateSubmission(fmt.Sprintf("perf story %d", i), target, author, 0)
			if err != nil {
				log.Printf("(submit) - error creating submission: %v\n", err)
				continue
			}
			if sub != nil {
				submittedIDs = append(submittedIDs, sub.ID)
			}
		}
	})

	results["submit"] = submitResult
	printResult("submit", submitResult)

	if len(submittedIDs) == 0 {
		// Make sure the remaining benchmarks have something to work on
		sub, err := rpcNews.CreateSubmission("perf seed", fmt.Sprintf("https://perf.example.org/seed-%d", time.Now().UnixNano()), userIDs[0], 0)
		if err != nil {
			return err
		}
		submittedIDs = append(submittedIDs, sub.ID)
	}

	// latency timers give percentile estimates on top of the ns/op averages
	voteTimer := gometrics.NewTimer()

	voteResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("vote") {
			return
		}

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				id := submittedIDs[counter%len(submittedIDs)]
				voter := userIDs[counter%len(userIDs)]
				// Duplicate votes come back as rejections, which is fine
				// here since a rejected vote is still a full round trip
				start := time.Now()
				_, _, err := rpcNews.Vote(id, voter, news.DirectionUp)
				voteTimer.UpdateSince(start)
				if err != nil {
					log.Printf("(vote) - error voting: %v\n", err)
				}
				counter++
			}
		})
	})

	results["vote"] = voteResult
	printResult("vote", voteResult)
	printPercentiles("vote", voteTimer)

	showTimer := gometrics.NewTimer()

	showResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("show") {
			return
		}

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				id := submittedIDs[counter%len(submittedIDs)]
				start := time.Now()
				_, err := rpcNews.FindOne(id, news.FindOptions{})
				showTimer.UpdateSince(start)
				if err != nil {
					log.Printf("(show) - error fetching submission: %v\n", err)
				}
				counter++
			}
		})
	})

	results["show"] = showResult
	printResult("show", showResult)
	printPercentiles("show", showTimer)

	topResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("top") {
			return
		}

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _, err := rpcNews.TopListing(0, 0, 30)
				if err != nil {
					log.Printf("(top) - error fetching top listing: %v\n", err)
				}
			}
		})
	})

	results["top"] = topResult
	printResult("top", topResult)

	mixedResult := testing.Benchmark(func(b *testing.B) {
		if shouldSkip("mixed") {
			return
		}

		b.SetParallelism(perfNumThreads)

		b.ResetTimer()

		b.RunParallel(func(pb *testing.PB) {
			counter := 0
			for pb.Next() {
				id := submittedIDs[counter%len(submittedIDs)]
				var err error
				switch counter % 4 {
				case 0: // show
					_, err = rpcNews.FindOne(id, news.FindOptions{})
				case 1: // vote
					_, _, err = rpcNews.Vote(id, userIDs[counter%len(userIDs)], news.DirectionUp)
				case 2: // top listing
					_, _, err = rpcNews.TopListing(0, 0, 30)
				case 3: // latest listing
					_, _, err = rpcNews.LatestListing(0, 0, 30)
				}

				if err != nil {
					log.Printf("(mixed) - error performing operation (%d): %v\n", counter%4, err)
				}
				counter++
			}
		})
	})

	results["mixed"] = mixedResult
	printResult("mixed", mixedResult)

	// cleanup the created submissions
	fmt.Println("\ncleaning up...")
	for _, id := range submittedIDs {
		if _, err := rpcNews.DestroySubmission(id); err != nil {
			log.Printf("(cleanup) - error deleting submission: %v\n", err)
		}
	}

	// Write results to csv if specified
	if csvPath := viper.GetString("csv"); csvPath != "" {
		fmt.Printf("\nExporting results to CSV: %s\n", csvPath)
		if err := writeResultsToCSV(csvPath, results, util.GetClientConfig()); err != nil {
			return fmt.Errorf("failed to export results to CSV: %v", err)
		}
		fmt.Println("Export complete")
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper
// --------------------------------------------------------------------------

func shouldSkip(test string) bool {
	// Check if the test is in the skip list
	for _, skip := range perfSkip {
		if test == skip {
			return true
		}
	}
	return false
}

// createPerfUsers registers the benchmark users and returns their ids.
// Reruns reuse existing accounts via the email lookup.
func createPerfUsers() ([]int64, error) {
	ids := make([]int64, 0, perfNumUsers)
	for i := 0; i < perfNumUsers; i++ {
		name := fmt.Sprintf("__perf-user-%d", i)
		email := fmt.Sprintf("%s@perf.example.org", name)

		user, err := rpcNews.FindUserByEmail(email)
		if err != nil {
			return nil, err
		}
		if user == nil {
			if user, err = rpcNews.CreateUser(name, email); err != nil {
				return nil, err
			}
		}
		ids = append(ids, user.ID)
	}
	return ids, nil
}

// printPercentiles prints the latency distribution recorded by a timer
func printPercentiles(test string, timer gometrics.Timer) {
	if timer.Count() == 0 {
		return
	}
	ps := timer.Percentiles([]float64{0.5, 0.95, 0.99})
	fmt.Printf("%-20sp50=%s p95=%s p99=%s\n",
		test+" (lat)",
		time.Duration(ps[0]),
		time.Duration(ps[1]),
		time.Duration(ps[2]),
	)
}

// printResult prints the result of a benchmark test in a formatted way
func printResult(test string, result testing.BenchmarkResult) {
	if result.NsPerOp() == 0 {
		fmt.Printf("%-20sskipped\n", test)
		return
	}

	nsPerOp := math.Max(float64(result.NsPerOp()), 1) // prevent division by zero
	opsPerSec := 1.0 / (nsPerOp / 1e9)

	// Print the formatted result
	fmt.Printf("%-20s%.0fns/op (%s/op)\t%.0f ops/sec\n", test, nsPerOp, time.Duration(nsPerOp), opsPerSec)
}

// writeResultsToCSV writes benchmark results to a CSV file
func writeResultsToCSV(csvPath string, results map[string]testing.BenchmarkResult, config *common.ClientConfig) error {
	file, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	header := []string{
		"Test", "NsPerOp", "DurationPerOp", "OpsPerSec", "Skipped",
		"Endpoints", "TimeoutSec", "RetryCount", "ConnectionsPerEndpoint",
		"Serializer", "Transport",
		"Threads", "Users",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	// Write test results
	for test, result := range results {
		var nsPerOp float64
		var opsPerSec float64
		var skipped string

		if result.NsPerOp() == 0 {
			skipped = "true"
			nsPerOp = 0
			opsPerSec = 0
		} else {
			skipped = "false"
			nsPerOp = math.Max(float64(result.NsPerOp()), 1)
			opsPerSec = 1.0 / (nsPerOp / 1e9)
		}

		row := []string{
			test,
			fmt.Sprintf("%.0f", nsPerOp),
			time.Duration(nsPerOp).String(),
			fmt.Sprintf("%.0f", opsPerSec),
			skipped,
			strings.Join(config.Endpoints, ";"),
			strconv.Itoa(config.TimeoutSecond),
			strconv.Itoa(config.RetryCount),
			strconv.Itoa(config.ConnectionsPerEndpoint),
			viper.GetString("serializer"),
			viper.GetString("transport"),
			strconv.Itoa(perfNumThreads),
			strconv.Itoa(perfNumUsers),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %v", err)
		}
	}

	return nil
}
