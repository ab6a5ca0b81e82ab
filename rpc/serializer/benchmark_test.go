package serializer

import (
	"strconv"
	"testing"

	"github.com/edicola-dev/edicola/rpc/common"
)

// benchmarkMessages returns a set of messages for targeted benchmarking
func benchmarkMessages() map[string]common.Message {
	// a listing response carrying a full page of ids
	pageIDs := make([]int64, 30)
	for i := range pageIDs {
		pageIDs[i] = int64(i + 1)
	}

	// a find response carrying a full page of hydrated submissions
	pageSubs := make([]*common.Submission, 30)
	for i := range pageSubs {
		pageSubs[i] = &common.Submission{
			ID:         int64(i + 1),
			Title:      "benchmark submission " + strconv.Itoa(i),
			Target:     "https://example.org/article-" + strconv.Itoa(i),
			AuthorID:   int64(i%5 + 1),
			CTime:      1748779200,
			Score:      float64(i) * 1.5,
			Rank:       float64(1000 - i),
			UpCount:    int64(i),
			AuthorName: "author-" + strconv.Itoa(i%5),
			ViewerVote: "up",
		}
	}

	return map[string]common.Message{
		"Empty": {
			MsgType: common.MsgTSuccess,
		},
		"VoteRequest": {
			MsgType:   common.MsgTSubVote,
			ID:        42,
			UserID:    7,
			Direction: "up",
		},
		"CreateRequest": {
			MsgType:    common.MsgTSubCreate,
			Title:      "a medium length submission title for testing",
			Target:     "https://example.org/some/longer/path/to/an/article",
			UserID:     7,
			CategoryID: 3,
		},
		"ListingResponse": {
			MsgType: common.MsgTListTop,
			IDs:     pageIDs,
			Total:   4200,
		},
		"FindResponsePage": {
			MsgType:     common.MsgTSubFind,
			Submissions: pageSubs,
		},
		"ErrorMessage": {
			MsgType: common.MsgTError,
			Err:     "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed do eiusmod tempor incididunt ut labore et dolore magna aliqua.",
		},
	}
}

// BenchmarkSerialize benchmarks serialization for all implementations with various message types
func BenchmarkSerialize(b *testing.B) {
	messages := benchmarkMessages()

	for name, factory := range testSerializers {
		for msgName, msg := range messages {
			b.Run(name+"_"+msgName, func(b *testing.B) {
				serializer := factory()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					_, err := serializer.Serialize(msg)
					if err != nil {
						b.Fatalf("Failed to serialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkDeserialize benchmarks deserialization for all implementations with various message types
func BenchmarkDeserialize(b *testing.B) {
	messages := benchmarkMessages()
	serializedData := make(map[string]map[string][]byte)

	// Pre-serialize all messages with all serializers
	for name, factory := range testSerializers {
		serializer := factory()
		serializedData[name] = make(map[string][]byte)

		for msgName, msg := range messages {
			data, err := serializer.Serialize(msg)
			if err != nil {
				b.Fatalf("Failed to serialize %s with %s: %v", msgName, name, err)
			}
			serializedData[name][msgName] = data
		}
	}

	// Benchmark deserialization
	for name, factory := range testSerializers {
		for msgName := range messages {
			b.Run(name+"_"+msgName, func(b *testing.B) {
				serializer := factory()
				data := serializedData[name][msgName]
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					var msg common.Message
					err := serializer.Deserialize(data, &msg)
					if err != nil {
						b.Fatalf("Failed to deserialize: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkSize measures and reports the serialized size for each message type
func BenchmarkSize(b *testing.B) {
	messages := benchmarkMessages()

	for name, factory := range testSerializers {
		serializer := factory()

		for msgName, msg := range messages {
			b.Run(name+"_"+msgName, func(b *testing.B) {
				data, err := serializer.Serialize(msg)
				if err != nil {
					b.Fatalf("Failed to serialize: %v", err)
				}

				// Report the size as a custom metric
				b.ReportMetric(float64(len(data)), "bytes")

				// Minimal loop to satisfy benchmark requirements
				for i := 0; i < b.N; i++ {
					_ = data
				}
			})
		}
	}
}
