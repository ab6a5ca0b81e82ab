package serializer

import (
	"reflect"
	"testing"

	"github.com/edicola-dev/edicola/rpc/common"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() IRPCSerializer{
	"JSON": NewJSONSerializer,
	"GOB":  NewGOBSerializer,
}

// testMessages creates a set of test messages with different fields filled
func testMessages() []common.Message {
	return []common.Message{
		// Basic message with just a type
		{MsgType: common.MsgTSuccess},

		// Create request
		{
			MsgType:    common.MsgTSubCreate,
			Title:      "a title",
			Target:     "https://example.org/article",
			UserID:     7,
			CategoryID: 3,
		},

		// Vote request and response
		{
			MsgType:   common.MsgTSubVote,
			ID:        42,
			UserID:    7,
			Direction: "up",
		},
		{
			MsgType:   common.MsgTSubVote,
			Rank:      1234.5678,
			Rejection: 1,
		},

		// Find request with viewer context
		{
			MsgType:    common.MsgTSubFind,
			IDs:        []int64{1, 2, 3},
			UpdateRank: true,
			ViewerID:   7,
		},

		// Find response with a hydrated submission
		{
			MsgType: common.MsgTSubFind,
			Submissions: []*common.Submission{
				{
					ID:          42,
					Title:       "a title",
					Target:      "https://example.org/article",
					AuthorID:    7,
					CTime:       1748779200,
					Score:       12.5,
					Rank:        3456.789,
					UpCount:     13,
					DownCount:   1,
					AuthorName:  "alice",
					AuthorEmail: "alice@example.org",
					ViewerVote:  "up",
				},
			},
		},

		// Listing response
		{
			MsgType: common.MsgTListTop,
			IDs:     []int64{5, 3, 8},
			Total:   17,
		},

		// User response
		{
			MsgType: common.MsgTUserCreate,
			User:    &common.User{ID: 7, Name: "alice", Email: "alice@example.org", Karma: 10, CTime: 1748779200},
		},

		// Category response
		{
			MsgType:  common.MsgTCatCreate,
			Category: &common.Category{ID: 3, Code: "golang"},
		},

		// Error response
		{
			MsgType: common.MsgTError,
			Err:     "test error message",
		},
	}
}

// TestSerializerRoundTrip tests that messages can be serialized and deserialized correctly
func TestSerializerRoundTrip(t *testing.T) {
	messages := testMessages()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for i, msg := range messages {
				// Serialize
				data, err := serializer.Serialize(msg)
				if err != nil {
					t.Errorf("Failed to serialize message %d: %v", i, err)
					continue
				}

				// Deserialize
				var result common.Message
				err = serializer.Deserialize(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize message %d: %v", i, err)
					continue
				}

				// Compare
				if !reflect.DeepEqual(msg, result) {
					t.Errorf("Message %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, msg, result)
				}
			}
		})
	}
}

// TestMessageTypes tests each message type with each serializer
func TestMessageTypes(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			// Test each message type (don't test for MsgTUnknown since this should raise an error)
			for msgType := common.MsgTSuccess; msgType <= common.MsgTCatFindByCode; msgType++ {
				msg := common.Message{MsgType: msgType}

				// Serialize
				data, err := serializer.Serialize(msg)
				if err != nil {
					t.Errorf("Failed to serialize message type %s: %v", msgType.String(), err)
					continue
				}

				// Deserialize
				var result common.Message
				err = serializer.Deserialize(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize message type %s: %v", msgType.String(), err)
					continue
				}

				// Check type
				if result.MsgType != msgType {
					t.Errorf("Message type doesn't match after round trip: Expected %s, got %s",
						msgType.String(), result.MsgType.String())
				}
			}
		})
	}
}

// TestUnknownMessageTypeRejected tests that an unknown wire name fails to parse
func TestUnknownMessageTypeRejected(t *testing.T) {
	serializer := NewJSONSerializer()

	var msg common.Message
	if err := serializer.Deserialize([]byte(`{"msg_type":"sub.upvote-twice"}`), &msg); err == nil {
		t.Errorf("Expected error for unknown message type but got none")
	}
}
