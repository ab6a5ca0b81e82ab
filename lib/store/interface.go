package store

import (
	"fmt"

	"github.com/edicola-dev/edicola/lib/db"
)

// --------------------------------------------------------------------------
// Interface Definition
// --------------------------------------------------------------------------

// DBFactory is a function type that creates a new db used by the store.
// This is used to abstract the creation of the db from the store implementation.
type DBFactory func() db.OrderedKVDB

// IStore is the generic interface for interacting with an ordered-index store.
// All write operations return only an error (nil on success), while read
// operations return the requested data along with an error (nil on success).
// Errors are always of type *Error.
type IStore interface {
	// HGetAll returns a copy of all fields of the hash stored at key.
	// The boolean return value indicates whether the hash exists.
	HGetAll(key string) (fields map[string]string, loaded bool, err error)
	// HGet returns a single field of the hash stored at key.
	// The boolean return value indicates whether the field exists.
	HGet(key, field string) (value string, loaded bool, err error)
	// HSet inserts or updates the given fields of the hash stored at key.
	// Fields not named are left untouched.
	HSet(key string, fields map[string]string) (err error)
	// HIncrBy atomically adds delta to an integer-valued hash field and
	// returns the new value. A missing hash or field counts as zero.
	HIncrBy(key, field string, delta int64) (newValue int64, err error)

	// Incr atomically increments the counter stored at key by one and
	// returns the new value.
	Incr(key string) (newValue int64, err error)

	// ZAdd inserts a member with the given score into the ordered set at key,
	// or updates the member's score if it is already present. The returned
	// boolean is true only for a genuine first-time insertion.
	ZAdd(key, member string, score float64) (added bool, err error)
	// ZScore returns the score of a member. The boolean return value
	// indicates membership.
	ZScore(key, member string) (score float64, loaded bool, err error)
	// ZCard returns the cardinality of the ordered set at key.
	ZCard(key string) (count int64, err error)
	// ZRem removes a member from the ordered set at key and reports whether
	// it was present.
	ZRem(key, member string) (removed bool, err error)
	// ZRangeDesc returns a window of the ordered set at key in descending
	// score order, ties broken by member ascending. count < 0 means all
	// remaining entries.
	ZRangeDesc(key string, start, count int) (members []db.ScoredMember, err error)

	// SetEx stores a string value under key with a time to live in seconds.
	// A ttl of zero means no expiry.
	SetEx(key, value string, ttlSeconds uint64) (err error)
	// GetS returns the string value stored at key. Expired keys are reported
	// as absent.
	GetS(key string) (value string, loaded bool, err error)
	// Del removes the string key immediately.
	Del(key string) (err error)

	// HGetAllMulti returns the hashes stored at the given keys as one logical
	// round trip, in input order. A missing hash yields a nil map.
	HGetAllMulti(keys []string) (records []map[string]string, err error)
	// HGetMulti returns one field of each hash stored at the given keys, in
	// input order. The parallel loaded slice indicates per-key existence.
	HGetMulti(keys []string, field string) (values []string, loaded []bool, err error)
	// ZScoreMulti returns the score of one member across multiple ordered
	// sets, in input order. The parallel loaded slice indicates per-set
	// membership.
	ZScoreMulti(sets []string, member string) (scores []float64, loaded []bool, err error)

	// GetDBInfo returns metadata about the database underlying the store.
	// It is not guaranteed that all fields are filled in or that the information is up-to-date!
	GetDBInfo() (info db.DatabaseInfo, err error)

	// Close releases the underlying database.
	Close() (err error)
}

// --------------------------------------------------------------------------
// Custom Error Type
// --------------------------------------------------------------------------

// Error is a custom error type that wraps a return code (of type RetCode)
// and an error message.
type Error struct {
	Code RetCode // The return code
	Msg  string  // The error message.
}

// Error implements the error interface.
func (e *Error) Error() string {
	errorCode := ""
	switch e.Code {
	case RetCInternalError:
		errorCode = "InternalError"
	case RetCUnsupportedOperation:
		errorCode = "UnsupportedOperation"
	case RetCInvalidOperation:
		errorCode = "InvalidOperation"
	default:
		errorCode = "Unknown"
	}

	return fmt.Sprintf("StoreError (code %s): %s", errorCode, e.Msg)
}

// NewError creates a new store Error with the given code and message.
func NewError(code RetCode, msg string) *Error {
	return &Error{
		Code: code,
		Msg:  msg,
	}
}

// --------------------------------------------------------------------------
// Return Codes
// --------------------------------------------------------------------------

type RetCode uint64

const (
	RetCSuccess              RetCode = iota // 0: Command executed successfully.
	RetCInternalError                       // 1: Command failed due to an internal error.
	RetCUnsupportedOperation                // 2: Operation is not supported by underlying database.
	RetCInvalidOperation                    // 3: Invalid operation.
)
