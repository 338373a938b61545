package types

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/teris-io/shortid"
)

// GenerateUUID returns a k-sortable unique identifier
func GenerateUUID() string {
	return ulid.Make().String()
}

// GenerateUUIDWithPrefix returns a k-sortable unique identifier
// with a prefix ex deal_01HZX3J4T0W8Q5V6B7N8M9K0P1
func GenerateUUIDWithPrefix(prefix string) string {
	if prefix == "" {
		return GenerateUUID()
	}
	return fmt.Sprintf("%s_%s", prefix, GenerateUUID())
}

var (
	tokenMu   sync.Mutex
	lastToken int64
)

// GenerateTimestampToken returns PREFIX-<unix millis>. Tokens minted within
// the same millisecond are bumped forward so they stay unique per process.
func GenerateTimestampToken(prefix string, now time.Time) string {
	tokenMu.Lock()
	defer tokenMu.Unlock()

	ms := now.UnixMilli()
	if ms <= lastToken {
		ms = lastToken + 1
	}
	lastToken = ms

	return fmt.Sprintf("%s-%d", prefix, ms)
}

var (
	sidGenerator *shortid.Shortid
	once         sync.Once
)

// initializeSID initializes the shortid generator once
func initializeSID() {
	var err error
	sidGenerator, err = shortid.New(1, shortid.DefaultABC, 2342)
	if err != nil {
		panic("failed to initialize shortid generator: " + err.Error())
	}
}

// GenerateShortIDWithPrefix returns a short ID with a prefix.
// Total length is capped at 12 characters, e.g., `TCK-XYZ12A8Q`.
func GenerateShortIDWithPrefix(prefix string) string {
	once.Do(initializeSID)

	id, err := sidGenerator.Generate()
	if err != nil {
		return ""
	}
	id = strings.NewReplacer("-", "", "_", "").Replace(id)

	availableLen := 12 - len(prefix)
	if availableLen <= 0 {
		return ""
	}

	if len(id) > availableLen {
		id = id[:availableLen]
	}

	return strings.ToUpper(fmt.Sprintf("%s%s", prefix, id))
}

const (
	// Prefixes for all domains and entities

	UUID_PREFIX_DEAL          = "deal"
	UUID_PREFIX_QUOTE         = "quote"
	UUID_PREFIX_CLIENT        = "client"
	UUID_PREFIX_ASSET         = "asset"
	UUID_PREFIX_TICKET        = "ticket"
	UUID_PREFIX_COMMENT       = "cmt"
	UUID_PREFIX_EVENT         = "event"
	UUID_PREFIX_PROJECT       = "proj"
	UUID_PREFIX_TASK          = "task"
	UUID_PREFIX_FILE          = "file"
	UUID_PREFIX_DOMAIN_EVENT  = "evt"
	TIMESTAMP_PREFIX_EXPENSE  = "EXP"
	SHORT_ID_PREFIX_TICKET    = "TCK-"
	SHORT_ID_PREFIX_QUOTE     = "QT-"
	SHORT_ID_PREFIX_ASSET_TAG = "FA-"
)
