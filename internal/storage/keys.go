package storage

import (
	"fmt"
	"time"
)

const (
	// Cart per session: cart:{session_id} -> {"v":1,"items":[...]}
	KeyCart = "cart:%s"

	// Last placed order per session: last_order:{session_id} -> {"v":1,"id":...}
	KeyLastOrder = "last_order:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var TTLDedup = 48 * time.Hour

func CartKey(sessionID string) string      { return fmt.Sprintf(KeyCart, sessionID) }
func LastOrderKey(sessionID string) string { return fmt.Sprintf(KeyLastOrder, sessionID) }
func DedupKey(service, id string) string   { return fmt.Sprintf(KeyDedup, service, id) }
