package ayush

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// MintTransactionID generates the per-charge transaction id:
// TXN_<unix-ms>_<8 hex chars of cryptographic random>. A fresh id is minted
// for every attempt and never reused across retries.
func MintTransactionID() string {
	buf := make([]byte, 4)
	rand.Read(buf)
	return fmt.Sprintf("TXN_%d_%s", time.Now().UnixMilli(), hex.EncodeToString(buf))
}
