package goodmoney

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// newID generates an entity id unique within and across process lifetimes:
// the creation instant in unix milliseconds plus a random suffix, so an
// entity recreated after a delete never reuses an id.
func newID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("%d-%s", now.UnixMilli(), suffix)
}
